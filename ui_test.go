package main

import "testing"

func TestButtonContains(t *testing.T) {
	b := &Button{X: 10, Y: 20, W: 60, H: 26}

	tests := []struct {
		name   string
		mx, my int
		want   bool
	}{
		{"inside", 30, 30, true},
		{"top-left corner", 10, 20, true},
		{"right edge exclusive", 70, 30, false},
		{"above", 30, 10, false},
		{"far away", 500, 500, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.contains(tt.mx, tt.my); got != tt.want {
				t.Errorf("contains(%d,%d) = %v, want %v", tt.mx, tt.my, got, tt.want)
			}
		})
	}
}

func TestLayoutButtonsRow(t *testing.T) {
	buttons := []*Button{
		{Label: "pause"},
		{Label: "rebuild"},
		{Label: "colors: off"},
	}
	layoutButtons(buttons, 700)

	for i, b := range buttons {
		if b.W <= 0 || b.H != buttonHeight {
			t.Errorf("button %d not sized: %v x %v", i, b.W, b.H)
		}
		if b.Y+b.H > 700 {
			t.Errorf("button %d hangs below the window", i)
		}
		if i > 0 {
			prev := buttons[i-1]
			if b.X < prev.X+prev.W {
				t.Errorf("button %d overlaps its neighbor", i)
			}
		}
	}

	// Wider label, wider button.
	if buttons[2].W <= buttons[0].W {
		t.Error("long label did not widen the button")
	}
}

func TestClickButtons(t *testing.T) {
	fired := ""
	buttons := []*Button{
		{Label: "a", OnClick: func() { fired = "a" }},
		{Label: "b", OnClick: func() { fired = "b" }},
	}
	layoutButtons(buttons, 700)

	mx := int(buttons[1].X) + 2
	my := int(buttons[1].Y) + 2
	if !clickButtons(buttons, mx, my) {
		t.Fatal("click not consumed")
	}
	if fired != "b" {
		t.Errorf("fired %q, want b", fired)
	}

	if clickButtons(buttons, 1, 1) {
		t.Error("click in empty space consumed")
	}
}
