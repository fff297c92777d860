package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// UI constants
const (
	buttonHeight = 26
	buttonPad    = 8
	panelMargin  = 10
	glyphAdvance = 7 // basicfont.Face7x13
)

var (
	buttonFill  = color.RGBA{0x2a, 0x2c, 0x38, 0xe0}
	buttonHover = color.RGBA{0x3c, 0x3f, 0x52, 0xe0}
	buttonText  = color.RGBA{0xe8, 0xe8, 0xf0, 0xff}
)

// Button is a clickable label box. The owner repositions the row whenever
// the window resizes and may swap the label to mirror state.
type Button struct {
	Label      string
	X, Y, W, H float32
	OnClick    func()
}

func (b *Button) contains(mx, my int) bool {
	fx, fy := float32(mx), float32(my)
	return fx >= b.X && fx < b.X+b.W && fy >= b.Y && fy < b.Y+b.H
}

func (b *Button) draw(screen *ebiten.Image, mx, my int) {
	fill := buttonFill
	if b.contains(mx, my) {
		fill = buttonHover
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, fill, true)
	tx := int(b.X) + buttonPad
	ty := int(b.Y + b.H/2 + 4)
	text.Draw(screen, b.Label, basicfont.Face7x13, tx, ty, buttonText)
}

// layoutButtons rows the buttons along the bottom-left edge, sized to their
// labels.
func layoutButtons(buttons []*Button, screenH int) {
	x := float32(panelMargin)
	y := float32(screenH) - panelMargin - buttonHeight
	for _, b := range buttons {
		b.W = float32(glyphAdvance*len(b.Label) + 2*buttonPad)
		b.H = buttonHeight
		b.X = x
		b.Y = y
		x += b.W + panelMargin/2
	}
}

// clickButtons fires the first button under the pointer and reports whether
// the click was consumed.
func clickButtons(buttons []*Button, mx, my int) bool {
	for _, b := range buttons {
		if b.contains(mx, my) {
			if b.OnClick != nil {
				b.OnClick()
			}
			return true
		}
	}
	return false
}
