package main

import "testing"

func TestSanitizeSeed(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"shapes-42", "shapes-42"},
		{"with spaces here", "with_spaces_here"},
		{"a/b\\c:d", "a_b_c_d"},
		{"", "seed"},
		{"日本語", "___"},
		{"MixedCase_OK-1", "MixedCase_OK-1"},
	}
	for _, tt := range tests {
		if got := sanitizeSeed(tt.in); got != tt.want {
			t.Errorf("sanitizeSeed(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
