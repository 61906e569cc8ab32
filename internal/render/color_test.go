package render

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"ffffff", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"202f55", color.RGBA{0x20, 0x2f, 0x55, 0xff}},
		{"dddddd", color.RGBA{0xdd, 0xdd, 0xdd, 0xff}},
		{"ff0000", color.RGBA{0xff, 0x00, 0x00, 0xff}},
		{"ABCDEF", color.RGBA{0xab, 0xcd, 0xef, 0xff}},

		// Lenient behavior: garbage never errors, it just leaves the
		// accumulator at zero.
		{"", color.RGBA{0, 0, 0, 0xff}},
		{"zz", color.RGBA{0, 0, 0, 0xff}},
		{"#ffffff", color.RGBA{0, 0, 0, 0xff}},

		// Best-effort scan stops at the first non-hex character.
		{"12zz", color.RGBA{0x00, 0x00, 0x12, 0xff}},

		// Only the low 24 bits are used.
		{"ffffff00", color.RGBA{0xff, 0xff, 0x00, 0xff}},
	}
	for _, tt := range tests {
		if got := ParseHex(tt.in); got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
