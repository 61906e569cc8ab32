package render

import (
	"fmt"
	"image/color"
)

// ParseHex parses a 6-hex-digit color string such as "ff0000" (no "#"
// prefix) into an opaque RGBA color. Parsing is deliberately lenient:
// the string is scanned best-effort, anything that is not valid hex
// leaves the accumulator at zero, and only the low 24 bits are kept.
// It never fails; garbage input yields black.
func ParseHex(s string) color.RGBA {
	var v uint32
	_, _ = fmt.Sscanf(s, "%x", &v)
	v &= 0xffffff
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
}
