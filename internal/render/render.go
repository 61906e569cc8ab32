// Package render produces placeholder raster images: a solid
// background with a single line of centered label text, encoded as
// PNG. Rendering is a pure computation with no I/O and no shared
// state between calls.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/abaddouh/placehold/internal/fonts"
)

// Defaults applied by callers when a parameter is missing or malformed.
const (
	DefaultWidth      = 250
	DefaultHeight     = 250
	DefaultText       = "dummy"
	DefaultForeground = "202f55"
	DefaultBackground = "dddddd"
)

// ErrInvalidDimensions is returned when a non-positive width or height
// reaches the renderer. Callers are expected to have defaulted
// dimensions already, so hitting this indicates a caller bug.
var ErrInvalidDimensions = errors.New("render: width and height must be positive")

// Params describes one placeholder image.
type Params struct {
	Width      int
	Height     int
	Text       string
	Foreground color.RGBA
	Background color.RGBA
}

// DefaultParams returns Params with every field at its default.
func DefaultParams() Params {
	return Params{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Text:       DefaultText,
		Foreground: ParseHex(DefaultForeground),
		Background: ParseHex(DefaultBackground),
	}
}

// Renderer draws placeholder images using faces from a font source.
type Renderer struct {
	fonts *fonts.Source
}

func New(src *fonts.Source) *Renderer {
	return &Renderer{fonts: src}
}

// Render draws the placeholder described by p. The font size is
// chosen so the text occupies at most 80% of the canvas width and 20%
// of its height; text that still overflows is drawn anyway, without
// clipping. Identical params produce identical pixels.
func (r *Renderer) Render(p Params) (*image.RGBA, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, ErrInvalidDimensions
	}

	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(p.Background), image.Point{}, draw.Src)

	if p.Text == "" {
		return img, nil
	}

	runes := utf8.RuneCountInString(p.Text)
	if runes < 1 {
		runes = 1
	}
	size := math.Min(float64(p.Width)*0.8/float64(runes), float64(p.Height)*0.2)

	face, err := r.fonts.Face(size)
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	defer face.Close()

	textWidth := font.MeasureString(face, p.Text)
	metrics := face.Metrics()

	// Horizontal centering uses the measured advance width; vertical
	// centering uses the face line height rather than the glyph
	// bounds, so the baseline does not jump around with ascenders and
	// descenders.
	x := (fixed.I(p.Width) - textWidth) / 2
	y := (fixed.I(p.Height)-metrics.Height)/2 + metrics.Ascent

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(p.Foreground),
		Face: face,
		Dot:  fixed.Point26_6{X: x, Y: y},
	}
	d.DrawString(p.Text)

	return img, nil
}

// RenderPNG renders p and encodes the result as PNG bytes.
func (r *Renderer) RenderPNG(p Params) ([]byte, error) {
	img, err := r.Render(p)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
