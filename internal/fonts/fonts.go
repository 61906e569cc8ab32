// Package fonts manages the font used for placeholder rendering. The
// default source is the embedded Go Regular face, so rendering works
// with zero configuration and is deterministic across machines; a TTF
// file can be loaded instead and hot-reloaded while running.
package fonts

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Source holds a parsed font and hands out faces at arbitrary sizes.
// Safe for concurrent use; Reload may swap the font while renders are
// in flight.
type Source struct {
	mu   sync.RWMutex
	font *opentype.Font
	path string // empty for the embedded default
}

// Default returns a source backed by the embedded Go Regular font.
func Default() *Source {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		// The embedded font is known-good; failing to parse it means
		// the binary itself is broken.
		panic(fmt.Sprintf("fonts: parse embedded font: %v", err))
	}
	return &Source{font: f}
}

// Load reads and parses a TTF/OTF file from disk.
func Load(path string) (*Source, error) {
	s := &Source{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the file backing this source, or "" for the embedded
// default.
func (s *Source) Path() string {
	return s.path
}

// Reload re-reads the backing file. On error the previously loaded
// font stays active. No-op for the embedded default.
func (s *Source) Reload() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read font %s: %w", s.path, err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", s.path, err)
	}
	s.mu.Lock()
	s.font = f
	s.mu.Unlock()
	return nil
}

// Face creates a new face at the given point size. The caller owns the
// face and should close it when done.
func (s *Source) Face(size float64) (font.Face, error) {
	s.mu.RLock()
	f := s.font
	s.mu.RUnlock()
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
