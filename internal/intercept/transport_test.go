package intercept

import (
	"bytes"
	"image/png"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/abaddouh/placehold/internal/fonts"
	"github.com/abaddouh/placehold/internal/render"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newClient(base http.RoundTripper) *http.Client {
	ic := New(render.New(fonts.Default()), zerolog.Nop())
	return &http.Client{Transport: &Transport{Interceptor: ic, Base: base}}
}

func TestTransportServesPlaceholder(t *testing.T) {
	client := newClient(nil)

	resp, err := client.Get("http://placeholder/image.png?width=40&height=30")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q, want image/png", ct)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 40 || cfg.Height != 30 {
		t.Errorf("size = %dx%d, want 40x30", cfg.Width, cfg.Height)
	}
}

func TestTransportNotFoundPath(t *testing.T) {
	client := newClient(nil)

	resp, err := client.Get("http://placeholder/favicon.ico")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 404 {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "404 Not Found" {
		t.Errorf("body = %q, want %q", body, "404 Not Found")
	}
}

func TestTransportFallsThroughToBase(t *testing.T) {
	base := roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: 200,
			Header:     http.Header{"X-Base": []string{"hit"}},
			Body:       io.NopCloser(strings.NewReader("real traffic")),
			Request:    r,
		}, nil
	})
	client := newClient(base)

	resp, err := client.Get("http://example.com/image.png")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.Header.Get("X-Base") != "hit" {
		t.Error("request to non-sentinel host did not reach the base transport")
	}
}

func TestFromURLLastDuplicateWins(t *testing.T) {
	client := newClient(nil)

	resp, err := client.Get("http://placeholder/image.png?width=30&width=40&height=25")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	cfg, err := png.DecodeConfig(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 40 {
		t.Errorf("width = %d, want last duplicate value 40", cfg.Width)
	}
	if cfg.Height != 25 {
		t.Errorf("height = %d, want 25", cfg.Height)
	}
}
