// Package intercept decides whether an outgoing request should be
// answered locally with a synthesized placeholder image instead of
// real network I/O, and produces that synthetic response. Requests
// are matched by an exact sentinel host; everything else passes
// through untouched.
package intercept

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abaddouh/placehold/internal/render"
)

const (
	// SentinelHost is the host that marks a request as ours.
	// Comparison is exact and case-sensitive.
	SentinelHost = "placeholder"

	// ImagePath is the only path served on the sentinel host.
	ImagePath = "/image.png"
)

// Request is the descriptor of one intercepted request. Query keys
// are case-sensitive; duplicate keys must already be flattened to
// their last value.
type Request struct {
	Host  string
	Path  string
	Query map[string]string
}

// Response is a synthetic response: either a rendered image or a
// plain-text 404 for unknown paths on the sentinel host.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Result is the single terminal outcome of an asynchronous Do call.
// Exactly one of Response and Err is set.
type Result struct {
	ID       string
	Response *Response
	Err      error
}

// Interceptor matches sentinel-host requests and synthesizes their
// responses. It holds no per-request state and is safe for concurrent
// use.
type Interceptor struct {
	renderer *render.Renderer
	log      zerolog.Logger
}

func New(r *render.Renderer, log zerolog.Logger) *Interceptor {
	return &Interceptor{renderer: r, log: log}
}

// Match reports whether a request to host should be handled locally.
func (i *Interceptor) Match(host string) bool {
	return host == SentinelHost
}

// Handle synthesizes the response for a matched request. Unknown
// paths yield a 404 response; rendering or encoding failures are
// returned as errors with no response, never as a corrupt body.
func (i *Interceptor) Handle(req Request) (*Response, error) {
	if req.Path != ImagePath {
		return &Response{
			StatusCode:  404,
			ContentType: "text/plain",
			Body:        []byte("404 Not Found"),
		}, nil
	}

	p := paramsFromQuery(req.Query)
	body, err := i.renderer.RenderPNG(p)
	if err != nil {
		return nil, fmt.Errorf("render placeholder: %w", err)
	}
	return &Response{
		StatusCode:  200,
		ContentType: "image/png",
		Body:        body,
	}, nil
}

// Do handles the request asynchronously and delivers exactly one
// Result on the returned channel, unless ctx is canceled first, in
// which case nothing is ever delivered. The channel is buffered, so
// the result is available even if the caller receives late.
func (i *Interceptor) Do(ctx context.Context, req Request) <-chan Result {
	out := make(chan Result, 1)
	id := uuid.NewString()

	go func() {
		if ctx.Err() != nil {
			return
		}
		resp, err := i.Handle(req)
		if ctx.Err() != nil {
			i.log.Debug().Str("request", id).Msg("canceled, dropping result")
			return
		}
		if err != nil {
			i.log.Error().Str("request", id).Err(err).Str("path", req.Path).Msg("intercept failed")
		} else {
			i.log.Debug().Str("request", id).Int("status", resp.StatusCode).Str("path", req.Path).Msg("intercepted")
		}
		out <- Result{ID: id, Response: resp, Err: err}
	}()

	return out
}

// paramsFromQuery resolves render parameters from query values,
// falling back to defaults for anything missing, malformed, or
// non-positive. Malformed values are never an error.
func paramsFromQuery(q map[string]string) render.Params {
	p := render.DefaultParams()
	if v, ok := q["width"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Width = n
		}
	}
	if v, ok := q["height"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Height = n
		}
	}
	if v, ok := q["text"]; ok {
		p.Text = v
	}
	if v, ok := q["fgcolor"]; ok {
		p.Foreground = render.ParseHex(v)
	}
	if v, ok := q["bgcolor"]; ok {
		p.Background = render.ParseHex(v)
	}
	return p
}
