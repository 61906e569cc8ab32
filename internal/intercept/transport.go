package intercept

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Transport is an http.RoundTripper that answers sentinel-host
// requests from the interceptor and delegates everything else to the
// base transport. It is the plug-in point for an http.Client, so no
// process-wide registration is needed.
type Transport struct {
	Interceptor *Interceptor

	// Base handles non-matching requests. nil means
	// http.DefaultTransport.
	Base http.RoundTripper
}

func (t *Transport) RoundTrip(r *http.Request) (*http.Response, error) {
	if !t.Interceptor.Match(r.URL.Hostname()) {
		base := t.Base
		if base == nil {
			base = http.DefaultTransport
		}
		return base.RoundTrip(r)
	}

	if err := r.Context().Err(); err != nil {
		return nil, err
	}

	resp, err := t.Interceptor.Handle(FromURL(r.URL))
	if err != nil {
		return nil, err
	}

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		StatusCode:    resp.StatusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        http.Header{"Content-Type": []string{resp.ContentType}},
		Body:          io.NopCloser(bytes.NewReader(resp.Body)),
		ContentLength: int64(len(resp.Body)),
		Request:       r,
	}, nil
}

// FromURL builds a Request from a parsed URL, flattening duplicate
// query keys to their last value.
func FromURL(u *url.URL) Request {
	q := make(map[string]string)
	for k, vs := range u.Query() {
		if len(vs) > 0 {
			q[k] = vs[len(vs)-1]
		}
	}
	return Request{Host: u.Hostname(), Path: u.Path, Query: q}
}
