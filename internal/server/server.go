// Package server exposes the interceptor over plain HTTP on
// localhost, so a browser or the host application can fetch
// placeholder images during development without touching the real
// network path.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abaddouh/placehold/internal/intercept"
)

type Server struct {
	port int
	ic   *intercept.Interceptor
	srv  *http.Server
	log  zerolog.Logger
}

func New(port int, ic *intercept.Interceptor, log zerolog.Logger) *Server {
	return &Server{
		port: port,
		ic:   ic,
		log:  log,
	}
}

func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.imageHandler)

	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: mux,
	}

	s.log.Info().Int("port", s.port).Msg("starting HTTP server")

	go func() {
		<-ctx.Done()
		s.log.Info().Msg("server is shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}

	return nil
}

// imageHandler maps every incoming request onto the sentinel host and
// relays the synthetic response. The asynchronous completion channel
// is awaited alongside the request context, so a disconnecting client
// stops the wait.
func (s *Server) imageHandler(w http.ResponseWriter, r *http.Request) {
	id := uuid.New().String()
	log := s.log.With().Str("request", id).Str("path", r.URL.Path).Logger()
	log.Debug().Msg("received request")

	req := intercept.FromURL(r.URL)
	req.Host = intercept.SentinelHost

	select {
	case <-r.Context().Done():
		log.Debug().Msg("client went away")
	case res := <-s.ic.Do(r.Context(), req):
		if res.Err != nil {
			log.Error().Err(res.Err).Msg("placeholder generation failed")
			http.Error(w, "placeholder generation failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", res.Response.ContentType)
		w.WriteHeader(res.Response.StatusCode)
		if _, err := w.Write(res.Response.Body); err != nil {
			log.Warn().Err(err).Msg("write response")
		}
	}
}
