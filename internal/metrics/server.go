package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"feeboard/pkg/logging"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes /metrics on a listen address.
type Server struct {
	srv *http.Server
}

// NewServer creates a metrics server for addr (e.g. ":9100").
func NewServer(addr string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &Server{srv: &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}}
}

// Start serves in the background until Shutdown is called.
func (s *Server) Start() {
	go func() {
		logging.Info(subsystem, "Serving metrics on %s/metrics", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error(subsystem, err, "Metrics server stopped")
		}
	}()
}

// Shutdown stops the server, waiting up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
