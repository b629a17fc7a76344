package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// Server exposes /metrics and /healthz over HTTP.
type Server struct {
	port    int
	handler http.Handler
}

func NewServer(port int, gatherer prometheus.Gatherer) *Server {
	return &Server{
		port:    port,
		handler: NewRouter(gatherer),
	}
}

// NewRouter builds the HTTP routes served by Server.
func NewRouter(gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}

func (s *Server) Start(ctx context.Context) error {
	svr := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- svr.ListenAndServe()
	}()

	slog.InfoContext(ctx, "metrics server listening", "port", s.port)

	select {
	case err := <-errCh:
		return fmt.Errorf("serving metrics on port %d: %w", s.port, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	err := svr.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("shutting down metrics server: %w", err)
	}

	err = <-errCh
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
