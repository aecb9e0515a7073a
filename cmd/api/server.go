// Package api wires the expense engine into an HTTP server.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/FACorreiaa/rachaai/internal/domain/expense/handler"
)

// NewRouter builds the HTTP handler with routes and middleware.
func NewRouter(d *Dependencies) http.Handler {
	mux := http.NewServeMux()
	d.ExpenseHandler.Register(mux)

	if d.Config.Observability.MetricsEnabled {
		mux.Handle("GET /metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{Registry: d.Registry}))
	}

	var limiter *rate.Limiter
	if d.Config.Server.RateLimitPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(d.Config.Server.RateLimitPerSecond), d.Config.Server.RateLimitBurst)
	}

	return handler.Chain(mux,
		handler.RequestID,
		handler.Logging(d.Logger),
		handler.CORS(d.Config.Server.AllowedOrigins),
		handler.RateLimit(limiter),
	)
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func Run(ctx context.Context, d *Dependencies) error {
	cfg := d.Config.Server
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewRouter(d),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ErrorLog:          slog.NewLogLogger(d.Logger.Handler(), slog.LevelWarn),
	}

	if d.Scheduler != nil {
		if err := d.Scheduler.Start(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
	}

	if d.Config.Profiling.Enabled {
		go d.servePprof()
	}

	errCh := make(chan error, 1)
	go func() {
		d.Logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	d.Logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

func (d *Dependencies) servePprof() {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	addr := fmt.Sprintf("localhost:%d", d.Config.Profiling.Port)
	d.Logger.Info("pprof listening", slog.String("addr", addr))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	if err := srv.ListenAndServe(); err != nil {
		d.Logger.Warn("pprof server stopped", slog.Any("error", err))
	}
}
