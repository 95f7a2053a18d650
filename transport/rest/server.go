package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - read-only HTTP surface for renderers and health checks.
func NewRouter(logger *slog.Logger, matches matchReader) http.Handler {
	match := NewMatchHandler(logger, matches)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", match.Ping)
	mux.HandleFunc("GET /matches", match.ListMatches)
	mux.HandleFunc("GET /matches/{id}", match.GetMatch)

	return mux
}

// Start - serves until ctx is canceled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
