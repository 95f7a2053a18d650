package application

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestWaitForShutdown(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Keeps serving after the console reaches end of input", func(t *testing.T) {
		// Given: a console that already finished cleanly
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		httpErrCh := make(chan error, 1)
		consoleDone := make(chan error, 1)
		consoleDone <- nil

		done := make(chan error, 1)
		go func() {
			done <- waitForShutdown(ctx, logger, httpErrCh, consoleDone)
		}()

		// Then: nothing returns until the context is canceled
		select {
		case err := <-done:
			t.Fatalf("returned early: %v", err)
		case <-time.After(50 * time.Millisecond):
		}

		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("did not return after cancel")
		}
	})

	t.Run("HTTP failure is returned", func(t *testing.T) {
		httpErrCh := make(chan error, 1)
		httpErrCh <- errBoom

		err := waitForShutdown(context.Background(), logger, httpErrCh, make(chan error))

		require.ErrorIs(t, err, errBoom)
		assert.Contains(t, err.Error(), "HTTP server error")
	})

	t.Run("Console read failure is returned", func(t *testing.T) {
		consoleDone := make(chan error, 1)
		consoleDone <- errBoom

		err := waitForShutdown(context.Background(), logger, make(chan error), consoleDone)

		require.ErrorIs(t, err, errBoom)
		assert.Contains(t, err.Error(), "console error")
	})
}
