package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/fourinarow/internal/config"
	"github.com/rocketscienceinc/fourinarow/internal/event"
	"github.com/rocketscienceinc/fourinarow/internal/transport/redis"
	"github.com/rocketscienceinc/fourinarow/internal/usecase"
	"github.com/rocketscienceinc/fourinarow/transport/console"
	"github.com/rocketscienceinc/fourinarow/transport/rest"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	publishers := event.Fanout{event.NewLogPublisher(logger)}

	if conf.Redis.Enabled {
		redisClient, err := redis.New(ctx, conf.Redis.GetRedisAddr(), conf.Redis.Channel)
		if err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}

		defer func() {
			if err = redisClient.Close(); err != nil {
				log.Error("could not close redis client", "error", err)
			}
		}()

		publishers = append(publishers, redisClient)
		log.Info("Publishing match events to redis", "channel", conf.Redis.Channel)
	}

	matches := usecase.NewMatchManager(logger, publishers)

	matchID, err := matches.CreateMatch(ctx, conf.Board.Settings())
	if err != nil {
		return fmt.Errorf("could not create match: %w", err)
	}

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, matches)); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run console driver
	consoleDone := make(chan error, 1)
	go func() {
		log.Info("Reading moves from stdin", "matchID", matchID)
		consoleDone <- console.New(logger, matches, matchID, os.Stdin, os.Stdout).Run(ctx)
	}()

	return waitForShutdown(ctx, log, httpErrCh, consoleDone)
}

// waitForShutdown - blocks until a signal or an HTTP failure. A console that runs out of input
// leaves the HTTP server and the publishers running, so the process can be run detached.
func waitForShutdown(ctx context.Context, log *slog.Logger, httpErrCh <-chan error, consoleDone <-chan error) error {
	for {
		select {
		case err := <-httpErrCh:
			return fmt.Errorf("HTTP server error: %w", err)
		case err := <-consoleDone:
			if err != nil {
				return fmt.Errorf("console error: %w", err)
			}
			log.Info("Console closed, serving until signal")
			consoleDone = nil
		case <-ctx.Done():
			log.Info("Application context canceled, shutting down")
			return nil
		}
	}
}
