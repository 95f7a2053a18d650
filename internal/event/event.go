package event

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/fourinarow/internal/connectfour"
	"github.com/rocketscienceinc/fourinarow/internal/entity"
)

type Kind string

const (
	KindMove  Kind = "move"
	KindReset Kind = "reset"
)

// Event - notification for renderers and other observers of a match.
type Event struct {
	MatchID  string                 `json:"match_id"`
	Kind     Kind                   `json:"kind"`
	Player   entity.Player          `json:"player,omitempty"`
	PlacedAt *entity.Position       `json:"placed_at,omitempty"`
	Status   connectfour.GameStatus `json:"status"`
	At       time.Time              `json:"at"`
}

func Move(matchID string, outcome connectfour.MoveOutcome, at time.Time) Event {
	placedAt := outcome.PlacedAt

	return Event{
		MatchID:  matchID,
		Kind:     KindMove,
		Player:   outcome.Player,
		PlacedAt: &placedAt,
		Status:   outcome.Status,
		At:       at,
	}
}

func Reset(matchID string, status connectfour.GameStatus, at time.Time) Event {
	return Event{
		MatchID: matchID,
		Kind:    KindReset,
		Status:  status,
		At:      at,
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// LogPublisher - writes every event to the structured log.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{
		logger: logger.With("component", "events"),
	}
}

func (that *LogPublisher) Publish(ctx context.Context, event Event) error {
	attrs := []any{
		"matchID", event.MatchID,
		"kind", event.Kind,
		"status", event.Status.Kind,
	}

	if event.PlacedAt != nil {
		attrs = append(attrs, "player", event.Player, "placedAt", event.PlacedAt.String())
	}

	if event.Status.IsWon() {
		attrs = append(attrs, "winner", event.Status.Winner)
	}

	that.logger.InfoContext(ctx, "match event", attrs...)

	return nil
}

// Fanout - delivers to every publisher, even when some of them fail.
type Fanout []Publisher

func (that Fanout) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, publisher := range that {
		if err := publisher.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
