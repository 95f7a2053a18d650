package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/fourinarow/internal/apperror"
	"github.com/rocketscienceinc/fourinarow/internal/connectfour"
	"github.com/rocketscienceinc/fourinarow/internal/event"
)

type publisher interface {
	Publish(ctx context.Context, evt event.Event) error
}

// match - one engine, owned by whoever holds mu.
type match struct {
	mu     sync.Mutex
	engine *connectfour.Engine
}

// MatchManager - independent games keyed by match id. Moves for the same match are serialized.
type MatchManager struct {
	logger    *slog.Logger
	publisher publisher
	now       func() time.Time

	mu      sync.RWMutex
	matches map[string]*match
}

func NewMatchManager(logger *slog.Logger, publisher publisher) *MatchManager {
	return &MatchManager{
		logger:    logger.With("component", "matches"),
		publisher: publisher,
		now:       time.Now,

		matches: make(map[string]*match),
	}
}

func (that *MatchManager) CreateMatch(ctx context.Context, settings connectfour.Settings) (string, error) {
	engine, err := connectfour.New(settings)
	if err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	matchID := uuid.NewString()

	that.mu.Lock()
	that.matches[matchID] = &match{engine: engine}
	that.mu.Unlock()

	that.logger.InfoContext(ctx, "match created",
		"matchID", matchID,
		"columns", settings.Columns,
		"rows", settings.Rows,
		"winLength", settings.WinLength,
	)

	return matchID, nil
}

func (that *MatchManager) ApplyMove(ctx context.Context, matchID string, column int) (connectfour.MoveOutcome, error) {
	m, err := that.getMatch(matchID)
	if err != nil {
		return connectfour.MoveOutcome{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	outcome, err := m.engine.ApplyMove(column)
	if err != nil {
		return connectfour.MoveOutcome{}, fmt.Errorf("failed to apply move: %w", err)
	}

	that.publish(ctx, event.Move(matchID, outcome, that.now()))

	return outcome, nil
}

func (that *MatchManager) Reset(ctx context.Context, matchID string) error {
	m, err := that.getMatch(matchID)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.engine.Reset()

	that.publish(ctx, event.Reset(matchID, m.engine.Status(), that.now()))

	return nil
}

func (that *MatchManager) Snapshot(matchID string) (connectfour.Snapshot, error) {
	m, err := that.getMatch(matchID)
	if err != nil {
		return connectfour.Snapshot{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.engine.Snapshot(), nil
}

func (that *MatchManager) RemoveMatch(ctx context.Context, matchID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.matches[matchID]; !ok {
		return fmt.Errorf("%w: %s", apperror.ErrMatchNotFound, matchID)
	}

	delete(that.matches, matchID)

	that.logger.InfoContext(ctx, "match removed", "matchID", matchID)

	return nil
}

// MatchIDs - sorted ids of the current matches.
func (that *MatchManager) MatchIDs() []string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	ids := make([]string, 0, len(that.matches))
	for id := range that.matches {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

func (that *MatchManager) getMatch(matchID string) (*match, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	m, ok := that.matches[matchID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrMatchNotFound, matchID)
	}

	return m, nil
}

// publish never fails the caller; the move has already been applied.
func (that *MatchManager) publish(ctx context.Context, evt event.Event) {
	if err := that.publisher.Publish(ctx, evt); err != nil {
		that.logger.ErrorContext(ctx, "failed to publish event",
			"matchID", evt.MatchID,
			"kind", evt.Kind,
			"error", err,
		)
	}
}
