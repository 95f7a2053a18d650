package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/fourinarow/internal/connectfour"
)

const (
	commandReset = "reset"
	commandNew   = "new"
	commandQuit  = "quit"
)

type matchPlayer interface {
	CreateMatch(ctx context.Context, settings connectfour.Settings) (string, error)
	ApplyMove(ctx context.Context, matchID string, column int) (connectfour.MoveOutcome, error)
	Reset(ctx context.Context, matchID string) error
	Snapshot(matchID string) (connectfour.Snapshot, error)
	RemoveMatch(ctx context.Context, matchID string) error
}

// Console - drives one match from a line-oriented stream: a column number, "reset", "new" or "quit" per line.
// "new" replaces the match with a fresh one of the same size, so the scores start over.
type Console struct {
	baseLogger *slog.Logger
	logger     *slog.Logger
	matches    matchPlayer
	matchID    string

	in  io.Reader
	out io.Writer
}

func New(logger *slog.Logger, matches matchPlayer, matchID string, in io.Reader, out io.Writer) *Console {
	base := logger.With("component", "console")

	return &Console{
		baseLogger: base,
		logger:     base.With("matchID", matchID),
		matches:    matches,
		matchID:    matchID,
		in:         in,
		out:        out,
	}
}

// Run - processes commands until quit, end of input or ctx is canceled.
func (that *Console) Run(ctx context.Context) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("failed to read commands: %w", err)
				}
				return nil
			}

			if quit := that.handle(ctx, strings.TrimSpace(line)); quit {
				return nil
			}
		}
	}
}

func (that *Console) handle(ctx context.Context, command string) bool {
	switch command {
	case "":
		return false
	case commandQuit, "exit":
		return true
	case commandReset:
		if err := that.matches.Reset(ctx, that.matchID); err != nil {
			that.reportError(ctx, command, err)
			return false
		}
		that.println("reset")
		return false
	case commandNew:
		if err := that.replaceMatch(ctx); err != nil {
			that.reportError(ctx, command, err)
			return false
		}
		that.println("new match " + that.matchID)
		return false
	}

	column, err := strconv.Atoi(command)
	if err != nil {
		that.println(fmt.Sprintf("error: unknown command %q", command))
		return false
	}

	outcome, err := that.matches.ApplyMove(ctx, that.matchID, column)
	if err != nil {
		that.reportError(ctx, command, err)
		return false
	}

	that.println(describe(outcome))

	return false
}

// replaceMatch - the old match is dropped only once its successor exists.
func (that *Console) replaceMatch(ctx context.Context) error {
	snapshot, err := that.matches.Snapshot(that.matchID)
	if err != nil {
		return err
	}

	matchID, err := that.matches.CreateMatch(ctx, snapshot.Settings)
	if err != nil {
		return err
	}

	if err = that.matches.RemoveMatch(ctx, that.matchID); err != nil {
		return err
	}

	that.matchID = matchID
	that.logger = that.baseLogger.With("matchID", matchID)

	return nil
}

func (that *Console) reportError(ctx context.Context, command string, err error) {
	that.logger.DebugContext(ctx, "command rejected", "command", command, "error", err)
	that.println("error: " + err.Error())
}

func (that *Console) println(line string) {
	if _, err := fmt.Fprintln(that.out, line); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func describe(outcome connectfour.MoveOutcome) string {
	line := fmt.Sprintf("%s placed at %s", outcome.Player, outcome.PlacedAt)

	switch {
	case outcome.Status.IsWon():
		cells := make([]string, 0, len(outcome.Status.WinningCells))
		for _, pos := range outcome.Status.WinningCells {
			cells = append(cells, pos.String())
		}
		return fmt.Sprintf("%s; %s wins with %s", line, outcome.Status.Winner, strings.Join(cells, " "))
	case outcome.Status.IsDraw():
		return line + "; draw"
	default:
		return line
	}
}
