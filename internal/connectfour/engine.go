package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/fourinarow/internal/apperror"
	"github.com/rocketscienceinc/fourinarow/internal/entity"
)

// Engine - turn state and outcome of a single game on one board.
// Not safe for concurrent use; callers serialize access per match.
type Engine struct {
	settings Settings
	board    *entity.Board

	active entity.Player
	status GameStatus
	moves  int
	scores entity.Scoreboard
}

// NewGame - creates an engine with an empty board and PlayerOne to move.
func NewGame(columns, rows, winLength int) (*Engine, error) {
	return New(Settings{Columns: columns, Rows: rows, WinLength: winLength})
}

func New(settings Settings) (*Engine, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	board, err := entity.NewBoard(settings.Columns, settings.Rows)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &Engine{
		settings: settings,
		board:    board,
		active:   entity.PlayerOne,
		status:   inProgress(),
		scores:   entity.NewScoreboard(),
	}, nil
}

// ApplyMove - drops the active player's piece into the column and decides the outcome.
// On error the engine state is unchanged.
func (that *Engine) ApplyMove(column int) (MoveOutcome, error) {
	if that.status.IsTerminal() {
		return MoveOutcome{}, apperror.ErrGameAlreadyOver
	}

	player := that.active

	placedAt, err := that.board.Place(column, player)
	if err != nil {
		return MoveOutcome{}, fmt.Errorf("invalid move: %w", err)
	}

	that.moves++

	switch winner, cells, ok := findWinningRun(that.board, placedAt, that.settings.WinLength); {
	case ok:
		that.status = won(winner, cells)
		that.scores.AddPoint(winner)
	// a move that completes a run and fills the board is a win, never a draw
	case that.board.IsFull():
		that.status = draw()
	default:
		that.active = player.Other()
	}

	return MoveOutcome{
		Player:   player,
		PlacedAt: placedAt,
		Status:   that.status.clone(),
	}, nil
}

// Reset - empties the board and hands the first move back to PlayerOne. Scores are kept.
func (that *Engine) Reset() {
	that.board.Reset()
	that.active = entity.PlayerOne
	that.status = inProgress()
	that.moves = 0
}

func (that *Engine) Inspect(column, row int) (entity.Cell, error) {
	cell, err := that.board.CellAt(column, row)
	if err != nil {
		return entity.Cell{}, fmt.Errorf("failed to inspect cell: %w", err)
	}

	return cell, nil
}

func (that *Engine) ActivePlayer() entity.Player {
	return that.active
}

func (that *Engine) Status() GameStatus {
	return that.status.clone()
}

func (that *Engine) Settings() Settings {
	return that.settings
}

// Moves - successful moves since the last reset.
func (that *Engine) Moves() int {
	return that.moves
}

func (that *Engine) Scores() entity.Scoreboard {
	return that.scores.Copy()
}

// Snapshot - everything a renderer needs to redraw the board.
type Snapshot struct {
	Settings     Settings          `json:"settings"`
	Cells        [][]entity.Cell   `json:"cells"`
	ActivePlayer entity.Player     `json:"active_player"`
	Status       GameStatus        `json:"status"`
	Moves        int               `json:"moves"`
	Scores       entity.Scoreboard `json:"scores"`
}

func (that *Engine) Snapshot() Snapshot {
	return Snapshot{
		Settings:     that.settings,
		Cells:        that.board.Cells(),
		ActivePlayer: that.active,
		Status:       that.status.clone(),
		Moves:        that.moves,
		Scores:       that.scores.Copy(),
	}
}
