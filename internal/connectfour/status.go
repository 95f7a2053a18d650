package connectfour

import "github.com/rocketscienceinc/fourinarow/internal/entity"

type StatusKind string

const (
	StatusInProgress StatusKind = "in_progress"
	StatusWon        StatusKind = "won"
	StatusDraw       StatusKind = "draw"
)

// GameStatus - InProgress, Won(winner, cells) or Draw.
type GameStatus struct {
	Kind         StatusKind        `json:"kind"`
	Winner       entity.Player     `json:"winner,omitempty"`
	WinningCells []entity.Position `json:"winning_cells,omitempty"`
}

func inProgress() GameStatus {
	return GameStatus{Kind: StatusInProgress}
}

func won(winner entity.Player, cells []entity.Position) GameStatus {
	return GameStatus{Kind: StatusWon, Winner: winner, WinningCells: cells}
}

func draw() GameStatus {
	return GameStatus{Kind: StatusDraw}
}

func (that GameStatus) IsInProgress() bool {
	return that.Kind == StatusInProgress
}

func (that GameStatus) IsWon() bool {
	return that.Kind == StatusWon
}

func (that GameStatus) IsDraw() bool {
	return that.Kind == StatusDraw
}

// IsTerminal - won or draw; no further moves until reset.
func (that GameStatus) IsTerminal() bool {
	return that.IsWon() || that.IsDraw()
}

func (that GameStatus) clone() GameStatus {
	if that.WinningCells != nil {
		that.WinningCells = append([]entity.Position(nil), that.WinningCells...)
	}
	return that
}

// MoveOutcome - result of a successful move.
type MoveOutcome struct {
	Player   entity.Player   `json:"player"`
	PlacedAt entity.Position `json:"placed_at"`
	Status   GameStatus      `json:"status"`
}
