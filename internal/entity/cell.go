package entity

import "fmt"

type CellStatus string

const (
	CellEmpty    CellStatus = "empty"
	CellOccupied CellStatus = "occupied"
)

type Cell struct {
	Status CellStatus `json:"status"`
	Owner  Player     `json:"owner,omitempty"`
}

func EmptyCell() Cell {
	return Cell{Status: CellEmpty}
}

func OccupiedCell(owner Player) Cell {
	return Cell{Status: CellOccupied, Owner: owner}
}

func (that Cell) IsEmpty() bool {
	return that.Status != CellOccupied
}

func (that Cell) IsOwnedBy(player Player) bool {
	return that.Status == CellOccupied && that.Owner == player
}

// Position - 0-based board coordinates, row 0 is the bottom row.
type Position struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

func (that Position) Step(dColumn, dRow int) Position {
	return Position{Column: that.Column + dColumn, Row: that.Row + dRow}
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Column, that.Row)
}
