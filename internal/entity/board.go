package entity

import (
	"fmt"

	"github.com/rocketscienceinc/fourinarow/internal/apperror"
)

// Board - columns x rows grid of cells, indexed [column][row] with row 0 at the bottom.
type Board struct {
	columns int
	rows    int
	cells   [][]Cell
}

func NewBoard(columns, rows int) (*Board, error) {
	if columns < 1 || rows < 1 {
		return nil, fmt.Errorf("%w: board %dx%d", apperror.ErrInvalidConfiguration, columns, rows)
	}

	cells := make([][]Cell, columns)
	for column := range cells {
		cells[column] = make([]Cell, rows)
		for row := range cells[column] {
			cells[column][row] = EmptyCell()
		}
	}

	return &Board{
		columns: columns,
		rows:    rows,
		cells:   cells,
	}, nil
}

func (that *Board) Columns() int {
	return that.columns
}

func (that *Board) Rows() int {
	return that.rows
}

// Contains - reports whether the position lies on the board.
func (that *Board) Contains(pos Position) bool {
	return pos.Column >= 0 && pos.Column < that.columns && pos.Row >= 0 && pos.Row < that.rows
}

// LowestFreeRow - returns the smallest unoccupied row of the column; ok is false when the column is full.
func (that *Board) LowestFreeRow(column int) (int, bool, error) {
	if column < 0 || column >= that.columns {
		return 0, false, fmt.Errorf("%w: column %d", apperror.ErrInvalidColumn, column)
	}

	for row, cell := range that.cells[column] {
		if cell.IsEmpty() {
			return row, true, nil
		}
	}

	return 0, false, nil
}

// Place - drops a piece of the owner into the column. This is the only mutator besides Reset.
func (that *Board) Place(column int, owner Player) (Position, error) {
	row, ok, err := that.LowestFreeRow(column)
	if err != nil {
		return Position{}, err
	}

	if !ok {
		return Position{}, fmt.Errorf("%w: column %d", apperror.ErrColumnFull, column)
	}

	that.cells[column][row] = OccupiedCell(owner)

	return Position{Column: column, Row: row}, nil
}

// IsFull - columns fill bottom-up, so the top row alone decides.
func (that *Board) IsFull() bool {
	top := that.rows - 1
	for column := range that.cells {
		if that.cells[column][top].IsEmpty() {
			return false
		}
	}

	return true
}

func (that *Board) CellAt(column, row int) (Cell, error) {
	pos := Position{Column: column, Row: row}
	if !that.Contains(pos) {
		return Cell{}, fmt.Errorf("%w: %s", apperror.ErrInvalidPosition, pos)
	}

	return that.cells[column][row], nil
}

// OwnedBy - false for off-board positions.
func (that *Board) OwnedBy(pos Position, player Player) bool {
	if !that.Contains(pos) {
		return false
	}

	return that.cells[pos.Column][pos.Row].IsOwnedBy(player)
}

func (that *Board) OccupiedCount() int {
	count := 0
	for column := range that.cells {
		for _, cell := range that.cells[column] {
			if !cell.IsEmpty() {
				count++
			}
		}
	}

	return count
}

// Cells - copy of the grid, [column][row].
func (that *Board) Cells() [][]Cell {
	cells := make([][]Cell, that.columns)
	for column := range that.cells {
		cells[column] = make([]Cell, that.rows)
		copy(cells[column], that.cells[column])
	}

	return cells
}

func (that *Board) Reset() {
	for column := range that.cells {
		for row := range that.cells[column] {
			that.cells[column][row] = EmptyCell()
		}
	}
}
