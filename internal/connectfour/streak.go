package connectfour

import "github.com/rocketscienceinc/fourinarow/internal/entity"

// axis - one line direction through a cell; the opposite direction is the negated step.
type axis struct {
	name    string
	dColumn int
	dRow    int
}

// axes are evaluated in this order; the first qualifying one wins.
var axes = [4]axis{
	{name: "vertical", dColumn: 0, dRow: 1},
	{name: "horizontal", dColumn: 1, dRow: 0},
	{name: "diagonal-up", dColumn: 1, dRow: 1},
	{name: "diagonal-down", dColumn: 1, dRow: -1},
}

// streak - the maximal run of the origin owner's pieces through origin along the axis,
// ordered from the negative end to the positive end. The origin is counted once.
func streak(board *entity.Board, origin entity.Position, owner entity.Player, a axis) []entity.Position {
	run := []entity.Position{origin}

	for pos := origin.Step(a.dColumn, a.dRow); board.OwnedBy(pos, owner); pos = pos.Step(a.dColumn, a.dRow) {
		run = append(run, pos)
	}

	var before []entity.Position
	for pos := origin.Step(-a.dColumn, -a.dRow); board.OwnedBy(pos, owner); pos = pos.Step(-a.dColumn, -a.dRow) {
		before = append(before, pos)
	}

	if len(before) == 0 {
		return run
	}

	combined := make([]entity.Position, 0, len(before)+len(run))
	for i := len(before) - 1; i >= 0; i-- {
		combined = append(combined, before[i])
	}

	return append(combined, run...)
}

// findWinningRun - checks only the lines through the last placed piece.
func findWinningRun(board *entity.Board, origin entity.Position, winLength int) (entity.Player, []entity.Position, bool) {
	cell, err := board.CellAt(origin.Column, origin.Row)
	if err != nil || cell.IsEmpty() {
		return entity.NoPlayer, nil, false
	}

	for _, a := range axes {
		if run := streak(board, origin, cell.Owner, a); len(run) >= winLength {
			return cell.Owner, run, true
		}
	}

	return entity.NoPlayer, nil, false
}
