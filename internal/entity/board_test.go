package entity

import (
	"testing"

	"github.com/rocketscienceinc/fourinarow/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("Creates an empty board", func(t *testing.T) {
		// Given: a 7x6 board
		board, err := NewBoard(7, 6)
		require.NoError(t, err)

		// Then: every cell is empty and the dimensions match
		assert.Equal(t, 7, board.Columns())
		assert.Equal(t, 6, board.Rows())
		assert.Equal(t, 0, board.OccupiedCount())

		for column := 0; column < 7; column++ {
			for row := 0; row < 6; row++ {
				cell, err := board.CellAt(column, row)
				require.NoError(t, err)
				assert.True(t, cell.IsEmpty())
			}
		}
	})

	t.Run("Rejects non-positive dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 6}, {7, 0}, {-1, -1}} {
			// When: creating a board with a zero or negative dimension
			_, err := NewBoard(dims[0], dims[1])

			// Then: ErrInvalidConfiguration is returned
			require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
		}
	})
}

func TestBoard_LowestFreeRow(t *testing.T) {
	t.Run("Returns the smallest empty row", func(t *testing.T) {
		// Given: a column with two pieces in it
		board, err := NewBoard(3, 4)
		require.NoError(t, err)
		_, err = board.Place(1, PlayerOne)
		require.NoError(t, err)
		_, err = board.Place(1, PlayerTwo)
		require.NoError(t, err)

		// When: asking for the lowest free row
		row, ok, err := board.LowestFreeRow(1)

		// Then: row 2 is free
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 2, row)
	})

	t.Run("Reports a full column", func(t *testing.T) {
		// Given: a full column
		board, err := NewBoard(2, 2)
		require.NoError(t, err)
		for range 2 {
			_, err = board.Place(0, PlayerOne)
			require.NoError(t, err)
		}

		// When: asking for the lowest free row
		_, ok, err := board.LowestFreeRow(0)

		// Then: no row is free
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Rejects an out of range column", func(t *testing.T) {
		board, err := NewBoard(2, 2)
		require.NoError(t, err)

		_, _, err = board.LowestFreeRow(2)
		require.ErrorIs(t, err, apperror.ErrInvalidColumn)

		_, _, err = board.LowestFreeRow(-1)
		require.ErrorIs(t, err, apperror.ErrInvalidColumn)
	})
}

func TestBoard_Place(t *testing.T) {
	t.Run("Pieces stack from the bottom", func(t *testing.T) {
		// Given: an empty board
		board, err := NewBoard(3, 3)
		require.NoError(t, err)

		// When: placing three pieces into the same column
		for row := 0; row < 3; row++ {
			pos, err := board.Place(2, PlayerTwo)

			// Then: each lands one row above the previous
			require.NoError(t, err)
			assert.Equal(t, Position{Column: 2, Row: row}, pos)

			cell, err := board.CellAt(2, row)
			require.NoError(t, err)
			assert.True(t, cell.IsOwnedBy(PlayerTwo))
		}

		assert.Equal(t, 3, board.OccupiedCount())
	})

	t.Run("Full column fails without mutating the board", func(t *testing.T) {
		// Given: a 2x1 board with column 0 full
		board, err := NewBoard(2, 1)
		require.NoError(t, err)
		_, err = board.Place(0, PlayerOne)
		require.NoError(t, err)
		before := board.Cells()

		// When: placing into the full column
		_, err = board.Place(0, PlayerTwo)

		// Then: ErrColumnFull is returned and nothing changed
		require.ErrorIs(t, err, apperror.ErrColumnFull)
		assert.Equal(t, before, board.Cells())
	})

	t.Run("Invalid column fails without mutating the board", func(t *testing.T) {
		board, err := NewBoard(2, 2)
		require.NoError(t, err)

		_, err = board.Place(5, PlayerOne)

		require.ErrorIs(t, err, apperror.ErrInvalidColumn)
		assert.Equal(t, 0, board.OccupiedCount())
	})
}

func TestBoard_IsFull(t *testing.T) {
	// Given: a 2x2 board
	board, err := NewBoard(2, 2)
	require.NoError(t, err)

	player := PlayerOne
	for _, column := range []int{0, 0, 1, 1} {
		// Then: it is not full until the last cell is taken
		assert.False(t, board.IsFull())

		_, err = board.Place(column, player)
		require.NoError(t, err)
		player = player.Other()
	}

	assert.True(t, board.IsFull())
}

func TestBoard_CellAt(t *testing.T) {
	board, err := NewBoard(2, 3)
	require.NoError(t, err)

	_, err = board.CellAt(2, 0)
	require.ErrorIs(t, err, apperror.ErrInvalidPosition)

	_, err = board.CellAt(0, 3)
	require.ErrorIs(t, err, apperror.ErrInvalidPosition)

	_, err = board.CellAt(0, -1)
	require.ErrorIs(t, err, apperror.ErrInvalidPosition)
}

func TestBoard_OwnedBy(t *testing.T) {
	board, err := NewBoard(2, 2)
	require.NoError(t, err)
	_, err = board.Place(0, PlayerOne)
	require.NoError(t, err)

	assert.True(t, board.OwnedBy(Position{Column: 0, Row: 0}, PlayerOne))
	assert.False(t, board.OwnedBy(Position{Column: 0, Row: 0}, PlayerTwo))
	assert.False(t, board.OwnedBy(Position{Column: 0, Row: 1}, PlayerOne))
	assert.False(t, board.OwnedBy(Position{Column: -1, Row: 0}, PlayerOne))
}

func TestBoard_Reset(t *testing.T) {
	// Given: a board with pieces on it
	board, err := NewBoard(3, 3)
	require.NoError(t, err)
	for column := 0; column < 3; column++ {
		_, err = board.Place(column, PlayerOne)
		require.NoError(t, err)
	}

	// When: resetting it
	board.Reset()

	// Then: every cell is empty again
	assert.Equal(t, 0, board.OccupiedCount())
	assert.False(t, board.IsFull())
}

func TestScoreboard(t *testing.T) {
	scores := NewScoreboard()
	scores.AddPoint(PlayerTwo)

	snapshot := scores.Copy()
	scores.AddPoint(PlayerTwo)

	assert.Equal(t, 1, snapshot[PlayerTwo])
	assert.Equal(t, 2, scores[PlayerTwo])
	assert.Equal(t, 0, scores[PlayerOne])
}

func TestPlayer_Other(t *testing.T) {
	assert.Equal(t, PlayerTwo, PlayerOne.Other())
	assert.Equal(t, PlayerOne, PlayerTwo.Other())
}
