package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/fourinarow/internal/apperror"
)

const (
	DefaultColumns   = 7
	DefaultRows      = 6
	DefaultWinLength = 4

	minWinLength = 2
)

// Settings - board size and the minimum run that wins.
type Settings struct {
	Columns   int `json:"columns"`
	Rows      int `json:"rows"`
	WinLength int `json:"win_length"`
}

func DefaultSettings() Settings {
	return Settings{
		Columns:   DefaultColumns,
		Rows:      DefaultRows,
		WinLength: DefaultWinLength,
	}
}

func (that Settings) Validate() error {
	if that.Columns < 1 {
		return fmt.Errorf("%w: columns must be at least 1, got %d", apperror.ErrInvalidConfiguration, that.Columns)
	}

	if that.Rows < 1 {
		return fmt.Errorf("%w: rows must be at least 1, got %d", apperror.ErrInvalidConfiguration, that.Rows)
	}

	if that.WinLength < minWinLength {
		return fmt.Errorf("%w: win length must be at least %d, got %d", apperror.ErrInvalidConfiguration, minWinLength, that.WinLength)
	}

	return nil
}
