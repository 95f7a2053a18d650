package apperror

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid game configuration")
	ErrInvalidColumn        = errors.New("invalid column")
	ErrInvalidPosition      = errors.New("invalid cell position")
	ErrColumnFull           = errors.New("column is full")
	ErrGameAlreadyOver      = errors.New("game is already over")
	ErrMatchNotFound        = errors.New("match not found")
)
