package apperror

import "errors"

var (
	ErrInvalidDimensions = errors.New("board height and width must be positive")
	ErrInvalidPlayers    = errors.New("a match needs two distinct players")
	ErrInvalidColumn     = errors.New("invalid column index")
	ErrInvalidCell       = errors.New("invalid cell coordinates")
	ErrColumnFull        = errors.New("column is full")
	ErrMatchAlreadyOver  = errors.New("match is already over")
	ErrMatchNotFound     = errors.New("match not found")
	ErrTooManyConflicts  = errors.New("too many concurrent updates")
	ErrMatchExists       = errors.New("match already exists")
	ErrCorruptSnapshot   = errors.New("corrupt match snapshot")
)
