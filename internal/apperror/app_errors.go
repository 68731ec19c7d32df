package apperror

import "errors"

var (
	ErrInvalidCell   = errors.New("invalid cell index")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidMark   = errors.New("mark must belong to a player")
	ErrQuitRequested = errors.New("quit requested")
)
