package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidCell   = errors.New("invalid cell coordinate")
	ErrIllegalMove   = errors.New("illegal move")
	ErrTimeExhausted = errors.New("time budget exhausted")
	ErrPlayerFault   = errors.New("player failed to decide")
	ErrNoHole        = errors.New("no empty cell left for the hole")
	ErrNotFound      = errors.New("not found")
)
