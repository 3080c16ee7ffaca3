package apperror

import "errors"

var (
	ErrOutOfBounds  = errors.New("cell is out of bounds")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameOver     = errors.New("game is already finished")
	ErrInvalidState = errors.New("invalid game state")
)
