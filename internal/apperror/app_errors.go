package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already decided at this step")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrStepOutOfRange  = errors.New("step is outside the move history")
	ErrSessionNotFound = errors.New("session not found")
)
