package checkers

import "errors"

var (
	// ErrInvalidSelection: empty square, opponent piece, or a piece the
	// mandatory-capture rule (or a forced continuation) excludes.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrInvalidDestination: destination not in the current legal set.
	ErrInvalidDestination = errors.New("invalid destination")
	// ErrOutOfBounds: coordinate outside the 8x8 grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrNoLegalMoves is an internal invariant failure: terminal detection
	// should have ended the game first.
	ErrNoLegalMoves = errors.New("no legal moves")
	ErrGameOver     = errors.New("game is over")
)
