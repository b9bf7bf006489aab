package zugzwang

import "errors"

// Parse errors, returned (never panicked) from FEN and move-string parsing
// per the core's error-handling design: malformed input is reported to the
// caller, not recovered internally.
var (
	ErrMalformedFEN      = errors.New("malformed FEN")
	ErrInvalidPieceRow   = errors.New("invalid piece placement row")
	ErrUnknownPiece      = errors.New("unknown piece letter")
	ErrInvalidSideToMove = errors.New("invalid side-to-move token")
	ErrInvalidCastling   = errors.New("invalid castling rights token")
	ErrInvalidSquare     = errors.New("invalid square")
	ErrInvalidClock      = errors.New("non-integer clock value")
	ErrIllegalMove       = errors.New("illegal move")
)
