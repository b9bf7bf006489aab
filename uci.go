package zugzwang

import "fmt"

var promotionLetters = [4]byte{'n', 'b', 'r', 'q'}

// UCI renders a move as long algebraic notation: <from><to>[promotion].
// Castling moves are rendered as the king's own from/to squares.
func (m Move) UCI() string {
	from, to := m.From().String(), m.To().String()
	if !m.IsPromotion() {
		return from + to
	}
	code := promotionCode(m.PromotionPiece())
	return from + to + string(promotionLetters[code])
}

// ParseUCIMove parses a UCI move string against pos's current legal moves,
// returning ErrIllegalMove if it does not name one of them.
func ParseUCIMove(pos *Position, s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return 0, fmt.Errorf("%w: %q", ErrIllegalMove, s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return 0, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return 0, err
	}
	var promote PieceKind = NoKind
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			promote = Knight
		case 'b':
			promote = Bishop
		case 'r':
			promote = Rook
		case 'q':
			promote = Queen
		default:
			return 0, fmt.Errorf("%w: unknown promotion letter %q", ErrIllegalMove, s[4:])
		}
	}

	sink := NewVectorSink()
	GenerateLegalMoves(pos, sink)
	for _, m := range sink.List.Slice() {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() {
			if promote == NoKind || m.PromotionPiece() != promote {
				continue
			}
		} else if promote != NoKind {
			continue
		}
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrIllegalMove, s)
}
