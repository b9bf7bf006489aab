package zugzwang

import "math"

// DrawReason names why a position is drawn under a None/Draw Evaluation.
type DrawReason int

const (
	Stalemate DrawReason = iota
	FiftyMoveRule
	InsufficientMaterial
	ThreefoldRepetition
)

func (r DrawReason) String() string {
	switch r {
	case Stalemate:
		return "stalemate"
	case FiftyMoveRule:
		return "fifty-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	case ThreefoldRepetition:
		return "threefold repetition"
	default:
		return "draw"
	}
}

// Evaluation is the outcome of examining a position: a decisive result, a
// draw (with reason), or an ongoing game with a centipawn score.
type Evaluation struct {
	Win   bool
	Draw  bool
	Side  Side // winner, if Win
	Reason DrawReason
	Score int32 // centipawns from White's perspective, valid when !Win && !Draw
}

// pieceValue gives the material weight of a piece kind in centipawns.
func pieceValue(k PieceKind) int32 {
	switch k {
	case Queen:
		return 900
	case Rook:
		return 500
	case Bishop, Knight:
		return 300
	case Pawn:
		return 100
	default:
		return 0
	}
}

// MateScore is the score assigned to a checkmated position, signed by the
// winning side.
const MateScore int32 = math.MaxInt32

// hasInsufficientMaterial implements rule 4's same-bishop-color check by
// intersecting each side's bishop bitboard with the light-squares mask and
// comparing.
func (p *Position) hasInsufficientMaterial() bool {
	if p.White.Pawns|p.Black.Pawns|p.White.Rooks|p.Black.Rooks|p.White.Queens|p.Black.Queens != 0 {
		return false
	}
	wMinor := p.White.Bishops.Popcount() + p.White.Knights.Popcount()
	bMinor := p.Black.Bishops.Popcount() + p.Black.Knights.Popcount()

	if wMinor == 0 && bMinor == 0 {
		return true // K vs K
	}
	if wMinor+bMinor == 1 {
		return true // lone bishop or knight vs bare king
	}
	if wMinor == 1 && bMinor == 1 && p.White.Knights == 0 && p.Black.Knights == 0 {
		wLight := p.White.Bishops&lightSquares != 0
		bLight := p.Black.Bishops&lightSquares != 0
		return wLight == bLight
	}
	return false
}

// isThreefoldRepetition walks the (optional) repetition history backward in
// steps of two plies, counting how many times the current hash recurs.
func (p *Position) isThreefoldRepetition() bool {
	if p.history == nil {
		return false
	}
	matches := 0
	for i := len(p.history) - 2; i >= 0; i -= 2 {
		if p.history[i] == p.Hash {
			matches++
			if matches >= 2 {
				return true
			}
		}
	}
	return false
}

// Evaluate inspects the position given whether the side to move has any
// legal moves (as returned alongside move generation) and whether it is in
// check, classifying the position as a win, a draw, or an ongoing game.
func (p *Position) Evaluate(hasLegalMoves, inCheck bool) Evaluation {
	if !hasLegalMoves {
		if inCheck {
			return Evaluation{Win: true, Side: p.SideToMove.Other()}
		}
		return Evaluation{Draw: true, Reason: Stalemate}
	}
	// This engine's convention: the fifty-move rule fires at 50 plies, not
	// the usual 100 (see the ambient design note on this threshold).
	if p.Halfmove >= 50 {
		return Evaluation{Draw: true, Reason: FiftyMoveRule}
	}
	if p.hasInsufficientMaterial() {
		return Evaluation{Draw: true, Reason: InsufficientMaterial}
	}
	if p.isThreefoldRepetition() {
		return Evaluation{Draw: true, Reason: ThreefoldRepetition}
	}
	return Evaluation{Score: p.materialScore()}
}

// materialScore sums piece values, positive favoring White.
func (p *Position) materialScore() int32 {
	var score int32
	for _, k := range [5]PieceKind{Pawn, Knight, Bishop, Rook, Queen} {
		score += pieceValue(k) * int32((*p.White.kindBoard(k)).Popcount())
		score -= pieceValue(k) * int32((*p.Black.kindBoard(k)).Popcount())
	}
	return score
}
