package zugzwang

// MoveSink receives pseudo-legal-filtered, check-resolved moves from the
// generator. Splitting the interface by move shape lets a counting sink
// (perft) skip building Move values it will only tally, while a vector sink
// can pack them straight into a MoveList.
type MoveSink interface {
	// AddPushes adds quiet non-pawn moves from one source square to each
	// set bit in targets.
	AddPushes(from Square, targets Bitboard)
	// AddCaptures adds non-pawn captures from one source square to each set
	// bit in targets.
	AddCaptures(from Square, targets Bitboard)
	// AddCastle adds a single castling move.
	AddCastle(from, to Square, side Castle)
	// AddPawnPushes adds single pawn pushes landing on each set bit of
	// targets, given the shift from source to destination (8 or -8).
	AddPawnPushes(targets Bitboard, shift int)
	// AddDoublePawnPushes adds two-square pawn pushes landing on targets.
	AddDoublePawnPushes(targets Bitboard, shift int)
	// AddPawnCaptures adds pawn captures landing on targets, given the
	// diagonal shift from source to destination.
	AddPawnCaptures(targets Bitboard, shift int)
	// AddPawnEPCapture adds a single en-passant capture.
	AddPawnEPCapture(from, to Square)
}

// promotionKinds are enumerated Knight first, matching the piece-kind
// iota order used for promotion loops elsewhere in the package.
var promotionKinds = [4]PieceKind{Knight, Bishop, Rook, Queen}

// endRanks is the union of rank 1 and rank 8, where a pawn push or capture
// is actually a promotion.
const endRanks = Bitboard(0xFF000000000000FF)

// CountingSink tallies perft statistics without constructing Move values.
type CountingSink struct {
	Nodes      uint64
	Captures   uint64
	EPCaptures uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

func (s *CountingSink) AddPushes(from Square, targets Bitboard) {
	s.Nodes += uint64(targets.Popcount())
}

func (s *CountingSink) AddCaptures(from Square, targets Bitboard) {
	n := uint64(targets.Popcount())
	s.Nodes += n
	s.Captures += n
}

func (s *CountingSink) AddCastle(from, to Square, side Castle) {
	s.Nodes++
	s.Castles++
}

func (s *CountingSink) AddPawnPushes(targets Bitboard, shift int) {
	promo := targets & endRanks
	plain := targets &^ endRanks
	s.Nodes += uint64(plain.Popcount())
	s.Nodes += uint64(promo.Popcount()) * 4
	s.Promotions += uint64(promo.Popcount()) * 4
}

func (s *CountingSink) AddDoublePawnPushes(targets Bitboard, shift int) {
	s.Nodes += uint64(targets.Popcount())
}

func (s *CountingSink) AddPawnCaptures(targets Bitboard, shift int) {
	promo := targets & endRanks
	plain := targets &^ endRanks
	s.Nodes += uint64(plain.Popcount())
	s.Captures += uint64(plain.Popcount())
	n := uint64(promo.Popcount())
	s.Nodes += n * 4
	s.Captures += n * 4
	s.Promotions += n * 4
}

func (s *CountingSink) AddPawnEPCapture(from, to Square) {
	s.Nodes++
	s.Captures++
	s.EPCaptures++
}

// VectorSink appends concrete Move values to a MoveList.
type VectorSink struct {
	List *MoveList
}

// NewVectorSink wraps a freshly zeroed MoveList in a sink.
func NewVectorSink() *VectorSink {
	return &VectorSink{List: &MoveList{}}
}

func (s *VectorSink) AddPushes(from Square, targets Bitboard) {
	for targets != 0 {
		to := targets.PopLSB()
		s.List.Push(NewQuietMove(from, to))
	}
}

func (s *VectorSink) AddCaptures(from Square, targets Bitboard) {
	for targets != 0 {
		to := targets.PopLSB()
		s.List.Push(NewCaptureMove(from, to))
	}
}

func (s *VectorSink) AddCastle(from, to Square, side Castle) {
	s.List.Push(NewCastleMove(from, to, side))
}

// pawnSourceOf recovers the origin square of a pawn push/capture by
// rotating the destination back by the shift amount, rather than branching
// on direction per call site.
func pawnSourceOf(to Square, shift int) Square {
	return Square((int(to) - shift + 64) % 64)
}

func (s *VectorSink) addPawnTargets(targets Bitboard, shift int, capture bool) {
	for targets != 0 {
		to := targets.PopLSB()
		from := pawnSourceOf(to, shift)
		if SquareBB(to)&endRanks != 0 {
			for _, k := range promotionKinds {
				if capture {
					s.List.Push(NewPromotionCaptureMove(from, to, k))
				} else {
					s.List.Push(NewPromotionMove(from, to, k))
				}
			}
			continue
		}
		if capture {
			s.List.Push(NewCaptureMove(from, to))
		} else {
			s.List.Push(NewQuietMove(from, to))
		}
	}
}

func (s *VectorSink) AddPawnPushes(targets Bitboard, shift int) {
	s.addPawnTargets(targets, shift, false)
}

func (s *VectorSink) AddDoublePawnPushes(targets Bitboard, shift int) {
	for targets != 0 {
		to := targets.PopLSB()
		from := pawnSourceOf(to, shift)
		s.List.Push(NewDoublePawnPush(from, to))
	}
}

func (s *VectorSink) AddPawnCaptures(targets Bitboard, shift int) {
	s.addPawnTargets(targets, shift, true)
}

func (s *VectorSink) AddPawnEPCapture(from, to Square) {
	s.List.Push(NewEnPassantMove(from, to))
}
