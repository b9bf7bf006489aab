package zugzwang

// Move is a chess move packed into 16 bits.
//
// Byte layout (low byte first):
//   to-byte:   bits 0-5 = to square, bits 6-7 = "to-high" pair
//   from-byte: bits 8-13 = from square, bits 14-15 = "from-high" pair
//
// The from-high pair is (promotion bit, capture bit), MSB first — bit 15 is
// the promotion flag, bit 14 is the capture flag. When the promotion flag is
// 0, the to-high pair is a sub-flag: 00 = plain, 01 = double-pawn-push (if
// capture=0) or en-passant capture (if capture=1), 10 = castle kingside,
// 11 = castle queenside. When the promotion flag is 1, the to-high pair
// selects the promoted piece: 00=Knight, 01=Bishop, 10=Rook, 11=Queen (the
// capture flag still distinguishes promotion-with-capture).
//
// Codes (from-high=01, to-high=10) and (01, 11) are reserved and never
// constructed ("capturing castle" is not a real move).
type Move uint16

const (
	moveToMask      Move = 0x003F
	moveToHighShift      = 6
	moveToHighMask  Move = 0x00C0
	moveFromMask    Move = 0x3F00
	moveFromShift        = 8
	moveCaptureBit  Move = 1 << 14
	movePromoteBit  Move = 1 << 15
)

// subflag values when the promotion bit is clear.
const (
	subflagPlain Move = iota
	subflagSpecialPawn
	subflagCastleKingside
	subflagCastleQueenside
)

// To returns the destination square.
func (m Move) To() Square { return Square(m & moveToMask) }

// From returns the origin square.
func (m Move) From() Square { return Square((m & moveFromMask) >> moveFromShift) }

// IsCapture reports whether the move captures a piece (including en passant).
func (m Move) IsCapture() bool { return m&moveCaptureBit != 0 }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m&movePromoteBit != 0 }

func (m Move) toHigh() Move { return (m & moveToHighMask) >> moveToHighShift }

// IsDoublePawnPush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool {
	return !m.IsPromotion() && !m.IsCapture() && m.toHigh() == subflagSpecialPawn
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return !m.IsPromotion() && m.IsCapture() && m.toHigh() == subflagSpecialPawn
}

// Castle returns the castling side and ok=true if the move castles.
func (m Move) Castle() (Castle, bool) {
	if m.IsPromotion() || m.IsCapture() {
		return 0, false
	}
	switch m.toHigh() {
	case subflagCastleKingside:
		return CastleKingside, true
	case subflagCastleQueenside:
		return CastleQueenside, true
	default:
		return 0, false
	}
}

// PromotionPiece returns the promoted-to piece kind. Only meaningful when
// IsPromotion() is true.
func (m Move) PromotionPiece() PieceKind {
	switch m.toHigh() {
	case 0:
		return Knight
	case 1:
		return Bishop
	case 2:
		return Rook
	default:
		return Queen
	}
}

func promotionCode(k PieceKind) Move {
	switch k {
	case Knight:
		return 0
	case Bishop:
		return 1
	case Rook:
		return 2
	default:
		return 3
	}
}

func pack(from, to Square, fromHigh, toHigh Move) Move {
	return Move(from)<<moveFromShift | fromHigh<<14 | toHigh<<moveToHighShift | Move(to)
}

// NewQuietMove builds a non-capturing, non-special move.
func NewQuietMove(from, to Square) Move {
	return pack(from, to, 0, subflagPlain)
}

// NewCaptureMove builds a plain capture.
func NewCaptureMove(from, to Square) Move {
	return pack(from, to, 1, subflagPlain)
}

// NewDoublePawnPush builds a two-square pawn push.
func NewDoublePawnPush(from, to Square) Move {
	return pack(from, to, 0, subflagSpecialPawn)
}

// NewEnPassantMove builds an en-passant capture.
func NewEnPassantMove(from, to Square) Move {
	return pack(from, to, 1, subflagSpecialPawn)
}

// NewCastleMove builds a castling move, keyed on the king's from/to squares.
func NewCastleMove(from, to Square, side Castle) Move {
	if side == CastleKingside {
		return pack(from, to, 0, subflagCastleKingside)
	}
	return pack(from, to, 0, subflagCastleQueenside)
}

// NewPromotionMove builds a non-capturing promotion.
func NewPromotionMove(from, to Square, promote PieceKind) Move {
	return pack(from, to, 2, promotionCode(promote))
}

// NewPromotionCaptureMove builds a capturing promotion.
func NewPromotionCaptureMove(from, to Square, promote PieceKind) Move {
	return pack(from, to, 3, promotionCode(promote))
}

// String renders the move in UCI long algebraic notation.
func (m Move) String() string {
	return m.UCI()
}

// kDefaultMoveListCapacity is a nominal move-list size, matching the pack's
// dragontoothmg family's default and the spec's "reserve a small capacity --
// ~60" note. MoveList does not use it: its backing array holds 218 moves.
const kDefaultMoveListCapacity = 64

// MoveList is a fixed-capacity move buffer, avoiding per-ply heap allocation.
type MoveList struct {
	Moves [218]Move
	Count int
}

// Push appends a move to the list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.Count] = m
	l.Count++
}

// Slice returns the populated prefix of the underlying array.
func (l *MoveList) Slice() []Move {
	return l.Moves[:l.Count]
}
