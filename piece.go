package zugzwang

// Side is the player to move: White or Black.
type Side uint8

const (
	White Side = iota
	Black
)

// Other returns the opposing side.
func (c Side) Other() Side { return c ^ 1 }

func (c Side) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceKind is a piece type without color.
type PieceKind uint8

const (
	Knight PieceKind = iota // listed before Bishop, for promotion-enumeration loops
	Bishop
	Rook
	Queen
	King
	Pawn
	NoKind
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Piece is a (side, kind) pair, bijective with 0..11, with NullPiece == 12.
type Piece uint8

const NullPiece Piece = 12

// NewPiece builds the Piece index for a (side, kind) pair.
func NewPiece(side Side, kind PieceKind) Piece {
	return Piece(kind)*2 + Piece(side)
}

// Side returns the piece's color.
func (p Piece) Side() Side { return Side(p & 1) }

// Kind returns the piece's type.
func (p Piece) Kind() PieceKind { return PieceKind(p / 2) }

func (p Piece) String() string {
	if p == NullPiece {
		return "."
	}
	letters := [12]byte{'N', 'n', 'B', 'b', 'R', 'r', 'Q', 'q', 'K', 'k', 'P', 'p'}
	return string(letters[p])
}

// Castle identifies a castling side: kingside or queenside.
type Castle uint8

const (
	CastleKingside Castle = iota
	CastleQueenside
)

// CastlingRights is a 4-bit set of {WK, WQ, BK, BQ}.
type CastlingRights uint8

const (
	RightWhiteKingside CastlingRights = 1 << iota
	RightWhiteQueenside
	RightBlackKingside
	RightBlackQueenside
	NoRights      CastlingRights = 0
	AllCastleRights CastlingRights = RightWhiteKingside | RightWhiteQueenside | RightBlackKingside | RightBlackQueenside
)

// Has reports whether the right set contains r.
func (c CastlingRights) Has(r CastlingRights) bool { return c&r != 0 }

// right returns the single-bit right for (side, castle).
func right(side Side, castle Castle) CastlingRights {
	switch {
	case side == White && castle == CastleKingside:
		return RightWhiteKingside
	case side == White && castle == CastleQueenside:
		return RightWhiteQueenside
	case side == Black && castle == CastleKingside:
		return RightBlackKingside
	default:
		return RightBlackQueenside
	}
}

func (c CastlingRights) String() string {
	if c == NoRights {
		return "-"
	}
	s := ""
	if c.Has(RightWhiteKingside) {
		s += "K"
	}
	if c.Has(RightWhiteQueenside) {
		s += "Q"
	}
	if c.Has(RightBlackKingside) {
		s += "k"
	}
	if c.Has(RightBlackQueenside) {
		s += "q"
	}
	return s
}

// Bitboards holds per-piece-kind bitboards for a single side, plus the
// union of all of that side's pieces.
type Bitboards struct {
	Pawns   Bitboard
	Knights Bitboard
	Bishops Bitboard
	Rooks   Bitboard
	Queens  Bitboard
	Kings   Bitboard
	All     Bitboard
}

// kindBoard returns a pointer to the bitboard of the given kind.
func (bb *Bitboards) kindBoard(k PieceKind) *Bitboard {
	switch k {
	case Pawn:
		return &bb.Pawns
	case Knight:
		return &bb.Knights
	case Bishop:
		return &bb.Bishops
	case Rook:
		return &bb.Rooks
	case Queen:
		return &bb.Queens
	case King:
		return &bb.Kings
	default:
		return &bb.All
	}
}
