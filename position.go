package zugzwang

// Position is the full mutable board state: a mailbox for piece lookup by
// square, per-piece and per-side bitboards for fast set operations, and the
// incidental state (side to move, castling rights, en-passant target, move
// clocks) needed to make/unmake moves and detect draws.
//
// Invariants, maintained by ParseFEN and every Make/Unmake pair:
//  1. pieces[s] != NullPiece iff exactly one piece bitboard has bit s set.
//  2. White/Black.All is the union of that side's per-kind boards; the two
//     sides never overlap.
//  3. Exactly one king per side.
//  4. Hash == FullHash(position).
//  5. EPTarget, when not NoSquare, sits on rank 3 or rank 6 (0-indexed 2/5).
//  6. A castling right implies the relevant king and rook are still on
//     their home squares.
//  7. Halfmove <= 100.
type Position struct {
	pieces [64]Piece

	White Bitboards
	Black Bitboards

	SideToMove     Side
	CastlingRights CastlingRights
	EPTarget       Square
	Halfmove       int
	Fullmove       int

	Hash uint64

	// history, when non-nil, records the pre-move hash at every ply played
	// so far, enabling threefold-repetition detection. Left nil by callers
	// (e.g. perft) that don't need it, to avoid the allocation and scan.
	history []uint64
}

// NewEmptyPosition returns a Position with no pieces, white to move, no
// castling rights, and no en-passant target. Used by the FEN loader.
func NewEmptyPosition() *Position {
	pos := &Position{EPTarget: NoSquare}
	for s := range pos.pieces {
		pos.pieces[s] = NullPiece
	}
	return pos
}

// EnableRepetitionTracking turns on the optional history vector used for
// threefold-repetition detection. Safe to call at any time; it only affects
// future Make calls.
func (p *Position) EnableRepetitionTracking() {
	if p.history == nil {
		p.history = make([]uint64, 0, 64)
	}
}

// PieceAt returns the piece occupying s, or NullPiece.
func (p *Position) PieceAt(s Square) Piece { return p.pieces[s] }

// boardsFor returns the side's Bitboards struct by pointer.
func (p *Position) boardsFor(side Side) *Bitboards {
	if side == White {
		return &p.White
	}
	return &p.Black
}

// Occupied returns the union of all pieces on the board.
func (p *Position) Occupied() Bitboard { return p.White.All | p.Black.All }

// place puts piece on square s, updating mailbox and bitboards but not the
// hash (callers that need a hashed placement use setPiece).
func (p *Position) place(piece Piece, s Square) {
	p.pieces[s] = piece
	boards := p.boardsFor(piece.Side())
	*boards.kindBoard(piece.Kind()) |= SquareBB(s)
	boards.All |= SquareBB(s)
}

// remove clears square s, which must hold piece.
func (p *Position) remove(piece Piece, s Square) {
	p.pieces[s] = NullPiece
	boards := p.boardsFor(piece.Side())
	*boards.kindBoard(piece.Kind()) &^= SquareBB(s)
	boards.All &^= SquareBB(s)
}

// setPiece places piece on s and folds the change into the hash.
func (p *Position) setPiece(piece Piece, s Square) {
	p.place(piece, s)
	p.Hash ^= pieceSquareKey(piece, s)
}

// clearPiece removes whatever piece sits on s (which must not be empty) and
// folds the change into the hash.
func (p *Position) clearPiece(s Square) {
	piece := p.pieces[s]
	p.remove(piece, s)
	p.Hash ^= pieceSquareKey(piece, s)
}

// KingSquare returns the square of side's king.
func (p *Position) KingSquare(side Side) Square {
	return p.boardsFor(side).Kings.LSB()
}

// CanCastle reports whether side still holds the named castling right.
func (p *Position) CanCastle(side Side, castle Castle) bool {
	return p.CastlingRights.Has(right(side, castle))
}

// Clone returns an independent copy of the position. The repetition history,
// if enabled, is copied too.
func (p *Position) Clone() *Position {
	clone := *p
	if p.history != nil {
		clone.history = append(make([]uint64, 0, cap(p.history)), p.history...)
	}
	return &clone
}
