package zugzwang

// UndoRecord captures everything Unmake needs to restore a Position to
// exactly the state it had before the paired Make call. The hash is
// restored from the snapshot rather than recomputed, so make/unmake stay
// exact even if a future hashing tweak introduces rounding-free but
// non-invertible behavior.
type UndoRecord struct {
	Move           Move
	Moving         Piece
	Captured       Piece
	CapturedSq     Square
	PrevHash       uint64
	PrevCastling   CastlingRights
	PrevEP         Square
	PrevHalfmove   int
	PrevFullmove   int
}

// castlingTouchMask clears a castling right whenever the move touches the
// king's or rook's home square, in either direction (as mover or as the
// square a capture lands on).
func castlingTouchMask(s Square) CastlingRights {
	switch s {
	case 4: // e1
		return RightWhiteKingside | RightWhiteQueenside
	case 0: // a1
		return RightWhiteQueenside
	case 7: // h1
		return RightWhiteKingside
	case 60: // e8
		return RightBlackKingside | RightBlackQueenside
	case 56: // a8
		return RightBlackQueenside
	case 63: // h8
		return RightBlackKingside
	default:
		return NoRights
	}
}

// Make applies m to the position and returns the record needed to unmake it.
func (p *Position) Make(m Move) UndoRecord {
	us := p.SideToMove
	them := us.Other()
	from, to := m.From(), m.To()
	moving := p.pieces[from]

	undo := UndoRecord{
		Move:         m,
		Moving:       moving,
		Captured:     NullPiece,
		CapturedSq:   NoSquare,
		PrevHash:     p.Hash,
		PrevCastling: p.CastlingRights,
		PrevEP:       p.EPTarget,
		PrevHalfmove: p.Halfmove,
		PrevFullmove: p.Fullmove,
	}

	if p.history != nil {
		p.history = append(p.history, p.Hash)
	}

	if us == Black {
		p.Fullmove++
	}

	// Remove the contribution of the state about to change; the new
	// contribution is folded back in once the new state is known.
	p.Hash ^= castlingKey(p.CastlingRights)
	p.Hash ^= epFileKey(p.EPTarget)
	p.Hash ^= sideToMoveKey()

	p.EPTarget = NoSquare
	p.SideToMove = them

	if castle, ok := m.Castle(); ok {
		p.CastlingRights &^= castlingTouchMask(from)
		p.place(moving, to)
		p.remove(moving, from)
		rookFrom, rookTo := castleRookFrom[us][castle], castleRookTo[us][castle]
		rook := p.pieces[rookFrom]
		p.place(rook, rookTo)
		p.remove(rook, rookFrom)
		p.Hash ^= zobrist.castleDelta[us][castle]
		p.Halfmove++
	} else {
		if m.IsCapture() {
			capSq := to
			if m.IsEnPassant() {
				capSq = alongRowWithCol(from, to)
			}
			undo.Captured = p.pieces[capSq]
			undo.CapturedSq = capSq
			p.clearPiece(capSq)
			p.Halfmove = 0
		} else if moving.Kind() == Pawn {
			p.Halfmove = 0
		} else {
			p.Halfmove++
		}

		p.clearPiece(from)
		if m.IsPromotion() {
			p.setPiece(NewPiece(us, m.PromotionPiece()), to)
		} else {
			p.setPiece(moving, to)
		}

		if m.IsDoublePawnPush() {
			p.EPTarget = Square((int(from) + int(to)) / 2)
		}

		p.CastlingRights &^= castlingTouchMask(from) | castlingTouchMask(to)
	}

	p.Hash ^= castlingKey(p.CastlingRights)
	p.Hash ^= epFileKey(p.EPTarget)

	return undo
}

// Unmake reverses a Make call using the record it returned. The board edits
// are replayed in reverse; state and hash are restored verbatim.
func (p *Position) Unmake(undo UndoRecord) {
	m := undo.Move
	from, to := m.From(), m.To()
	side := p.SideToMove.Other() // the side that made the move we're undoing

	if castle, ok := m.Castle(); ok {
		rookFrom, rookTo := castleRookFrom[side][castle], castleRookTo[side][castle]
		rook := p.pieces[rookTo]
		p.place(rook, rookFrom)
		p.remove(rook, rookTo)
		p.place(undo.Moving, from)
		p.remove(undo.Moving, to)
	} else {
		p.remove(p.pieces[to], to)
		p.place(undo.Moving, from)
		if undo.Captured != NullPiece {
			p.place(undo.Captured, undo.CapturedSq)
		}
	}

	p.SideToMove = side
	p.CastlingRights = undo.PrevCastling
	p.EPTarget = undo.PrevEP
	p.Halfmove = undo.PrevHalfmove
	p.Fullmove = undo.PrevFullmove
	p.Hash = undo.PrevHash

	if len(p.history) > 0 {
		p.history = p.history[:len(p.history)-1]
	}
}
