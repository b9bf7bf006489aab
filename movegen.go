package zugzwang

// Castling path masks: kingPath is the three (or, for queenside, three)
// squares the king must not be attacked on (including its start and end
// square); blockers is the squares between king and rook that must be
// empty. Indexed [side][castle].
var castleKingPath = [2][2]Bitboard{
	White: {
		CastleKingside:  SquareBB(4) | SquareBB(5) | SquareBB(6),   // e1,f1,g1
		CastleQueenside: SquareBB(2) | SquareBB(3) | SquareBB(4),   // c1,d1,e1
	},
	Black: {
		CastleKingside:  SquareBB(60) | SquareBB(61) | SquareBB(62), // e8,f8,g8
		CastleQueenside: SquareBB(58) | SquareBB(59) | SquareBB(60), // c8,d8,e8
	},
}

var castleBlockers = [2][2]Bitboard{
	White: {
		CastleKingside:  SquareBB(5) | SquareBB(6), // f1,g1
		CastleQueenside: SquareBB(1) | SquareBB(2) | SquareBB(3), // b1,c1,d1
	},
	Black: {
		CastleKingside:  SquareBB(61) | SquareBB(62), // f8,g8
		CastleQueenside: SquareBB(57) | SquareBB(58) | SquareBB(59), // b8,c8,d8
	},
}

var castleKingFrom = [2]Square{White: 4, Black: 60}
var castleKingTo = [2][2]Square{
	White: {CastleKingside: 6, CastleQueenside: 2},
	Black: {CastleKingside: 62, CastleQueenside: 58},
}

// GenerateLegalMoves enumerates every legal move of the side to move into
// sink, returning whether that side is currently in check.
func GenerateLegalMoves(pos *Position, sink MoveSink) bool {
	us := pos.SideToMove
	them := us.Other()
	ours := pos.boardsFor(us)
	theirs := pos.boardsFor(them)
	kingSq := ours.Kings.LSB()
	occupied := pos.Occupied()

	// Own king excluded from occupancy: a slider attack through the king's
	// square must still "see" the square behind it, or the king could
	// wrongly believe stepping back is safe.
	attacked := attackedSquares(pos, them, occupied&^SquareBB(kingSq))

	checkers, pinned := checkersAndPins(pos, us, kingSq, occupied)
	numCheckers := checkers.Popcount()

	emitKingMoves(sink, ours, theirs, kingSq, attacked)

	if numCheckers >= 2 {
		return true
	}

	var captureMask, pushMask Bitboard
	if numCheckers == 0 {
		captureMask = theirs.All
		pushMask = ^occupied
	} else {
		checkerSq := checkers.LSB()
		captureMask = checkers
		if isSliderKind(pos.PieceAt(checkerSq).Kind()) {
			pushMask = Between(kingSq, checkerSq)
		} else {
			pushMask = 0
		}
	}

	emitSliderMoves(pos, sink, us, theirs, occupied, pinned, kingSq, captureMask, pushMask)
	emitKnightMoves(sink, ours, theirs, pinned, captureMask, pushMask)
	emitPawnMoves(pos, sink, us, ours, theirs, occupied, pinned, kingSq, captureMask, pushMask)

	if numCheckers == 0 {
		emitCastles(pos, sink, us, occupied, attacked)
	}

	return numCheckers > 0
}

func isSliderKind(k PieceKind) bool {
	return k == Bishop || k == Rook || k == Queen
}

// attackedSquares returns every square the given side attacks, given an
// occupancy bitboard (which the caller may have stripped the defender's
// king from, to get x-ray-correct slider attacks).
func attackedSquares(pos *Position, by Side, occupied Bitboard) Bitboard {
	boards := pos.boardsFor(by)
	var attacked Bitboard
	if by == White {
		attacked |= boards.Pawns.ShiftNorthWest() | boards.Pawns.ShiftNorthEast()
	} else {
		attacked |= boards.Pawns.ShiftSouthWest() | boards.Pawns.ShiftSouthEast()
	}
	knights := boards.Knights
	for knights != 0 {
		attacked |= KnightAttacks(knights.PopLSB())
	}
	if boards.Kings != 0 {
		attacked |= KingAttacks(boards.Kings.LSB())
	}
	bishops := boards.Bishops | boards.Queens
	for bishops != 0 {
		attacked |= BishopAttacks(bishops.PopLSB(), occupied)
	}
	rooks := boards.Rooks | boards.Queens
	for rooks != 0 {
		attacked |= RookAttacks(rooks.PopLSB(), occupied)
	}
	return attacked
}

// checkersAndPins finds every enemy piece giving check to us's king, and
// every own piece pinned against that king by an enemy slider, by scanning
// rays out from the king rather than making/testing each move.
func checkersAndPins(pos *Position, us Side, kingSq Square, occupied Bitboard) (checkers, pinned Bitboard) {
	them := us.Other()
	theirs := pos.boardsFor(them)
	ours := pos.boardsFor(us)

	checkers |= PawnAttacks(us, kingSq) & theirs.Pawns
	checkers |= KnightAttacks(kingSq) & theirs.Knights

	straightSliders := theirs.Rooks | theirs.Queens
	diagSliders := theirs.Bishops | theirs.Queens

	scan := func(sliders, rays Bitboard) {
		for sliders != 0 {
			sq := sliders.PopLSB()
			if rays&SquareBB(sq) == 0 {
				continue
			}
			between := Between(kingSq, sq)
			blockers := between & occupied
			switch {
			case blockers == 0:
				checkers |= SquareBB(sq)
			case blockers.Popcount() == 1 && blockers&ours.All != 0:
				pinned |= blockers
			}
		}
	}
	scan(straightSliders, StraightRays(kingSq))
	scan(diagSliders, DiagonalRays(kingSq))
	return checkers, pinned
}

func emitKingMoves(sink MoveSink, ours, theirs *Bitboards, kingSq Square, attacked Bitboard) {
	targets := KingAttacks(kingSq) &^ ours.All &^ attacked
	sink.AddCaptures(kingSq, targets&theirs.All)
	sink.AddPushes(kingSq, targets&^theirs.All)
}

func emitSliderMoves(pos *Position, sink MoveSink, us Side, theirs *Bitboards, occupied, pinned Bitboard, kingSq Square, captureMask, pushMask Bitboard) {
	ours := pos.boardsFor(us)
	resolve := captureMask | pushMask
	each := func(bb Bitboard, attacksOf func(Square) Bitboard) {
		for bb != 0 {
			sq := bb.PopLSB()
			targets := attacksOf(sq) & resolve
			if pinned&SquareBB(sq) != 0 {
				targets &= LinesAlong(sq, kingSq)
			}
			sink.AddCaptures(sq, targets&theirs.All)
			sink.AddPushes(sq, targets&^theirs.All)
		}
	}
	each(ours.Bishops, func(sq Square) Bitboard { return BishopAttacks(sq, occupied) })
	each(ours.Rooks, func(sq Square) Bitboard { return RookAttacks(sq, occupied) })
	each(ours.Queens, func(sq Square) Bitboard { return QueenAttacks(sq, occupied) })
}

func emitKnightMoves(sink MoveSink, ours, theirs *Bitboards, pinned, captureMask, pushMask Bitboard) {
	resolve := captureMask | pushMask
	knights := ours.Knights &^ pinned
	for knights != 0 {
		sq := knights.PopLSB()
		targets := KnightAttacks(sq) & resolve
		sink.AddCaptures(sq, targets&theirs.All)
		sink.AddPushes(sq, targets&^theirs.All)
	}
}

func emitPawnMoves(pos *Position, sink MoveSink, us Side, ours, theirs *Bitboards, occupied, pinned Bitboard, kingSq Square, captureMask, pushMask Bitboard) {
	pawns := ours.Pawns &^ pinned
	empty := ^occupied

	var pushShift, doubleShift, neShift, nwShift int
	var homeRank Bitboard
	if us == White {
		pushShift, doubleShift, neShift, nwShift = 8, 16, 9, 7
		homeRank = rankMask[2]
	} else {
		pushShift, doubleShift, neShift, nwShift = -8, -16, -7, -9
		homeRank = rankMask[5]
	}

	var singleAll Bitboard
	if us == White {
		singleAll = pawns.ShiftNorth() & empty
	} else {
		singleAll = pawns.ShiftSouth() & empty
	}
	sink.AddPawnPushes(singleAll&pushMask, pushShift)

	var doubleAll Bitboard
	if us == White {
		doubleAll = (singleAll & homeRank).ShiftNorth() & empty
	} else {
		doubleAll = (singleAll & homeRank).ShiftSouth() & empty
	}
	sink.AddDoublePawnPushes(doubleAll&pushMask, doubleShift)

	var capNE, capNW Bitboard
	if us == White {
		capNE = pawns.ShiftNorthEast() & theirs.All & captureMask
		capNW = pawns.ShiftNorthWest() & theirs.All & captureMask
	} else {
		capNE = pawns.ShiftSouthEast() & theirs.All & captureMask
		capNW = pawns.ShiftSouthWest() & theirs.All & captureMask
	}
	sink.AddPawnCaptures(capNE, neShift)
	sink.AddPawnCaptures(capNW, nwShift)

	emitEnPassant(pos, sink, us, ours.Pawns, occupied, pinned, kingSq, captureMask, pushMask)
	emitPinnedPawnMoves(pos, sink, us, ours, theirs, occupied, pinned, kingSq, captureMask, pushMask)
}

// emitEnPassant handles only non-pinned ep captures; pinned pawns are
// handled in emitPinnedPawnMoves since their legality additionally depends
// on the pin ray.
func emitEnPassant(pos *Position, sink MoveSink, us Side, ourPawns, occupied, pinned Bitboard, kingSq Square, captureMask, pushMask Bitboard) {
	if pos.EPTarget == NoSquare {
		return
	}
	epSq := pos.EPTarget
	sources := PawnAttacks(us.Other(), epSq) & ourPawns &^ pinned
	for sources != 0 {
		from := sources.PopLSB()
		capturedSq := alongRowWithCol(from, epSq)
		if SquareBB(epSq)&pushMask == 0 && SquareBB(capturedSq)&captureMask == 0 {
			continue
		}
		if epExposesKing(pos, us, from, capturedSq, epSq, kingSq, occupied) {
			continue
		}
		sink.AddPawnEPCapture(from, epSq)
	}
}

// epExposesKing checks the rare case where capturing en passant removes
// both pawns from the same rank as the king, uncovering a straight attack.
func epExposesKing(pos *Position, us Side, from, capturedSq, epSq, kingSq Square, occupied Bitboard) bool {
	after := occupied&^SquareBB(from)&^SquareBB(capturedSq) | SquareBB(epSq)
	them := us.Other()
	theirs := pos.boardsFor(them)
	return RookAttacks(kingSq, after)&(theirs.Rooks|theirs.Queens) != 0
}

// emitPinnedPawnMoves handles pawns pinned against the king: they may only
// move along the pin line, so pushes survive only under a file (vertical)
// pin and captures only under a diagonal pin matching the capture's target.
func emitPinnedPawnMoves(pos *Position, sink MoveSink, us Side, ours, theirs *Bitboards, occupied, pinned Bitboard, kingSq Square, captureMask, pushMask Bitboard) {
	pawns := ours.Pawns & pinned
	for pawns != 0 {
		sq := pawns.PopLSB()
		line := LinesAlong(sq, kingSq)
		if line == 0 {
			continue
		}

		var pushDir, doubleDir int
		var homeRank Bitboard
		if us == White {
			pushDir, doubleDir, homeRank = 8, 16, rankMask[1]
		} else {
			pushDir, doubleDir, homeRank = -8, -16, rankMask[6]
		}

		if sq.File() == kingSq.File() {
			to := Square(int(sq) + pushDir)
			if int(to) >= 0 && int(to) < 64 && SquareBB(to)&occupied == 0 && SquareBB(to)&pushMask != 0 {
				sink.AddPawnPushes(SquareBB(to), pushDir)
			}
			if SquareBB(sq)&homeRank != 0 {
				mid := Square(int(sq) + pushDir)
				to2 := Square(int(sq) + doubleDir)
				if SquareBB(mid)&occupied == 0 && SquareBB(to2)&occupied == 0 && SquareBB(to2)&pushMask != 0 {
					sink.AddDoublePawnPushes(SquareBB(to2), doubleDir)
				}
			}
		}

		var ne, nw int
		if us == White {
			ne, nw = 9, 7
		} else {
			ne, nw = -7, -9
		}
		tryCapture := func(shift int) {
			to := pawnCaptureTarget(sq, shift)
			if to == NoSquare {
				return
			}
			if SquareBB(to)&line == 0 {
				return
			}
			if SquareBB(to)&theirs.All != 0 && SquareBB(to)&captureMask != 0 {
				sink.AddPawnCaptures(SquareBB(to), shift)
			}
		}
		tryCapture(ne)
		tryCapture(nw)

		if pos.EPTarget != NoSquare {
			epSq := pos.EPTarget
			if SquareBB(epSq)&PawnAttacks(us, sq) != 0 && SquareBB(epSq)&line != 0 {
				capturedSq := alongRowWithCol(sq, epSq)
				ok := SquareBB(epSq)&pushMask != 0 || SquareBB(capturedSq)&captureMask != 0
				if ok && !epExposesKing(pos, us, sq, capturedSq, epSq, kingSq, occupied) {
					sink.AddPawnEPCapture(sq, epSq)
				}
			}
		}
	}
}

// pawnCaptureTarget returns the destination square of a diagonal pawn
// capture, honoring file-wrap, or NoSquare if the shift would wrap.
func pawnCaptureTarget(from Square, shift int) Square {
	toward := int(from) + shift
	if toward < 0 || toward >= 64 {
		return NoSquare
	}
	to := Square(toward)
	if abs(int(to.File())-int(from.File())) != 1 {
		return NoSquare
	}
	return to
}

func emitCastles(pos *Position, sink MoveSink, us Side, occupied, attacked Bitboard) {
	for _, castle := range [2]Castle{CastleKingside, CastleQueenside} {
		if !pos.CanCastle(us, castle) {
			continue
		}
		if occupied&castleBlockers[us][castle] != 0 {
			continue
		}
		if attacked&castleKingPath[us][castle] != 0 {
			continue
		}
		from := castleKingFrom[us]
		to := castleKingTo[us][castle]
		sink.AddCastle(from, to, castle)
	}
}
