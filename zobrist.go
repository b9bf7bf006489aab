package zugzwang

import "math/rand/v2"

// zobrist holds the random keys used to incrementally hash a Position.
//
// Rather than the usual 768-entry [piece][square] table, each piece kind
// gets a single 64-bit seed; the key for a given square is derived by
// rotating that seed left by the square index. This trades a little key
// collision structure for a 64x smaller table, matching the scheme used by
// the engine this package's hashing is modeled on.
var zobrist struct {
	pieces        [12]uint64
	castling      [16]uint64
	epFile        [8]uint64
	sideToMove    uint64
	castleDelta   [2][2]uint64 // [side][Castle] incremental delta for king and rook relocation
}

func init() {
	rng := rand.New(rand.NewPCG(0x5EED, 0xC0FFEE))
	for i := range zobrist.pieces {
		zobrist.pieces[i] = rng.Uint64()
	}
	for i := range zobrist.castling {
		zobrist.castling[i] = rng.Uint64()
	}
	for i := range zobrist.epFile {
		zobrist.epFile[i] = rng.Uint64()
	}
	zobrist.sideToMove = rng.Uint64()
	initCastleDeltas()
}

// castleRookFrom / castleRookTo give the rook's home and post-castle squares for a given
// side and castling direction; the king's are in castleKingFrom/castleKingTo.
var castleRookFrom = [2][2]Square{
	White: {CastleKingside: 7, CastleQueenside: 0},
	Black: {CastleKingside: 63, CastleQueenside: 56},
}
var castleRookTo = [2][2]Square{
	White: {CastleKingside: 5, CastleQueenside: 3},
	Black: {CastleKingside: 61, CastleQueenside: 59},
}

// initCastleDeltas precomputes, for each side/castle, the XOR of all four
// piece-square keys touched by castling (king from/to, rook from/to) -- a
// single lookup standing in for four incremental piece_square updates.
func initCastleDeltas() {
	for _, side := range [2]Side{White, Black} {
		king := NewPiece(side, King)
		rook := NewPiece(side, Rook)
		for _, castle := range [2]Castle{CastleKingside, CastleQueenside} {
			zobrist.castleDelta[side][castle] =
				pieceSquareKey(king, castleKingFrom[side]) ^
					pieceSquareKey(king, castleKingTo[side][castle]) ^
					pieceSquareKey(rook, castleRookFrom[side][castle]) ^
					pieceSquareKey(rook, castleRookTo[side][castle])
		}
	}
}

// pieceSquareKey returns the hash key for a piece sitting on a square.
func pieceSquareKey(p Piece, s Square) uint64 {
	return rotl64(zobrist.pieces[p], int(s))
}

func rotl64(x uint64, n int) uint64 {
	n &= 63
	return x<<uint(n) | x>>uint(64-n)
}

// castlingKey returns the hash key for a full castling-rights nibble.
func castlingKey(r CastlingRights) uint64 {
	return zobrist.castling[r]
}

// epFileKey returns the hash key for an en-passant target file, or 0 if
// there is no en-passant target.
func epFileKey(target Square) uint64 {
	if target == NoSquare {
		return 0
	}
	return zobrist.epFile[target.File()]
}

// sideToMoveKey is XORed into the hash whenever the side to move changes.
func sideToMoveKey() uint64 { return zobrist.sideToMove }

// FullHash computes a Position's Zobrist hash from scratch, used to seed a
// freshly parsed position and to sanity-check incremental updates in tests.
func FullHash(pos *Position) uint64 {
	var h uint64
	for s := Square(0); s < 64; s++ {
		p := pos.pieces[s]
		if p != NullPiece {
			h ^= pieceSquareKey(p, s)
		}
	}
	h ^= castlingKey(pos.CastlingRights)
	h ^= epFileKey(pos.EPTarget)
	if pos.SideToMove == Black {
		h ^= sideToMoveKey()
	}
	return h
}
