package zugzwang

import "math/bits"

// Each bitboard uses little-endian rank-file mapping:
// 56  57  58  59  60  61  62  63
// 48  49  50  51  52  53  54  55
// 40  41  42  43  44  45  46  47
// 32  33  34  35  36  37  38  39
// 24  25  26  27  28  29  30  31
// 16  17  18  19  20  21  22  23
// 8   9   10  11  12  13  14  15
// 0   1   2   3   4   5   6   7
// so square index i = rank*8 + file, rank 0 is white's first rank, file 0
// is the a-file.

// Bitboard is a 64-bit set of squares.
type Bitboard uint64

// fileMask[f] is every square on file f.
var fileMask [8]Bitboard

// rankMask[r] is every square on rank r.
var rankMask [8]Bitboard

const (
	notAFile Bitboard = 0xFEFEFEFEFEFEFEFE
	notHFile Bitboard = 0x7F7F7F7F7F7F7F7F
	allSquares Bitboard = 0xFFFFFFFFFFFFFFFF
	lightSquares Bitboard = 0xAA55AA55AA55AA55
)

func init() {
	for f := 0; f < 8; f++ {
		var m Bitboard
		for r := 0; r < 8; r++ {
			m |= Bitboard(1) << uint(r*8+f)
		}
		fileMask[f] = m
	}
	for r := 0; r < 8; r++ {
		rankMask[r] = Bitboard(0xFF) << uint(r*8)
	}
}

// SquareBB returns the singleton bitboard for a square.
func SquareBB(s Square) Bitboard {
	return Bitboard(1) << uint(s)
}

// Popcount returns the number of set bits.
func (b Bitboard) Popcount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the lowest-indexed set square. Undefined if b is empty.
func (b Bitboard) LSB() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB clears and returns the lowest-indexed set square.
func (b *Bitboard) PopLSB() Square {
	s := b.LSB()
	*b &= *b - 1
	return s
}

// Empty reports whether the bitboard has no set bits.
func (b Bitboard) Empty() bool {
	return b == 0
}

// RotateLeft rotates the 64-bit word left by n bits (n may be negative).
func (b Bitboard) RotateLeft(n int) Bitboard {
	return Bitboard(bits.RotateLeft64(uint64(b), n))
}

// ShiftNorth/ShiftSouth shift an entire set of squares by one rank,
// dropping bits that would wrap off the board.
func (b Bitboard) ShiftNorth() Bitboard { return b << 8 }
func (b Bitboard) ShiftSouth() Bitboard { return b >> 8 }

// ShiftNorthEast/ShiftNorthWest/ShiftSouthEast/ShiftSouthWest shift
// diagonally, masking off squares that would wrap across the board edge.
func (b Bitboard) ShiftNorthEast() Bitboard { return (b & notHFile) << 9 }
func (b Bitboard) ShiftNorthWest() Bitboard { return (b & notAFile) << 7 }
func (b Bitboard) ShiftSouthEast() Bitboard { return (b & notHFile) >> 7 }
func (b Bitboard) ShiftSouthWest() Bitboard { return (b & notAFile) >> 9 }
