package main

import (
	"strings"

	"github.com/corvid-labs/zugzwang"
)

// formatPosition renders a position as an 8x8 ASCII board plus its FEN, for
// the UCI loop's non-standard `d` debug command.
func formatPosition(pos *zugzwang.Position) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteString("  ")
		for file := 0; file < 8; file++ {
			sq := zugzwang.Square(rank*8 + file)
			sb.WriteString(pos.PieceAt(sq).String())
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\n\n")
	sb.WriteString("Fen: ")
	sb.WriteString(pos.FEN())
	return sb.String()
}
