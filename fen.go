package zugzwang

import (
	"fmt"
	"strconv"
	"strings"
)

// StartingFEN is the standard chess starting position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var pieceLetters = map[byte]Piece{
	'P': NewPiece(White, Pawn), 'N': NewPiece(White, Knight), 'B': NewPiece(White, Bishop),
	'R': NewPiece(White, Rook), 'Q': NewPiece(White, Queen), 'K': NewPiece(White, King),
	'p': NewPiece(Black, Pawn), 'n': NewPiece(Black, Knight), 'b': NewPiece(Black, Bishop),
	'r': NewPiece(Black, Rook), 'q': NewPiece(Black, Queen), 'k': NewPiece(Black, King),
}

var pieceToLetter [12]byte

func init() {
	for letter, p := range pieceLetters {
		pieceToLetter[p] = letter
	}
}

// ParseFEN builds a Position from Forsyth-Edwards notation: piece
// placement, side to move, castling rights, en-passant target, halfmove
// clock, fullmove number.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("%w: expected 6 space-separated fields, got %d", ErrMalformedFEN, len(fields))
	}

	pos := NewEmptyPosition()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidPieceRow, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i // FEN lists rank 8 first
		file := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := pieceLetters[c]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownPiece, string(c))
			}
			if file >= 8 {
				return nil, fmt.Errorf("%w: rank %q overflows 8 files", ErrInvalidPieceRow, rankStr)
			}
			pos.place(piece, Square(rank*8+file))
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("%w: rank %q does not cover 8 files", ErrInvalidPieceRow, rankStr)
		}
	}

	switch fields[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSideToMove, fields[1])
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				pos.CastlingRights |= RightWhiteKingside
			case 'Q':
				pos.CastlingRights |= RightWhiteQueenside
			case 'k':
				pos.CastlingRights |= RightBlackKingside
			case 'q':
				pos.CastlingRights |= RightBlackQueenside
			default:
				return nil, fmt.Errorf("%w: %q", ErrInvalidCastling, fields[2])
			}
		}
	}

	if fields[3] == "-" {
		pos.EPTarget = NoSquare
	} else {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, err
		}
		pos.EPTarget = sq
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidClock, fields[4])
	}
	pos.Halfmove = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidClock, fields[5])
	}
	pos.Fullmove = fullmove

	pos.Hash = FullHash(pos)
	return pos, nil
}

// FEN renders the position back to Forsyth-Edwards notation.
func (p *Position) FEN() string {
	var sb strings.Builder
	for i := 7; i >= 0; i-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(i*8 + file)
			piece := p.pieces[sq]
			if piece == NullPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(pieceToLetter[piece])
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if i > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())

	sb.WriteByte(' ')
	if p.EPTarget == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.EPTarget.String())
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.Halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.Fullmove))

	return sb.String()
}
