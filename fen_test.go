package zugzwang

import "testing"

func TestFENRoundTrip(t *testing.T) {
	cases := []string{
		StartingFEN,
		"7k/8/8/8/8/8/8/K7 w - - 0 1",
		"6k1/8/8/8/8/8/8/R3K2R w KQ - 0 1",
		"7k/8/8/K2Pp2q/8/8/8/8 w - e6 0 1",
		"k3q3/8/b7/8/8/7R/3PK3/5N2 w - - 0 1",
		"p1p5/1P6/8/8/8/8/8/k6K w - - 0 1",
	}
	for _, fen := range cases {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q) returned error: %v", fen, err)
		}
		if got := pos.FEN(); got != fen {
			t.Errorf("round trip of %q produced %q", fen, got)
		}
	}
}

func TestFENRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",   // missing field
		"rnbqkbnrX/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", // unknown piece
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",  // bad side token
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",  // bad castling token
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - a 1",  // non-integer clock
	}
	for _, fen := range cases {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) expected an error, got nil", fen)
		}
	}
}

func TestFENHashMatchesFullHash(t *testing.T) {
	pos, err := ParseFEN(StartingFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if pos.Hash != FullHash(pos) {
		t.Error("parsed position's hash does not match a from-scratch FullHash")
	}
}
