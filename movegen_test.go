package zugzwang

import "testing"

func legalMoveCount(t *testing.T, fen string) int {
	t.Helper()
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	var sink CountingSink
	GenerateLegalMoves(pos, &sink)
	return int(sink.Nodes)
}

func TestKingMovesInCorner(t *testing.T) {
	if got, want := legalMoveCount(t, "7k/8/8/8/8/8/8/K7 w - - 0 1"), 3; got != want {
		t.Errorf("legal move count = %d, want %d", got, want)
	}
}

func TestCastlingBothSidesAvailable(t *testing.T) {
	if got, want := legalMoveCount(t, "6k1/8/8/8/8/8/8/R3K2R w KQ - 0 1"), 26; got != want {
		t.Errorf("legal move count = %d, want %d", got, want)
	}
}

func TestEnPassantDiscoveredCheckPrevention(t *testing.T) {
	if got, want := legalMoveCount(t, "7k/8/8/K2Pp2q/8/8/8/8 w - e6 0 1"), 6; got != want {
		t.Errorf("legal move count = %d, want %d", got, want)
	}
}

func TestDoubleCheckForcesKingMove(t *testing.T) {
	if got, want := legalMoveCount(t, "k3q3/8/b7/8/8/7R/3PK3/5N2 w - - 0 1"), 3; got != want {
		t.Errorf("legal move count = %d, want %d", got, want)
	}
}

func TestPromotionEnumerationWithCapture(t *testing.T) {
	if got, want := legalMoveCount(t, "p1p5/1P6/8/8/8/8/8/k6K w - - 0 1"), 15; got != want {
		t.Errorf("legal move count = %d, want %d", got, want)
	}
}

func TestInCheckFlag(t *testing.T) {
	pos, err := ParseFEN("k3q3/8/b7/8/8/7R/3PK3/5N2 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var sink CountingSink
	if inCheck := GenerateLegalMoves(pos, &sink); !inCheck {
		t.Error("expected in_check = true for the double-check position")
	}
}

func TestVectorSinkMatchesCountingSink(t *testing.T) {
	fens := []string{
		StartingFEN,
		"6k1/8/8/8/8/8/8/R3K2R w KQ - 0 1",
		"p1p5/1P6/8/8/8/8/8/k6K w - - 0 1",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		var counting CountingSink
		GenerateLegalMoves(pos, &counting)

		vector := NewVectorSink()
		GenerateLegalMoves(pos, vector)

		if int(counting.Nodes) != vector.List.Count {
			t.Errorf("%q: counting sink = %d, vector sink = %d", fen, counting.Nodes, vector.List.Count)
		}

		seen := make(map[Move]bool)
		for _, m := range vector.List.Slice() {
			if seen[m] {
				t.Errorf("%q: move %v emitted more than once", fen, m)
			}
			seen[m] = true
		}
	}
}
