package zugzwang

import "testing"

func TestParseUCIMoveRoundTrip(t *testing.T) {
	pos, err := ParseFEN(StartingFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, err := ParseUCIMove(pos, "e2e4")
	if err != nil {
		t.Fatalf("ParseUCIMove(e2e4): %v", err)
	}
	if got, want := m.UCI(), "e2e4"; got != want {
		t.Errorf("UCI() = %q, want %q", got, want)
	}
	if !m.IsDoublePawnPush() {
		t.Error("e2e4 should be a double pawn push")
	}
}

func TestParseUCIMoveCastle(t *testing.T) {
	pos, err := ParseFEN("6k1/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, err := ParseUCIMove(pos, "e1g1")
	if err != nil {
		t.Fatalf("ParseUCIMove(e1g1): %v", err)
	}
	if _, ok := m.Castle(); !ok {
		t.Error("e1g1 in this position should parse as a castling move")
	}
}

func TestParseUCIMoveIllegal(t *testing.T) {
	pos, err := ParseFEN(StartingFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if _, err := ParseUCIMove(pos, "e2e5"); err == nil {
		t.Error("e2e5 is not a legal opening move, expected an error")
	}
}

func TestParseUCIMovePromotion(t *testing.T) {
	pos, err := ParseFEN("p1p5/1P6/8/8/8/8/8/k6K w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, err := ParseUCIMove(pos, "b7a8q")
	if err != nil {
		t.Fatalf("ParseUCIMove(b7a8q): %v", err)
	}
	if !m.IsPromotion() || !m.IsCapture() || m.PromotionPiece() != Queen {
		t.Errorf("b7a8q parsed incorrectly: %+v", m)
	}
}
