package zugzwang

import "testing"

func TestMovePacking(t *testing.T) {
	from, _ := ParseSquare("e2")
	to, _ := ParseSquare("e4")

	m := NewDoublePawnPush(from, to)
	if m.From() != from || m.To() != to {
		t.Fatalf("From/To = %v/%v, want %v/%v", m.From(), m.To(), from, to)
	}
	if !m.IsDoublePawnPush() {
		t.Error("expected IsDoublePawnPush")
	}
	if m.IsCapture() || m.IsPromotion() || m.IsEnPassant() {
		t.Error("double push should not be a capture, promotion, or ep")
	}
}

func TestMoveCastle(t *testing.T) {
	e1, _ := ParseSquare("e1")
	g1, _ := ParseSquare("g1")
	m := NewCastleMove(e1, g1, CastleKingside)
	castle, ok := m.Castle()
	if !ok || castle != CastleKingside {
		t.Fatalf("Castle() = (%v, %v), want (Kingside, true)", castle, ok)
	}
}

func TestMovePromotion(t *testing.T) {
	from, _ := ParseSquare("a7")
	to, _ := ParseSquare("a8")
	for _, k := range []PieceKind{Knight, Bishop, Rook, Queen} {
		m := NewPromotionMove(from, to, k)
		if !m.IsPromotion() {
			t.Fatalf("promotion move to %v should report IsPromotion", k)
		}
		if m.IsCapture() {
			t.Fatalf("plain promotion should not be a capture")
		}
		if got := m.PromotionPiece(); got != k {
			t.Errorf("PromotionPiece() = %v, want %v", got, k)
		}
	}
}

func TestMovePromotionCapture(t *testing.T) {
	from, _ := ParseSquare("b7")
	to, _ := ParseSquare("a8")
	m := NewPromotionCaptureMove(from, to, Queen)
	if !m.IsPromotion() || !m.IsCapture() {
		t.Fatal("promotion-capture should report both flags")
	}
	if m.PromotionPiece() != Queen {
		t.Errorf("PromotionPiece() = %v, want Queen", m.PromotionPiece())
	}
}

func TestMoveEnPassant(t *testing.T) {
	from, _ := ParseSquare("e5")
	to, _ := ParseSquare("d6")
	m := NewEnPassantMove(from, to)
	if !m.IsEnPassant() || !m.IsCapture() {
		t.Fatal("ep capture should report both IsEnPassant and IsCapture")
	}
	if m.IsDoublePawnPush() {
		t.Fatal("ep capture misidentified as double pawn push")
	}
}

func TestMoveUCIString(t *testing.T) {
	from, _ := ParseSquare("e7")
	to, _ := ParseSquare("e8")
	m := NewPromotionMove(from, to, Queen)
	if got, want := m.UCI(), "e7e8q"; got != want {
		t.Errorf("UCI() = %q, want %q", got, want)
	}
}
