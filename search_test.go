package zugzwang

import "testing"

// TestAlphaBetaFindsMateInOneWhite checks that the searcher finds a forced
// mate for White (a two-rook "ladder mate": Ra7 cuts off the seventh rank,
// Rb1-b8 delivers mate along the back rank) and scores it with the signed
// MateScore.
func TestAlphaBetaFindsMateInOneWhite(t *testing.T) {
	pos, err := ParseFEN("7k/R7/8/8/8/8/8/1R2K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	result := AlphaBeta(pos, 2, -MateScore, MateScore)
	if result.Score != MateScore {
		t.Errorf("Score = %d, want %d (White mates)", result.Score, MateScore)
	}
	if len(result.PV) == 0 {
		t.Fatal("expected a non-empty principal variation")
	}
	if got, want := result.PV[0].UCI(), "b1b8"; got != want {
		t.Errorf("PV[0] = %q, want %q", got, want)
	}
}

// TestAlphaBetaFindsMateInOneBlack mirrors the White case with Black to
// move and minimizing, exercising the branch the packed-constant overflow
// bug used to break (black's search never updated its running best because
// its "no move seen yet" sentinel was wrapped to the smallest int32).
func TestAlphaBetaFindsMateInOneBlack(t *testing.T) {
	pos, err := ParseFEN("1r6/8/8/4k3/8/8/r7/7K b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	result := AlphaBeta(pos, 2, -MateScore, MateScore)
	if result.Score != -MateScore {
		t.Errorf("Score = %d, want %d (Black mates)", result.Score, -MateScore)
	}
	if len(result.PV) == 0 {
		t.Fatal("expected a non-empty principal variation")
	}
	if got, want := result.PV[0].UCI(), "b8b1"; got != want {
		t.Errorf("PV[0] = %q, want %q", got, want)
	}
}

// TestAlphaBetaStalemateScoresZero checks that a depth-1 call on a
// stalemated position returns a draw score rather than treating "no moves"
// as a loss.
func TestAlphaBetaStalemateScoresZero(t *testing.T) {
	pos, err := ParseFEN("7k/8/6Q1/8/8/8/8/6K1 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	result := AlphaBeta(pos, 1, -MateScore, MateScore)
	if result.Score != 0 {
		t.Errorf("Score = %d, want 0 (stalemate)", result.Score)
	}
}

// TestAlphaBetaPrefersCapture sanity-checks that a depth-1 search at least
// picks a capture that wins material over doing nothing, using the material
// evaluator directly at the leaves.
func TestAlphaBetaPrefersCapture(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	result := AlphaBeta(pos, 1, -MateScore, MateScore)
	if len(result.PV) == 0 {
		t.Fatal("expected a non-empty principal variation")
	}
	if got, want := result.PV[0].UCI(), "e4d5"; got != want {
		t.Errorf("PV[0] = %q, want %q (the pawn capture)", got, want)
	}
}
