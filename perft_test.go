package zugzwang

import "testing"

func TestPerftStartingPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	pos, err := ParseFEN(StartingFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	want := []uint64{20, 400, 8902, 197281, 4865609}
	for depth, w := range want {
		if testing.Short() && depth >= 3 {
			break
		}
		got := Perft(pos, depth+1)
		if got != w {
			t.Errorf("Perft(%d) = %d, want %d", depth+1, got, w)
		}
	}
}

func TestPerftDivideSumsToTotal(t *testing.T) {
	pos, err := ParseFEN(StartingFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	divided := PerftDivide(pos, 2)
	var total uint64
	for _, n := range divided {
		total += n
	}
	if want := Perft(pos, 2); total != want {
		t.Errorf("sum of PerftDivide(2) = %d, want %d", total, want)
	}
}
