package zugzwang

import "testing"

func TestParseSquareRoundTrip(t *testing.T) {
	for _, name := range []string{"a1", "h8", "e4", "d5"} {
		sq, err := ParseSquare(name)
		if err != nil {
			t.Fatalf("ParseSquare(%q) returned error: %v", name, err)
		}
		if got := sq.String(); got != name {
			t.Errorf("ParseSquare(%q).String() = %q, want %q", name, got, name)
		}
	}
}

func TestParseSquareInvalid(t *testing.T) {
	for _, bad := range []string{"", "a", "i1", "a9", "abc"} {
		if _, err := ParseSquare(bad); err == nil {
			t.Errorf("ParseSquare(%q) expected an error, got nil", bad)
		}
	}
}

func TestBetweenColinear(t *testing.T) {
	a1, _ := ParseSquare("a1")
	a4, _ := ParseSquare("a4")
	between := Between(a1, a4)
	a2, _ := ParseSquare("a2")
	a3, _ := ParseSquare("a3")
	if between&SquareBB(a2) == 0 || between&SquareBB(a3) == 0 {
		t.Error("Between(a1,a4) should include a2 and a3")
	}
	if between.Popcount() != 2 {
		t.Errorf("Between(a1,a4) popcount = %d, want 2", between.Popcount())
	}
}

func TestBetweenNotColinear(t *testing.T) {
	a1, _ := ParseSquare("a1")
	b3, _ := ParseSquare("b3")
	if Between(a1, b3) != 0 {
		t.Error("Between of non-colinear squares should be empty")
	}
}

func TestAlongRowWithCol(t *testing.T) {
	e5, _ := ParseSquare("e5")
	d6, _ := ParseSquare("d6")
	got := alongRowWithCol(e5, d6)
	want, _ := ParseSquare("d5")
	if got != want {
		t.Errorf("alongRowWithCol(e5,d6) = %v, want %v", got, want)
	}
}
