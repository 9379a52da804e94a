package perft

import (
	"testing"

	"github.com/arlberg/gambit/engine"
)

func TestPerftDepthZeroIsOne(t *testing.T) {
	var b engine.Board
	b.Reset()

	if got := Perft(&b, 0); got != 1 {
		t.Errorf("Perft(board, 0) = %d, want 1", got)
	}
}

func TestPerftDepthOneMatchesOpeningMoveCount(t *testing.T) {
	var b engine.Board
	b.Reset()

	if got := Perft(&b, 1); got != 20 {
		t.Errorf("Perft(board, 1) = %d, want 20", got)
	}
}

func TestPerftDepthTwoMatchesKnownCount(t *testing.T) {
	var b engine.Board
	b.Reset()

	// 20 opening replies for White, each answered by 20 pseudo-legal
	// replies for Black (pseudo-legal generation doesn't drop any
	// opening reply to self-check), so depth two should be exactly 400.
	if got := Perft(&b, 2); got != 400 {
		t.Errorf("Perft(board, 2) = %d, want 400", got)
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	var b engine.Board
	b.Reset()

	total := 0
	for _, n := range Divide(&b, 2) {
		total += n
	}
	if want := Perft(&b, 2); total != want {
		t.Errorf("sum of Divide(board, 2) = %d, want %d", total, want)
	}
}
