// Package perft counts leaf positions reachable from a board at a
// fixed depth, enumerating the same pseudo-legal moves the engine
// itself searches over. It exists to pin down move-generator regressions:
// a perft count that doesn't match a known-good value at a given depth
// means the generator emits the wrong moves, not that the opponent
// played differently.
package perft

import "github.com/arlberg/gambit/engine"

// Perft returns the number of leaf positions reached by playing out
// every pseudo-legal move to depth plies. Perft(board, 0) is 1 (the
// position itself counts as one leaf); Perft(board, 1) is the number of
// pseudo-legal moves available to board.Move.
func Perft(board *engine.Board, depth int) int {
	if depth == 0 {
		return 1
	}

	count := 0
	engine.ValidMoves(board, func(b *engine.Board, from, to engine.Position) {
		child := *b
		engine.ApplyMove(&child, from, to)
		count += Perft(&child, depth-1)
	})
	return count
}

// Divide breaks down Perft(board, depth) by the first move played,
// useful for isolating which root move's subtree has a wrong count.
func Divide(board *engine.Board, depth int) map[string]int {
	results := make(map[string]int)
	if depth == 0 {
		return results
	}

	engine.ValidMoves(board, func(b *engine.Board, from, to engine.Position) {
		child := *b
		engine.ApplyMove(&child, from, to)
		key := engine.Move{From: from, To: to}.String()
		results[key] = Perft(&child, depth-1)
	})
	return results
}
