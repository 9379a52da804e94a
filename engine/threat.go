package engine

// ThreatBoard counts, per square, how many pseudo-legal moves of one
// color land on that square. It is recomputed fresh whenever the
// evaluator or the castling-through-check test needs it; it is never
// incrementally maintained.
type ThreatBoard [64]int

// ThreatSumCallback is a destination-only visitor shape for
// accumulating a ThreatBoard. ComputeThreats and the evaluator do not
// use it; they count destinations through an ordinary MoveVisitor.
type ThreatSumCallback func(to Position)

// ComputeThreats fills out with the number of pseudo-legal moves color
// has landing on each square of board. It does this by temporarily
// setting board.Move to color (restoring it before returning) and
// running the ordinary move generator, since pseudo-legal move
// generation is otherwise keyed off whoever's turn it is.
func ComputeThreats(board *Board, color Color, out *ThreatBoard) {
	*out = ThreatBoard{}

	saved := board.Move
	board.Move = color
	ValidMoves(board, func(b *Board, from, to Position) {
		out[index(to)]++
	})
	board.Move = saved
}

// ThreatAt reports how many of color's pseudo-legal moves land on pos.
func (tb *ThreatBoard) ThreatAt(pos Position) int {
	return tb[index(pos)]
}
