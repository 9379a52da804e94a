package engine

import "testing"

func collectMoves(board *Board) []Move {
	var moves []Move
	ValidMoves(board, func(b *Board, from, to Position) {
		moves = append(moves, Move{from, to})
	})
	return moves
}

func TestValidMovesOpeningPositionCount(t *testing.T) {
	var b Board
	b.Reset()

	moves := collectMoves(&b)
	if len(moves) != 20 {
		t.Errorf("expected 20 opening moves for White, got %d", len(moves))
	}
}

func TestValidMovesFromKnightHome(t *testing.T) {
	var b Board
	b.Reset()

	var moves []Move
	ValidMovesFrom(&b, Position{0, 1}, func(board *Board, from, to Position) {
		moves = append(moves, Move{from, to})
	})

	if len(moves) != 2 {
		t.Errorf("expected 2 opening moves for the b1 knight, got %d", len(moves))
	}
}

func TestValidMovesFromEmptySquareEmitsNothing(t *testing.T) {
	var b Board
	b.Reset()

	called := false
	ValidMovesFrom(&b, Position{3, 3}, func(board *Board, from, to Position) {
		called = true
	})
	if called {
		t.Error("an empty square should not generate any move")
	}
}

func TestValidMovesFromOpponentPieceEmitsNothing(t *testing.T) {
	var b Board
	b.Reset()

	called := false
	ValidMovesFrom(&b, Position{6, 0}, func(board *Board, from, to Position) {
		called = true
	})
	if called {
		t.Error("a piece not belonging to the side to move should not generate any move")
	}
}

func TestPawnDoublePushOnlyFromHomeRank(t *testing.T) {
	var b Board
	b.Reset()
	ApplyMove(&b, Position{1, 4}, Position{2, 4}) // e2 -> e3, white to move again not yet
	b.Move = White

	moves := collectMoves(&b)
	for _, m := range moves {
		if m.From == (Position{2, 4}) && m.To.Rank-m.From.Rank > 1 {
			t.Errorf("pawn no longer on its home rank should not double-push: %v", m)
		}
	}
}

func TestEnPassantCaptureGenerated(t *testing.T) {
	var b Board
	b.Reset()
	b.Set(Position{1, 4}, Square{Empty, Black})
	b.Set(Position{4, 4}, Square{Pawn, White})
	b.Set(Position{6, 3}, Square{Empty, Black})
	b.Set(Position{4, 3}, Square{Pawn, Black})
	b.Move = White
	b.EnPassant = 3

	found := false
	ValidMovesFrom(&b, Position{4, 4}, func(board *Board, from, to Position) {
		if to == (Position{5, 3}) {
			found = true
		}
	})
	if !found {
		t.Error("expected the en-passant capture e5xd6 to be generated")
	}
}

func TestCastlingGeneratedWhenClearAndSafe(t *testing.T) {
	var b Board
	b.Reset()
	b.Set(Position{0, 5}, Square{Empty, Black})
	b.Set(Position{0, 6}, Square{Empty, Black})

	found := false
	ValidMovesFrom(&b, Position{0, 4}, func(board *Board, from, to Position) {
		if to == (Position{0, 6}) {
			found = true
		}
	})
	if !found {
		t.Error("expected kingside castling to be available with a clear, safe path")
	}
}

func TestCastlingBlockedWhenSquareOccupied(t *testing.T) {
	var b Board
	b.Reset()
	b.Set(Position{0, 6}, Square{Empty, Black}) // leave g1 empty, keep f1 bishop

	found := false
	ValidMovesFrom(&b, Position{0, 4}, func(board *Board, from, to Position) {
		if to == (Position{0, 6}) {
			found = true
		}
	})
	if found {
		t.Error("castling should be blocked while a piece sits between king and rook")
	}
}

func TestCastlingDeniedThroughCheck(t *testing.T) {
	var b Board
	b.Reset()
	b.Set(Position{0, 5}, Square{Empty, Black})
	b.Set(Position{0, 6}, Square{Empty, Black})
	// Clear the f-file and drop a black rook on it so it attacks f1,
	// the square the king must pass through while castling kingside.
	b.Set(Position{1, 5}, Square{Empty, Black})
	b.Set(Position{7, 5}, Square{Empty, Black})
	b.Set(Position{2, 5}, Square{Rook, Black})

	found := false
	ValidMovesFrom(&b, Position{0, 4}, func(board *Board, from, to Position) {
		if to == (Position{0, 6}) {
			found = true
		}
	})
	if found {
		t.Error("castling should be denied when the king would pass through an attacked square")
	}
}

func TestMVVCompareOrdersHighValueVictimFirst(t *testing.T) {
	var b Board
	b.Reset()
	b.Move = White

	rookCapture := Move{Position{0, 0}, Position{7, 0}} // a1 -> a8, captures a black rook
	pawnCapture := Move{Position{0, 0}, Position{6, 0}} // a1 -> a7, captures a black pawn

	if MVVCompare(&b, rookCapture, pawnCapture) >= 0 {
		t.Error("a move capturing a higher-value piece should sort before one capturing a lower-value piece")
	}
}

func TestValidMovesSortedIsStableOnTies(t *testing.T) {
	var b Board
	b.Reset()

	var moves []Move
	ValidMovesSorted(&b, MVVCompare, func(board *Board, from, to Position) {
		moves = append(moves, Move{from, to})
	})

	unordered := collectMoves(&b)
	if len(moves) != len(unordered) {
		t.Fatalf("sorted generation should yield the same move count, got %d want %d", len(moves), len(unordered))
	}
	// The opening position has no captures, so every comparison is a tie
	// and the sorted order must equal generation order.
	for i := range moves {
		if moves[i] != unordered[i] {
			t.Errorf("move %d: sorted order %v differs from generation order %v on a tie", i, moves[i], unordered[i])
		}
	}
}
