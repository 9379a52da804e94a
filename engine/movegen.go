package engine

import "sort"

// MoveVisitor is called once per pseudo-legal move discovered by the
// generator. board is the board the move was generated from (not yet
// mutated); from and to are the move's endpoints.
type MoveVisitor func(board *Board, from, to Position)

// MaxMoves bounds the number of pseudo-legal moves in any legal chess
// position; callers may use it to size a stack-allocated buffer.
const MaxMoves = 256

// ValidMovesFrom enumerates the pseudo-legal moves originating at pos,
// calling emit once per move. Only pieces belonging to board.Move are
// considered; all other squares (including Empty) emit nothing.
func ValidMovesFrom(board *Board, pos Position, emit MoveVisitor) {
	sq := board.Get(pos)
	if sq.Piece == Empty || sq.Color != board.Move {
		return
	}

	switch sq.Piece {
	case Pawn:
		generatePawnMoves(board, pos, sq.Color, emit)
	case Knight:
		for _, d := range knightOffsets {
			tryMoveAny(board, pos, Position{pos.Rank + d[0], pos.File + d[1]}, emit)
		}
	case Bishop:
		generateSlides(board, pos, bishopRays, emit)
	case Rook:
		generateSlides(board, pos, rookRays, emit)
	case Queen:
		generateSlides(board, pos, queenRays, emit)
	case King:
		generateKingMoves(board, pos, sq.Color, emit)
	}
}

// ValidMoves enumerates all pseudo-legal moves for board.Move, scanning
// squares in rank-major, file-minor order (rank 0..7, file 0..7).
func ValidMoves(board *Board, emit MoveVisitor) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			ValidMovesFrom(board, Position{rank, file}, emit)
		}
	}
}

// ValidMovesSorted materializes all pseudo-legal moves for board.Move,
// stably sorts them with cmp, then emits them in that order. cmp should
// return a negative number when a should be ordered before b.
func ValidMovesSorted(board *Board, cmp func(board *Board, a, b Move) int, emit MoveVisitor) {
	moves := make([]Move, 0, MaxMoves)
	ValidMoves(board, func(b *Board, from, to Position) {
		moves = append(moves, Move{from, to})
	})
	sort.SliceStable(moves, func(i, j int) bool {
		return cmp(board, moves[i], moves[j]) < 0
	})
	for _, m := range moves {
		emit(board, m.From, m.To)
	}
}

// MVVCompare orders captures of higher-valued victims first (Most
// Valuable Victim). Ties preserve generation order, since
// ValidMovesSorted sorts stably.
func MVVCompare(board *Board, a, b Move) int {
	av := board.Get(a.To).Piece.Value()
	bv := board.Get(b.To).Piece.Value()
	return int(bv - av)
}

var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

var bishopRays = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookRays = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var queenRays = [][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func generateSlides(board *Board, from Position, rays [][2]int, emit MoveVisitor) {
	for _, d := range rays {
		for step := 1; step < 8; step++ {
			to := Position{from.Rank + d[0]*step, from.File + d[1]*step}
			if tryMovePeaceful(board, from, to, emit) {
				continue
			}
			// Either off the board, blocked by our own piece, or a
			// capture (which stops the ray either way).
			tryMoveCapture(board, from, to, emit)
			break
		}
	}
}

func generatePawnMoves(board *Board, from Position, color Color, emit MoveVisitor) {
	adv := color.Advance()
	homeRank := 1
	if color == Black {
		homeRank = 6
	}

	front := Position{from.Rank + adv, from.File}
	if tryMovePeaceful(board, from, front, emit) && from.Rank == homeRank {
		tryMovePeaceful(board, from, Position{from.Rank + 2*adv, from.File}, emit)
	}

	for _, df := range [2]int{-1, 1} {
		to := Position{from.Rank + adv, from.File + df}
		if tryMoveCapture(board, from, to, emit) {
			continue
		}
		tryCaptureEnPassant(board, from, to, color, emit)
	}
}

func generateKingMoves(board *Board, from Position, color Color, emit MoveVisitor) {
	for _, d := range kingOffsets {
		tryMoveAny(board, from, Position{from.Rank + d[0], from.File + d[1]}, emit)
	}
	generateCastling(board, from, color, emit)
}

// generateCastling emits the kingside and/or queenside castling moves
// available from the king's home square: the rook must be untouched
// and in its corner, the squares between king and rook must be empty,
// and the king must not start, pass through, or land on an attacked
// square.
func generateCastling(board *Board, from Position, color Color, emit MoveVisitor) {
	if from != (Position{color.KingHomeRank(), 4}) {
		return
	}

	for _, side := range [2]Side{Queenside, Kingside} {
		if !board.CanCastle[color][side] {
			continue
		}
		rookFile := 7
		if side == Queenside {
			rookFile = 0
		}
		rookPos := Position{from.Rank, rookFile}
		if rookSq := board.Get(rookPos); rookSq.Piece != Rook || rookSq.Color != color {
			continue
		}

		clear := true
		step := 1
		if side == Queenside {
			step = -1
		}
		for file := from.File + step; file != rookFile; file += step {
			if board.Occupied(Position{from.Rank, file}) {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}

		kingEnd := from.File + 2*step
		if !castlePathSafe(board, from, kingEnd, color) {
			continue
		}

		emit(board, from, Position{from.Rank, kingEnd})
	}
}

// castlePathSafe reports whether the king can move from kingStart to
// kingEnd (inclusive) along its castling path without ever being under
// attack. It applies the castling move to a copy, generates the
// opponent's threat map on that copy, and requires zero threat on every
// square from the king's start through its end square: the king may
// never pass through check. Squares beyond the king's end square (b1/b8
// when castling queenside) are not checked.
func castlePathSafe(board *Board, kingStart Position, kingEnd int, color Color) bool {
	copied := *board
	ApplyMove(&copied, kingStart, Position{kingStart.Rank, kingEnd})

	var threats ThreatBoard
	ComputeThreats(&copied, color.Opposite(), &threats)

	step := 1
	if kingEnd < kingStart.File {
		step = -1
	}
	for file := kingStart.File; file != kingEnd+step; file += step {
		if threats[kingStart.Rank*8+file] != 0 {
			return false
		}
	}
	return true
}

// tryMovePeaceful emits from->to if to is on the board and empty.
// Returns whether it emitted, so sliding generation can stop on block.
func tryMovePeaceful(board *Board, from, to Position, emit MoveVisitor) bool {
	if !PositionValid(to) {
		return false
	}
	if board.Empty(to) {
		emit(board, from, to)
		return true
	}
	return false
}

// tryMoveCapture emits from->to if to holds an enemy piece.
func tryMoveCapture(board *Board, from, to Position, emit MoveVisitor) bool {
	if !PositionValid(to) {
		return false
	}
	if board.Occupies(to, board.Move.Opposite()) {
		emit(board, from, to)
		return true
	}
	return false
}

// tryMoveAny emits from->to if to is empty or holds an enemy piece;
// used by knights, kings, and threat computation.
func tryMoveAny(board *Board, from, to Position, emit MoveVisitor) bool {
	if !PositionValid(to) {
		return false
	}
	if !board.Occupies(to, board.Move) {
		emit(board, from, to)
		return true
	}
	return false
}

// tryCaptureEnPassant emits from->to when to is the current en-passant
// target square for color: empty, on the rank just behind the double-
// stepped pawn, and on the recorded file.
func tryCaptureEnPassant(board *Board, from, to Position, color Color, emit MoveVisitor) bool {
	if !PositionValid(to) || board.Occupied(to) {
		return false
	}
	enPassantRank := 5
	if color == Black {
		enPassantRank = 2
	}
	if to.File == board.EnPassant && to.Rank == enPassantRank {
		emit(board, from, to)
		return true
	}
	return false
}
