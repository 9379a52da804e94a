package main

import (
	"bufio"
	"fmt"
	"math/rand"

	"github.com/arlberg/gambit/engine"
	"github.com/arlberg/gambit/notation"
)

// legalPseudoMoves lists every pseudo-legal move available to board.Move.
func legalPseudoMoves(board *engine.Board) []engine.Move {
	moves := make([]engine.Move, 0, engine.MaxMoves)
	engine.ValidMoves(board, func(b *engine.Board, from, to engine.Position) {
		moves = append(moves, engine.Move{From: from, To: to})
	})
	return moves
}

// humanMove reads a move from scanner, re-prompting on malformed input
// or a move the board doesn't actually offer. This is the CLI's
// InvalidInput recovery path: the move text crosses the process
// boundary from an untrusted source, so it is reported as an error and
// retried rather than panicking.
func humanMove(scanner *bufio.Scanner, board *engine.Board) engine.Move {
	for {
		fmt.Print("your move (e.g. e2 e4): ")
		if !scanner.Scan() {
			return engine.NullMove
		}

		from, to, err := notation.ParseMove(scanner.Text())
		if err != nil {
			fmt.Println(err)
			continue
		}

		move := engine.Move{From: from, To: to}
		if !offersMove(board, move) {
			fmt.Println("that move isn't available")
			continue
		}
		return move
	}
}

func offersMove(board *engine.Board, move engine.Move) bool {
	found := false
	engine.ValidMovesFrom(board, move.From, func(b *engine.Board, from, to engine.Position) {
		if engine.PositionEqual(to, move.To) {
			found = true
		}
	})
	return found
}

// randomMove picks uniformly among board.Move's pseudo-legal moves, or
// returns NullMove when there are none. main does not call it: every
// side is played either by the human or by the search.
func randomMove(board *engine.Board) engine.Move {
	moves := legalPseudoMoves(board)
	if len(moves) == 0 {
		return engine.NullMove
	}
	return moves[rand.Intn(len(moves))]
}
