// Command gambit plays chess against a human at the terminal, using
// the engine package's bounded-depth search to choose the computer's
// moves. It is a thin driver: no UCI protocol, no opening book, no time
// control.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/op/go-logging"

	"github.com/arlberg/gambit/engine"
	"github.com/arlberg/gambit/notation"
	"github.com/arlberg/gambit/perft"
)

var (
	depth     = flag.Int("depth", engine.ReferenceDepth, "search depth in plies")
	perftFlag = flag.Int("perft", 0, "print the perft count at this depth and exit")
	humanSide = flag.String("side", "white", "side the human plays: white or black")
)

var log = logging.MustGetLogger("gambit")

func main() {
	flag.Parse()

	backend := logging.NewLogBackend(os.Stdout, "", 0)
	formatter := logging.MustStringFormatter(`%{time:15:04:05} %{level} %{message}`)
	logging.SetBackend(logging.NewBackendFormatter(backend, formatter))

	var board engine.Board
	board.Reset()

	if *perftFlag > 0 {
		fmt.Println(perft.Perft(&board, *perftFlag))
		return
	}

	human := engine.White
	if *humanSide == "black" {
		human = engine.Black
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println(renderBoard(&board))

		score := engine.Evaluate(&board)
		if engine.ScoreIsCheckmate(score) {
			log.Infof("game over, score=%d", score)
			return
		}

		var move engine.Move
		if board.Move == human {
			move = humanMove(scanner, &board)
			if engine.MoveEqual(move, engine.NullMove) {
				log.Info("no move read, ending game")
				return
			}
		} else {
			log.Infof("%v to move, searching to depth %d", board.Move, *depth)
			_, pv := engine.MinimaxEngine(&board, *depth, nil)
			if len(pv) == 0 || engine.MoveEqual(pv[0], engine.StandPatMove) || engine.MoveEqual(pv[0], engine.NullMove) {
				log.Info("no improving move found, ending game")
				return
			}
			move = pv[0]
			log.Infof("%v plays %v -> %v", board.Move, notation.FormatSquare(move.From), notation.FormatSquare(move.To))
		}

		engine.ApplyMove(&board, move.From, move.To)
	}
}
