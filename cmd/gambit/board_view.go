package main

import (
	"fmt"

	"github.com/clinaresl/table"

	"github.com/arlberg/gambit/engine"
)

// renderBoard draws board as an 8x8 grid with rule lines, rank 7 at the
// top, using the same table library a PGN board viewer in the example
// pack uses for this exact job.
func renderBoard(board *engine.Board) string {
	tab, _ := table.NewTable("||cccccccc||")
	tab.AddDoubleRule()

	for rank := 7; rank >= 0; rank-- {
		line := make([]any, 8)
		for file := 0; file < 8; file++ {
			sq := board.Get(engine.Position{Rank: rank, File: file})
			if sq.Piece == engine.Empty {
				if (rank+file)%2 == 0 {
					line[file] = "▒"
				} else {
					line[file] = " "
				}
				continue
			}
			line[file] = sq.String()
		}
		tab.AddRow(line...)
	}

	tab.AddDoubleRule()
	return fmt.Sprintf("%v", tab)
}
