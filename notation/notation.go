// Package notation parses and formats the plain algebraic square and
// move text used at the chess engine's text boundary: a file letter
// followed by a rank digit (e.g. "e4"), and two such squares separated
// by whitespace for a move (e.g. "e2 e4").
package notation

import (
	"fmt"
	"strings"

	"github.com/arlberg/gambit/engine"
)

// ParseSquare parses a square in plain algebraic notation, e.g. "e4".
// File letters 'a'-'h' and 'A'-'H' are both accepted; the rank digit
// must be '1'-'8'.
func ParseSquare(s string) (engine.Position, error) {
	if len(s) != 2 {
		return engine.Position{}, fmt.Errorf("notation: %q is not a square", s)
	}

	file := s[0]
	switch {
	case file >= 'a' && file <= 'h':
		file -= 'a'
	case file >= 'A' && file <= 'H':
		file -= 'A'
	default:
		return engine.Position{}, fmt.Errorf("notation: %q has an invalid file", s)
	}

	rank := s[1]
	if rank < '1' || rank > '8' {
		return engine.Position{}, fmt.Errorf("notation: %q has an invalid rank", s)
	}

	pos := engine.Position{Rank: int(rank - '1'), File: int(file)}
	if !engine.PositionValid(pos) {
		return engine.Position{}, fmt.Errorf("notation: %q is off the board", s)
	}
	return pos, nil
}

// FormatSquare renders pos in plain algebraic notation, e.g. "e4".
func FormatSquare(pos engine.Position) string {
	return pos.String()
}

// ParseMove parses two squares separated by whitespace, e.g. "e2 e4".
func ParseMove(s string) (from, to engine.Position, err error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return engine.Position{}, engine.Position{}, fmt.Errorf("notation: %q is not a move (want \"e2 e4\")", s)
	}

	from, err = ParseSquare(fields[0])
	if err != nil {
		return engine.Position{}, engine.Position{}, err
	}
	to, err = ParseSquare(fields[1])
	if err != nil {
		return engine.Position{}, engine.Position{}, err
	}
	return from, to, nil
}

// FormatMove renders a move as two whitespace-separated squares.
func FormatMove(from, to engine.Position) string {
	return FormatSquare(from) + " " + FormatSquare(to)
}
