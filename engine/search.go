package engine

import "github.com/op/go-logging"

var searchLog = logging.MustGetLogger("engine")

const (
	minScore int32 = -1 << 30
	maxScore int32 = 1 << 30
)

// Bounds carries the search's per-color alpha-beta state: ab[White] is
// the best (highest) score White has secured so far in the current
// subtree, ab[Black] the best (lowest) score Black has secured. A node
// is cut off as soon as ab[White] >= ab[Black], since at that point
// neither side can still improve its outcome by continuing — this
// plays the role a single shared alpha/beta pair would in a
// conventional negamax search.
type Bounds [ColorArraySize]int32

// NoBounds returns the widest possible starting bounds for a fresh search.
func NoBounds() Bounds {
	return Bounds{White: minScore, Black: maxScore}
}

// MinimaxScore searches board to maxDepth plies, extended by a
// captures-only quiescence phase once maxDepth drops to zero or below,
// and returns a White-perspective score (positive favors White). pv, if
// non-empty, is filled with the principal variation found at this node
// and below; pv[0] is set to StandPatMove when the search accepts the
// static evaluation over any move, and left at its zero value (NullMove)
// when the position is already a king capture.
func MinimaxScore(table *HashTable, board *Board, maxDepth int, ab Bounds, pv []Move) int32 {
	if table != nil {
		if score, depth, _, ok := table.Lookup(board); ok && depth >= maxDepth {
			return score
		}
	}

	toMove := board.Move
	valence := toMove.Multiplier()

	myScore := Evaluate(board)
	if ScoreIsCheckmate(myScore) {
		if len(pv) > 0 {
			pv[0] = NullMove
		}
		return myScore
	}

	if len(pv) > 0 {
		pv[0] = NullMove
	}

	if maxDepth <= 0 {
		if (myScore-ab[toMove])*valence > 0 {
			ab[toMove] = myScore
			if len(pv) > 0 {
				pv[0] = StandPatMove
			}
		}
	}

	onlyCaptures := maxDepth <= 0
	cutoff := false

	ValidMovesSorted(board, MVVCompare, func(b *Board, from, to Position) {
		if cutoff || ab[White] >= ab[Black] {
			cutoff = true
			return
		}
		if onlyCaptures && b.Empty(to) {
			return
		}

		child := *b
		ApplyMove(&child, from, to)

		var childPV []Move
		if len(pv) > 1 {
			childPV = make([]Move, len(pv)-1)
		}

		newScore := MinimaxScore(table, &child, maxDepth-1, ab, childPV)

		if (newScore-ab[toMove])*valence > 0 {
			ab[toMove] = newScore
			if len(pv) > 0 {
				pv[0] = Move{from, to}
				if len(childPV) > 0 {
					copy(pv[1:], childPV)
				}
			}
		}
		if ab[White] >= ab[Black] {
			cutoff = true
		}
	})

	score := ab[toMove]
	if maxDepth > 0 && table != nil {
		var cachedMove Move
		if len(pv) > 0 {
			cachedMove = pv[0]
		}
		table.Insert(board, score, maxDepth, cachedMove)
	}
	return score
}

// Stats summarizes one completed search, for logging and for callers
// that want to inspect the result beyond the chosen move.
type Stats struct {
	Score int32
	Depth int
	PV    []Move
}

// Logger receives search progress notifications. Callers that don't
// care may pass nil to MinimaxEngine, which then uses DefaultLogger.
type Logger interface {
	BeginSearch()
	EndSearch()
	PrintPV(stats Stats)
}

type goLoggingLogger struct{}

func (goLoggingLogger) BeginSearch() { searchLog.Debug("search begin") }
func (goLoggingLogger) EndSearch()   { searchLog.Debug("search end") }
func (goLoggingLogger) PrintPV(stats Stats) {
	searchLog.Debugf("depth=%d score=%d pv=%v", stats.Depth, stats.Score, stats.PV)
}

// DefaultLogger logs search diagnostics through the package's logger.
var DefaultLogger Logger = goLoggingLogger{}

// ReferenceDepth is the search depth this package is tuned and tested
// against; ChooseMove always searches to this depth.
const ReferenceDepth = 6

// MinimaxEngine runs a fresh search of depth plies from board against a
// fresh transposition table, reporting progress through logger (falling
// back to DefaultLogger when nil), and returns the score and principal
// variation found.
func MinimaxEngine(board *Board, depth int, logger Logger) (int32, []Move) {
	if logger == nil {
		logger = DefaultLogger
	}
	table := NewHashTable()
	pv := make([]Move, depth+1)

	logger.BeginSearch()
	score := MinimaxScore(table, board, depth, NoBounds(), pv)
	logger.EndSearch()
	logger.PrintPV(Stats{Score: score, Depth: depth, PV: pv})

	return score, pv
}

// ChooseMove runs the reference-depth search and returns the best move
// for board.Move. It returns NullMove when no move improved on the
// starting bound (for instance when board.Move has no pseudo-legal
// move), the no-progress case left undistinguished from "every line
// loses badly".
func ChooseMove(board *Board) Move {
	_, pv := MinimaxEngine(board, ReferenceDepth, nil)
	if len(pv) == 0 {
		return NullMove
	}
	if MoveEqual(pv[0], StandPatMove) || MoveEqual(pv[0], NullMove) {
		return NullMove
	}
	return pv[0]
}
