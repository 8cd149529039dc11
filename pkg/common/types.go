package common

import (
	"strconv"
	"time"
)

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type LimitsType struct {
	SearchMoves    []Move
	Ponder         bool
	Infinite       bool
	WhiteTime      time.Duration
	BlackTime      time.Duration
	WhiteIncrement time.Duration
	BlackIncrement time.Duration
	MoveTime       time.Duration
	MovesToGo      int
	Depth          int
	Nodes          int
	Mate           int
}

// AutoStop reports whether a fixed move time should cancel the search on its own.
func (l *LimitsType) AutoStop() bool {
	return l.MoveTime > 0 && !l.Ponder && !l.Infinite
}

type SearchResult struct {
	Move  Move
	Score int
	Found bool
	Depth int
	Nodes int64
	Time  time.Duration
}

// ScoreString renders centipawns as pawns, e.g. 150 -> "1.5".
func ScoreString(centipawns int) string {
	return strconv.FormatFloat(float64(centipawns)/100, 'f', -1, 64)
}
