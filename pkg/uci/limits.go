package uci

import (
	"strconv"
	"time"

	"github.com/avie-chess/avie/pkg/common"
)

var goKeywords = map[string]bool{
	"searchmoves": true,
	"ponder":      true,
	"wtime":       true,
	"btime":       true,
	"winc":        true,
	"binc":        true,
	"movestogo":   true,
	"depth":       true,
	"nodes":       true,
	"mate":        true,
	"movetime":    true,
	"infinite":    true,
}

func parseLimits(args []string) (result common.LimitsType) {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "searchmoves":
			var moves []common.Move
			for i+1 < len(args) {
				var move, err = common.ParseMove(args[i+1])
				if err != nil {
					break
				}
				moves = append(moves, move)
				i++
			}
			result.SearchMoves = moves
		case "ponder":
			result.Ponder = true
		case "infinite":
			result.Infinite = true
		case "wtime":
			result.WhiteTime, i = parseMilliseconds(args, i, result.WhiteTime)
		case "btime":
			result.BlackTime, i = parseMilliseconds(args, i, result.BlackTime)
		case "winc":
			result.WhiteIncrement, i = parseMilliseconds(args, i, result.WhiteIncrement)
		case "binc":
			result.BlackIncrement, i = parseMilliseconds(args, i, result.BlackIncrement)
		case "movetime":
			result.MoveTime, i = parseMilliseconds(args, i, result.MoveTime)
		case "movestogo":
			result.MovesToGo, i = parseCount(args, i, result.MovesToGo)
		case "depth":
			result.Depth, i = parseCount(args, i, result.Depth)
		case "nodes":
			result.Nodes, i = parseCount(args, i, result.Nodes)
		case "mate":
			result.Mate, i = parseCount(args, i, result.Mate)
		}
	}
	return
}

// parseCount reads the value after args[i]. On a bad value the previous
// value is kept; the bad token is consumed unless it is a keyword.
func parseCount(args []string, i, prev int) (int, int) {
	if i+1 >= len(args) {
		return prev, i
	}
	var v, err = strconv.Atoi(args[i+1])
	if err != nil || v < 0 {
		if goKeywords[args[i+1]] {
			return prev, i
		}
		return prev, i + 1
	}
	return v, i + 1
}

func parseMilliseconds(args []string, i int, prev time.Duration) (time.Duration, int) {
	var ms, next = parseCount(args, i, -1)
	if ms < 0 {
		return prev, next
	}
	return time.Duration(ms) * time.Millisecond, next
}
