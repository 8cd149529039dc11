package engine

import (
	"context"
	"time"

	"github.com/avie-chess/avie/pkg/board"
	"github.com/avie-chess/avie/pkg/common"
)

type Engine struct {
	Options Options
}

func NewEngine(options Options) *Engine {
	return &Engine{Options: options}
}

// Search looks for the best of the candidate moves. It returns when the
// limits are reached or ctx is cancelled; cancellation is checked every
// few dozen nodes.
func (e *Engine) Search(ctx context.Context, p *board.Position, moves []common.Move,
	transTable *TransTable, limits common.LimitsType) common.SearchResult {
	var start = time.Now()
	var result common.SearchResult
	if len(moves) == 0 {
		return result
	}

	ctx, tm := newSimpleTimeManager(ctx, start, limits, p.WhiteToMove())
	defer tm.Close()
	transTable.IncDate()

	var s = &searcher{
		ctx:        ctx,
		tm:         tm,
		transTable: transTable,
	}
	var ml = cloneMoves(moves)
	if _, _, _, ttMove, ok := transTable.Read(p.Key()); ok {
		if index := common.FindMoveIndex(ml, ttMove); index >= 0 {
			common.MoveToBegin(ml, index)
		}
	}

	var maxDepth = e.Options.depthLimit(limits.Depth)
	for depth := 1; depth <= maxDepth; depth++ {
		var line, completed = s.searchRoot(p, ml, depth)
		if line.found && (completed || !result.Found) {
			result.Move = line.move
			result.Score = line.score
			result.Found = true
		}
		if !completed || !line.found {
			break
		}
		result.Depth = depth
		common.MoveToBegin(ml, common.FindMoveIndex(ml, line.move))
		if !tm.OnIterationComplete(depth, line.score) || ctx.Err() != nil {
			break
		}
	}
	result.Nodes = s.nodes
	result.Time = time.Since(start)
	return result
}
