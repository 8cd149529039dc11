package engine

import (
	"context"
	"time"

	"github.com/avie-chess/avie/pkg/common"
)

// The fixed move time is not enforced here: the caller owns that timer,
// so that ponder and infinite searches can ignore it.
type simpleTimeManager struct {
	start     time.Time
	limits    common.LimitsType
	softLimit time.Duration
	hardLimit time.Duration
	cancel    context.CancelFunc
}

func newSimpleTimeManager(ctx context.Context, start time.Time,
	limits common.LimitsType, whiteToMove bool) (context.Context, *simpleTimeManager) {

	var tm = &simpleTimeManager{
		start:  start,
		limits: limits,
	}

	if !limits.Infinite && !limits.Ponder && limits.MoveTime == 0 &&
		(limits.WhiteTime > 0 || limits.BlackTime > 0) {
		var main, inc time.Duration
		if whiteToMove {
			main = limits.WhiteTime
			inc = limits.WhiteIncrement
		} else {
			main = limits.BlackTime
			inc = limits.BlackIncrement
		}
		tm.softLimit, tm.hardLimit = calcLimits(main, inc, limits.MovesToGo)
	}

	var cancel context.CancelFunc
	if tm.hardLimit != 0 {
		ctx, cancel = context.WithDeadline(ctx, start.Add(tm.hardLimit))
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	tm.cancel = cancel
	return ctx, tm
}

func (tm *simpleTimeManager) OnNodesChanged(nodes int) {
	if tm.limits.Nodes > 0 && nodes >= tm.limits.Nodes {
		tm.cancel()
	}
}

// OnIterationComplete reports whether another iteration is worth starting.
func (tm *simpleTimeManager) OnIterationComplete(depth, score int) bool {
	if tm.limits.Mate > 0 {
		var mate = mateIn(score)
		if mate > 0 && mate <= tm.limits.Mate {
			return false
		}
	}
	if tm.limits.Infinite || tm.limits.Ponder {
		return true
	}
	if tm.limits.Depth != 0 && depth >= tm.limits.Depth {
		return false
	}
	if score >= winIn(depth-5) ||
		score <= lossIn(depth-5) {
		return false
	}
	if tm.softLimit != 0 &&
		time.Since(tm.start) >= tm.softLimit {
		return false
	}
	return true
}

func (tm *simpleTimeManager) Close() {
	tm.cancel()
}

func calcLimits(main, inc time.Duration, moves int) (soft, hard time.Duration) {
	const (
		DefaultMovesToGo = 40
		MoveOverhead     = 300 * time.Millisecond
		MinTimeLimit     = 1 * time.Millisecond
	)

	main -= MoveOverhead
	if main < MinTimeLimit {
		main = MinTimeLimit
	}

	if moves == 0 {
		var ideal = main/35 + inc/2
		soft = ideal * 7 / 10
		hard = ideal * 21 / 10
	} else {
		moves = min(moves, DefaultMovesToGo)
		soft = (main/time.Duration(moves+1) + inc) * 7 / 10
		hard = (main/time.Duration(moves+1) + inc) * 21 / 10
	}

	hard = limitDuration(hard, MinTimeLimit, main)
	soft = limitDuration(soft, MinTimeLimit, main)

	return
}

func limitDuration(v, min, max time.Duration) time.Duration {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
