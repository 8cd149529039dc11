package uci

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/avie-chess/avie/pkg/common"
)

type searchTask struct {
	id        uuid.UUID
	done      chan struct{}
	cancel    context.CancelFunc
	limits    common.LimitsType
	ponderHit bool // command loop only
}

func (t *searchTask) running() bool {
	select {
	case <-t.done:
		return false
	default:
		return true
	}
}

func (uci *Protocol) searching() bool {
	return uci.task != nil && uci.task.running()
}

// goCommand starts a search unless one is already running. Every search
// gets its own context so a late stop can only reach the search it was meant for.
func (uci *Protocol) goCommand(fields []string) {
	if uci.searching() {
		uci.logger.Debug("go ignored, search in progress", zap.Stringer("search", uci.task.id))
		return
	}
	var limits = parseLimits(fields)
	var ctx, cancel = context.WithCancel(uci.ctx)
	var task = &searchTask{
		id:     uuid.New(),
		done:   make(chan struct{}),
		cancel: cancel,
		limits: limits,
	}
	uci.cancel = cancel
	uci.task = task
	go uci.runSearch(ctx, cancel, task, limits)
}

func (uci *Protocol) stopCommand(fields []string) {
	if uci.cancel != nil {
		uci.cancel()
	}
	if uci.config.StopMode == StopJoin && uci.task != nil {
		<-uci.task.done
	}
}

// ponderhitCommand turns a running ponder search into a normal one. With a
// move time the search continues for that long, otherwise it stops now and
// reports the best move found while pondering.
func (uci *Protocol) ponderhitCommand(fields []string) {
	var task = uci.task
	if !uci.searching() || !task.limits.Ponder {
		uci.logger.Debug("ponderhit ignored, not pondering")
		return
	}
	if task.ponderHit {
		return
	}
	task.ponderHit = true
	if task.limits.MoveTime <= 0 {
		task.cancel()
		return
	}
	go stopAfter(task.limits.MoveTime, task.cancel, task.done)
}

func (uci *Protocol) runSearch(ctx context.Context, cancel context.CancelFunc,
	task *searchTask, limits common.LimitsType) {
	defer close(task.done)
	defer cancel()

	var logger = uci.logger.With(zap.Stringer("search", task.id))
	var result common.SearchResult
	defer func() {
		if r := recover(); r != nil {
			logger.Error("search failed", zap.Any("panic", r), zap.Stack("stack"))
			result = common.SearchResult{}
		}
		if limits.Infinite || limits.Ponder {
			// bestmove must not be sent before stop
			<-ctx.Done()
		}
		uci.printResult(result)
	}()

	result = uci.search(ctx, cancel, limits, logger)
	logger.Debug("search finished",
		zap.Stringer("move", result.Move),
		zap.Int("score", result.Score),
		zap.Int("depth", result.Depth),
		zap.Int64("nodes", result.Nodes),
		zap.Duration("time", result.Time))
}

// search runs with the workspace locked for move generation and the search itself.
func (uci *Protocol) search(ctx context.Context, cancel context.CancelFunc,
	limits common.LimitsType, logger *zap.Logger) common.SearchResult {
	var ws = uci.workspace
	ws.mu.Lock()
	defer ws.mu.Unlock()

	var ml = ws.candidates(limits.SearchMoves)
	logger.Debug("search started",
		zap.Int("candidates", len(ml)),
		zap.Duration("movetime", limits.MoveTime),
		zap.Bool("infinite", limits.Infinite),
		zap.Bool("ponder", limits.Ponder))

	var g errgroup.Group
	var searchDone = make(chan struct{})
	defer func() {
		// runs on engine panic too
		close(searchDone)
		g.Wait()
	}()
	if limits.AutoStop() {
		g.Go(func() error {
			return stopAfter(limits.MoveTime, cancel, searchDone)
		})
	}

	var result = uci.engine.Search(ctx, ws.position, ml, ws.transTable, limits)
	logger.Debug("hash usage", zap.Int("permille", ws.transTable.Hashfull()))
	return result
}

// stopAfter calls cancel after d unless done is closed first.
func stopAfter(d time.Duration, cancel context.CancelFunc, done <-chan struct{}) error {
	var timer = time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		cancel()
	case <-done:
	}
	return nil
}

func (uci *Protocol) printResult(result common.SearchResult) {
	var lines []string
	var move = common.MoveEmpty
	if result.Found {
		if uci.debug.Load() {
			lines = append(lines, "score "+common.ScoreString(result.Score))
		}
		move = result.Move
	}
	lines = append(lines, "bestmove "+move.String())
	uci.out.Println(lines...)
}
