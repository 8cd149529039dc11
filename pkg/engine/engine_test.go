package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avie-chess/avie/pkg/board"
	"github.com/avie-chess/avie/pkg/common"
)

func legalMoves(p *board.Position) []common.Move {
	var buffer [common.MaxMoves]common.Move
	return cloneMoves(p.GenerateMoves(buffer[:]))
}

func searchFEN(t *testing.T, fen string, limits common.LimitsType) common.SearchResult {
	t.Helper()
	var p, err = board.DecodeFEN(fen)
	require.NoError(t, err)
	var e = NewEngine(NewOptions())
	return e.Search(context.Background(), p, legalMoves(p), NewTransTable(1), limits)
}

func TestSearchFindsMate(t *testing.T) {
	var result = searchFEN(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1", common.LimitsType{Depth: 2})
	require.True(t, result.Found)
	assert.Equal(t, "a1a8", result.Move.String())
	assert.Equal(t, 1, mateIn(result.Score))
}

func TestSearchWinsQueen(t *testing.T) {
	var result = searchFEN(t, "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1", common.LimitsType{Depth: 2})
	require.True(t, result.Found)
	assert.Equal(t, "e4d5", result.Move.String())
	assert.Greater(t, result.Score, 0)
}

func TestSearchRestrictedCandidates(t *testing.T) {
	var p = board.NewPosition()
	var d2d4, _ = common.ParseMove("d2d4")
	var result = NewEngine(NewOptions()).Search(context.Background(), p,
		[]common.Move{d2d4}, NewTransTable(1), common.LimitsType{Depth: 2})
	require.True(t, result.Found)
	assert.Equal(t, d2d4, result.Move)
}

func TestSearchNoMoves(t *testing.T) {
	var p = board.NewPosition()
	var result = NewEngine(NewOptions()).Search(context.Background(), p,
		nil, NewTransTable(1), common.LimitsType{})
	assert.False(t, result.Found)
}

func TestSearchCancelled(t *testing.T) {
	var p = board.NewPosition()
	var ctx, cancel = context.WithCancel(context.Background())
	var done = make(chan common.SearchResult)
	go func() {
		done <- NewEngine(NewOptions()).Search(ctx, p, legalMoves(p),
			NewTransTable(1), common.LimitsType{Infinite: true})
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case result := <-done:
		assert.True(t, result.Found)
		assert.GreaterOrEqual(t, result.Depth, 1)
	case <-time.After(5 * time.Second):
		t.Fatal("search ignored cancellation")
	}
}

func TestSearchNodesLimit(t *testing.T) {
	var result = searchFEN(t, common.InitialPositionFen, common.LimitsType{Nodes: 500})
	assert.True(t, result.Found)
	assert.Less(t, result.Nodes, int64(500+2*(pollMask+1)))
}

func TestTransTable(t *testing.T) {
	var tt = NewTransTable(1)
	assert.Equal(t, 1, tt.Size())
	var move, _ = common.ParseMove("e2e4")
	const key = uint64(0x1234_5678_9abc_def0)

	var _, _, _, _, ok = tt.Read(key)
	assert.False(t, ok)

	tt.Update(key, 5, 42, boundExact, move)
	depth, score, bound, ttMove, ok := tt.Read(key)
	require.True(t, ok)
	assert.Equal(t, 5, depth)
	assert.Equal(t, 42, score)
	assert.Equal(t, boundExact, bound)
	assert.Equal(t, move, ttMove)

	// a much shallower non-exact result does not replace a deep one
	tt.Update(key, 1, -7, boundLower, common.MoveEmpty)
	depth, score, _, _, _ = tt.Read(key)
	assert.Equal(t, 5, depth)
	assert.Equal(t, 42, score)

	// same slot, different key
	var other = key ^ (uint64(1) << 40)
	_, _, _, _, ok = tt.Read(other)
	assert.False(t, ok)

	assert.Greater(t, tt.Hashfull(), -1)
	tt.Clear()
	_, _, _, _, ok = tt.Read(key)
	assert.False(t, ok)
}

func TestTransTablePersistsBetweenSearches(t *testing.T) {
	var p = board.NewPosition()
	var tt = NewTransTable(1)
	var e = NewEngine(NewOptions())
	e.Search(context.Background(), p, legalMoves(p), tt, common.LimitsType{Depth: 2})
	var _, _, _, move, ok = tt.Read(p.Key())
	require.True(t, ok)
	assert.NotEqual(t, common.MoveEmpty, move)
}

func TestValueTT(t *testing.T) {
	for _, v := range []int{0, 150, -150, winIn(3), lossIn(4)} {
		assert.Equal(t, v, valueFromTT(valueToTT(v, 7), 7))
	}
	assert.Equal(t, 1, mateIn(winIn(1)))
	assert.Equal(t, 2, mateIn(winIn(3)))
	assert.Equal(t, -1, mateIn(lossIn(2)))
	assert.Equal(t, 0, mateIn(35))
}

func TestCalcLimits(t *testing.T) {
	var soft, hard = calcLimits(60*time.Second, time.Second, 0)
	assert.Less(t, soft, hard)
	assert.LessOrEqual(t, hard, 60*time.Second)

	soft, hard = calcLimits(100*time.Millisecond, 0, 10)
	assert.Equal(t, time.Millisecond, soft)
	assert.Equal(t, time.Millisecond, hard)
}

func TestTimeManagerLimits(t *testing.T) {
	var _, tm = newSimpleTimeManager(context.Background(), time.Now(), common.LimitsType{Depth: 3}, true)
	defer tm.Close()
	assert.True(t, tm.OnIterationComplete(2, 0))
	assert.False(t, tm.OnIterationComplete(3, 0))

	_, tm = newSimpleTimeManager(context.Background(), time.Now(), common.LimitsType{Infinite: true, Depth: 3}, true)
	assert.True(t, tm.OnIterationComplete(10, winIn(1)))

	_, tm = newSimpleTimeManager(context.Background(), time.Now(), common.LimitsType{Infinite: true, Mate: 2}, true)
	assert.False(t, tm.OnIterationComplete(3, winIn(3)))
}

func TestTimeManagerClockDeadline(t *testing.T) {
	var ctx, tm = newSimpleTimeManager(context.Background(), time.Now(),
		common.LimitsType{WhiteTime: 310 * time.Millisecond}, true)
	defer tm.Close()
	var _, ok = ctx.Deadline()
	assert.True(t, ok)

	ctx, tm = newSimpleTimeManager(context.Background(), time.Now(),
		common.LimitsType{WhiteTime: time.Second, MoveTime: 50 * time.Millisecond}, true)
	_, ok = ctx.Deadline()
	assert.False(t, ok)
}

func TestDepthLimit(t *testing.T) {
	var o = NewOptions()
	assert.Equal(t, maxHeight-1, o.depthLimit(0))
	assert.Equal(t, 4, o.depthLimit(4))
	o.MaxDepth = 3
	assert.Equal(t, 3, o.depthLimit(0))
	assert.Equal(t, 2, o.depthLimit(2))
	assert.Equal(t, 3, o.depthLimit(10))
}

func TestEvaluateSymmetric(t *testing.T) {
	var p = board.NewPosition()
	assert.Equal(t, 0, evaluate(p))
	var e2e4, _ = common.ParseMove("e2e4")
	require.NoError(t, p.MakeMove(e2e4))
	assert.Less(t, evaluate(p), 0)
}
