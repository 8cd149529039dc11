package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareOrdering(t *testing.T) {
	var tests = []struct {
		sq   int
		name string
	}{
		{SquareH1, "h1"},
		{SquareA1, "a1"},
		{SquareH2, "h2"},
		{SquareE2, "e2"},
		{SquareE4, "e4"},
		{SquareA8, "a8"},
	}
	for _, test := range tests {
		assert.Equal(t, test.name, SquareName(test.sq))
		var sq, err = ParseSquare(test.name)
		require.NoError(t, err)
		assert.Equal(t, test.sq, sq)
	}
	assert.Equal(t, 0, SquareH1)
	assert.Equal(t, 7, SquareA1)
	assert.Equal(t, 63, SquareA8)
}

func TestFileRank(t *testing.T) {
	for sq := 0; sq < SquareCount; sq++ {
		assert.Equal(t, sq, MakeSquare(File(sq), Rank(sq)))
	}
	assert.Equal(t, FileE, File(SquareE4))
	assert.Equal(t, Rank4, Rank(SquareE4))
}

func TestParseSquareErrors(t *testing.T) {
	for _, s := range []string{"", "e", "i1", "a9", "e22", "11"} {
		var _, err = ParseSquare(s)
		assert.True(t, errors.Is(err, ErrInvalidSquare), s)
	}
	var sq, err = ParseSquare("E2")
	require.NoError(t, err)
	assert.Equal(t, SquareE2, sq)
}

func TestMoveRoundTrip(t *testing.T) {
	var tests = []struct {
		input string
		want  string
	}{
		{"e2e4", "e2e4"},
		{"g1f3", "g1f3"},
		{"e7e8q", "e7e8q"},
		{"a2a1n", "a2a1n"},
		{"E7E8Q", "e7e8q"},
		{"h7h8R", "h7h8r"},
		{"b2b1B", "b2b1b"},
	}
	for _, test := range tests {
		var move, err = ParseMove(test.input)
		require.NoError(t, err, test.input)
		assert.Equal(t, test.want, move.String())
	}
	// every square pair decodes back to itself
	for from := 0; from < SquareCount; from++ {
		for to := 0; to < SquareCount; to++ {
			if from == to {
				continue
			}
			var s = SquareName(from) + SquareName(to)
			var move, err = ParseMove(s)
			require.NoError(t, err)
			assert.Equal(t, NewMove(from, to, PromotionNone), move)
			assert.Equal(t, s, move.String())
		}
	}
}

func TestParseMoveErrors(t *testing.T) {
	for _, s := range []string{"", "e2", "e2e", "e2e4qq", "e2e9", "z2e4", "e7e8k", "e7e8x"} {
		var _, err = ParseMove(s)
		assert.True(t, errors.Is(err, ErrInvalidMove), s)
	}
}

func TestParseMovesStopsAtMalformed(t *testing.T) {
	var moves, ok = ParseMoves([]string{"e2e4", "e7e5", "bad", "g1f3"})
	assert.False(t, ok)
	require.Len(t, moves, 2)
	assert.Equal(t, "e7e5", moves[1].String())

	moves, ok = ParseMoves([]string{"e2e4", "e7e5"})
	assert.True(t, ok)
	assert.Len(t, moves, 2)
}

func TestEmptyMove(t *testing.T) {
	assert.Equal(t, "0000", MoveEmpty.String())
	var buffer = []Move{NewMove(SquareE2, SquareE4, PromotionNone), NewMove(SquareD2, SquareD4, PromotionNone)}
	ResetMoves(buffer)
	for _, m := range buffer {
		assert.Equal(t, MoveEmpty, m)
	}
}

func TestRestrictMoves(t *testing.T) {
	var e2e4 = NewMove(SquareE2, SquareE4, PromotionNone)
	var d2d4 = NewMove(SquareD2, SquareD4, PromotionNone)
	var g1f3 = NewMove(SquareG1, SquareF3, PromotionNone)
	var e7e8q = NewMove(SquareE7, SquareE8, PromotionQueen)
	var e7e8n = NewMove(SquareE7, SquareE8, PromotionKnight)

	var ml = []Move{e2e4, d2d4, g1f3, e7e8q}
	var restricted = RestrictMoves(ml, []Move{d2d4, e2e4, e7e8n})
	assert.ElementsMatch(t, []Move{e2e4, d2d4}, restricted)

	assert.Empty(t, RestrictMoves([]Move{g1f3}, []Move{e2e4}))
}

func TestMoveToBegin(t *testing.T) {
	var ml = []Move{
		NewMove(SquareE2, SquareE4, PromotionNone),
		NewMove(SquareD2, SquareD4, PromotionNone),
		NewMove(SquareG1, SquareF3, PromotionNone),
	}
	var index = FindMoveIndex(ml, NewMove(SquareG1, SquareF3, PromotionNone))
	require.Equal(t, 2, index)
	MoveToBegin(ml, index)
	assert.Equal(t, "g1f3", ml[0].String())
	assert.Equal(t, "e2e4", ml[1].String())
	assert.Equal(t, "d2d4", ml[2].String())
	assert.Equal(t, -1, FindMoveIndex(ml, MoveEmpty))
}

func TestScoreString(t *testing.T) {
	assert.Equal(t, "1.5", ScoreString(150))
	assert.Equal(t, "-0.25", ScoreString(-25))
	assert.Equal(t, "0", ScoreString(0))
	assert.Equal(t, "3", ScoreString(300))
}

func TestAutoStop(t *testing.T) {
	var limits = LimitsType{MoveTime: 50}
	assert.True(t, limits.AutoStop())
	limits.Infinite = true
	assert.False(t, limits.AutoStop())
	limits = LimitsType{MoveTime: 50, Ponder: true}
	assert.False(t, limits.AutoStop())
	assert.False(t, (&LimitsType{}).AutoStop())
}
