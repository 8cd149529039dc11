package engine

import (
	"context"
	"errors"

	"github.com/avie-chess/avie/pkg/board"
	"github.com/avie-chess/avie/pkg/common"
)

var errSearchTimeout = errors.New("search timeout")

const pollMask = 63

type searcher struct {
	ctx        context.Context
	tm         *simpleTimeManager
	transTable *TransTable
	nodes      int64
	stack      [stackSize]struct {
		moves    [common.MaxMoves]common.Move
		moveList [common.MaxMoves]orderedMove
	}
}

type rootLine struct {
	move  common.Move
	score int
	found bool
}

func (s *searcher) incNodes() {
	s.nodes++
	if s.nodes&pollMask == 0 {
		s.tm.OnNodesChanged(int(s.nodes))
		select {
		case <-s.ctx.Done():
			panic(errSearchTimeout)
		default:
		}
	}
}

// searchRoot searches every root move to the given depth.
// When interrupted it reports the best move scored so far and completed == false.
func (s *searcher) searchRoot(p *board.Position, ml []common.Move, depth int) (line rootLine, completed bool) {
	defer func() {
		if r := recover(); r != nil {
			if r == errSearchTimeout {
				completed = false
				return
			}
			panic(r)
		}
	}()

	const height = 0
	var alpha = -valueInfinity
	for _, move := range ml {
		var child, err = p.Play(move)
		if err != nil {
			continue
		}
		var score = -s.alphaBeta(child, -valueInfinity, -alpha, depth-1, height+1)
		if !line.found || score > alpha {
			alpha = score
			line = rootLine{move: move, score: score, found: true}
		}
	}
	if line.found {
		s.transTable.Update(p.Key(), depth, valueToTT(line.score, height), boundExact, line.move)
	}
	return line, true
}

func (s *searcher) alphaBeta(p *board.Position, alpha, beta, depth, height int) int {
	if depth <= 0 {
		return s.quiescence(p, alpha, beta, height)
	}
	s.incNodes()

	if height >= maxHeight {
		return evaluate(p)
	}

	// mate distance pruning
	alpha = max(alpha, lossIn(height))
	beta = min(beta, winIn(height+1))
	if alpha >= beta {
		return alpha
	}

	var key = p.Key()
	var ttDepth, ttValue, ttBound, ttMove, ttHit = s.transTable.Read(key)
	if ttHit {
		ttValue = valueFromTT(ttValue, height)
		if ttDepth >= depth {
			if ttValue >= beta && (ttBound&boundLower) != 0 {
				return ttValue
			}
			if ttValue <= alpha && (ttBound&boundUpper) != 0 {
				return ttValue
			}
		}
	}

	var frame = &s.stack[height]
	var ml = generateOrdered(p, frame.moves[:], frame.moveList[:], ttMove, false)
	if len(ml) == 0 {
		if p.Status() == board.Checkmate {
			return lossIn(height)
		}
		return valueDraw
	}

	var oldAlpha = alpha
	var best = -valueInfinity
	var bestMove = common.MoveEmpty
	for i := range ml {
		var move = ml[i].Move
		var child, err = p.Play(move)
		if err != nil {
			continue
		}
		var score = -s.alphaBeta(child, -beta, -alpha, depth-1, height+1)
		if score > best {
			best = score
			bestMove = move
		}
		if score > alpha {
			alpha = score
			if alpha >= beta {
				break
			}
		}
	}

	var bound = boundUpper
	if best >= beta {
		bound = boundLower
	} else if best > oldAlpha {
		bound = boundExact
	}
	s.transTable.Update(key, depth, valueToTT(best, height), bound, bestMove)
	return best
}

func (s *searcher) quiescence(p *board.Position, alpha, beta, height int) int {
	s.incNodes()
	var eval = evaluate(p)
	if height >= maxHeight {
		return eval
	}
	if eval > alpha {
		alpha = eval
		if alpha >= beta {
			return alpha
		}
	}
	var frame = &s.stack[height]
	var ml = generateOrdered(p, frame.moves[:], frame.moveList[:], common.MoveEmpty, true)
	for i := range ml {
		var child, err = p.Play(ml[i].Move)
		if err != nil {
			continue
		}
		var score = -s.quiescence(child, -beta, -alpha, height+1)
		if score > alpha {
			alpha = score
			if alpha >= beta {
				break
			}
		}
	}
	return alpha
}
