package engine

import (
	"github.com/avie-chess/avie/pkg/board"
	"github.com/avie-chess/avie/pkg/common"
)

const sortTableKeyImportant = 100000

type orderedMove struct {
	Move common.Move
	Key  int32
}

func mvvlva(p *board.Position, m common.Move) int {
	var victim, _ = p.PieceAt(int(m.To))
	var attacker, _ = p.PieceAt(int(m.From))
	return 8*victim - attacker
}

func isNoisy(p *board.Position, m common.Move) bool {
	return m.Promotion != common.PromotionNone || p.IsCapture(m)
}

// generateOrdered fills buffer with the legal moves of p, best candidates first.
// With noisyOnly set only captures and promotions are kept.
func generateOrdered(p *board.Position, moves []common.Move, buffer []orderedMove,
	transMove common.Move, noisyOnly bool) []orderedMove {
	var ml = p.GenerateMoves(moves)
	var count = 0
	for _, m := range ml {
		var noisy = isNoisy(p, m)
		if noisyOnly && !noisy {
			continue
		}
		var score int
		if m == transMove {
			score = sortTableKeyImportant + 2000
		} else if noisy {
			score = sortTableKeyImportant + 1000 + mvvlva(p, m)
			if m.Promotion == common.PromotionQueen {
				score += 100
			}
		}
		buffer[count] = orderedMove{Move: m, Key: int32(score)}
		count++
	}
	sortMoves(buffer[:count])
	return buffer[:count]
}

func sortMoves(moves []orderedMove) {
	for i := 1; i < len(moves); i++ {
		var j, t = i, moves[i]
		for ; j > 0 && moves[j-1].Key < t.Key; j-- {
			moves[j] = moves[j-1]
		}
		moves[j] = t
	}
}
