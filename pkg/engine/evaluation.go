package engine

import (
	"github.com/avie-chess/avie/pkg/board"
	"github.com/avie-chess/avie/pkg/common"
)

var pieceValues = [...]int{
	board.Empty:  0,
	board.Pawn:   100,
	board.Knight: 320,
	board.Bishop: 330,
	board.Rook:   500,
	board.Queen:  900,
	board.King:   0,
}

// centre distance, 0 for the four central squares
func centerDistance(sq int) int {
	var file = common.File(sq)
	var rank = common.Rank(sq)
	var df = max(common.FileD-file, file-common.FileE)
	var dr = max(common.Rank4-rank, rank-common.Rank5)
	return max(df, dr)
}

func pieceBonus(piece int, white bool, sq int) int {
	switch piece {
	case board.Pawn:
		var advance = common.Rank(sq) - common.Rank2
		if !white {
			advance = common.Rank7 - common.Rank(sq)
		}
		return 4 * advance
	case board.Knight, board.Bishop:
		return 10 - 4*centerDistance(sq)
	case board.Queen:
		return 3 - centerDistance(sq)
	}
	return 0
}

// evaluate returns the static score from the side to move's point of view.
func evaluate(p *board.Position) int {
	var score = 0
	for sq := 0; sq < common.SquareCount; sq++ {
		var piece, white = p.PieceAt(sq)
		if piece == board.Empty {
			continue
		}
		var v = pieceValues[piece] + pieceBonus(piece, white, sq)
		if white {
			score += v
		} else {
			score -= v
		}
	}
	if !p.WhiteToMove() {
		score = -score
	}
	return score
}
