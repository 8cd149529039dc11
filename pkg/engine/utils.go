package engine

import (
	"github.com/avie-chess/avie/pkg/common"
)

const (
	stackSize     = 64
	maxHeight     = stackSize - 1
	valueDraw     = 0
	valueMate     = 30000
	valueInfinity = valueMate + 1
	valueWin      = valueMate - 2*maxHeight
	valueLoss     = -valueWin
)

func winIn(height int) int {
	return valueMate - height
}

func lossIn(height int) int {
	return -valueMate + height
}

func valueToTT(v, height int) int {
	if v >= valueWin {
		return v + height
	}

	if v <= valueLoss {
		return v - height
	}

	return v
}

func valueFromTT(v, height int) int {
	if v >= valueWin {
		return v - height
	}

	if v <= valueLoss {
		return v + height
	}

	return v
}

// mateIn converts a mate score into full moves; 0 means no mate.
func mateIn(v int) int {
	if v >= valueWin {
		return (valueMate - v + 1) / 2
	} else if v <= valueLoss {
		return (-valueMate - v) / 2
	}
	return 0
}

func cloneMoves(ml []common.Move) []common.Move {
	var result = make([]common.Move, len(ml))
	copy(result, ml)
	return result
}
