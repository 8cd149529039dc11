package uci

import (
	"strings"

	"go.uber.org/zap"

	"github.com/avie-chess/avie/pkg/board"
	"github.com/avie-chess/avie/pkg/common"
)

// positionCommand replaces the board. While a search holds the workspace
// the update is dropped (or retried for Config.PositionWait).
func (uci *Protocol) positionCommand(fields []string) {
	if len(fields) == 0 {
		return
	}
	var movesIndex = findIndexString(fields, "moves")
	var fen string
	switch fields[0] {
	case "startpos":
		fen = common.InitialPositionFen
	case "fen":
		var end = len(fields)
		if movesIndex >= 0 {
			end = movesIndex
		}
		fen = strings.Join(fields[1:end], " ")
	default:
		uci.logger.Debug("unknown position command", zap.String("kind", fields[0]))
		return
	}

	var p, err = board.DecodeFEN(fen)
	if err != nil {
		uci.out.Printf("info string error: %v", err)
		return
	}

	var ws = uci.workspace
	if !ws.tryLock(uci.config.PositionWait) {
		uci.logger.Debug("position dropped, search in progress")
		return
	}
	defer ws.mu.Unlock()
	ws.position = p

	if movesIndex < 0 {
		return
	}
	var moves, ok = common.ParseMoves(fields[movesIndex+1:])
	for _, move := range moves {
		if err := p.MakeMove(move); err != nil {
			uci.logger.Debug("move list truncated", zap.Error(err))
			return
		}
	}
	if !ok {
		uci.logger.Debug("move list truncated at malformed move",
			zap.Strings("moves", fields[movesIndex+1:]))
	}
}
