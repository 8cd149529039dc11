package uci

import (
	"sync"
	"time"

	"github.com/avie-chess/avie/pkg/board"
	"github.com/avie-chess/avie/pkg/common"
	"github.com/avie-chess/avie/pkg/engine"
)

// Workspace is the state shared by the command loop and the search task.
// Every field is guarded by mu.
type Workspace struct {
	mu         sync.Mutex
	position   *board.Position
	moves      [common.MaxMoves]common.Move
	transTable *engine.TransTable
}

func NewWorkspace(transTable *engine.TransTable) *Workspace {
	return &Workspace{
		position:   board.NewPosition(),
		transTable: transTable,
	}
}

// tryLock acquires the lock without blocking, or retries for at most wait.
func (ws *Workspace) tryLock(wait time.Duration) bool {
	if ws.mu.TryLock() {
		return true
	}
	if wait <= 0 {
		return false
	}
	var deadline = time.Now().Add(wait)
	for time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
		if ws.mu.TryLock() {
			return true
		}
	}
	return false
}

// candidates resets the move buffer and fills it with the legal moves,
// narrowed to restrict when it is not empty.
func (ws *Workspace) candidates(restrict []common.Move) []common.Move {
	common.ResetMoves(ws.moves[:])
	var ml = ws.position.GenerateMoves(ws.moves[:])
	if len(restrict) != 0 {
		ml = common.RestrictMoves(ml, restrict)
	}
	return ml
}
