package uci

import (
	"context"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/avie-chess/avie/pkg/board"
	"github.com/avie-chess/avie/pkg/common"
	"github.com/avie-chess/avie/pkg/engine"
)

type Engine interface {
	Search(ctx context.Context, p *board.Position, moves []common.Move,
		transTable *engine.TransTable, limits common.LimitsType) common.SearchResult
}

type StopMode string

const (
	// StopAsync only signals the search; the search task prints bestmove itself.
	StopAsync StopMode = "async"
	// StopJoin also waits in the command loop until bestmove has been printed.
	StopJoin StopMode = "join"
)

type Config struct {
	Name               string
	Author             string
	Version            string
	StopMode           StopMode
	ClearHashOnNewGame bool
	PositionWait       time.Duration
}

// Protocol is the state of one engine session. Only workspace and the
// search context are shared with the search task; the remaining fields
// belong to the command loop.
type Protocol struct {
	config    Config
	options   []Option
	engine    Engine
	workspace *Workspace
	out       *lineWriter
	logger    *zap.Logger

	ctx    context.Context
	debug  atomic.Bool
	quit   bool
	cancel context.CancelFunc
	task   *searchTask
}

func New(config Config, eng Engine, transTable *engine.TransTable,
	options []Option, out io.Writer, logger *zap.Logger) *Protocol {
	if config.StopMode == "" {
		config.StopMode = StopAsync
	}
	var uci = &Protocol{
		config:    config,
		engine:    eng,
		workspace: NewWorkspace(transTable),
		out:       &lineWriter{w: out},
		logger:    logger,
		ctx:       context.Background(),
	}
	uci.options = append([]Option{
		&BoolOption{Name: "ClearHashOnNewGame", Value: &uci.config.ClearHashOnNewGame},
	}, options...)
	return uci
}

func (uci *Protocol) Debug() bool {
	return uci.debug.Load()
}

func (uci *Protocol) Quit() bool {
	return uci.quit
}

// Handle executes one command line. Tokens before the first known command
// are skipped, so "xyz isready" is handled as "isready".
func (uci *Protocol) Handle(commandLine string) {
	var fields = strings.Fields(commandLine)
	for len(fields) != 0 {
		var commandName = fields[0]
		fields = fields[1:]
		if h := uci.handler(commandName); h != nil {
			h(fields)
			return
		}
		uci.logger.Debug("unknown token skipped", zap.String("token", commandName))
	}
}

func (uci *Protocol) handler(commandName string) func(fields []string) {
	switch commandName {
	case "uci":
		return uci.uciCommand
	case "debug":
		return uci.debugCommand
	case "isready":
		return uci.isReadyCommand
	case "setoption":
		return uci.setOptionCommand
	case "ucinewgame":
		return uci.uciNewGameCommand
	case "position":
		return uci.positionCommand
	case "go":
		return uci.goCommand
	case "stop":
		return uci.stopCommand
	case "ponderhit":
		return uci.ponderhitCommand
	case "quit":
		return uci.quitCommand
	}
	return nil
}

func (uci *Protocol) uciCommand(fields []string) {
	var lines = []string{
		"id name " + uci.config.Name + " " + uci.config.Version,
		"id author " + uci.config.Author,
	}
	for _, option := range uci.options {
		lines = append(lines, option.UciString())
	}
	lines = append(lines, "uciok")
	uci.out.Println(lines...)
}

func (uci *Protocol) debugCommand(fields []string) {
	if len(fields) == 0 {
		return
	}
	switch fields[0] {
	case "on":
		uci.debug.Store(true)
	case "off":
		uci.debug.Store(false)
	default:
		uci.logger.Debug("invalid debug argument", zap.String("arg", fields[0]))
	}
}

func (uci *Protocol) isReadyCommand(fields []string) {
	uci.out.Println("readyok")
}

func (uci *Protocol) setOptionCommand(fields []string) {
	if uci.searching() {
		uci.logger.Warn("setoption ignored while searching")
		return
	}
	var nameIndex = findIndexString(fields, "name")
	var valueIndex = findIndexString(fields, "value")
	if nameIndex < 0 || valueIndex < nameIndex {
		uci.logger.Warn("invalid setoption arguments", zap.Strings("fields", fields))
		return
	}
	var name = strings.Join(fields[nameIndex+1:valueIndex], " ")
	var value = strings.Join(fields[valueIndex+1:], " ")
	for _, option := range uci.options {
		if strings.EqualFold(option.UciName(), name) {
			if err := option.Set(value); err != nil {
				uci.logger.Warn("setoption failed", zap.Error(err))
			}
			return
		}
	}
	uci.logger.Warn("unhandled option", zap.String("name", name))
}

func (uci *Protocol) uciNewGameCommand(fields []string) {
	if !uci.config.ClearHashOnNewGame {
		return
	}
	var ws = uci.workspace
	if !ws.mu.TryLock() {
		uci.logger.Debug("hash not cleared, search in progress")
		return
	}
	defer ws.mu.Unlock()
	ws.transTable.Clear()
}

func (uci *Protocol) quitCommand(fields []string) {
	if uci.cancel != nil {
		uci.cancel()
	}
	uci.quit = true
}

func findIndexString(slice []string, value string) int {
	for p, v := range slice {
		if v == value {
			return p
		}
	}
	return -1
}
