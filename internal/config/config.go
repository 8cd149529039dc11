package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/avie-chess/avie/internal/obslog"
	"github.com/avie-chess/avie/pkg/uci"
)

type Config struct {
	Name               string        `yaml:"name"`
	Author             string        `yaml:"author"`
	Version            string        `yaml:"version"`
	Hash               int           `yaml:"hash"`
	LogLevel           string        `yaml:"log_level"`
	LogFormat          string        `yaml:"log_format"`
	StopMode           string        `yaml:"stop_mode"`
	ClearHashOnNewGame bool          `yaml:"clear_hash_on_new_game"`
	PositionWait       time.Duration `yaml:"position_wait"`
	MaxDepth           int           `yaml:"max_depth"`
}

const (
	MinHash     = 1
	MaxHash     = 1 << 16
	MaxMaxDepth = 60
)

var errInvalid = errors.New("invalid config")

func Default() Config {
	return Config{
		Name:      "Avie",
		Author:    "Avie authors",
		Version:   "dev",
		Hash:      16,
		LogLevel:  "info",
		LogFormat: "console",
		StopMode:  string(uci.StopAsync),
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep their default value.
func Load(path string) (Config, error) {
	var cfg = Default()
	var b, err = os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %v: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: empty name", errInvalid)
	}
	if c.Hash < MinHash || c.Hash > MaxHash {
		return fmt.Errorf("%w: hash %v out of range [%v, %v]", errInvalid, c.Hash, MinHash, MaxHash)
	}
	if c.MaxDepth < 0 || c.MaxDepth > MaxMaxDepth {
		return fmt.Errorf("%w: max_depth %v out of range [0, %v]", errInvalid, c.MaxDepth, MaxMaxDepth)
	}
	if c.PositionWait < 0 {
		return fmt.Errorf("%w: negative position_wait", errInvalid)
	}
	switch uci.StopMode(c.StopMode) {
	case uci.StopAsync, uci.StopJoin:
	default:
		return fmt.Errorf("%w: stop_mode %q", errInvalid, c.StopMode)
	}
	if _, err := obslog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", errInvalid, err)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log_format %q", errInvalid, c.LogFormat)
	}
	return nil
}

func (c Config) Protocol() uci.Config {
	return uci.Config{
		Name:               c.Name,
		Author:             c.Author,
		Version:            c.Version,
		StopMode:           uci.StopMode(c.StopMode),
		ClearHashOnNewGame: c.ClearHashOnNewGame,
		PositionWait:       c.PositionWait,
	}
}
