package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/avie-chess/avie/internal/config"
	"github.com/avie-chess/avie/internal/obslog"
	"github.com/avie-chess/avie/pkg/engine"
	"github.com/avie-chess/avie/pkg/uci"
)

/*
Avie is free software: you can redistribute it and/or modify it under the terms of the GNU General Public License as published by the Free Software Foundation, either version 3 of the License, or (at your option) any later version.
This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License for more details.
You should have received a copy of the GNU General Public License along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
)

var (
	flgConfig    string
	flgLogLevel  string
	flgLogFormat string
	flgHash      int
	flgStopMode  string
)

func main() {
	flag.StringVar(&flgConfig, "config", "", "path to a YAML config file")
	flag.StringVar(&flgLogLevel, "log-level", "", "debug, info, warn, error or off")
	flag.StringVar(&flgLogFormat, "log-format", "", "console or json")
	flag.IntVar(&flgHash, "hash", 0, "transposition table size in MB")
	flag.StringVar(&flgStopMode, "stop-mode", "", "async or join")
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var cfg, err = loadConfig()
	if err != nil {
		return err
	}

	logger, err := obslog.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info(cfg.Name,
		zap.String("VersionName", versionName),
		zap.String("BuildDate", buildDate),
		zap.String("GitRevision", gitRevision),
		zap.String("RuntimeVersion", runtime.Version()),
		zap.String("GOARCH", runtime.GOARCH),
		zap.String("GOOS", runtime.GOOS),
		zap.Int("NumCPU", runtime.NumCPU()),
	)

	var options = engine.NewOptions()
	options.Hash = cfg.Hash
	options.MaxDepth = cfg.MaxDepth
	var eng = engine.NewEngine(options)

	var protocol = uci.New(cfg.Protocol(), eng, engine.NewTransTable(eng.Options.Hash),
		[]uci.Option{
			&uci.IntOption{Name: "MaxDepth", Min: 0, Max: config.MaxMaxDepth, Value: &eng.Options.MaxDepth},
		},
		os.Stdout, logger)
	if err := protocol.Run(context.Background(), os.Stdin); err != nil {
		logger.Error("read input", zap.Error(err))
		return err
	}
	return nil
}

// loadConfig applies defaults, then the config file, then explicitly set flags.
func loadConfig() (config.Config, error) {
	var cfg = config.Default()
	if flgConfig != "" {
		var err error
		cfg, err = config.Load(flgConfig)
		if err != nil {
			return cfg, err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = flgLogLevel
		case "log-format":
			cfg.LogFormat = flgLogFormat
		case "hash":
			cfg.Hash = flgHash
		case "stop-mode":
			cfg.StopMode = flgStopMode
		}
	})
	if cfg.Version == "" || cfg.Version == "dev" {
		cfg.Version = versionName
	}
	return cfg, cfg.Validate()
}
