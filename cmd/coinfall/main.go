// Command coinfall opens the game in a desktop window.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plus3/coinfall/config"
	"github.com/plus3/coinfall/frontend/desktop"
	"github.com/plus3/coinfall/logging"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML configuration file.")
	seed := flag.Uint64("seed", 0, "Random seed. Zero seeds from the system source.")
	logLevel := flag.String("log-level", "", "Overrides the configured log level.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	mute := flag.Bool("mute", false, "Disable audio.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *mute {
		cfg.Audio.Enabled = false
	}

	log, err := logging.New(cfg.LogLevel, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	app, err := desktop.NewApp(cfg, log, *debug)
	if err != nil {
		log.Fatal("failed to create app", zap.Error(err))
	}

	log.Info("starting", zap.Uint64("seed", cfg.Seed), zap.Bool("debug", *debug))
	if err := app.Run(); err != nil {
		log.Fatal("game exited with error", zap.Error(err))
	}
}
