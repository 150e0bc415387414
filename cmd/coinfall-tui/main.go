// Command coinfall-tui plays the game in the terminal. Logs go to a file
// since the screen is owned by the game.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/coinfall/config"
	"github.com/plus3/coinfall/frontend/terminal"
	"github.com/plus3/coinfall/game"
	"github.com/plus3/coinfall/logging"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML configuration file.")
	seed := flag.Uint64("seed", 0, "Random seed. Zero seeds from the system source.")
	logLevel := flag.String("log-level", "", "Overrides the configured log level.")
	logFile := flag.String("log-file", "coinfall-tui.log", "Where to write logs.")
	mute := flag.Bool("mute", false, "Disable audio.")
	flag.Parse()

	if err := run(*configPath, *seed, *logLevel, *logFile, *mute); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, seed uint64, logLevel, logFile string, mute bool) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if mute {
		cfg.Audio.Enabled = false
	}

	log, err := logging.ToFile(cfg.LogLevel, logFile)
	if err != nil {
		return err
	}
	defer log.Sync()

	var audio game.Audio
	if cfg.Audio.Enabled {
		speaker := terminal.NewAudio(cfg.Audio.Volume)
		if err := speaker.Init(); err != nil {
			log.Warn("audio unavailable, running silent", zap.Error(err))
		} else {
			defer speaker.Close()
			audio = speaker
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	app, err := terminal.NewApp(screen, cfg, log, audio)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting", zap.Uint64("seed", cfg.Seed))
	return app.Run(ctx)
}
