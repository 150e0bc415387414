// Command coinfall-sim plays seeded games with a random input bot and
// prints a Markdown report.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/plus3/coinfall/config"
	"github.com/plus3/coinfall/game"
	"github.com/plus3/coinfall/logging"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML configuration file.")
	seed := flag.Uint64("seed", 0, "Random seed. Zero picks one and prints it in the report.")
	duration := flag.Duration("duration", 10*time.Second, "The total wall-clock duration the simulation should run for.")
	frames := flag.Int64("frames", 0, "Stop after this many frames. Zero runs for the full duration.")
	games := flag.Int("games", 0, "Stop after this many finished games. Zero is unbounded.")
	frameDelta := flag.Duration("dt", time.Second/60, "Simulated time per frame.")
	pressChance := flag.Float64("press-chance", 0.3, "Probability that the bot presses a key on a frame.")
	logLevel := flag.String("log-level", "", "Overrides the configured log level.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}

	log, err := logging.New(cfg.LogLevel, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	session, err := game.NewSession(cfg, game.WithLogger(log.Named("session")))
	if err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}
	bot := NewBot(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)), *pressChance)

	log.Info("running simulation",
		zap.Uint64("seed", cfg.Seed),
		zap.Duration("duration", *duration),
		zap.Int64("frames", *frames),
		zap.Int("games", *games),
	)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	report := simulate(ctx, session, bot, frameDelta.Seconds(), Limits{Frames: *frames, Games: *games})
	report.Seed = cfg.Seed
	report.Duration = *duration
	report.FrameDelta = *frameDelta
	report.PressChance = *pressChance
	report.Pool = cfg.SpawnPool
	report.GCPauseMetrics = *gcPauseMetrics

	log.Info("simulation finished",
		zap.Int64("frames", report.Frames),
		zap.Int("games", len(report.Games)),
		zap.Int("lines", report.TotalLines),
	)

	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal("failed to generate report", zap.Error(err))
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
