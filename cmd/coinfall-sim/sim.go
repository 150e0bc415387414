package main

import (
	"context"
	"runtime"
	"time"

	"github.com/plus3/coinfall/coin"
	"github.com/plus3/coinfall/game"
)

// Limits bounds a simulation run. Zero fields are unbounded; the context
// always bounds it.
type Limits struct {
	Frames int64
	Games  int
}

// simulate plays games back to back, restarting after each game over,
// and returns the results. The caller fills in the run configuration.
func simulate(ctx context.Context, session *game.Session, bot *Bot, dt float64, limits Limits) *Report {
	report := &Report{
		Coins: make([]CoinTotal, len(coin.All)),
	}
	for i, c := range coin.All {
		report.Coins[i].Coin = c.String()
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

	session.Start()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		if limits.Frames > 0 && report.Frames >= limits.Frames {
			break
		}

		if action, ok := bot.Next(); ok {
			session.Handle(action)
		}

		frameStart := time.Now()
		active := session.Frame(dt)
		report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))
		report.Frames++

		if !active {
			report.record(session, true)
			if limits.Games > 0 && len(report.Games) >= limits.Games {
				break
			}
			session.Start()
		}
	}

	if session.State().Active() {
		report.record(session, false)
	}

	report.TotalTime = time.Since(startTime)
	report.FrameTime.Finalize()
	report.Systems = session.Stats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	return report
}

func (r *Report) record(session *game.Session, finished bool) {
	snap := session.Snapshot()
	r.Games = append(r.Games, GameResult{
		Number:     snap.Games,
		Finished:   finished,
		Points:     snap.Points,
		Lines:      snap.LinesCleared,
		Pieces:     snap.PiecesPlaced,
		Scoreboard: snap.Scoreboard,
		Milestone:  session.Score().MilestoneFired(),
	})

	r.TotalLines += snap.LinesCleared
	r.TotalPieces += snap.PiecesPlaced
	for i, c := range coin.All {
		r.Coins[i].Count += session.Score().Count(c)
	}
}
