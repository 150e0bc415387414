package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/coinfall/loop"
)

type Report struct {
	// Configuration
	Seed        uint64
	Duration    time.Duration
	FrameDelta  time.Duration
	PressChance float64
	Pool        []string

	// Results
	Frames         int64
	TotalTime      time.Duration
	FrameTime      Stats
	Games          []GameResult
	TotalLines     int
	TotalPieces    int
	Coins          []CoinTotal
	Systems        []loop.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type GameResult struct {
	Number     int
	Finished   bool
	Points     int
	Lines      int
	Pieces     int
	Scoreboard string
	Milestone  bool
}

type CoinTotal struct {
	Coin  string
	Count int
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// FinishedGames counts games that reached game over.
func (r *Report) FinishedGames() int {
	n := 0
	for _, g := range r.Games {
		if g.Finished {
			n++
		}
	}
	return n
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Coinfall Simulation Report

## Configuration
- **Seed:** {{.Seed}}
- **Run Duration:** {{.Duration}}
- **Frame Delta:** {{.FrameDelta}}
- **Press Chance:** {{printf "%.2f" .PressChance}}
- **Spawn Pool:** {{join .Pool}}

## Results
- **Frames:** {{.Frames}}
- **Total Time:** {{.TotalTime}}
- **Games Finished:** {{.FinishedGames}} of {{len .Games}}
- **Lines Cleared:** {{.TotalLines}}
- **Pieces Placed:** {{.TotalPieces}}
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}

## Coins Cleared
| Coin | Cells |
|------|-------|
{{range .Coins}}| {{.Coin}} | {{.Count}} |
{{end}}
## Games
| # | Finished | Points | Lines | Pieces | Milestone | Scoreboard |
|---|----------|--------|-------|--------|-----------|------------|
{{range .Games}}| {{.Number}} | {{.Finished}} | {{.Points}} | {{.Lines}} | {{.Pieces}} | {{.Milestone}} | {{.Scoreboard}} |
{{end}}
## Systems
| System | Runs | Avg | Min | Max |
|--------|------|-----|-----|-----|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"join": func(items []string) string {
			if len(items) == 0 {
				return "default"
			}
			return fmt.Sprint(items)
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
