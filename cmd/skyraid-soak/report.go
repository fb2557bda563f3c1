package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/skyraid/ecs"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Ticks     int
	TurnEvery int
	FireEvery int
	Scroll    string

	// Results
	TotalTicks     uint64
	TotalTime      time.Duration
	TickTime       Stats
	Fired          uint64
	Removed        uint64
	MaxLive        int
	Violations     []Violation
	ViolationCount int
	Systems        []ecs.SystemStats
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Stats keeps running figures over a series of durations.
type Stats struct {
	Count int64
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
}

func (s *Stats) Add(d time.Duration) {
	if s.Count == 0 || d < s.Min {
		s.Min = d
	}
	s.Max = max(s.Max, d)
	s.Total += d
	s.Count++
}

func (s *Stats) Finalize() {
	if s.Count == 0 {
		return
	}
	s.Avg = s.Total / time.Duration(s.Count)
}

const maxListedViolations = 20

// Record counts violations and keeps the first maxListedViolations of them.
func (r *Report) Record(vs []Violation) {
	r.ViolationCount += len(vs)
	if room := maxListedViolations - len(r.Violations); room > 0 {
		r.Violations = append(r.Violations, vs[:min(room, len(vs))]...)
	}
}

// Passed reports whether the run saw no invariant violation.
func (r *Report) Passed() bool {
	return r.ViolationCount == 0
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Skyraid Soak Report

## Run Configuration
{{- if .Ticks}}
- **Ticks:** {{.Ticks}}
{{- else}}
- **Run Duration:** {{.Duration}}
{{- end}}
- **Turn Every:** {{.TurnEvery}} ticks
- **Fire Every:** {{.FireEvery}} ticks
- **Scroll:** {{.Scroll}}

## Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}
- **Projectiles:** {{.Fired}} fired, {{.Removed}} removed, {{.MaxLive}} live at most

## Systems
| System | Runs | Avg | Max |
|---|---|---|---|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

## Invariants
{{- if .Passed}}
All invariants held.
{{- else}}
{{.ViolationCount}} violations, first {{len .Violations}}:
{{- range .Violations}}
- tick {{.Tick}}: {{.Message}}
{{- end}}
{{- end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
