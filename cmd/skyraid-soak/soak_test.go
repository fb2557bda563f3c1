package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/skyraid/internal/game"
	"github.com/plus3/skyraid/internal/input"
)

func TestScript(t *testing.T) {
	s := &Script{TurnEvery: 2, FireEvery: 3}

	assert.Equal(t, []input.Event{
		input.Press(input.ActionUp),
		input.Press(input.ActionFire), input.Release(input.ActionFire),
	}, s.Next())
	assert.Empty(t, s.Next())
	assert.Equal(t, []input.Event{
		input.Release(input.ActionUp), input.Press(input.ActionRight),
	}, s.Next())
	assert.Equal(t, []input.Event{
		input.Press(input.ActionFire), input.Release(input.ActionFire),
	}, s.Next())
}

func TestScriptIdle(t *testing.T) {
	s := &Script{}
	for range 10 {
		assert.Empty(t, s.Next())
	}
}

func TestSoakHoldsInvariants(t *testing.T) {
	for _, scroll := range []game.ScrollMode{game.ScrollLegacy, game.ScrollModulo} {
		t.Run(scroll.String(), func(t *testing.T) {
			cfg := game.DefaultConfig()
			cfg.Scroll = scroll
			g := game.New(cfg, fallbackSizes)

			r := &Report{Ticks: 2000, TurnEvery: 45, FireEvery: 3, Scroll: scroll.String()}
			Soak(context.Background(), g, &Script{TurnEvery: 45, FireEvery: 3}, 2000, r)

			assert.Empty(t, r.Violations)
			assert.Zero(t, r.ViolationCount)
			assert.Equal(t, uint64(2000), r.TotalTicks)
			assert.Equal(t, uint64(667), r.Fired)
			assert.Greater(t, r.Removed, uint64(600))
			assert.Len(t, r.Systems, 4)
			assert.Equal(t, int64(2000), r.TickTime.Count)
			assert.LessOrEqual(t, r.TickTime.Min, r.TickTime.Max)
		})
	}
}

func TestSoakStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := game.New(game.DefaultConfig(), fallbackSizes)
	r := &Report{}
	Soak(ctx, g, &Script{}, 0, r)
	assert.Zero(t, r.TotalTicks)
}

func TestCheckReportsViolations(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.AirplaneStart = game.Vec2{X: 10, Y: 300}
	g := game.New(cfg, fallbackSizes)
	g.Tick()

	violations := Check(g)
	require.Len(t, violations, 1)
	assert.Equal(t, uint64(1), violations[0].Tick)
	assert.Contains(t, violations[0].Message, "airplane out of bounds")
}

func TestReportGenerate(t *testing.T) {
	g := game.New(game.DefaultConfig(), fallbackSizes)
	r := &Report{Ticks: 100, TurnEvery: 10, FireEvery: 5, Scroll: "legacy"}
	Soak(context.Background(), g, &Script{TurnEvery: 10, FireEvery: 5}, 100, r)

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Skyraid Soak Report")
	assert.Contains(t, out, "- **Ticks:** 100")
	assert.Contains(t, out, "| InputSystem | 100 |")
	assert.Contains(t, out, "All invariants held.")
	assert.NotContains(t, out, "Run Duration")

	r.Record(make([]Violation, 25))
	buf.Reset()
	require.NoError(t, r.Generate(&buf))
	assert.Contains(t, buf.String(), "25 violations, first 20:")
	assert.Equal(t, maxListedViolations, bytes.Count(buf.Bytes(), []byte("- tick 0:")))
}

func TestReportRecordKeepsOnlyTheFirstViolations(t *testing.T) {
	r := &Report{}
	for tick := range 1000 {
		r.Record([]Violation{{Tick: uint64(tick), Message: "a"}, {Tick: uint64(tick), Message: "b"}})
	}

	assert.Equal(t, 2000, r.ViolationCount)
	require.Len(t, r.Violations, maxListedViolations)
	assert.Equal(t, uint64(0), r.Violations[0].Tick)
	assert.Equal(t, uint64(9), r.Violations[maxListedViolations-1].Tick)
	assert.False(t, r.Passed())
}

func TestStats(t *testing.T) {
	var s Stats
	s.Finalize()
	assert.Zero(t, s.Avg)

	for _, d := range []time.Duration{3, 1, 2} {
		s.Add(d * time.Millisecond)
	}
	s.Finalize()

	assert.Equal(t, int64(3), s.Count)
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)
}
