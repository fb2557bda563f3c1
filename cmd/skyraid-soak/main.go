package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/skyraid/internal/assets"
	"github.com/plus3/skyraid/internal/config"
	"github.com/plus3/skyraid/internal/game"
)

// Sizes of the shipped sprites, used when no asset directory is available.
var fallbackSizes = game.Sizes{
	Airplane:   game.Vec2{X: 50, Y: 40},
	Background: game.Vec2{X: 1200, Y: 600},
	Projectile: game.Vec2{X: 20, Y: 10},
}

func main() {
	cfg := config.Default()
	fs := flag.NewFlagSet("skyraid-soak", flag.ExitOnError)
	cfg.Bind(fs)
	duration := fs.Duration("duration", 10*time.Second, "How long to run when -ticks is zero.")
	ticks := fs.Int("ticks", 0, "Run exactly this many ticks instead of a fixed duration.")
	turnEvery := fs.Int("turn-every", 45, "Change direction every N ticks; 0 holds no key.")
	fireEvery := fs.Int("fire-every", 3, "Fire every N ticks; 0 never fires.")
	fs.Parse(os.Args[1:])

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	gameCfg, err := cfg.Game()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	sizes := fallbackSizes
	if pack, err := assets.Load(os.DirFS(cfg.AssetDir), assets.DefaultManifest()); err != nil {
		log.Printf("Using built-in sprite sizes: %v", err)
	} else {
		sizes = pack.Sizes()
	}

	log.Println("Starting soak run...")
	g := game.New(gameCfg, sizes)
	script := &Script{TurnEvery: *turnEvery, FireEvery: *fireEvery}

	report := &Report{
		Duration:  *duration,
		Ticks:     *ticks,
		TurnEvery: *turnEvery,
		FireEvery: *fireEvery,
		Scroll:    cfg.Scroll,
	}

	ctx := context.Background()
	if *ticks <= 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	start := time.Now()
	Soak(ctx, g, script, *ticks, report)
	report.TotalTime = time.Since(start)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak run finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if !report.Passed() {
		os.Exit(1)
	}
}

// Soak drives g with the script until ctx is done or, when ticks is
// positive, for exactly that many ticks, and fills in the results of r.
func Soak(ctx context.Context, g *game.Game, script *Script, ticks int, r *Report) {
	for n := 0; ticks <= 0 || n < ticks; n++ {
		if ctx.Err() != nil {
			break
		}

		for _, e := range script.Next() {
			g.Push(e)
		}

		tickStart := time.Now()
		g.Tick()
		r.TickTime.Add(time.Since(tickStart))

		r.MaxLive = max(r.MaxLive, len(g.Projectiles()))
		r.Record(Check(g))
	}

	stats := g.Stats()
	r.TotalTicks = stats.Tick
	r.Fired = stats.Fired
	r.Removed = stats.Removed
	r.Systems = stats.Scheduler.Systems
	r.TickTime.Finalize()
}
