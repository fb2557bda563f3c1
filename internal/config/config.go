// Package config collects the command-line settings of the game. The
// defaults reproduce the shipped game, so running without flags behaves
// exactly like it.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/plus3/skyraid/internal/game"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// Config is the full set of startup settings.
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int

	AssetDir string

	AirplaneSpeed   float64
	BackgroundSpeed float64
	ProjectileSpeed float64
	Scroll          string

	Frontend     string
	ReleaseAfter time.Duration

	Mute    bool
	Debug   bool
	LogFile string
}

// Default returns the shipped configuration.
func Default() Config {
	d := game.DefaultConfig()
	return Config{
		Width:           int(d.Bounds.Width),
		Height:          int(d.Bounds.Height),
		Title:           "Skyraid",
		TPS:             d.TPS,
		AssetDir:        "Assets",
		AirplaneSpeed:   d.AirplaneSpeed,
		BackgroundSpeed: d.BackgroundSpeed,
		ProjectileSpeed: d.ProjectileSpeed,
		Scroll:          d.Scroll.String(),
		Frontend:        FrontendWindow,
		ReleaseAfter:    500 * time.Millisecond,
	}
}

// Bind registers a flag for every field, using the current values as
// defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "Window width in pixels.")
	fs.IntVar(&c.Height, "height", c.Height, "Window height in pixels.")
	fs.StringVar(&c.Title, "title", c.Title, "Window title.")
	fs.IntVar(&c.TPS, "tps", c.TPS, "Simulation ticks per second.")
	fs.StringVar(&c.AssetDir, "assets", c.AssetDir, "Directory holding the images and the fire sound.")
	fs.Float64Var(&c.AirplaneSpeed, "airplane-speed", c.AirplaneSpeed, "Airplane step per tick.")
	fs.Float64Var(&c.BackgroundSpeed, "background-speed", c.BackgroundSpeed, "Background scroll per tick.")
	fs.Float64Var(&c.ProjectileSpeed, "projectile-speed", c.ProjectileSpeed, "Projectile step per tick.")
	fs.StringVar(&c.Scroll, "scroll", c.Scroll, "Background scroll mode: legacy or modulo.")
	fs.StringVar(&c.Frontend, "frontend", c.Frontend, "Where to play: window or terminal.")
	fs.DurationVar(&c.ReleaseAfter, "release-after", c.ReleaseAfter, "Terminal only: treat a key as released after this long without a repeat.")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "Disable sound.")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Window only: show the debug overlay.")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "Write the log to this file instead of stderr.")
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.AssetDir == "" {
		errs = append(errs, errors.New("asset directory must not be empty"))
	}
	if c.AirplaneSpeed < 0 || c.BackgroundSpeed < 0 || c.ProjectileSpeed <= 0 {
		errs = append(errs, fmt.Errorf("speeds must not be negative and projectiles must move, got airplane=%g background=%g projectile=%g",
			c.AirplaneSpeed, c.BackgroundSpeed, c.ProjectileSpeed))
	}
	if _, err := game.ParseScrollMode(c.Scroll); err != nil {
		errs = append(errs, err)
	}
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		errs = append(errs, fmt.Errorf("unknown frontend %q", c.Frontend))
	}
	if c.ReleaseAfter <= 0 {
		errs = append(errs, fmt.Errorf("release-after must be positive, got %s", c.ReleaseAfter))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Game converts the settings into the gameplay configuration.
func (c Config) Game() (game.Config, error) {
	scroll, err := game.ParseScrollMode(c.Scroll)
	if err != nil {
		return game.Config{}, fmt.Errorf("config: %w", err)
	}

	g := game.DefaultConfig()
	g.Bounds = game.Bounds{Width: float64(c.Width), Height: float64(c.Height)}
	g.TPS = c.TPS
	g.AirplaneSpeed = c.AirplaneSpeed
	g.BackgroundSpeed = c.BackgroundSpeed
	g.ProjectileSpeed = c.ProjectileSpeed
	g.Scroll = scroll
	return g, nil
}
