package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/skyraid/internal/assets"
	"github.com/plus3/skyraid/internal/audio"
	"github.com/plus3/skyraid/internal/config"
	"github.com/plus3/skyraid/internal/debugui"
	"github.com/plus3/skyraid/internal/frontend/terminal"
	"github.com/plus3/skyraid/internal/frontend/window"
	"github.com/plus3/skyraid/internal/game"
)

const fadeInSeconds = 0.5

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain runs the game and returns the process exit code. Errors are
// logged before it returns, so deferred cleanup such as closing the log file
// always runs.
func realMain(args []string) int {
	cfg := config.Default()
	fs := flag.NewFlagSet("skyraid", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := cfg.Validate(); err != nil {
		log.Printf("Invalid configuration: %v", err)
		return 1
	}

	closeLog, err := setupLog(cfg)
	if err != nil {
		log.Printf("Failed to open log: %v", err)
		return 1
	}
	defer closeLog()

	if err := run(cfg); err != nil {
		log.Printf("skyraid: %v", err)
		return 1
	}
	log.Println("Bye.")
	return 0
}

// setupLog sends the log to cfg.LogFile when one is set. The returned
// function closes the file and restores the previous output.
func setupLog(cfg config.Config) (func(), error) {
	if cfg.LogFile == "" {
		return func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	prev := log.Writer()
	log.SetOutput(f)
	return func() {
		log.SetOutput(prev)
		f.Close()
	}, nil
}

// quietLog discards the log while the terminal frontend owns the screen,
// unless it already goes to a file. The returned function restores it.
func quietLog(cfg config.Config) func() {
	if cfg.LogFile != "" {
		return func() {}
	}

	prev := log.Writer()
	log.SetOutput(io.Discard)
	return func() { log.SetOutput(prev) }
}

func run(cfg config.Config) error {
	gameCfg, err := cfg.Game()
	if err != nil {
		return err
	}

	log.Printf("Loading assets from %s...\n", cfg.AssetDir)
	pack, err := assets.Load(os.DirFS(cfg.AssetDir), assets.DefaultManifest())
	if err != nil {
		return err
	}

	fire, closeAudio := openAudio(cfg, pack.FireSound)
	defer closeAudio()

	g := game.New(gameCfg, pack.Sizes(), game.WithFireSound(fire))
	log.Printf("Starting %s frontend at %dx%d, %d ticks per second.\n", cfg.Frontend, cfg.Width, cfg.Height, cfg.TPS)

	switch cfg.Frontend {
	case config.FrontendTerminal:
		return runTerminal(cfg, g)
	default:
		return runWindow(cfg, g, pack)
	}
}

// openAudio returns the fire sound, or a silent player when sound is muted
// or unavailable.
func openAudio(cfg config.Config, wav []byte) (game.Player, func()) {
	if cfg.Mute {
		return audio.Silent{}, func() {}
	}

	mixer := audio.NewMixer(audio.SampleRate)
	if err := mixer.Init(); err != nil {
		log.Printf("Audio disabled: %v", err)
		return audio.Silent{}, func() {}
	}

	effect, err := mixer.Load(wav)
	if err != nil {
		log.Printf("Audio disabled: %v", err)
		mixer.Close()
		return audio.Silent{}, func() {}
	}
	return effect, mixer.Close
}

func runWindow(cfg config.Config, g *game.Game, pack *assets.Pack) error {
	opts := []window.Option{window.WithFadeIn(fadeInSeconds)}
	if cfg.Debug {
		opts = append(opts, window.WithOverlay(debugui.New(cfg.Title, cfg.Width, cfg.Height, g)))
	}
	return window.New(g, pack, opts...).Run(cfg.Title)
}

func runTerminal(cfg config.Config, g *game.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}

	restoreLog := quietLog(cfg)
	defer restoreLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return terminal.New(g, screen, cfg.ReleaseAfter).Run(ctx)
}
