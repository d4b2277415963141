package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/svg-pan/internal/config"
	"github.com/iburimskiy/svg-pan/internal/feedback"
	"github.com/iburimskiy/svg-pan/internal/game"
)

func main() {
	configPath := flag.String("config", defaultConfigPath, "Path to the TOML config file.")
	debug := flag.Bool("debug", false, "Log gesture events.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := setupLogger(*debug || cfg.Debug)

	sound, err := feedback.New(cfg.Sound)
	if err != nil {
		// Non-fatal, the viewer works without sound
		log.Warn("audio unavailable", "err", err)
	}
	defer sound.Close()

	g := game.NewGame(cfg, log, game.WithSound(sound))
	w, h := g.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Pan Viewer - drag to pan, R: reset, E: export, Esc/Q: quit")

	log.Info("starting", "canvas", cfg.CanvasSize, "sound", sound.Enabled())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("run", "err", err)
		sound.Close()
		os.Exit(1)
	}
}
