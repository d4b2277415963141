// Command panview-term runs the pan viewer in a terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/svg-pan/internal/config"
	"github.com/iburimskiy/svg-pan/internal/term"
)

func main() {
	configPath := flag.String("config", config.DefaultFileName, "Path to the TOML config file.")
	logPath := flag.String("log", "", "Write logs to this file (the screen is busy).")
	debug := flag.Bool("debug", false, "Log gesture events.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, logFile, err := setupLogging(*logPath, *debug || cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	log.Info("starting", "canvas", "terminal")
	term.New(screen, cfg, log).Run()
}
