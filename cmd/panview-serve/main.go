// Command panview-serve serves the wasm build of the pan viewer, plus a
// static SVG rendering of any view at /view.
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/iburimskiy/svg-pan/internal/config"
)

func main() {
	addr := flag.String("addr", ":8080", "Listen address.")
	dir := flag.String("dir", ".", "Directory holding main.wasm and wasm_exec.js.")
	configPath := flag.String("config", config.DefaultFileName, "Path to the TOML config file.")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("config", "err", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         *addr,
		Handler:      newHandler(cfg, *dir, log),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("serving", "addr", *addr, "dir", *dir)
	if err := srv.ListenAndServe(); err != nil {
		log.Error("server", "err", err)
		os.Exit(1)
	}
}
