package main

import (
	"bytes"
	"log/slog"
	"math"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/iburimskiy/svg-pan/internal/config"
	"github.com/iburimskiy/svg-pan/internal/svgdoc"
	"github.com/iburimskiy/svg-pan/internal/viewport"
	"github.com/iburimskiy/svg-pan/web"
)

func newHandler(cfg *config.Config, dir string, log *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /{$}", http.FileServerFS(web.FS))
	mux.HandleFunc("GET /main.wasm", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/wasm")
		http.ServeFile(w, r, filepath.Join(dir, "main.wasm"))
	})
	mux.HandleFunc("GET /wasm_exec.js", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(dir, "wasm_exec.js"))
	})
	mux.HandleFunc("GET /view", viewHandler(cfg, log, false))
	mux.HandleFunc("GET /view.svg", viewHandler(cfg, log, true))

	return mux
}

// viewHandler renders a static snapshot of the canvas centered on
// ?cx=&cy= (default 50,50), either as a bare SVG document or as an HTML
// page. Nothing on these pans; the wasm build at / does.
func viewHandler(cfg *config.Config, log *slog.Logger, bare bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		center, ok := parseCenter(r)
		if !ok {
			http.Error(w, "cx and cy must be finite numbers", http.StatusBadRequest)
			return
		}
		doc := svgdoc.Document{ViewBox: center.ViewBox(), Config: cfg}

		var buf bytes.Buffer
		var err error
		if bare {
			w.Header().Set("Content-Type", "image/svg+xml")
			err = svgdoc.Render(&buf, doc)
		} else {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			err = svgdoc.RenderPage(&buf, svgdoc.Page{Title: "Pan Viewer", Doc: doc})
		}
		if err != nil {
			log.Error("render view", "err", err)
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write(buf.Bytes())
	}
}

func parseCenter(r *http.Request) (viewport.Center, bool) {
	c := viewport.Home
	q := r.URL.Query()
	for _, f := range []struct {
		key string
		dst *float32
	}{{"cx", &c.X}, {"cy", &c.Y}} {
		s := q.Get(f.key)
		if s == "" {
			continue
		}
		// Out-of-range values fail with ErrRange; NaN and Inf parse cleanly.
		v, err := strconv.ParseFloat(s, 32)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return viewport.Center{}, false
		}
		*f.dst = float32(v)
	}
	return c, true
}
