package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iburimskiy/svg-pan/internal/config"
)

func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "main.wasm"), []byte("\x00asm"), 0o644); err != nil {
		t.Fatal(err)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(newHandler(config.Default(), dir, log))
	t.Cleanup(srv.Close)
	return srv, dir
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, string(body)
}

func TestIndexPage(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, body := get(t, srv.URL+"/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(body, "main.wasm") || !strings.Contains(body, "touchmove") {
		t.Errorf("unexpected index page:\n%s", body)
	}
}

func TestWasm(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, body := get(t, srv.URL+"/main.wasm")
	if resp.StatusCode != http.StatusOK || body != "\x00asm" {
		t.Fatalf("status = %d body = %q", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/wasm" {
		t.Errorf("content type = %q", ct)
	}
}

func TestViewSVG(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, body := get(t, srv.URL+"/view.svg?cx=70&cy=25.5")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(body, `viewBox="20 -24.5 100 100"`) {
		t.Errorf("unexpected svg:\n%s", body)
	}
}

func TestViewPage(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, body := get(t, srv.URL+"/view")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(body, `viewBox="0 0 100 100"`) || strings.Contains(body, "<script>") {
		t.Errorf("unexpected page:\n%s", body)
	}
}

func TestViewBadQuery(t *testing.T) {
	srv, _ := newTestServer(t)
	for _, query := range []string{
		"cx=left",
		"cx=NaN",
		"cy=Inf",
		"cx=-inf",
		"cx=NaN&cy=Inf",
		"cy=1e300",
	} {
		resp, body := get(t, srv.URL+"/view.svg?"+query)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d body = %q", query, resp.StatusCode, body)
		}
	}
}

func TestViewLargeCenterMatchesViewBox(t *testing.T) {
	srv, _ := newTestServer(t)
	_, body := get(t, srv.URL+"/view.svg?cx=16777267&cy=0")
	if !strings.Contains(body, `viewBox="16777218 -50 100 100"`) {
		t.Errorf("unexpected svg:\n%s", body)
	}
}
