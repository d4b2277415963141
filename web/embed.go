// Package web provides the host page for the wasm build.
package web

import "embed"

// FS contains index.html, which loads wasm_exec.js and main.wasm.
//
//go:embed index.html
var FS embed.FS
