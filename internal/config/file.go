package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file structure.
// Pointer fields distinguish "unset" from the zero value.
type FileConfig struct {
	CanvasSize  *int   `toml:"canvas_size"`
	CircleFill  string `toml:"circle_fill"`
	Background  string `toml:"background"`
	BorderColor string `toml:"border_color"`
	Sound       *bool  `toml:"sound"`
	Debug       *bool  `toml:"debug"`
}

// LoadFile reads the TOML file at path. An empty path or a missing file
// yields an empty FileConfig.
func LoadFile(path string) (*FileConfig, error) {
	var fc FileConfig
	if path == "" {
		return &fc, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &fc, nil
	}
	if err != nil {
		return nil, err
	}

	md, err := toml.Decode(string(data), &fc)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q: %w", path, undecoded[0].String(), ErrInvalid)
	}
	return &fc, nil
}
