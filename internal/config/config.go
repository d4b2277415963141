package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
)

const (
	WindowWidth  = 400
	WindowHeight = 400

	// Canvas geometry in screen pixels. The border sits outside the content
	// box, as with CSS box-sizing: content-box.
	CanvasSize   = 300
	BorderWidth  = 5
	StatusHeight = 20

	// Circle in local (viewBox) units.
	CircleCX     = 50
	CircleCY     = 50
	CircleRadius = 20

	// Feedback tick
	TickFrequency = 880
	TickDuration  = 25 // milliseconds
	SampleRate    = 44100

	DefaultFileName = "panview.toml"
	EnvPrefix       = "PANVIEW_"
)

// ErrInvalid is returned for configuration values that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the viewer settings.
// Priority: env vars → config file → defaults
type Config struct {
	CanvasSize  int
	CircleFill  color.RGBA
	Background  color.RGBA
	BorderColor color.RGBA
	Sound       bool
	Debug       bool
}

// Default is a white 300px canvas with a 5px black border and a gray circle.
func Default() *Config {
	return &Config{
		CanvasSize:  CanvasSize,
		CircleFill:  color.RGBA{R: 128, G: 128, B: 128, A: 255},
		Background:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		BorderColor: color.RGBA{A: 255},
		Sound:       true,
	}
}

// Load reads the file at path (a missing file is not an error) and then
// applies PANVIEW_* environment overrides.
func Load(path string) (*Config, error) {
	fc, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := cfg.apply(fc); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) apply(fc *FileConfig) error {
	if fc.CanvasSize != nil {
		c.CanvasSize = *fc.CanvasSize
	}
	var err error
	if c.CircleFill, err = colorOr(fc.CircleFill, c.CircleFill); err != nil {
		return fmt.Errorf("circle_fill: %w", err)
	}
	if c.Background, err = colorOr(fc.Background, c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if c.BorderColor, err = colorOr(fc.BorderColor, c.BorderColor); err != nil {
		return fmt.Errorf("border_color: %w", err)
	}
	if fc.Sound != nil {
		c.Sound = *fc.Sound
	}
	if fc.Debug != nil {
		c.Debug = *fc.Debug
	}
	return c.validate()
}

func (c *Config) applyEnv() error {
	if v := getEnv("CANVAS_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sCANVAS_SIZE=%q: %w", EnvPrefix, v, ErrInvalid)
		}
		c.CanvasSize = n
	}
	var err error
	if c.CircleFill, err = colorOr(getEnv("CIRCLE_FILL"), c.CircleFill); err != nil {
		return fmt.Errorf("%sCIRCLE_FILL: %w", EnvPrefix, err)
	}
	if c.Background, err = colorOr(getEnv("BACKGROUND"), c.Background); err != nil {
		return fmt.Errorf("%sBACKGROUND: %w", EnvPrefix, err)
	}
	if c.BorderColor, err = colorOr(getEnv("BORDER_COLOR"), c.BorderColor); err != nil {
		return fmt.Errorf("%sBORDER_COLOR: %w", EnvPrefix, err)
	}
	c.Sound = getEnvBool("SOUND", c.Sound)
	c.Debug = getEnvBool("DEBUG", c.Debug)
	return c.validate()
}

func (c *Config) validate() error {
	if c.CanvasSize <= 0 {
		return fmt.Errorf("canvas_size %d: %w", c.CanvasSize, ErrInvalid)
	}
	return nil
}

func getEnv(key string) string {
	return os.Getenv(EnvPrefix + key)
}

// getEnvBool returns the env bool or the current value
func getEnvBool(key string, current bool) bool {
	switch getEnv(key) {
	case "":
		return current
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
