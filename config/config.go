// Package config loads the demo's startup settings. Every field defaults to
// the scene's built-in constants; a YAML file only needs to name what it
// changes.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ob6160/SphereMap/generators"
	"gopkg.in/yaml.v3"
)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type Sphere struct {
	LatitudeBands  int     `yaml:"latitude_bands"`
	LongitudeBands int     `yaml:"longitude_bands"`
	Radius         float32 `yaml:"radius"`
}

type Config struct {
	Window         Window `yaml:"window"`
	Sphere         Sphere `yaml:"sphere"`
	Overlay        bool   `yaml:"overlay"`
	ShaderDir      string `yaml:"shader_dir"`
	ObjectUsesView bool   `yaml:"object_uses_view"`
	LogLevel       string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  512,
			Height: 512,
			Title:  "SphereMap",
			VSync:  true,
		},
		Sphere: Sphere{
			LatitudeBands:  generators.DefaultLatitudeBands,
			LongitudeBands: generators.DefaultLongitudeBands,
			Radius:         generators.DefaultRadius,
		},
		LogLevel: "info",
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	var cfg = Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if err := c.SphereMap().Validate(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c Config) SphereMap() *generators.SphereMap {
	return generators.NewSphereMap(c.Sphere.LatitudeBands, c.Sphere.LongitudeBands, c.Sphere.Radius)
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
