// Package config loads the client settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/usharplibs/engine/buffers"
)

type Window struct {
	Title  string `toml:"title"`
	Width  int32  `toml:"width"`
	Height int32  `toml:"height"`
	VSync  bool   `toml:"vsync"`
}

type Render struct {
	Wireframe bool `toml:"wireframe"`
	DepthTest bool `toml:"depth_test"`
	CullFace  bool `toml:"cull_face"`
	// ModelUsage is the buffer usage of models created by the client, e.g. "dynamic_draw"
	ModelUsage string `toml:"model_usage"`
}

type Config struct {
	Window Window `toml:"window"`
	Render Render `toml:"render"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:  "Engine",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Render: Render{
			DepthTest:  true,
			CullFace:   true,
			ModelUsage: "dynamic_draw",
		},
	}
}

// Parse decodes data over the defaults, so missing keys keep their default value
func Parse(data []byte) (Config, error) {

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads the config at path. A missing file is not an error and returns the defaults.
func Load(path string) (Config, error) {

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	if err != nil {
		return Config{}, fmt.Errorf("failed to read config '%s': %w", path, err)
	}

	return Parse(data)
}

func (c *Config) Validate() error {

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if _, err := c.Render.Usage(); err != nil {
		return err
	}

	return nil
}

func (r *Render) Usage() (buffers.BufUsage, error) {
	return buffers.ParseBufUsage(r.ModelUsage)
}
