package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Window holds the render window parameters.
type Window struct {
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	Title  string `yaml:"title"`
}

// Emulator holds the synthetic hand-motion parameters used when no real
// tracking runtime is attached.
type Emulator struct {
	Amplitude float32 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
}

// Config is the full application configuration, loaded from YAML.
type Config struct {
	// Timestep is the fixed simulation step in seconds.
	Timestep float32 `yaml:"timestep"`
	// Substeps subdivides each fixed step inside the physics solver.
	Substeps int `yaml:"substeps"`
	// Matching is "velocity" or "position".
	Matching string `yaml:"matching"`
	// Hands is "both", "left" or "right".
	Hands string `yaml:"hands"`

	TargetFPS int32    `yaml:"target_fps"`
	Window    Window   `yaml:"window"`
	Emulator  Emulator `yaml:"emulator"`
}

func Default() Config {
	return Config{
		Timestep:  1.0 / 60.0,
		Substeps:  1,
		Matching:  "velocity",
		Hands:     "both",
		TargetFPS: 60,
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "xr-hand",
		},
		Emulator: Emulator{
			Amplitude: 0.05,
			Frequency: 0.4,
		},
	}
}

// Load reads a YAML config file, applying defaults for absent fields.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.Timestep <= 0 {
		return fmt.Errorf("timestep must be positive, got %v", c.Timestep)
	}
	if c.Substeps < 1 {
		return fmt.Errorf("substeps must be at least 1, got %d", c.Substeps)
	}
	switch c.Matching {
	case "velocity", "position":
	default:
		return fmt.Errorf("matching must be velocity or position, got %q", c.Matching)
	}
	switch c.Hands {
	case "both", "left", "right":
	default:
		return fmt.Errorf("hands must be both, left or right, got %q", c.Hands)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}
