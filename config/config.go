// Package config holds the settings of the boilerplate program. Defaults can be
// overridden by a YAML file and then by command line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the window, the shader sources and the geometry.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`

	// ShaderFile is a tagged shader file on disk. When empty the embedded one is
	// used.
	ShaderFile string `yaml:"shader_file"`

	// Inline selects the shader sources compiled into the binary instead of a
	// tagged file.
	Inline bool `yaml:"inline"`

	// ModelFile is an optional OBJ file drawn instead of the quad.
	ModelFile string `yaml:"model_file"`

	SwapInterval int  `yaml:"swap_interval"`
	Debug        bool `yaml:"debug"`
}

// Default returns the settings the program runs with when nothing is
// configured.
func Default() Config {
	return Config{
		Width:        800,
		Height:       600,
		Title:        "OpenGL Boilerplate",
		SwapInterval: 1,
	}
}

// Load reads the YAML file at path on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports settings the program cannot start with.
func (c Config) Validate() error {
	var errs []error

	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.Inline && c.ShaderFile != "" {
		errs = append(errs, errors.New("inline shaders and a shader file are mutually exclusive"))
	}
	if c.SwapInterval < 0 {
		errs = append(errs, fmt.Errorf("swap interval must not be negative, got %d", c.SwapInterval))
	}

	return errors.Join(errs...)
}
