package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/onsi/gomega"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "boilerplate.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %s", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	g := gomega.NewWithT(t)

	cfg := Default()
	g.Expect(cfg.Width).To(gomega.Equal(800))
	g.Expect(cfg.Height).To(gomega.Equal(600))
	g.Expect(cfg.Title).To(gomega.Equal("OpenGL Boilerplate"))
	g.Expect(cfg.Validate()).To(gomega.Succeed())
}

func TestLoadOverridesDefaults(t *testing.T) {
	g := gomega.NewWithT(t)

	path := writeConfig(t, "width: 1024\nshader_file: quad.shader\ndebug: true\n")

	cfg, err := Load(path)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(cfg.Width).To(gomega.Equal(1024))
	g.Expect(cfg.Height).To(gomega.Equal(600))
	g.Expect(cfg.ShaderFile).To(gomega.Equal("quad.shader"))
	g.Expect(cfg.Debug).To(gomega.BeTrue())
	g.Expect(cfg.Title).To(gomega.Equal("OpenGL Boilerplate"))
}

func TestLoadErrors(t *testing.T) {
	g := gomega.NewWithT(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	g.Expect(errors.Is(err, fs.ErrNotExist)).To(gomega.BeTrue())

	_, err = Load(writeConfig(t, "width: [1, 2\n"))
	g.Expect(err).To(gomega.HaveOccurred())
	g.Expect(err.Error()).To(gomega.ContainSubstring("parsing config"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{name: "zero width", modify: func(c *Config) { c.Width = 0 }, errMsg: "window size"},
		{name: "negative height", modify: func(c *Config) { c.Height = -1 }, errMsg: "window size"},
		{
			name: "inline with file",
			modify: func(c *Config) {
				c.Inline = true
				c.ShaderFile = "a.shader"
			},
			errMsg: "mutually exclusive",
		},
		{name: "negative swap interval", modify: func(c *Config) { c.SwapInterval = -2 }, errMsg: "swap interval"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := gomega.NewWithT(t)

			cfg := Default()
			test.modify(&cfg)
			err := cfg.Validate()
			g.Expect(err).To(gomega.HaveOccurred())
			g.Expect(err.Error()).To(gomega.ContainSubstring(test.errMsg))
		})
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	g := gomega.NewWithT(t)

	_, err := Load(writeConfig(t, "shader-file: quad.shader\n"))
	g.Expect(err).To(gomega.HaveOccurred())
	g.Expect(err.Error()).To(gomega.ContainSubstring("shader-file"))
}

func TestLoadEmptyFile(t *testing.T) {
	g := gomega.NewWithT(t)

	cfg, err := Load(writeConfig(t, ""))
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(cfg).To(gomega.Equal(Default()))
}
