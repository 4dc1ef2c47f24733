// Package bootstrap writes a ready-to-edit termfolio setup: a config file,
// a content file seeded with the built-in portfolio and a .env sample.
package bootstrap

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"pkt.systems/termfolio/internal/appconfig"
	"pkt.systems/termfolio/internal/content"
	"pkt.systems/termfolio/internal/version"
)

// Output file names inside the bootstrap directory.
const (
	ConfigName  = "config.yaml"
	ContentName = "content.yaml"
	EnvName     = ".env"
	HostKeyName = "ssh_host_key"
)

// Files represents generated bootstrap artifacts.
type Files struct {
	ConfigYAML  []byte
	ContentYAML []byte
	Env         []byte
}

// Paths reports where bootstrap wrote its outputs.
type Paths struct {
	ConfigPath  string
	ContentPath string
	EnvPath     string
}

type envTemplateData struct {
	Module     string
	Version    string
	ConfigPath string
	HTTPAddr   string
	SSHAddr    string
	Theme      string
}

// DefaultConfig returns the config written by bootstrap: the defaults with
// the content file and host key placed next to the config.
func DefaultConfig(outputDir string) (appconfig.Config, error) {
	cfg, err := appconfig.DefaultConfig()
	if err != nil {
		return appconfig.Config{}, err
	}
	cfg.Content.File = ContentName
	cfg.SSH.HostKeyPath = filepath.Join(outputDir, HostKeyName)
	return cfg, nil
}

// DefaultFiles renders every bootstrap artifact for outputDir.
func DefaultFiles(outputDir string) (Files, error) {
	cfg, err := DefaultConfig(outputDir)
	if err != nil {
		return Files{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Files{}, fmt.Errorf("default config: %w", err)
	}
	configYAML, err := appconfig.Marshal(cfg)
	if err != nil {
		return Files{}, fmt.Errorf("encode config: %w", err)
	}
	contentYAML, err := content.Encode(content.Default(), content.FormatYAML)
	if err != nil {
		return Files{}, err
	}
	env, err := renderEnv(envTemplateData{
		Module:     version.Module(),
		Version:    version.Current(),
		ConfigPath: filepath.Join(outputDir, ConfigName),
		HTTPAddr:   cfg.HTTP.Addr,
		SSHAddr:    cfg.SSH.Addr,
		Theme:      cfg.Terminal.DefaultTheme,
	})
	if err != nil {
		return Files{}, err
	}
	return Files{ConfigYAML: configYAML, ContentYAML: contentYAML, Env: env}, nil
}

// WriteFiles writes files into outputDir. Existing files are only replaced
// when overwrite is set; nothing is written if any target exists.
func WriteFiles(outputDir string, files Files, overwrite bool) (Paths, error) {
	paths := Paths{
		ConfigPath:  filepath.Join(outputDir, ConfigName),
		ContentPath: filepath.Join(outputDir, ContentName),
		EnvPath:     filepath.Join(outputDir, EnvName),
	}
	if !overwrite {
		for _, path := range []string{paths.ConfigPath, paths.ContentPath, paths.EnvPath} {
			if _, err := os.Stat(path); err == nil {
				return Paths{}, fmt.Errorf("file already exists: %s", path)
			}
		}
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Paths{}, err
	}
	if err := os.WriteFile(paths.ConfigPath, files.ConfigYAML, 0o600); err != nil {
		return Paths{}, err
	}
	if err := os.WriteFile(paths.ContentPath, files.ContentYAML, 0o644); err != nil {
		return Paths{}, err
	}
	if err := os.WriteFile(paths.EnvPath, files.Env, 0o600); err != nil {
		return Paths{}, err
	}
	return paths, nil
}

// WriteBootstrap renders and writes the default files into outputDir.
func WriteBootstrap(outputDir string, overwrite bool) (Paths, error) {
	if outputDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, err
		}
		outputDir = filepath.Join(home, ".termfolio")
	}
	outputDir, err := filepath.Abs(outputDir)
	if err != nil {
		return Paths{}, err
	}
	files, err := DefaultFiles(outputDir)
	if err != nil {
		return Paths{}, err
	}
	return WriteFiles(outputDir, files, overwrite)
}

func renderEnv(data envTemplateData) ([]byte, error) {
	raw, err := readEmbeddedFile("templates/env.tmpl")
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New("env").Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse env template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render env template: %w", err)
	}
	return buf.Bytes(), nil
}
