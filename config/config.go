package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"walkintheforest/logging"
	"walkintheforest/theme"
)

// FileName is the config file looked up in the config directory.
const FileName = "themes.yaml"

type Config struct {
	Dir             string `yaml:"-"`
	TemplateDir     string `yaml:"template_dir,omitempty"`
	DefaultTemplate string `yaml:"default_template"`
	LogLevel        string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Dir:             ".",
		TemplateDir:     "",
		DefaultTemplate: theme.WalkInTheForestDarkName,
		LogLevel:        logging.DefaultLevel,
	}
}

// Path returns the location of the config file for cfg.
func (c Config) Path() string {
	return filepath.Join(c.Dir, FileName)
}

// Load reads dir/themes.yaml. A missing file yields Default.
func Load(dir string) (Config, error) {
	cfg := Default()
	cfg.Dir = dir

	data, err := os.ReadFile(cfg.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", cfg.Path(), err)
	}

	def := Default()
	if cfg.DefaultTemplate == "" {
		cfg.DefaultTemplate = def.DefaultTemplate
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	// Relative template directories are resolved against the config dir.
	if cfg.TemplateDir != "" && !filepath.IsAbs(cfg.TemplateDir) {
		cfg.TemplateDir = filepath.Join(dir, cfg.TemplateDir)
	}

	return cfg, nil
}

// Save writes cfg to its Path, replacing any existing file atomically.
func Save(cfg Config) error {
	cfgPath := cfg.Path()

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	tmp := cfgPath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, cfgPath)
}
