// REPL configuration. Values come from an optional YAML file (by default
// ~/.config/scheme/config.yml); absent file or absent keys fall back to
// the defaults below.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

type config struct {
	Prompt     string `yaml:"prompt"`
	ContPrompt string `yaml:"continuation_prompt"`
	History    string `yaml:"history"`
	Color      *bool  `yaml:"color"`
}

func defaultConfig() *config {
	home, _ := os.UserHomeDir()
	return &config{
		Prompt:     "==> ",
		ContPrompt: "... ",
		History:    filepath.Join(home, ".scheme_history"),
	}
}

// loadConfig reads path, or the default location when path is empty. A
// missing file is not an error; a malformed one is.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".config", "scheme", "config.yml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return nil, err
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "==> "
	}
	if cfg.ContPrompt == "" {
		cfg.ContPrompt = "... "
	}
	return cfg, nil
}

func (c *config) colorOn() bool { return c.Color == nil || *c.Color }

func (c *config) red(s string) string {
	if !c.colorOn() {
		return s
	}
	return "\x1b[31m" + s + "\x1b[0m"
}

func (c *config) blue(s string) string {
	if !c.colorOn() {
		return s
	}
	return "\x1b[94m" + s + "\x1b[0m"
}
