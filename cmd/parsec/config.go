package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/alecthomas/parsec"
)

// delimiterConfig holds delimiter settings, each a single character.
//
// Empty fields keep the parsec defaults.
type delimiterConfig struct {
	Open   string `toml:"open" yaml:"open"`
	Close  string `toml:"close" yaml:"close"`
	Escape string `toml:"escape" yaml:"escape"`
}

// loadConfig reads delimiter settings from path.
//
// Files ending in .yaml or .yml are decoded as YAML, anything else as TOML.
func loadConfig(path string) (*delimiterConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config := &delimiterConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, config); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(content, config); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return config, nil
}

// merge overrides settings in c with the non-empty settings of other.
func (c *delimiterConfig) merge(other delimiterConfig) {
	if other.Open != "" {
		c.Open = other.Open
	}
	if other.Close != "" {
		c.Close = other.Close
	}
	if other.Escape != "" {
		c.Escape = other.Escape
	}
}

func (c *delimiterConfig) options() ([]parsec.DelimitedOption, error) {
	options := []parsec.DelimitedOption{}
	for _, setting := range []struct {
		name   string
		value  string
		option func(rune) parsec.DelimitedOption
	}{
		{"open", c.Open, parsec.Open},
		{"close", c.Close, parsec.Close},
		{"escape", c.Escape, parsec.Escape},
	} {
		if setting.value == "" {
			continue
		}
		if utf8.RuneCountInString(setting.value) != 1 {
			return nil, fmt.Errorf("%s delimiter must be a single character but is %q", setting.name, setting.value)
		}
		r, _ := utf8.DecodeRuneInString(setting.value)
		options = append(options, setting.option(r))
	}
	return options, nil
}
