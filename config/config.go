// Package config loads tool settings from an optional YAML file with
// environment-variable overrides on top of built-in defaults.
package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"kwcount/tokenizer"
)

const (
	configPathEnv = "KWCOUNT_CONFIG"
	encodingEnv   = "KWCOUNT_ENCODING"
	exportsDirEnv = "KWCOUNT_EXPORTS_DIR"
	logLevelEnv   = "KWCOUNT_LOG_LEVEL"
)

// Config holds the settings the CLI shell needs.
type Config struct {
	// Encoding is the declared input text encoding.
	Encoding string `yaml:"encoding"`

	// FallbackEncoding is tried once when a read fails under Encoding.
	FallbackEncoding string `yaml:"fallbackEncoding"`

	// ExportsDir is where reports land, resolved against the install
	// location unless absolute.
	ExportsDir string `yaml:"exportsDir"`

	// Extensions is the advisory file filter offered by the picker. Any
	// path is still accepted; the filter is never enforced.
	Extensions []string `yaml:"extensions"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"logLevel"`
}

// Load reads YAML configuration (if KWCOUNT_CONFIG points at a file) and
// applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

// LoadFile reads YAML configuration from an explicit path, then applies
// environment overrides. Unlike Load, a broken file is an error.
func LoadFile(path string) (Config, error) {
	cfg := defaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	var fileCfg Config
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		return cfg, err
	}

	cfg = mergeConfig(cfg, fileCfg)
	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(encodingEnv); v != "" {
		c.Encoding = v
	}
	if v := os.Getenv(exportsDirEnv); v != "" {
		c.ExportsDir = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.LogLevel = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Encoding != "" {
		base.Encoding = override.Encoding
	}
	if override.FallbackEncoding != "" {
		base.FallbackEncoding = override.FallbackEncoding
	}
	if override.ExportsDir != "" {
		base.ExportsDir = override.ExportsDir
	}
	if len(override.Extensions) > 0 {
		base.Extensions = override.Extensions
	}
	if override.LogLevel != "" {
		base.LogLevel = override.LogLevel
	}
	return base
}

func defaultConfig() Config {
	return Config{
		Encoding:         tokenizer.DefaultEncoding,
		FallbackEncoding: tokenizer.FallbackEncoding,
		ExportsDir:       "exports",
		Extensions: []string{
			".gui", ".txt", ".yml", ".gfx", ".log",
			".asset", ".shader", ".sfx", ".settings",
		},
		LogLevel: "info",
	}
}
