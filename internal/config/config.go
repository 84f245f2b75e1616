// Package config loads tool configuration from an optional YAML file.
// Precedence is flags > config file > built-in defaults; secrets such as
// API keys come from the environment, not from this file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Analyzer engine names.
const (
	EngineCommand = "command"
	EngineOpenAI  = "openai"
)

// DefaultPath is where Load looks when no --config flag is given. A missing
// file at this path is not an error.
const DefaultPath = ".lens.yaml"

var ErrUnknownEngine = errors.New("unknown analyzer engine")

// Config holds all inspection settings.
type Config struct {
	// PackagerBin is the packaging tool binary (default "repomix").
	PackagerBin string `yaml:"packager_bin"`

	// AnalyzerBin is the analysis tool binary (default "llm").
	// Only used by the command engine.
	AnalyzerBin string `yaml:"analyzer_bin"`

	// AnalyzerArgs are the analysis tool arguments
	// (default ["analyze", "--format", "json"]).
	AnalyzerArgs []string `yaml:"analyzer_args"`

	// Engine selects the analyzer backend: "command" or "openai"
	// (default "command").
	Engine string `yaml:"engine"`

	// Model is the model identifier for the openai engine (default "gpt-4o").
	Model string `yaml:"model"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PackagerBin:  "repomix",
		AnalyzerBin:  "llm",
		AnalyzerArgs: []string{"analyze", "--format", "json"},
		Engine:       EngineCommand,
		Model:        "gpt-4o",
	}
}

// Load reads the YAML file at path over the defaults. A missing file is only
// tolerated at DefaultPath; an explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyDefaults backfills fields an explicit config file left empty.
func (c *Config) applyDefaults() {
	def := Default()
	if c.PackagerBin == "" {
		c.PackagerBin = def.PackagerBin
	}
	if c.AnalyzerBin == "" {
		c.AnalyzerBin = def.AnalyzerBin
	}
	if c.AnalyzerArgs == nil {
		c.AnalyzerArgs = def.AnalyzerArgs
	}
	if c.Engine == "" {
		c.Engine = def.Engine
	}
	if c.Model == "" {
		c.Model = def.Model
	}
}

func (c *Config) validate() error {
	switch c.Engine {
	case EngineCommand, EngineOpenAI:
		return nil
	default:
		return fmt.Errorf("%w: %q (supported: %s, %s)", ErrUnknownEngine, c.Engine, EngineCommand, EngineOpenAI)
	}
}
