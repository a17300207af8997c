package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/JonMunkholm/labelgen/internal/core"
)

//go:embed sample_config.toml
var sampleConfig string

// cliDefaults selects which registry entries commands use when no flag
// overrides them.
type cliDefaults struct {
	Schema  string `toml:"schema"`
	Profile string `toml:"profile"`
}

// cliOutput controls how generated files and terminal output look.
type cliOutput struct {
	Extension string `toml:"extension"`
	Color     string `toml:"color"`
}

// schemaBlock declares one extra input schema in the config file. Blocks
// are registered at startup alongside the built-in schemas.
type schemaBlock struct {
	Key               string `toml:"key"`
	Label             string `toml:"label"`
	CodeColumn        string `toml:"code_column"`
	DescriptionColumn string `toml:"description_column"`
	QuantityColumn    string `toml:"quantity_column"`
	Rule              string `toml:"rule"`
}

// cliConfig is everything the CLI reads from its TOML config file.
type cliConfig struct {
	Defaults cliDefaults   `toml:"defaults"`
	Output   cliOutput     `toml:"output"`
	Schemas  []schemaBlock `toml:"schema"`
}

func defaultConfig() cliConfig {
	return cliConfig{
		Defaults: cliDefaults{
			Schema:  "sap-es",
			Profile: "pm42-triple-split",
		},
		Output: cliOutput{
			Extension: ".prn",
			Color:     "auto",
		},
	}
}

// defaultConfigPath returns the absolute path of the default config
// file location.
func defaultConfigPath() (string, error) {
	return expandPath("~/.config/labelgen/config.toml")
}

// loadConfig locates, parses, and validates a config file. A missing file
// is not an error; defaults apply.
func loadConfig(path string) (*cliConfig, string, bool, error) {
	cfg := defaultConfig()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := defaultConfigPath()
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *cliConfig) validate() error {
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color must be auto, always or never, got %q", c.Output.Color)
	}

	if c.Output.Extension == "" {
		c.Output.Extension = ".prn"
	}
	if !strings.HasPrefix(c.Output.Extension, ".") {
		c.Output.Extension = "." + c.Output.Extension
	}

	for _, block := range c.Schemas {
		if _, err := core.ParseQuantityRule(block.Rule); err != nil {
			return fmt.Errorf("schema %q: %w", block.Key, err)
		}
	}
	return nil
}

// registerSchemas adds the config file's schema blocks to the registry.
// Keys clashing with built-in or earlier blocks are an error rather than a
// registry panic.
func (c *cliConfig) registerSchemas() error {
	for _, block := range c.Schemas {
		rule, err := core.ParseQuantityRule(block.Rule)
		if err != nil {
			return fmt.Errorf("schema %q: %w", block.Key, err)
		}

		schema := core.InputSchema{
			Key:               block.Key,
			Label:             block.Label,
			CodeColumn:        block.CodeColumn,
			DescriptionColumn: block.DescriptionColumn,
			QuantityColumn:    block.QuantityColumn,
			Rule:              rule,
		}
		if err := schema.Validate(); err != nil {
			return fmt.Errorf("config schema block: %w", err)
		}
		if _, taken := core.GetSchema(schema.Key); taken {
			return fmt.Errorf("config schema %q: key is already registered", schema.Key)
		}
		core.RegisterSchema(schema)
	}
	return nil
}

// createSample writes the embedded sample config to path.
func createSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
