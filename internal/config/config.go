// Package config loads the repository's runtime configuration: logging,
// conformance-harness settings, and an optional vocabulary overlay file
// whose extra permitted codes are merged into a derived registry.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ga4gh/va-spec-go/pkg/vocab"
)

// LoggingConfig controls harness log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ConformanceConfig controls the schema conformance harness.
type ConformanceConfig struct {
	FixtureDir string `mapstructure:"fixture_dir"`
	Strict     bool   `mapstructure:"strict"`
}

// VocabularyConfig points at an optional overlay file with extra permitted
// codes, merged into a derived registry before first use.
type VocabularyConfig struct {
	OverlayFile string `mapstructure:"overlay_file"`
}

// Config is the complete runtime configuration.
type Config struct {
	Logging     LoggingConfig     `mapstructure:"logging"`
	Conformance ConformanceConfig `mapstructure:"conformance"`
	Vocabulary  VocabularyConfig  `mapstructure:"vocabulary"`
}

// Manager loads and holds the configuration.
type Manager struct {
	config *Config
}

// NewManager creates a configuration manager, reading defaults, an
// optional config file, and VA_SPEC_* environment variables.
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

func (m *Manager) loadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("VA_SPEC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	m.setDefaults()

	// Config file is optional; defaults and environment variables suffice.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) setDefaults() {
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")

	viper.SetDefault("conformance.fixture_dir", "testdata/fixtures")
	viper.SetDefault("conformance.strict", true)

	viper.SetDefault("vocabulary.overlay_file", "")
}

// GetConfig returns the complete configuration.
func (m *Manager) GetConfig() *Config {
	return m.config
}

// GetConformanceConfig returns the conformance harness configuration.
func (m *Manager) GetConformanceConfig() *ConformanceConfig {
	return &m.config.Conformance
}

// GetLoggingConfig returns the logging configuration.
func (m *Manager) GetLoggingConfig() *LoggingConfig {
	return &m.config.Logging
}

// Reload re-reads the configuration sources. A host that refreshes
// settings without restarting calls this, then InstallRegistry to pick up
// a changed overlay file.
func (m *Manager) Reload() error {
	return m.loadConfig()
}

// Validate validates the configuration.
func (m *Manager) Validate() error {
	config := m.config

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	if config.Conformance.FixtureDir == "" {
		return fmt.Errorf("conformance fixture directory is required")
	}

	return nil
}

// InstallRegistry resolves the configured vocabulary registry and installs
// it as the registry record validation consults. Call once at startup,
// before any record is constructed.
func (m *Manager) InstallRegistry() error {
	registry, err := m.Registry()
	if err != nil {
		return err
	}
	vocab.Install(registry)
	return nil
}

// Registry returns the vocabulary registry the configuration selects: the
// default registry, or a derived registry with the overlay file's codes
// merged in when one is configured.
func (m *Manager) Registry() (*vocab.Registry, error) {
	path := m.config.Vocabulary.OverlayFile
	if path == "" {
		return vocab.Default(), nil
	}
	overlay, err := LoadOverlay(path)
	if err != nil {
		return nil, err
	}
	return vocab.Default().WithOverlay(overlay), nil
}

// LoadOverlay reads a vocabulary overlay file: a YAML mapping of system
// literal to category to extra permitted codes.
func LoadOverlay(path string) (vocab.Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary overlay: %w", err)
	}
	var raw map[string]map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary overlay: %w", err)
	}
	overlay := make(vocab.Overlay, len(raw))
	for system, categories := range raw {
		mc := make(map[vocab.Category][]string, len(categories))
		for category, codes := range categories {
			mc[vocab.Category(category)] = codes
		}
		overlay[vocab.System(system)] = mc
	}
	return overlay, nil
}
