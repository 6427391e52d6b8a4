package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const ConfigFileName = "agenthub.json"

// Registry represents an AgentHub registry configuration
type Registry struct {
	URL   string `json:"url"`
	Alias string `json:"alias"`
}

// Config represents the CLI configuration file
type Config struct {
	Registries []Registry `json:"registries"`
}

// DefaultConfig returns a default configuration with an example registry
func DefaultConfig() *Config {
	return &Config{
		Registries: []Registry{
			{
				URL:   "",
				Alias: "e.g. company registry",
			},
		},
	}
}

// FindConfigFile searches for agenthub.json in current directory and parent directories
func FindConfigFile() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	// Search upwards until we find agenthub.json or reach root
	dir := currentDir
	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("agenthub.json not found in %s or any parent directory", currentDir)
}

// Load reads the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadFromCurrentDir loads config from current directory or parent directories
func LoadFromCurrentDir() (*Config, error) {
	configPath, err := FindConfigFile()
	if err != nil {
		return nil, err
	}

	return Load(configPath)
}

// Save writes the configuration to a file
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetRegistryByAlias returns a registry by its alias
func (c *Config) GetRegistryByAlias(alias string) (*Registry, error) {
	for _, registry := range c.Registries {
		if registry.Alias == alias {
			return &registry, nil
		}
	}
	return nil, fmt.Errorf("registry with alias '%s' not found", alias)
}

// GetDefaultRegistry returns the first registry in the list
func (c *Config) GetDefaultRegistry() (*Registry, error) {
	if len(c.Registries) == 0 {
		return nil, fmt.Errorf("no registries configured in agenthub.json")
	}
	return &c.Registries[0], nil
}

// NormalizeURL ensures the registry URL carries a scheme, assuming HTTPS
func NormalizeURL(rawURL string) string {
	if rawURL == "" {
		return rawURL
	}
	if !strings.Contains(rawURL, "://") {
		return "https://" + rawURL
	}
	return strings.TrimSuffix(rawURL, "/")
}
