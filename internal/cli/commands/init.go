package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agenthub-dev/agenthub/internal/cli/config"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <registry-url>",
		Short: "Register a marketplace registry for this project",
		Args:  cobra.ExactArgs(1),
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	registryURL := config.NormalizeURL(args[0])

	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(currentDir, config.ConfigFileName)

	var cfg *config.Config
	isNewConfig := false

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load existing config: %w", err)
		}
		fmt.Println("Found existing agenthub.json")
	} else {
		cfg = &config.Config{
			Registries: []config.Registry{},
		}
		isNewConfig = true
	}

	// Check if registry already exists
	registryExists := false
	for _, registry := range cfg.Registries {
		if registry.URL == registryURL {
			registryExists = true
			break
		}
	}

	if registryExists {
		fmt.Printf("Registry %s already exists in agenthub.json\n", registryURL)
	} else {
		alias := "production"
		if len(cfg.Registries) > 0 {
			alias = fmt.Sprintf("registry-%d", len(cfg.Registries)+1)
		}

		cfg.Registries = append(cfg.Registries, config.Registry{
			URL:   registryURL,
			Alias: alias,
		})

		if err := config.Save(configPath, cfg); err != nil {
			return err
		}

		if isNewConfig {
			fmt.Printf("✓ Created ./agenthub.json with registry %s (%s)\n", registryURL, alias)
		} else {
			fmt.Printf("✓ Added registry %s (%s) to ./agenthub.json\n", registryURL, alias)
		}
	}

	// Open browser to the marketplace
	fmt.Printf("\nOpening marketplace at %s...\n", registryURL)
	if err := openBrowser(registryURL); err != nil {
		fmt.Printf("⚠ Could not open browser automatically: %v\n", err)
		fmt.Printf("Please visit: %s\n", registryURL)
	}

	fmt.Println("\nNext steps:")
	fmt.Println("  1. Run 'agenthub register' to create an account, or 'agenthub login' if you have one")
	fmt.Println("  2. Run 'agenthub search' to browse the marketplace")

	return nil
}
