package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agenthub-dev/agenthub/internal/cli/config"
	"github.com/agenthub-dev/agenthub/internal/cli/registryselect"
	"github.com/agenthub-dev/agenthub/internal/cli/userconfig"
)

// NewSelectRegistryCmd creates the select-registry command
func NewSelectRegistryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select-registry [url-or-alias]",
		Short: "Select the registry to use for commands",
		Long: `Select the registry to use for commands.

If no param is provided, an interactive prompt will be shown.

Examples:
  $ agenthub select-registry                        # Interactive selection
  $ agenthub select-registry https://hub.local:8080 # Select by URL
  $ agenthub select-registry production             # Select by alias`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var urlOrAlias string
			if len(args) > 0 {
				urlOrAlias = args[0]
			}
			return runSelectRegistry(urlOrAlias)
		},
	}

	return cmd
}

func runSelectRegistry(urlOrAlias string) error {
	// Load project config
	cfg, err := config.LoadFromCurrentDir()
	if err != nil {
		return fmt.Errorf("failed to load config: %w\nRun 'agenthub init' to create a configuration file", err)
	}

	var registry *config.Registry

	if urlOrAlias != "" {
		registry, err = registryselect.GetRegistryByURLOrAlias(cfg, urlOrAlias)
		if err != nil {
			return err
		}
	} else {
		registry, err = registryselect.PromptRegistrySelection(cfg)
		if err != nil {
			return err
		}
	}

	// Save the selected registry
	if err := userconfig.SetSelectedRegistry(registry.URL); err != nil {
		return fmt.Errorf("failed to save selected registry: %w", err)
	}

	fmt.Printf("Selected registry: %s (%s)\n", registry.Alias, registry.URL)
	return nil
}
