package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewWebCmd creates the web command
func NewWebCmd() *cobra.Command {
	var registryAlias string

	cmd := &cobra.Command{
		Use:   "web",
		Short: "Open the marketplace web UI in browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWeb(registryAlias)
		},
	}

	cmd.Flags().StringVar(&registryAlias, "registry", "", "Registry alias (uses selected registry if not specified)")

	return cmd
}

func runWeb(registryAlias string) error {
	registry, err := getSelectedRegistry(registryAlias)
	if err != nil {
		return err
	}

	fmt.Printf("Opening marketplace for %s (%s)...\n", registry.Alias, registry.URL)

	if err := openBrowser(registry.URL); err != nil {
		return fmt.Errorf("failed to open browser: %w\nPlease visit: %s", err, registry.URL)
	}

	return nil
}
