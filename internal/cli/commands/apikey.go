package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agenthub-dev/agenthub/internal/cli/client"
)

// apiKeyClient is the slice of the API client the apikey command needs
type apiKeyClient interface {
	RegenerateAPIKey() (*client.APIKey, error)
}

// NewAPIKeyCmd creates the apikey command group
func NewAPIKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apikey",
		Short: "Manage your API key",
	}

	cmd.AddCommand(newAPIKeyRotateCmd())

	return cmd
}

func newAPIKeyRotateCmd() *cobra.Command {
	var registryAlias string

	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Generate a new API key, invalidating the old one",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := getSelectedRegistry(registryAlias)
			if err != nil {
				return err
			}

			api, store := newSession(registry)
			if _, err := resolveAuthenticated(store, "/profile"); err != nil {
				return err
			}

			return runAPIKeyRotate(api, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&registryAlias, "registry", "", "Registry alias (uses selected registry if not specified)")

	return cmd
}

func runAPIKeyRotate(api apiKeyClient, out io.Writer) error {
	key, err := api.RegenerateAPIKey()
	if err != nil {
		return fmt.Errorf("failed to rotate API key: %w", err)
	}

	fmt.Fprintln(out, "✓ New API key generated. The previous key no longer works.")
	fmt.Fprintf(out, "\n  %s\n\n", key.APIKey)
	fmt.Fprintln(out, "Store it securely — it will not be shown again.")

	return nil
}
