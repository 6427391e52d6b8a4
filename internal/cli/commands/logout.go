package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agenthub-dev/agenthub/internal/cli/auth"
	"github.com/agenthub-dev/agenthub/internal/cli/session"
)

// NewLogoutCmd creates the logout command
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Logout is purely local: no registry lookup, no network call.
			store := session.NewStore(nil, auth.Default)
			store.Logout()

			fmt.Println("✓ Logged out.")
			return nil
		},
	}
}
