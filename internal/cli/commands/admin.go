package commands

import (
	"github.com/spf13/cobra"
)

// NewAdminCmd creates the admin command group
func NewAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Registry administration",
	}

	cmd.AddCommand(newAdminAssetsCmd())
	cmd.AddCommand(newAdminUsersCmd())
	cmd.AddCommand(newAdminSyncCmd())
	cmd.AddCommand(newAdminImportCmd())

	return cmd
}
