package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/agenthub-dev/agenthub/internal/cli/client"
)

// adminUserClient is the slice of the API client the admin users command needs
type adminUserClient interface {
	AdminUsers(page int) (*client.Page[client.User], error)
}

func newAdminUsersCmd() *cobra.Command {
	var registryAlias string
	var page int

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List registered users",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := getSelectedRegistry(registryAlias)
			if err != nil {
				return err
			}

			api, store := newSession(registry)
			if _, err := resolveAdmin(store, "/admin"); err != nil {
				return err
			}

			return runAdminUsers(api, os.Stdout, page)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Result page")
	cmd.Flags().StringVar(&registryAlias, "registry", "", "Registry alias (uses selected registry if not specified)")

	return cmd
}

func runAdminUsers(api adminUserClient, out io.Writer, page int) error {
	users, err := api.AdminUsers(page)
	if err != nil {
		return err
	}

	if len(users.Items) == 0 {
		fmt.Fprintln(out, "No users found.")
		return nil
	}

	fmt.Fprintf(out, "Users (%d total, page %d/%d):\n", users.Total, users.Page, users.Pages)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tUSERNAME\tEMAIL\tROLE\tJOINED")
	for _, user := range users.Items {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s\n", user.ID, user.Username, user.Email, user.Role, user.CreatedAt)
	}
	w.Flush()

	return nil
}
