package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agenthub-dev/agenthub/internal/cli/session"
)

// whoamiSession is the slice of the session store the whoami command needs
type whoamiSession interface {
	Resolve() session.Snapshot
}

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	var registryAlias string

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := getSelectedRegistry(registryAlias)
			if err != nil {
				return err
			}

			_, store := newSession(registry)
			return runWhoami(store, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&registryAlias, "registry", "", "Registry alias (uses selected registry if not specified)")

	return cmd
}

func runWhoami(sess whoamiSession, out io.Writer) error {
	snap := sess.Resolve()

	if !snap.IsAuthenticated() {
		fmt.Fprintln(out, "Not logged in.")
		return nil
	}

	fmt.Fprintf(out, "User:  %s\n", snap.User.Username)
	if snap.User.DisplayName != "" {
		fmt.Fprintf(out, "Name:  %s\n", snap.User.DisplayName)
	}
	fmt.Fprintf(out, "Email: %s\n", snap.User.Email)
	fmt.Fprintf(out, "Role:  %s\n", snap.User.Role)

	return nil
}
