package commands

import (
	"fmt"
	"io"
	"os"

	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/agenthub-dev/agenthub/internal/cli/session"
)

// loginSession is the slice of the session store the login command needs
type loginSession interface {
	Login(email, password string) error
	Current() session.Snapshot
}

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var email, password, registryAlias string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with an AgentHub registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := getSelectedRegistry(registryAlias)
			if err != nil {
				return err
			}

			_, store := newSession(registry)

			fmt.Printf("Logging in to %s (%s)...\n", registry.Alias, registry.URL)
			return runLogin(store, os.Stdout, email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (or set AGENTHUB_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set AGENTHUB_PASSWORD, will prompt if not provided)")
	cmd.Flags().StringVar(&registryAlias, "registry", "", "Registry alias (uses selected registry if not specified)")

	return cmd
}

func runLogin(sess loginSession, out io.Writer, email, password string) error {
	// Check for environment variables (useful for CI/CD)
	if email == "" {
		email = os.Getenv("AGENTHUB_EMAIL")
	}
	if password == "" {
		password = os.Getenv("AGENTHUB_PASSWORD")
	}

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or AGENTHUB_EMAIL env var)")
	}

	// Prompt for password if not provided via flag or env var
	if password == "" {
		if term.IsTerminal(int(syscall.Stdin)) {
			fmt.Fprint(out, "Password: ")
			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = string(bytePassword)
			fmt.Fprintln(out)
		} else {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag or AGENTHUB_PASSWORD env var)")
		}
	}

	if err := sess.Login(email, password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	snap := sess.Current()
	fmt.Fprintln(out, "✓ Login successful!")
	if snap.User != nil {
		fmt.Fprintf(out, "  User: %s (%s)\n", snap.User.Username, snap.User.Email)
		if snap.IsAdmin() {
			fmt.Fprintln(out, "  Role: Admin")
		}
	}

	return nil
}
