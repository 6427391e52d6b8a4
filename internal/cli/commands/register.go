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

// registerSession is the slice of the session store the register command needs
type registerSession interface {
	Register(username, email, password string) (string, error)
	Current() session.Snapshot
}

// NewRegisterCmd creates the register command
func NewRegisterCmd() *cobra.Command {
	var username, email, password, registryAlias string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account on an AgentHub registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := getSelectedRegistry(registryAlias)
			if err != nil {
				return err
			}

			_, store := newSession(registry)

			fmt.Printf("Registering on %s (%s)...\n", registry.Alias, registry.URL)
			return runRegister(store, os.Stdout, username, email, password)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&email, "email", "", "Email address (or set AGENTHUB_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set AGENTHUB_PASSWORD, will prompt if not provided)")
	cmd.Flags().StringVar(&registryAlias, "registry", "", "Registry alias (uses selected registry if not specified)")

	return cmd
}

func runRegister(sess registerSession, out io.Writer, username, email, password string) error {
	if email == "" {
		email = os.Getenv("AGENTHUB_EMAIL")
	}
	if password == "" {
		password = os.Getenv("AGENTHUB_PASSWORD")
	}

	if username == "" {
		return fmt.Errorf("username is required (use --username flag)")
	}
	if email == "" {
		return fmt.Errorf("email is required (use --email flag or AGENTHUB_EMAIL env var)")
	}

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

	apiKey, err := sess.Register(username, email, password)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	snap := sess.Current()
	fmt.Fprintln(out, "✓ Account created!")
	if snap.User != nil {
		fmt.Fprintf(out, "  User: %s (%s)\n", snap.User.Username, snap.User.Email)
	}

	if apiKey != "" {
		fmt.Fprintln(out, "\nYour API key for CLI and automation access:")
		fmt.Fprintf(out, "  %s\n", apiKey)
		fmt.Fprintln(out, "\nStore it securely — it will not be shown again.")
	}

	return nil
}
