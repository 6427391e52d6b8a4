package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/agenthub-dev/agenthub/internal/cli/client"
)

// adminSyncClient is the slice of the API client the sync commands need
type adminSyncClient interface {
	SyncSources() ([]client.SyncSource, error)
	AddSyncSource(gitURL string) (*client.SyncSource, error)
	DeleteSyncSource(id int) error
	TriggerSync(id int) error
}

func newAdminSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Manage content-sync sources",
	}

	cmd.AddCommand(newAdminSyncListCmd())
	cmd.AddCommand(newAdminSyncAddCmd())
	cmd.AddCommand(newAdminSyncDeleteCmd())
	cmd.AddCommand(newAdminSyncRunCmd())

	return cmd
}

func newAdminSyncListCmd() *cobra.Command {
	var registryAlias string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered sync sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := getSelectedRegistry(registryAlias)
			if err != nil {
				return err
			}

			api, store := newSession(registry)
			if _, err := resolveAdmin(store, "/admin"); err != nil {
				return err
			}

			return runAdminSyncList(api, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&registryAlias, "registry", "", "Registry alias (uses selected registry if not specified)")

	return cmd
}

func runAdminSyncList(api adminSyncClient, out io.Writer) error {
	sources, err := api.SyncSources()
	if err != nil {
		return err
	}

	if len(sources) == 0 {
		fmt.Fprintln(out, "No sync sources configured.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tGIT URL\tLAST SYNCED\tLAST COMMIT")
	for _, source := range sources {
		lastSynced := source.LastSyncedAt
		if lastSynced == "" {
			lastSynced = "never"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", source.ID, source.GitURL, lastSynced, shortHash(source.LastCommitHash))
	}
	w.Flush()

	return nil
}

func newAdminSyncAddCmd() *cobra.Command {
	var registryAlias string

	cmd := &cobra.Command{
		Use:   "add <git-url>",
		Short: "Register a git repository for periodic ingestion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := getSelectedRegistry(registryAlias)
			if err != nil {
				return err
			}

			api, store := newSession(registry)
			if _, err := resolveAdmin(store, "/admin"); err != nil {
				return err
			}

			return runAdminSyncAdd(api, os.Stdout, args[0])
		},
	}

	cmd.Flags().StringVar(&registryAlias, "registry", "", "Registry alias (uses selected registry if not specified)")

	return cmd
}

func runAdminSyncAdd(api adminSyncClient, out io.Writer, gitURL string) error {
	source, err := api.AddSyncSource(gitURL)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "✓ Added sync source %d: %s\n", source.ID, source.GitURL)
	return nil
}

func newAdminSyncDeleteCmd() *cobra.Command {
	var registryAlias string

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a sync source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid sync source ID '%s'", args[0])
			}

			registry, err := getSelectedRegistry(registryAlias)
			if err != nil {
				return err
			}

			api, store := newSession(registry)
			if _, err := resolveAdmin(store, "/admin"); err != nil {
				return err
			}

			return runAdminSyncDelete(api, os.Stdout, id)
		},
	}

	cmd.Flags().StringVar(&registryAlias, "registry", "", "Registry alias (uses selected registry if not specified)")

	return cmd
}

func runAdminSyncDelete(api adminSyncClient, out io.Writer, id int) error {
	if err := api.DeleteSyncSource(id); err != nil {
		return err
	}

	fmt.Fprintf(out, "✓ Deleted sync source %d\n", id)
	return nil
}

func newAdminSyncRunCmd() *cobra.Command {
	var registryAlias string

	cmd := &cobra.Command{
		Use:   "run <id>",
		Short: "Trigger an immediate sync of one source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid sync source ID '%s'", args[0])
			}

			registry, err := getSelectedRegistry(registryAlias)
			if err != nil {
				return err
			}

			api, store := newSession(registry)
			if _, err := resolveAdmin(store, "/admin"); err != nil {
				return err
			}

			return runAdminSyncRun(api, os.Stdout, id)
		},
	}

	cmd.Flags().StringVar(&registryAlias, "registry", "", "Registry alias (uses selected registry if not specified)")

	return cmd
}

func runAdminSyncRun(api adminSyncClient, out io.Writer, id int) error {
	if err := api.TriggerSync(id); err != nil {
		return err
	}

	fmt.Fprintf(out, "✓ Sync started for source %d\n", id)
	return nil
}
