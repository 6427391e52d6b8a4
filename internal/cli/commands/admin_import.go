package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agenthub-dev/agenthub/internal/cli/client"
)

// adminImportClient is the slice of the API client the import command needs
type adminImportClient interface {
	Import(gitURL string) ([]client.Skill, error)
}

func newAdminImportCmd() *cobra.Command {
	var registryAlias string

	cmd := &cobra.Command{
		Use:   "import <git-url>",
		Short: "Run a one-shot import of a git repository",
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

			return runAdminImport(api, os.Stdout, args[0])
		},
	}

	cmd.Flags().StringVar(&registryAlias, "registry", "", "Registry alias (uses selected registry if not specified)")

	return cmd
}

func runAdminImport(api adminImportClient, out io.Writer, gitURL string) error {
	skills, err := api.Import(gitURL)
	if err != nil {
		return err
	}

	if len(skills) == 0 {
		fmt.Fprintln(out, "Import finished: no skills found in repository.")
		return nil
	}

	fmt.Fprintf(out, "✓ Imported %d skills:\n", len(skills))
	for _, skill := range skills {
		fmt.Fprintf(out, "  - %s", skill.Name)
		if skill.Version != "" {
			fmt.Fprintf(out, " v%s", skill.Version)
		}
		fmt.Fprintln(out)
	}

	return nil
}
