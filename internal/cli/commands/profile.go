package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/agenthub-dev/agenthub/internal/cli/client"
	"github.com/agenthub-dev/agenthub/internal/cli/session"
)

// profileClient is the slice of the API client the profile command needs
type profileClient interface {
	MyStats() (*client.PublishStats, error)
	MyPublished() (*client.PublishedAssets, error)
	MyInstalled() ([]client.InstallRecord, error)
}

// NewProfileCmd creates the profile command
func NewProfileCmd() *cobra.Command {
	var registryAlias string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your published assets, installs and stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := getSelectedRegistry(registryAlias)
			if err != nil {
				return err
			}

			api, store := newSession(registry)
			snap, err := resolveAuthenticated(store, "/profile")
			if err != nil {
				return err
			}

			return runProfile(api, os.Stdout, snap)
		},
	}

	cmd.Flags().StringVar(&registryAlias, "registry", "", "Registry alias (uses selected registry if not specified)")

	return cmd
}

// runProfile renders the three profile sections. Each fetch is independent;
// a failing section renders its empty state instead of hiding the rest.
func runProfile(api profileClient, out io.Writer, snap session.Snapshot) error {
	if snap.User != nil {
		fmt.Fprintf(out, "Profile for %s (%s)\n\n", snap.User.Username, snap.User.Email)
	}

	stats, err := api.MyStats()
	if err != nil {
		fmt.Fprintf(out, "Stats unavailable: %v\n\n", err)
	} else {
		fmt.Fprintf(out, "Published: %d skills, %d MCP servers, %d agents · %d total installs\n\n",
			stats.SkillCount, stats.MCPCount, stats.AgentCount, stats.TotalInstalls)
	}

	published, err := api.MyPublished()
	if err != nil {
		fmt.Fprintf(out, "Published assets unavailable: %v\n\n", err)
	} else {
		printPublished(out, published)
	}

	installed, err := api.MyInstalled()
	if err != nil {
		fmt.Fprintf(out, "Install history unavailable: %v\n", err)
	} else {
		printInstalled(out, installed)
	}

	return nil
}

func printPublished(out io.Writer, published *client.PublishedAssets) {
	total := len(published.Skills) + len(published.MCPs) + len(published.Agents)
	if total == 0 {
		fmt.Fprintln(out, "No published assets.")
		fmt.Fprintln(out)
		return
	}

	fmt.Fprintln(out, "Published assets:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  TYPE\tID\tNAME\tINSTALLS")
	for _, skill := range published.Skills {
		fmt.Fprintf(w, "  skill\t%d\t%s\t%d\n", skill.ID, skill.Name, skill.Installs)
	}
	for _, mcp := range published.MCPs {
		fmt.Fprintf(w, "  mcp\t%d\t%s\t%d\n", mcp.ID, mcp.Name, mcp.Installs)
	}
	for _, agent := range published.Agents {
		fmt.Fprintf(w, "  agent\t%d\t%s\t%d\n", agent.ID, agent.Name, agent.Installs)
	}
	w.Flush()
	fmt.Fprintln(out)
}

func printInstalled(out io.Writer, installed []client.InstallRecord) {
	if len(installed) == 0 {
		fmt.Fprintln(out, "No installs recorded.")
		return
	}

	fmt.Fprintln(out, "Install history:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  TYPE\tID\tAGENT\tINSTALLED AT")
	for _, record := range installed {
		fmt.Fprintf(w, "  %s\t%d\t%s\t%s\n", record.AssetType, record.AssetID, record.AgentType, record.InstalledAt)
	}
	w.Flush()
}
