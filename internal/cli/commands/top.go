package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/agenthub-dev/agenthub/internal/cli/client"
)

// leaderboardClient is the slice of the API client the top command needs
type leaderboardClient interface {
	TopSkills(limit int) ([]client.Skill, error)
	TopMCPs(limit int) ([]client.MCPServer, error)
	TopAgents(limit int) ([]client.AgentConfig, error)
}

// NewTopCmd creates the top command
func NewTopCmd() *cobra.Command {
	var limit int
	var registryAlias string

	cmd := &cobra.Command{
		Use:   "top [skills|mcps|agents]",
		Short: "Show asset leaderboards",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board := "all"
			if len(args) == 1 {
				board = args[0]
			}
			if board != "all" && board != "skills" && board != "mcps" && board != "agents" {
				return fmt.Errorf("unknown leaderboard '%s' (expected skills, mcps or agents)", board)
			}

			registry, err := getSelectedRegistry(registryAlias)
			if err != nil {
				return err
			}

			api, _ := newSession(registry)
			return runTop(api, os.Stdout, board, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of entries per leaderboard")
	cmd.Flags().StringVar(&registryAlias, "registry", "", "Registry alias (uses selected registry if not specified)")

	return cmd
}

// runTop renders the requested leaderboards. The three fetches are
// independent: one failing board renders its empty state without hiding
// the others.
func runTop(api leaderboardClient, out io.Writer, board string, limit int) error {
	if board == "all" || board == "skills" {
		skills, err := api.TopSkills(limit)
		printSkillBoard(out, skills, err)
	}

	if board == "all" || board == "mcps" {
		mcps, err := api.TopMCPs(limit)
		printMCPBoard(out, mcps, err)
	}

	if board == "all" || board == "agents" {
		agents, err := api.TopAgents(limit)
		printAgentBoard(out, agents, err)
	}

	return nil
}

func printSkillBoard(out io.Writer, skills []client.Skill, err error) {
	fmt.Fprintln(out, "Top skills:")
	if err != nil {
		fmt.Fprintf(out, "  (unavailable: %v)\n\n", err)
		return
	}
	if len(skills) == 0 {
		fmt.Fprintln(out, "  No skills published yet.")
		fmt.Fprintln(out)
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tNAME\tINSTALLS\tAUTHOR\tDESCRIPTION")
	for _, skill := range skills {
		fmt.Fprintf(w, "  %d\t%s\t%d\t%s\t%s\n",
			skill.ID, skill.Name, skill.Installs, skill.Author.Username, truncate(skill.Description, 60))
	}
	w.Flush()
	fmt.Fprintln(out)
}

func printMCPBoard(out io.Writer, mcps []client.MCPServer, err error) {
	fmt.Fprintln(out, "Top MCP servers:")
	if err != nil {
		fmt.Fprintf(out, "  (unavailable: %v)\n\n", err)
		return
	}
	if len(mcps) == 0 {
		fmt.Fprintln(out, "  No MCP servers published yet.")
		fmt.Fprintln(out)
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tNAME\tINSTALLS\tTRANSPORT\tDESCRIPTION")
	for _, mcp := range mcps {
		fmt.Fprintf(w, "  %d\t%s\t%d\t%s\t%s\n",
			mcp.ID, mcp.Name, mcp.Installs, mcp.Transport, truncate(mcp.Description, 60))
	}
	w.Flush()
	fmt.Fprintln(out)
}

func printAgentBoard(out io.Writer, agents []client.AgentConfig, err error) {
	fmt.Fprintln(out, "Top agents:")
	if err != nil {
		fmt.Fprintf(out, "  (unavailable: %v)\n\n", err)
		return
	}
	if len(agents) == 0 {
		fmt.Fprintln(out, "  No agents published yet.")
		fmt.Fprintln(out)
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tNAME\tINSTALLS\tAUTHOR\tDESCRIPTION")
	for _, agent := range agents {
		fmt.Fprintf(w, "  %d\t%s\t%d\t%s\t%s\n",
			agent.ID, agent.Name, agent.Installs, agent.Author.Username, truncate(agent.Description, 60))
	}
	w.Flush()
	fmt.Fprintln(out)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
