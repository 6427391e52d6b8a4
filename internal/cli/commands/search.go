package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/agenthub-dev/agenthub/internal/cli/client"
)

// searchClient is the slice of the API client the search command needs
type searchClient interface {
	Search(query, assetType string, page int) (*client.SearchResults, error)
	SearchSkills(keyword, tag string, page int) (*client.Page[client.Skill], error)
}

// NewSearchCmd creates the search command
func NewSearchCmd() *cobra.Command {
	var assetType, tag, registryAlias string
	var page int

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the marketplace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			if assetType != "" && assetType != "skill" && assetType != "mcp" && assetType != "agent" {
				return fmt.Errorf("unknown type '%s' (expected skill, mcp or agent)", assetType)
			}

			registry, err := getSelectedRegistry(registryAlias)
			if err != nil {
				return err
			}

			api, _ := newSession(registry)
			return runSearch(api, os.Stdout, query, assetType, tag, page)
		},
	}

	cmd.Flags().StringVar(&assetType, "type", "", "Restrict to one asset type: skill, mcp or agent")
	cmd.Flags().StringVar(&tag, "tag", "", "Filter skills by tag")
	cmd.Flags().IntVar(&page, "page", 1, "Result page")
	cmd.Flags().StringVar(&registryAlias, "registry", "", "Registry alias (uses selected registry if not specified)")

	return cmd
}

func runSearch(api searchClient, out io.Writer, query, assetType, tag string, page int) error {
	// Tag filtering only exists on the per-type skill listing
	if tag != "" {
		skills, err := api.SearchSkills(query, tag, page)
		if err != nil {
			return err
		}
		printSkillPage(out, skills)
		return nil
	}

	results, err := api.Search(query, assetType, page)
	if err != nil {
		return err
	}

	empty := true
	if results.Skills != nil {
		printSkillPage(out, results.Skills)
		empty = empty && len(results.Skills.Items) == 0
	}
	if results.MCPs != nil {
		printMCPPage(out, results.MCPs)
		empty = empty && len(results.MCPs.Items) == 0
	}
	if results.Agents != nil {
		printAgentPage(out, results.Agents)
		empty = empty && len(results.Agents.Items) == 0
	}

	if empty {
		fmt.Fprintln(out, "No results found.")
	}

	return nil
}

func printSkillPage(out io.Writer, page *client.Page[client.Skill]) {
	if len(page.Items) == 0 {
		return
	}
	fmt.Fprintf(out, "Skills (%d total, page %d/%d):\n", page.Total, page.Page, page.Pages)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tNAME\tINSTALLS\tAUTHOR\tDESCRIPTION")
	for _, skill := range page.Items {
		fmt.Fprintf(w, "  %d\t%s\t%d\t%s\t%s\n",
			skill.ID, skill.Name, skill.Installs, skill.Author.Username, truncate(skill.Description, 60))
	}
	w.Flush()
	fmt.Fprintln(out)
}

func printMCPPage(out io.Writer, page *client.Page[client.MCPServer]) {
	if len(page.Items) == 0 {
		return
	}
	fmt.Fprintf(out, "MCP servers (%d total, page %d/%d):\n", page.Total, page.Page, page.Pages)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tNAME\tINSTALLS\tTRANSPORT\tDESCRIPTION")
	for _, mcp := range page.Items {
		fmt.Fprintf(w, "  %d\t%s\t%d\t%s\t%s\n",
			mcp.ID, mcp.Name, mcp.Installs, mcp.Transport, truncate(mcp.Description, 60))
	}
	w.Flush()
	fmt.Fprintln(out)
}

func printAgentPage(out io.Writer, page *client.Page[client.AgentConfig]) {
	if len(page.Items) == 0 {
		return
	}
	fmt.Fprintf(out, "Agents (%d total, page %d/%d):\n", page.Total, page.Page, page.Pages)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tNAME\tINSTALLS\tAUTHOR\tDESCRIPTION")
	for _, agent := range page.Items {
		fmt.Fprintf(w, "  %d\t%s\t%d\t%s\t%s\n",
			agent.ID, agent.Name, agent.Installs, agent.Author.Username, truncate(agent.Description, 60))
	}
	w.Flush()
	fmt.Fprintln(out)
}
