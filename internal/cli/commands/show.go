package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/agenthub-dev/agenthub/internal/cli/client"
	"github.com/agenthub-dev/agenthub/internal/cli/render"
)

// assetClient is the slice of the API client the show command needs
type assetClient interface {
	GetSkill(id int) (*client.Skill, error)
	GetMCP(id int) (*client.MCPServer, error)
	GetAgent(id int) (*client.AgentConfig, error)
}

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var registryAlias string

	cmd := &cobra.Command{
		Use:   "show <skill|mcp|agent> <id>",
		Short: "Show asset details and documentation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			assetType := args[0]
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid asset ID '%s'", args[1])
			}

			registry, err := getSelectedRegistry(registryAlias)
			if err != nil {
				return err
			}

			api, _ := newSession(registry)
			renderer := render.New(terminalWidth())
			return runShow(api, os.Stdout, renderer, assetType, id)
		},
	}

	cmd.Flags().StringVar(&registryAlias, "registry", "", "Registry alias (uses selected registry if not specified)")

	return cmd
}

func runShow(api assetClient, out io.Writer, renderer *render.Renderer, assetType string, id int) error {
	switch assetType {
	case "skill":
		skill, err := api.GetSkill(id)
		if err != nil {
			return err
		}
		printSkillDetail(out, renderer, skill)
	case "mcp":
		mcp, err := api.GetMCP(id)
		if err != nil {
			return err
		}
		printMCPDetail(out, mcp)
	case "agent":
		agent, err := api.GetAgent(id)
		if err != nil {
			return err
		}
		printAgentDetail(out, renderer, agent)
	default:
		return fmt.Errorf("unknown asset type '%s' (expected skill, mcp or agent)", assetType)
	}

	return nil
}

func printSkillDetail(out io.Writer, renderer *render.Renderer, skill *client.Skill) {
	fmt.Fprintf(out, "%s", skill.Name)
	if skill.Version != "" {
		fmt.Fprintf(out, " v%s", skill.Version)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "by %s · %d installs · source: %s\n", skill.Author.Username, skill.Installs, skill.Source)
	if len(skill.Tags) > 0 {
		fmt.Fprintf(out, "tags: %s\n", strings.Join(skill.Tags, ", "))
	}
	fmt.Fprintf(out, "repo: %s (%s)\n\n", skill.GitURL, shortHash(skill.CommitHash))

	if skill.ReadmeContent != "" {
		fmt.Fprintln(out, renderer.Document(skill.ReadmeContent))
	}
}

func printMCPDetail(out io.Writer, mcp *client.MCPServer) {
	fmt.Fprintf(out, "%s", mcp.Name)
	if mcp.Version != "" {
		fmt.Fprintf(out, " v%s", mcp.Version)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "by %s · %d installs · transport: %s\n", mcp.Author.Username, mcp.Installs, mcp.Transport)
	if len(mcp.Tags) > 0 {
		fmt.Fprintf(out, "tags: %s\n", strings.Join(mcp.Tags, ", "))
	}
	fmt.Fprintf(out, "\n%s\n\n", mcp.Description)

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, mcp.Config, "", "  "); err == nil {
		fmt.Fprintln(out, "Configuration:")
		fmt.Fprintln(out, pretty.String())
	}
}

func printAgentDetail(out io.Writer, renderer *render.Renderer, agent *client.AgentConfig) {
	fmt.Fprintln(out, agent.Name)
	fmt.Fprintf(out, "by %s · %d installs\n", agent.Author.Username, agent.Installs)
	if len(agent.Tags) > 0 {
		fmt.Fprintf(out, "tags: %s\n", strings.Join(agent.Tags, ", "))
	}
	fmt.Fprintf(out, "\n%s\n\n", agent.Description)

	if agent.Prompt != "" {
		fmt.Fprintln(out, renderer.Markdown(agent.Prompt))
		fmt.Fprintln(out)
	}

	if len(agent.EmbeddedSkills) > 0 {
		fmt.Fprintln(out, "Embedded skills:")
		for _, skill := range agent.EmbeddedSkills {
			fmt.Fprintf(out, "  - %s: %s\n", skill.Name, truncate(skill.Description, 70))
		}
	}
	if len(agent.EmbeddedMCPs) > 0 {
		fmt.Fprintln(out, "Embedded MCP servers:")
		for _, mcp := range agent.EmbeddedMCPs {
			fmt.Fprintf(out, "  - %s\n", mcp.Name)
		}
	}
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}

// terminalWidth returns the stdout width, or 0 when not a terminal so the
// renderer falls back to its default
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}
