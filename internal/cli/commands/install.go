package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/agenthub-dev/agenthub/internal/cli/client"
)

// agentDirName is where installed assets land, following the layout coding
// agents read from
const agentDirName = ".claude"

// installClient is the slice of the API client the install command needs
type installClient interface {
	SkillInstall(id int) (*client.SkillInstallPackage, error)
	MCPInstall(id int) (*client.MCPInstallConfig, error)
	AgentInstall(id int) (*client.AgentInstallPackage, error)
	RecordInstall(assetType string, id int, agentType string) error
}

// NewInstallCmd creates the install command
func NewInstallCmd() *cobra.Command {
	var agentType, registryAlias string
	var global bool

	cmd := &cobra.Command{
		Use:   "install <skill|mcp|agent> <id>",
		Short: "Install an asset into the local agent directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			assetType := args[0]
			if assetType != "skill" && assetType != "mcp" && assetType != "agent" {
				return fmt.Errorf("unknown asset type '%s' (expected skill, mcp or agent)", assetType)
			}

			id, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid asset ID '%s'", args[1])
			}

			registry, err := getSelectedRegistry(registryAlias)
			if err != nil {
				return err
			}

			targetDir, err := installRoot(global)
			if err != nil {
				return err
			}

			api, _ := newSession(registry)
			return runInstall(api, os.Stdout, targetDir, assetType, id, agentType)
		},
	}

	cmd.Flags().StringVar(&agentType, "agent", "claude", "Agent flavor recorded with the install")
	cmd.Flags().BoolVar(&global, "global", false, "Install into the home directory instead of the current project")
	cmd.Flags().StringVar(&registryAlias, "registry", "", "Registry alias (uses selected registry if not specified)")

	return cmd
}

// installRoot resolves the agent directory for the chosen scope
func installRoot(global bool) (string, error) {
	if !global {
		return agentDirName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, agentDirName), nil
}

func runInstall(api installClient, out io.Writer, targetDir, assetType string, id int, agentType string) error {
	var err error
	switch assetType {
	case "skill":
		err = installSkill(api, out, targetDir, id)
	case "mcp":
		err = installMCP(api, out, targetDir, id)
	case "agent":
		err = installAgent(api, out, targetDir, id)
	}
	if err != nil {
		return err
	}

	// The install already succeeded locally; a failed stats ping is not
	// worth failing the command over.
	if err := api.RecordInstall(assetType, id, agentType); err != nil {
		log.Debug().Err(err).Msg("failed to record install")
	}

	return nil
}

func installSkill(api installClient, out io.Writer, targetDir string, id int) error {
	pkg, err := api.SkillInstall(id)
	if err != nil {
		return err
	}

	skillDir := filepath.Join(targetDir, "skills", pkg.Name)
	if err := writeFiles(skillDir, pkg.Files); err != nil {
		return err
	}

	fmt.Fprintf(out, "✓ Installed skill '%s' to %s (%d files)\n", pkg.Name, skillDir, len(pkg.Files))
	return nil
}

func installMCP(api installClient, out io.Writer, targetDir string, id int) error {
	cfg, err := api.MCPInstall(id)
	if err != nil {
		return err
	}

	configPath := filepath.Join(targetDir, "mcp", cfg.Name+".json")
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, cfg.Config, "", "  "); err != nil {
		return fmt.Errorf("invalid MCP config received: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(pretty.String()+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write MCP config: %w", err)
	}

	fmt.Fprintf(out, "✓ Installed MCP server '%s' to %s\n", cfg.Name, configPath)
	if len(cfg.EnvVarsNeeded) > 0 {
		fmt.Fprintf(out, "\nEnvironment variables to set before use:\n")
		for _, envVar := range cfg.EnvVarsNeeded {
			fmt.Fprintf(out, "  %s\n", envVar)
		}
	}
	return nil
}

func installAgent(api installClient, out io.Writer, targetDir string, id int) error {
	pkg, err := api.AgentInstall(id)
	if err != nil {
		return err
	}

	agentDir := filepath.Join(targetDir, "agents", pkg.Name)
	if err := os.MkdirAll(agentDir, 0755); err != nil {
		return fmt.Errorf("failed to create agent directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(agentDir, "prompt.md"), []byte(pkg.Prompt), 0644); err != nil {
		return fmt.Errorf("failed to write agent prompt: %w", err)
	}

	for _, skill := range pkg.EmbeddedSkills {
		skillDir := filepath.Join(agentDir, "skills", skill.Name)
		if err := writeFiles(skillDir, skill.Files); err != nil {
			return err
		}
	}

	for _, mcp := range pkg.EmbeddedMCPs {
		mcpPath := filepath.Join(agentDir, "mcp", mcp.Name+".json")
		if err := os.MkdirAll(filepath.Dir(mcpPath), 0755); err != nil {
			return fmt.Errorf("failed to create MCP directory: %w", err)
		}
		if err := os.WriteFile(mcpPath, append([]byte(nil), mcp.Config...), 0644); err != nil {
			return fmt.Errorf("failed to write embedded MCP config: %w", err)
		}
	}

	fmt.Fprintf(out, "✓ Installed agent '%s' to %s (%d skills, %d MCP servers)\n",
		pkg.Name, agentDir, len(pkg.EmbeddedSkills), len(pkg.EmbeddedMCPs))
	return nil
}

// writeFiles materializes a file map under dir, rejecting paths that escape it
func writeFiles(dir string, files map[string]string) error {
	for relPath, content := range files {
		cleaned := filepath.Clean(relPath)
		if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
			return fmt.Errorf("refusing to write file outside install directory: %s", relPath)
		}

		fullPath := filepath.Join(dir, cleaned)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", relPath, err)
		}
	}
	return nil
}
