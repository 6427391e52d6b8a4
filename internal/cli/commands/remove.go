package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// NewRemoveCmd creates the remove command
func NewRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <skill-name>",
		Short: "Remove a locally installed skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get user home directory: %w", err)
			}

			roots := []string{agentDirName, filepath.Join(homeDir, agentDirName)}
			return runRemove(os.Stdout, roots, args[0])
		},
	}
}

// runRemove deletes the named skill from the first root that has it,
// checking the project directory before the home directory.
func runRemove(out io.Writer, roots []string, name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid skill name '%s'", name)
	}

	for _, root := range roots {
		target := filepath.Join(root, "skills", name)
		if _, err := os.Stat(target); err != nil {
			continue
		}
		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("failed to remove %s: %w", target, err)
		}
		fmt.Fprintf(out, "✓ Removed '%s' (%s)\n", name, target)
		return nil
	}

	fmt.Fprintf(out, "Skill '%s' not found locally.\n", name)
	return nil
}
