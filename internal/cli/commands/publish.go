package commands

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agenthub-dev/agenthub/internal/cli/client"
	"github.com/agenthub-dev/agenthub/internal/frontmatter"
)

// skillNamePattern matches what the registry accepts for skill names
var skillNamePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// publishClient is the slice of the API client the publish command needs
type publishClient interface {
	PublishSkill(data client.SkillCreate) (*client.Skill, error)
}

// repoInfo carries the git facts attached to a published skill
type repoInfo struct {
	RemoteURL  string
	CommitHash string
	Root       string
}

// NewPublishCmd creates the publish command
func NewPublishCmd() *cobra.Command {
	var registryAlias string

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the skill in the current directory",
		Long: `Publish the skill in the current directory.

Reads SKILL.md from the working directory and registers it with the
marketplace, recording the repository URL and current commit so installs
always reference a pinned revision.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := getSelectedRegistry(registryAlias)
			if err != nil {
				return err
			}

			currentDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}

			repo, err := resolveRepoInfo(currentDir)
			if err != nil {
				return err
			}

			api, store := newSession(registry)
			if _, err := resolveAuthenticated(store, "/publish"); err != nil {
				return err
			}

			return runPublish(api, os.Stdout, currentDir, repo)
		},
	}

	cmd.Flags().StringVar(&registryAlias, "registry", "", "Registry alias (uses selected registry if not specified)")

	return cmd
}

// resolveRepoInfo queries git for the origin URL, HEAD commit and repo root
func resolveRepoInfo(dir string) (*repoInfo, error) {
	remoteURL, err := gitOutput(dir, "remote", "get-url", "origin")
	if err != nil {
		return nil, fmt.Errorf("not a git repository with an 'origin' remote (or git not installed)")
	}

	commitHash, err := gitOutput(dir, "rev-parse", "HEAD")
	if err != nil {
		return nil, fmt.Errorf("failed to read HEAD commit: %w", err)
	}

	root, err := gitOutput(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("failed to locate repository root: %w", err)
	}

	return &repoInfo{RemoteURL: remoteURL, CommitHash: commitHash, Root: root}, nil
}

func gitOutput(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func runPublish(api publishClient, out io.Writer, dir string, repo *repoInfo) error {
	content, err := os.ReadFile(filepath.Join(dir, "SKILL.md"))
	if err != nil {
		return fmt.Errorf("SKILL.md not found in current directory")
	}

	metadata, _ := frontmatter.Parse(string(content))

	name := metadata["name"]
	if name == "" {
		return fmt.Errorf("SKILL.md front matter must set 'name'")
	}
	if !skillNamePattern.MatchString(name) || len(name) > 64 {
		return fmt.Errorf("'name' must be lowercase alphanumeric with hyphens, at most 64 characters")
	}

	description := metadata["description"]
	if description == "" {
		return fmt.Errorf("SKILL.md front matter must set 'description'")
	}

	skillPath, err := filepath.Rel(repo.Root, dir)
	if err != nil {
		return fmt.Errorf("failed to compute skill path: %w", err)
	}
	if skillPath == "." {
		skillPath = ""
	}

	skill, err := api.PublishSkill(client.SkillCreate{
		Name:          name,
		Description:   description,
		Version:       metadata["version"],
		Tags:          splitTags(metadata["tags"]),
		GitURL:        repo.RemoteURL,
		CommitHash:    repo.CommitHash,
		SkillPath:     filepath.ToSlash(skillPath),
		ReadmeContent: string(content),
	})
	if err != nil {
		return fmt.Errorf("publish failed: %w", err)
	}

	fmt.Fprintf(out, "✓ Published %s (id: %d)\n", skill.Name, skill.ID)
	return nil
}

// splitTags parses the inline comma-separated tag list from front matter
func splitTags(value string) []string {
	tags := []string{}
	for _, tag := range strings.Split(value, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
