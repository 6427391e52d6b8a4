package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agenthub-dev/agenthub/internal/cli/client"
)

// mockPublishClient records the submitted payload
type mockPublishClient struct {
	published *client.SkillCreate
	resp      *client.Skill
	respErr   error
}

func (m *mockPublishClient) PublishSkill(data client.SkillCreate) (*client.Skill, error) {
	m.published = &data
	if m.respErr != nil {
		return nil, m.respErr
	}
	return m.resp, nil
}

func writeSkillMd(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write SKILL.md: %v", err)
	}
}

func testRepoInfo(root string) *repoInfo {
	return &repoInfo{
		RemoteURL:  "https://github.com/ann/skills.git",
		CommitHash: "a1b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6a7b8c9d0",
		Root:       root,
	}
}

func TestPublishCommand_PayloadFromSkillMd(t *testing.T) {
	root := t.TempDir()
	skillDir := filepath.Join(root, "skills", "code-review")
	if err := os.MkdirAll(skillDir, 0755); err != nil {
		t.Fatalf("failed to create skill dir: %v", err)
	}

	content := `---
name: code-review
description: Reviews pull requests
version: "1.2.0"
tags: review, quality
---
# Code Review
`
	writeSkillMd(t, skillDir, content)

	api := &mockPublishClient{resp: &client.Skill{ID: 42, Name: "code-review"}}
	var out bytes.Buffer

	if err := runPublish(api, &out, skillDir, testRepoInfo(root)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := api.published
	if got == nil {
		t.Fatal("expected PublishSkill to be called")
	}
	if got.Name != "code-review" || got.Description != "Reviews pull requests" {
		t.Errorf("unexpected name/description: %s / %s", got.Name, got.Description)
	}
	if got.Version != "1.2.0" {
		t.Errorf("expected version 1.2.0, got '%s'", got.Version)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "review" || got.Tags[1] != "quality" {
		t.Errorf("unexpected tags: %v", got.Tags)
	}
	if got.GitURL != "https://github.com/ann/skills.git" {
		t.Errorf("unexpected git URL: %s", got.GitURL)
	}
	if got.SkillPath != "skills/code-review" {
		t.Errorf("expected skill path relative to repo root, got '%s'", got.SkillPath)
	}
	if !strings.Contains(got.ReadmeContent, "# Code Review") {
		t.Errorf("expected full SKILL.md content in payload")
	}

	if !strings.Contains(out.String(), "✓ Published code-review (id: 42)") {
		t.Errorf("expected success message, got:\n%s", out.String())
	}
}

func TestPublishCommand_RepoRootSkillPathEmpty(t *testing.T) {
	root := t.TempDir()
	writeSkillMd(t, root, "---\nname: top-level\ndescription: At repo root\n---\nbody")

	api := &mockPublishClient{resp: &client.Skill{ID: 1, Name: "top-level"}}

	if err := runPublish(api, &bytes.Buffer{}, root, testRepoInfo(root)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if api.published.SkillPath != "" {
		t.Errorf("expected empty skill path at repo root, got '%s'", api.published.SkillPath)
	}
}

func TestPublishCommand_MissingSkillMd(t *testing.T) {
	dir := t.TempDir()
	api := &mockPublishClient{}

	err := runPublish(api, &bytes.Buffer{}, dir, testRepoInfo(dir))
	if err == nil {
		t.Fatal("expected error without SKILL.md, got nil")
	}
	if !strings.Contains(err.Error(), "SKILL.md not found") {
		t.Errorf("unexpected error: %v", err)
	}
	if api.published != nil {
		t.Error("expected no publish attempt without SKILL.md")
	}
}

func TestPublishCommand_FrontMatterValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing name", "---\ndescription: No name\n---\nbody", "'name'"},
		{"missing description", "---\nname: no-desc\n---\nbody", "'description'"},
		{"uppercase name", "---\nname: BadName\ndescription: x\n---\nbody", "lowercase"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeSkillMd(t, dir, tc.content)

			err := runPublish(&mockPublishClient{}, &bytes.Buffer{}, dir, testRepoInfo(dir))
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error mentioning %q, got: %v", tc.wantErr, err)
			}
		})
	}
}
