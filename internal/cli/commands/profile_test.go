package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/agenthub-dev/agenthub/internal/cli/client"
	"github.com/agenthub-dev/agenthub/internal/cli/session"
)

// mockProfileClient serves canned profile sections
type mockProfileClient struct {
	stats        *client.PublishStats
	statsErr     error
	published    *client.PublishedAssets
	publishedErr error
	installed    []client.InstallRecord
	installedErr error
}

func (m *mockProfileClient) MyStats() (*client.PublishStats, error) {
	return m.stats, m.statsErr
}

func (m *mockProfileClient) MyPublished() (*client.PublishedAssets, error) {
	return m.published, m.publishedErr
}

func (m *mockProfileClient) MyInstalled() ([]client.InstallRecord, error) {
	return m.installed, m.installedErr
}

func profileSnapshot() session.Snapshot {
	return session.Snapshot{
		State: session.Resolved,
		User:  &client.User{Username: "ann", Email: "ann@example.com", Role: "member"},
	}
}

func TestProfileCommand_AllSections(t *testing.T) {
	api := &mockProfileClient{
		stats: &client.PublishStats{SkillCount: 2, MCPCount: 1, AgentCount: 0, TotalInstalls: 30},
		published: &client.PublishedAssets{
			Skills: []client.Skill{{ID: 1, Name: "sql-helper", Installs: 20}},
			MCPs:   []client.MCPServer{{ID: 2, Name: "pg-mcp", Installs: 10}},
		},
		installed: []client.InstallRecord{
			{AssetType: "skill", AssetID: 5, AgentType: "claude", InstalledAt: "2026-08-01T10:00:00Z"},
		},
	}
	var out bytes.Buffer

	if err := runProfile(api, &out, profileSnapshot()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	for _, expected := range []string{
		"Profile for ann (ann@example.com)",
		"Published: 2 skills, 1 MCP servers, 0 agents",
		"sql-helper",
		"pg-mcp",
		"Install history:",
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("expected '%s' in output:\n%s", expected, output)
		}
	}
}

func TestProfileCommand_FailedSectionDoesNotHideOthers(t *testing.T) {
	api := &mockProfileClient{
		statsErr:  errors.New("boom"),
		published: &client.PublishedAssets{},
		installed: []client.InstallRecord{},
	}
	var out bytes.Buffer

	if err := runProfile(api, &out, profileSnapshot()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Stats unavailable: boom") {
		t.Errorf("expected stats failure notice, got:\n%s", output)
	}
	if !strings.Contains(output, "No published assets.") {
		t.Errorf("expected published empty state, got:\n%s", output)
	}
	if !strings.Contains(output, "No installs recorded.") {
		t.Errorf("expected install empty state, got:\n%s", output)
	}
}
