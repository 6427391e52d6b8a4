package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/agenthub-dev/agenthub/internal/cli/client"
)

// mockLeaderboardClient returns canned leaderboards per asset type
type mockLeaderboardClient struct {
	skills    []client.Skill
	skillsErr error
	mcps      []client.MCPServer
	mcpsErr   error
	agents    []client.AgentConfig
	agentsErr error

	lastLimit int
}

func (m *mockLeaderboardClient) TopSkills(limit int) ([]client.Skill, error) {
	m.lastLimit = limit
	return m.skills, m.skillsErr
}

func (m *mockLeaderboardClient) TopMCPs(limit int) ([]client.MCPServer, error) {
	return m.mcps, m.mcpsErr
}

func (m *mockLeaderboardClient) TopAgents(limit int) ([]client.AgentConfig, error) {
	return m.agents, m.agentsErr
}

func TestTopCommand_EmptyState(t *testing.T) {
	api := &mockLeaderboardClient{}
	var out bytes.Buffer

	if err := runTop(api, &out, "all", 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	for _, expected := range []string{
		"No skills published yet.",
		"No MCP servers published yet.",
		"No agents published yet.",
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("expected empty state '%s' in output:\n%s", expected, output)
		}
	}
}

func TestTopCommand_FailedBoardDoesNotHideOthers(t *testing.T) {
	api := &mockLeaderboardClient{
		skillsErr: errors.New("boom"),
		mcps: []client.MCPServer{
			{ID: 1, Name: "pg-mcp", Transport: "stdio", Installs: 42},
		},
	}
	var out bytes.Buffer

	if err := runTop(api, &out, "all", 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "(unavailable: boom)") {
		t.Errorf("expected failed skill board to render its error, got:\n%s", output)
	}
	if !strings.Contains(output, "pg-mcp") {
		t.Errorf("expected MCP board to still render, got:\n%s", output)
	}
}

func TestTruncate_MultibyteDescriptions(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"abcdefghij", 5, "abcd…"},
		{"héllo wörld çafé", 8, "héllo w…"},
		{"日本語の説明テキスト", 5, "日本語の…"},
	}

	for _, tc := range cases {
		got := truncate(tc.in, tc.max)
		if got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) produced invalid UTF-8", tc.in, tc.max)
		}
	}
}

func TestTopCommand_SingleBoard(t *testing.T) {
	api := &mockLeaderboardClient{
		skills: []client.Skill{
			{ID: 7, Name: "code-review", Installs: 120, Author: client.Author{Username: "ann"}},
		},
	}
	var out bytes.Buffer

	if err := runTop(api, &out, "skills", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if api.lastLimit != 5 {
		t.Errorf("expected limit 5 passed through, got %d", api.lastLimit)
	}

	output := out.String()
	if !strings.Contains(output, "code-review") {
		t.Errorf("expected skill row in output:\n%s", output)
	}
	if strings.Contains(output, "Top MCP servers:") || strings.Contains(output, "Top agents:") {
		t.Errorf("expected only the skills board, got:\n%s", output)
	}
}
