package client

import "encoding/json"

// User is the identity snapshot returned by the backend. It is owned by the
// session once resolved and never mutated locally.
type User struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	CreatedAt   string `json:"created_at"`
}

// Author is the brief user shape embedded in asset responses
type Author struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
}

// AuthResponse is returned by the register and login endpoints. APIKey is only
// present on registration and is never retrievable again.
type AuthResponse struct {
	User    User   `json:"user"`
	APIKey  string `json:"api_key,omitempty"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

// APIKey is the one-time provisioning secret returned by key rotation
type APIKey struct {
	APIKey  string `json:"api_key"`
	Message string `json:"message,omitempty"`
}

// Skill represents a published skill asset
type Skill struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Version       string   `json:"version,omitempty"`
	Tags          []string `json:"tags"`
	GitURL        string   `json:"git_url"`
	GitRef        string   `json:"git_ref,omitempty"`
	CommitHash    string   `json:"commit_hash"`
	SkillPath     string   `json:"skill_path"`
	ReadmeContent string   `json:"readme_content"`
	Author        Author   `json:"author"`
	Installs      int      `json:"installs"`
	Source        string   `json:"source"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

// SkillCreate is the publish payload for a new skill
type SkillCreate struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Version       string   `json:"version,omitempty"`
	Tags          []string `json:"tags"`
	GitURL        string   `json:"git_url"`
	GitRef        string   `json:"git_ref,omitempty"`
	CommitHash    string   `json:"commit_hash"`
	SkillPath     string   `json:"skill_path"`
	ReadmeContent string   `json:"readme_content"`
}

// MCPServer represents a published MCP server configuration
type MCPServer struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Version     string          `json:"version,omitempty"`
	Tags        []string        `json:"tags"`
	Transport   string          `json:"transport"`
	Config      json.RawMessage `json:"config"`
	Author      Author          `json:"author"`
	Installs    int             `json:"installs"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// EmbeddedSkill is a skill bundled inside an agent configuration
type EmbeddedSkill struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Files       map[string]string `json:"files"`
}

// EmbeddedMCP is an MCP server bundled inside an agent configuration
type EmbeddedMCP struct {
	Name   string          `json:"name"`
	Config json.RawMessage `json:"config"`
}

// AgentConfig represents a published agent configuration
type AgentConfig struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Tags           []string        `json:"tags"`
	Prompt         string          `json:"prompt"`
	EmbeddedSkills []EmbeddedSkill `json:"embedded_skills"`
	EmbeddedMCPs   []EmbeddedMCP   `json:"embedded_mcps"`
	Author         Author          `json:"author"`
	Installs       int             `json:"installs"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

// Page is the paginated envelope used by all list endpoints
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Pages int `json:"pages"`
}

// SearchResults groups per-type pages returned by the unified search and the
// admin asset listing. Types excluded by the filter stay nil.
type SearchResults struct {
	Skills *Page[Skill]       `json:"skills,omitempty"`
	MCPs   *Page[MCPServer]   `json:"mcps,omitempty"`
	Agents *Page[AgentConfig] `json:"agents,omitempty"`
}

// PublishedAssets lists everything the current user has published
type PublishedAssets struct {
	Skills []Skill       `json:"skills"`
	MCPs   []MCPServer   `json:"mcps"`
	Agents []AgentConfig `json:"agents"`
}

// InstallRecord is one entry of the current user's install history
type InstallRecord struct {
	AssetType   string `json:"asset_type"`
	AssetID     int    `json:"asset_id"`
	AgentType   string `json:"agent_type"`
	InstalledAt string `json:"installed_at"`
}

// PublishStats summarizes the current user's publishing activity
type PublishStats struct {
	SkillCount    int `json:"skill_count"`
	MCPCount      int `json:"mcp_count"`
	AgentCount    int `json:"agent_count"`
	TotalInstalls int `json:"total_installs"`
}

// SyncSource is a registered git repository the backend periodically ingests
type SyncSource struct {
	ID             int    `json:"id"`
	GitURL         string `json:"git_url"`
	LastSyncedAt   string `json:"last_synced_at,omitempty"`
	LastCommitHash string `json:"last_commit_hash,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// SkillInstallPackage carries the files needed to install a skill locally
type SkillInstallPackage struct {
	Name       string            `json:"name"`
	GitURL     string            `json:"git_url"`
	CommitHash string            `json:"commit_hash"`
	SkillPath  string            `json:"skill_path"`
	Files      map[string]string `json:"files"`
}

// MCPInstallConfig carries the config block needed to install an MCP server
type MCPInstallConfig struct {
	Name          string          `json:"name"`
	Config        json.RawMessage `json:"config"`
	EnvVarsNeeded []string        `json:"env_vars_needed"`
}

// AgentInstallPackage carries the prompt and embedded assets of an agent
type AgentInstallPackage struct {
	Name           string          `json:"name"`
	Prompt         string          `json:"prompt"`
	EmbeddedSkills []EmbeddedSkill `json:"embedded_skills"`
	EmbeddedMCPs   []EmbeddedMCP   `json:"embedded_mcps"`
}
