package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/agenthub-dev/agenthub/internal/cli/auth"
)

// basePath is prefixed onto every resource path
const basePath = "/api/v1"

// LoginPath is where a rejected session is redirected to
const LoginPath = "/login"

// ErrUnauthorized is returned when the backend rejects the stored credential.
// It always comes with the hard side effects: the credential is cleared and
// session invalidation is dispatched before the caller sees this error.
var ErrUnauthorized = errors.New("unauthorized")

// RequestError carries the backend's human-readable failure message for any
// non-success, non-401 response.
type RequestError struct {
	StatusCode int
	Detail     string
}

func (e *RequestError) Error() string {
	return e.Detail
}

// Navigator receives the forced navigation a 401 triggers
type Navigator interface {
	Navigate(path string)
}

// Client represents an HTTP client for the AgentHub registry API
type Client struct {
	baseURL     string
	httpClient  *http.Client
	credentials auth.CredentialStore
	navigator   Navigator
	invalidated []func()
}

// New creates a new API client for the given registry base URL
func New(registryURL string) *Client {
	return &Client{
		baseURL:     strings.TrimSuffix(registryURL, "/"),
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		credentials: auth.Default,
	}
}

// SetHTTPClient sets a custom HTTP client
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// SetCredentialStore sets a custom credential store (mocked in tests)
func (c *Client) SetCredentialStore(store auth.CredentialStore) {
	c.credentials = store
}

// SetNavigator sets the navigator that receives forced redirects
func (c *Client) SetNavigator(nav Navigator) {
	c.navigator = nav
}

// OnSessionInvalidated registers an observer called whenever a request is
// rejected with 401. The transport layer never touches session internals
// directly; the session store subscribes here.
func (c *Client) OnSessionInvalidated(fn func()) {
	c.invalidated = append(c.invalidated, fn)
}

// do is the single chokepoint for all backend communication. It prefixes the
// API base path, attaches the bearer credential when one is stored, and
// normalizes error and empty responses. A 401 clears the credential, forces
// navigation to the login page and dispatches session invalidation.
func (c *Client) do(method, path string, body, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, c.baseURL+basePath+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// The credential is re-read on every request: an unrelated 401 may have
	// cleared it while this call was being prepared.
	credential, err := c.credentials.Load()
	if err != nil {
		return fmt.Errorf("failed to load credential: %w", err)
	}
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	log.Debug().Str("method", method).Str("path", path).Msg("registry request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	log.Debug().Str("path", path).Int("status", resp.StatusCode).Msg("registry response")

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidateSession()
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// invalidateSession applies the hard 401 side effects: stored credential gone,
// navigation forced to the login page, observers notified.
func (c *Client) invalidateSession() {
	if err := c.credentials.Clear(); err != nil {
		log.Debug().Err(err).Msg("failed to clear credential after 401")
	}
	if c.navigator != nil {
		c.navigator.Navigate(LoginPath)
	}
	for _, fn := range c.invalidated {
		fn()
	}
}

// decodeError extracts the backend's "detail" message, falling back to a
// generic message when the body is not parseable.
func decodeError(resp *http.Response) error {
	reqErr := &RequestError{
		StatusCode: resp.StatusCode,
		Detail:     "Request failed",
	}

	var errBody struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Detail != "" {
		reqErr.Detail = errBody.Detail
	}

	return reqErr
}

// --- Auth ---

// Register creates a new account. The returned APIKey is shown exactly once
// and is never retrievable again.
func (c *Client) Register(username, email, password string) (*AuthResponse, error) {
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}
	var resp AuthResponse
	if err := c.do(http.MethodPost, "/auth/register", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login authenticates the user and returns the identity plus a bearer token
func (c *Client) Login(email, password string) (*AuthResponse, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	var resp AuthResponse
	if err := c.do(http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me resolves the stored credential to the current identity
func (c *Client) Me() (*User, error) {
	var user User
	if err := c.do(http.MethodGet, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// --- Leaderboards ---

// TopSkills returns the skill leaderboard
func (c *Client) TopSkills(limit int) ([]Skill, error) {
	var skills []Skill
	path := fmt.Sprintf("/skills/top?limit=%d", limit)
	if err := c.do(http.MethodGet, path, nil, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// TopMCPs returns the MCP server leaderboard
func (c *Client) TopMCPs(limit int) ([]MCPServer, error) {
	var mcps []MCPServer
	path := fmt.Sprintf("/mcps/top?limit=%d", limit)
	if err := c.do(http.MethodGet, path, nil, &mcps); err != nil {
		return nil, err
	}
	return mcps, nil
}

// TopAgents returns the agent leaderboard
func (c *Client) TopAgents(limit int) ([]AgentConfig, error) {
	var agents []AgentConfig
	path := fmt.Sprintf("/agents/top?limit=%d", limit)
	if err := c.do(http.MethodGet, path, nil, &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

// --- Asset lookup and search ---

// SearchSkills searches skills by keyword and tag
func (c *Client) SearchSkills(keyword, tag string, page int) (*Page[Skill], error) {
	params := url.Values{}
	params.Set("keyword", keyword)
	params.Set("tag", tag)
	params.Set("page", strconv.Itoa(page))

	var result Page[Skill]
	if err := c.do(http.MethodGet, "/skills?"+params.Encode(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PublishSkill registers a new skill under the current user
func (c *Client) PublishSkill(data SkillCreate) (*Skill, error) {
	var skill Skill
	if err := c.do(http.MethodPost, "/skills", data, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

// GetSkill fetches one skill by ID
func (c *Client) GetSkill(id int) (*Skill, error) {
	var skill Skill
	if err := c.do(http.MethodGet, fmt.Sprintf("/skills/%d", id), nil, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

// GetMCP fetches one MCP server by ID
func (c *Client) GetMCP(id int) (*MCPServer, error) {
	var mcp MCPServer
	if err := c.do(http.MethodGet, fmt.Sprintf("/mcps/%d", id), nil, &mcp); err != nil {
		return nil, err
	}
	return &mcp, nil
}

// GetAgent fetches one agent configuration by ID
func (c *Client) GetAgent(id int) (*AgentConfig, error) {
	var agent AgentConfig
	if err := c.do(http.MethodGet, fmt.Sprintf("/agents/%d", id), nil, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

// Search performs a unified search across asset types. assetType may be empty
// ("all types"), "skill", "mcp" or "agent".
func (c *Client) Search(query, assetType string, page int) (*SearchResults, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if assetType != "" {
		params.Set("type", assetType)
	}
	params.Set("page", strconv.Itoa(page))

	var results SearchResults
	if err := c.do(http.MethodGet, "/search?"+params.Encode(), nil, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

// --- Profile ---

// MyPublished lists assets published by the current user
func (c *Client) MyPublished() (*PublishedAssets, error) {
	var published PublishedAssets
	if err := c.do(http.MethodGet, "/users/me/published", nil, &published); err != nil {
		return nil, err
	}
	return &published, nil
}

// MyInstalled lists the current user's install history
func (c *Client) MyInstalled() ([]InstallRecord, error) {
	var installed []InstallRecord
	if err := c.do(http.MethodGet, "/users/me/installed", nil, &installed); err != nil {
		return nil, err
	}
	return installed, nil
}

// MyStats returns the current user's publishing stats
func (c *Client) MyStats() (*PublishStats, error) {
	var stats PublishStats
	if err := c.do(http.MethodGet, "/users/me/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// RegenerateAPIKey rotates the provisioning secret. The new key is returned
// exactly once; the backend never exposes it again.
func (c *Client) RegenerateAPIKey() (*APIKey, error) {
	var key APIKey
	if err := c.do(http.MethodPost, "/users/me/api-key/regenerate", nil, &key); err != nil {
		return nil, err
	}
	return &key, nil
}

// --- Install packages ---

// SkillInstall fetches the install package for a skill
func (c *Client) SkillInstall(id int) (*SkillInstallPackage, error) {
	var pkg SkillInstallPackage
	if err := c.do(http.MethodGet, fmt.Sprintf("/skills/%d/install", id), nil, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// MCPInstall fetches the install config for an MCP server
func (c *Client) MCPInstall(id int) (*MCPInstallConfig, error) {
	var cfg MCPInstallConfig
	if err := c.do(http.MethodGet, fmt.Sprintf("/mcps/%d/install", id), nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// AgentInstall fetches the install package for an agent configuration
func (c *Client) AgentInstall(id int) (*AgentInstallPackage, error) {
	var pkg AgentInstallPackage
	if err := c.do(http.MethodGet, fmt.Sprintf("/agents/%d/install", id), nil, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// RecordInstall reports a completed install. assetType is singular: "skill",
// "mcp" or "agent".
func (c *Client) RecordInstall(assetType string, id int, agentType string) error {
	path := fmt.Sprintf("/%ss/%d/install?agent_type=%s", assetType, id, url.QueryEscape(agentType))
	return c.do(http.MethodPost, path, nil, nil)
}

// --- Admin ---

// AdminAssets lists assets across types for moderation
func (c *Client) AdminAssets(assetType string, page int) (*SearchResults, error) {
	params := url.Values{}
	if assetType != "" {
		params.Set("type", assetType)
	}
	params.Set("page", strconv.Itoa(page))

	var results SearchResults
	if err := c.do(http.MethodGet, "/admin/assets?"+params.Encode(), nil, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

// AdminDeleteAsset removes any asset by type and ID
func (c *Client) AdminDeleteAsset(assetType string, id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/admin/assets/%s/%d", assetType, id), nil, nil)
}

// AdminUsers lists registered users
func (c *Client) AdminUsers(page int) (*Page[User], error) {
	var users Page[User]
	path := fmt.Sprintf("/admin/users?page=%d", page)
	if err := c.do(http.MethodGet, path, nil, &users); err != nil {
		return nil, err
	}
	return &users, nil
}

// SyncSources lists registered content-sync sources
func (c *Client) SyncSources() ([]SyncSource, error) {
	var sources []SyncSource
	if err := c.do(http.MethodGet, "/admin/sync-sources", nil, &sources); err != nil {
		return nil, err
	}
	return sources, nil
}

// AddSyncSource registers a git repository for periodic ingestion
func (c *Client) AddSyncSource(gitURL string) (*SyncSource, error) {
	body := map[string]string{"git_url": gitURL}
	var source SyncSource
	if err := c.do(http.MethodPost, "/admin/sync-sources", body, &source); err != nil {
		return nil, err
	}
	return &source, nil
}

// DeleteSyncSource removes a sync source
func (c *Client) DeleteSyncSource(id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/admin/sync-sources/%d", id), nil, nil)
}

// TriggerSync starts an immediate sync of one source
func (c *Client) TriggerSync(id int) error {
	return c.do(http.MethodPost, fmt.Sprintf("/admin/sync-sources/%d/sync", id), nil, nil)
}

// Import runs a one-shot import of a git repository
func (c *Client) Import(gitURL string) ([]Skill, error) {
	body := map[string]string{"git_url": gitURL}
	var skills []Skill
	if err := c.do(http.MethodPost, "/admin/import", body, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}
