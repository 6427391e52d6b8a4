package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory credential store for tests
type memStore struct {
	credential string
}

func (m *memStore) Save(credential string) error {
	m.credential = credential
	return nil
}

func (m *memStore) Load() (string, error) {
	return m.credential, nil
}

func (m *memStore) Clear() error {
	m.credential = ""
	return nil
}

// recordingNavigator captures forced redirects
type recordingNavigator struct {
	paths []string
}

func (n *recordingNavigator) Navigate(path string) {
	n.paths = append(n.paths, path)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *memStore, *recordingNavigator, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := &memStore{}
	nav := &recordingNavigator{}

	c := New(server.URL)
	c.SetCredentialStore(store)
	c.SetNavigator(nav)

	return c, store, nav, server
}

func TestDo_NoCredentialNoAuthorizationHeader(t *testing.T) {
	var gotAuth []string
	c, _, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Values("Authorization")
		w.Write([]byte(`[]`))
	})

	_, err := c.TopSkills(10)

	require.NoError(t, err)
	assert.Empty(t, gotAuth, "anonymous requests must not carry an Authorization header")
}

func TestDo_CredentialAttachedExactlyOnce(t *testing.T) {
	var gotAuth []string
	c, store, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Values("Authorization")
		w.Write([]byte(`[]`))
	})
	store.Save("tok-123")

	_, err := c.TopSkills(10)

	require.NoError(t, err)
	require.Len(t, gotAuth, 1)
	assert.Equal(t, "Bearer tok-123", gotAuth[0])
}

func TestDo_BasePathPrefixed(t *testing.T) {
	var gotPath string
	c, _, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"id":1,"username":"alice","email":"a@x.com","role":"member"}`))
	})

	_, err := c.Me()

	require.NoError(t, err)
	assert.Equal(t, "/api/v1/users/me", gotPath)
}

func TestDo_UnauthorizedClearsCredentialAndRedirects(t *testing.T) {
	c, store, nav, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	store.Save("expired-token")

	invalidated := false
	c.OnSessionInvalidated(func() { invalidated = true })

	_, err := c.Me()

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, store.credential, "401 must clear the stored credential")
	assert.Equal(t, []string{LoginPath}, nav.paths, "401 must force navigation to the login page")
	assert.True(t, invalidated, "401 must dispatch session invalidation")
}

func TestDo_UnauthorizedOnAnyEndpoint(t *testing.T) {
	c, store, nav, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	store.Save("expired-token")

	err := c.TriggerSync(7)

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, store.credential)
	assert.Equal(t, []string{LoginPath}, nav.paths)
}

func TestDo_NoContentYieldsEmptyResult(t *testing.T) {
	c, _, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.AdminDeleteAsset("skill", 42)

	assert.NoError(t, err)
}

func TestDo_ErrorDetailSurfacedVerbatim(t *testing.T) {
	c, _, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Skill not found"}`))
	})

	_, err := c.GetSkill(999)

	require.Error(t, err)
	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, "Skill not found", reqErr.Detail)
	assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
}

func TestDo_UnparseableErrorBodyFallsBack(t *testing.T) {
	c, _, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>nope</html>`))
	})

	_, err := c.GetSkill(1)

	require.Error(t, err)
	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, "Request failed", reqErr.Detail)
}

func TestDo_IndependentRequestsFailIndependently(t *testing.T) {
	c, _, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/skills/top" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"detail": "skills are on fire"}`))
			return
		}
		w.Write([]byte(`[{"id":3,"name":"fetcher","description":"","tags":[],"transport":"stdio","config":{}}]`))
	})

	_, skillErr := c.TopSkills(10)
	mcps, mcpErr := c.TopMCPs(10)

	require.Error(t, skillErr)
	require.NoError(t, mcpErr, "failure of one fetch must not affect the other")
	require.Len(t, mcps, 1)
	assert.Equal(t, "fetcher", mcps[0].Name)
}

func TestLogin_SendsCredentialsAndDecodesIdentity(t *testing.T) {
	c, _, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/auth/login", r.URL.Path)
		w.Write([]byte(`{"user":{"id":1,"username":"alice","email":"a@x.com","role":"member"},"token":"tok-1"}`))
	})

	resp, err := c.Login("a@x.com", "password123")

	require.NoError(t, err)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, "tok-1", resp.Token)
}

func TestSearch_BuildsQueryParameters(t *testing.T) {
	var gotQuery string
	c, _, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"skills":{"items":[],"total":0,"page":2,"size":20,"pages":0}}`))
	})

	results, err := c.Search("git helper", "skill", 2)

	require.NoError(t, err)
	assert.Contains(t, gotQuery, "q=git+helper")
	assert.Contains(t, gotQuery, "type=skill")
	assert.Contains(t, gotQuery, "page=2")
	require.NotNil(t, results.Skills)
	assert.Nil(t, results.MCPs, "types excluded by the filter stay nil")
}

func TestRecordInstall_PluralizesAssetType(t *testing.T) {
	var gotPath, gotQuery string
	c, _, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.RecordInstall("mcp", 12, "claude")

	require.NoError(t, err)
	assert.Equal(t, "/api/v1/mcps/12/install", gotPath)
	assert.Equal(t, "agent_type=claude", gotQuery)
}

func TestPublishSkill_PostsPayloadAndDecodesResult(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody map[string]any
	c, store, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":42,"name":"code-review","installs":0}`))
	})
	store.Save("tok-1")

	skill, err := c.PublishSkill(SkillCreate{
		Name:          "code-review",
		Description:   "Reviews pull requests",
		GitURL:        "https://github.com/ann/skills.git",
		CommitHash:    "a1b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6a7b8c9d0",
		ReadmeContent: "# Code Review",
	})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/v1/skills", gotPath)
	assert.Equal(t, "code-review", gotBody["name"])
	assert.Equal(t, "https://github.com/ann/skills.git", gotBody["git_url"])
	assert.Equal(t, 42, skill.ID)
}

func TestDo_NetworkFailure(t *testing.T) {
	c := New("http://127.0.0.1:1")
	c.SetCredentialStore(&memStore{})

	_, err := c.TopSkills(10)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized, "transport failures are not authorization failures")
}
