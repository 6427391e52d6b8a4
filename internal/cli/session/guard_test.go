package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenthub-dev/agenthub/internal/cli/client"
)

func anonymous() Snapshot {
	return Snapshot{State: Resolved}
}

func resolving() Snapshot {
	return Snapshot{State: Resolving, IsLoading: true}
}

func member() Snapshot {
	return Snapshot{State: Resolved, User: &client.User{ID: 1, Username: "bob", Role: "member"}}
}

func admin() Snapshot {
	return Snapshot{State: Resolved, User: &client.User{ID: 2, Username: "root", Role: "admin"}}
}

func TestRequireAuth_PendingWhileResolving(t *testing.T) {
	result := RequireAuth(resolving(), "/profile")

	assert.Equal(t, Pending, result.Decision, "must not redirect before resolution settles")
}

func TestRequireAuth_AnonymousRedirectsToLogin(t *testing.T) {
	result := RequireAuth(anonymous(), "/profile")

	assert.Equal(t, Redirect, result.Decision)
	assert.Equal(t, client.LoginPath, result.Target)
	assert.Equal(t, "/profile", result.From, "intended destination preserved for post-login return")
}

func TestRequireAuth_AuthenticatedAllows(t *testing.T) {
	result := RequireAuth(member(), "/profile")

	assert.Equal(t, Allow, result.Decision)
}

func TestRequireAdmin_MemberSilentlyRedirectsHome(t *testing.T) {
	result := RequireAdmin(member(), "/admin")

	assert.Equal(t, Redirect, result.Decision)
	assert.Equal(t, HomePath, result.Target, "non-admins go home, never to login")
	assert.NotEqual(t, client.LoginPath, result.Target)
}

func TestRequireAdmin_AnonymousRedirectsToLogin(t *testing.T) {
	result := RequireAdmin(anonymous(), "/admin")

	assert.Equal(t, Redirect, result.Decision)
	assert.Equal(t, client.LoginPath, result.Target)
}

func TestRequireAdmin_PendingWhileResolving(t *testing.T) {
	result := RequireAdmin(resolving(), "/admin")

	assert.Equal(t, Pending, result.Decision)
}

func TestRequireAdmin_AdminAllows(t *testing.T) {
	result := RequireAdmin(admin(), "/admin")

	assert.Equal(t, Allow, result.Decision)
}
