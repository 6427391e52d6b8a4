package session

import "github.com/agenthub-dev/agenthub/internal/cli/client"

// HomePath is where authenticated non-admin users are silently redirected
// when they hit admin-only content
const HomePath = "/"

// Decision is the outcome of evaluating a route guard
type Decision int

const (
	// Allow renders the gated content
	Allow Decision = iota
	// Pending renders a neutral loading placeholder; never redirect while
	// resolution is still in flight
	Pending
	// Redirect navigates away without rendering the gated content
	Redirect
)

// GuardResult carries the guard decision plus the redirect target and the
// originally intended destination for post-login return
type GuardResult struct {
	Decision Decision
	Target   string
	From     string
}

// RequireAuth gates content on an authenticated session
func RequireAuth(snap Snapshot, from string) GuardResult {
	if snap.IsLoading {
		return GuardResult{Decision: Pending}
	}
	if !snap.IsAuthenticated() {
		return GuardResult{Decision: Redirect, Target: client.LoginPath, From: from}
	}
	return GuardResult{Decision: Allow}
}

// RequireAdmin additionally requires the admin role. Authenticated non-admins
// are sent home without an error: admin surfaces stay invisible to them.
func RequireAdmin(snap Snapshot, from string) GuardResult {
	if snap.IsLoading {
		return GuardResult{Decision: Pending}
	}
	if !snap.IsAuthenticated() {
		return GuardResult{Decision: Redirect, Target: client.LoginPath, From: from}
	}
	if !snap.IsAdmin() {
		return GuardResult{Decision: Redirect, Target: HomePath}
	}
	return GuardResult{Decision: Allow}
}
