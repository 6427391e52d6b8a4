package commands

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/agenthub-dev/agenthub/internal/cli/auth"
	"github.com/agenthub-dev/agenthub/internal/cli/client"
	"github.com/agenthub-dev/agenthub/internal/cli/config"
	"github.com/agenthub-dev/agenthub/internal/cli/registryselect"
	"github.com/agenthub-dev/agenthub/internal/cli/session"
)

// getSelectedRegistry loads the config and returns the selected registry.
// This is common logic used by most commands.
func getSelectedRegistry(registryAlias string) (*config.Registry, error) {
	cfg, err := config.LoadFromCurrentDir()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w\nRun 'agenthub init' to create a configuration file", err)
	}

	registry, err := registryselect.ResolveRegistry(cfg, registryAlias)
	if err != nil {
		return nil, err
	}

	if registry.URL == "" {
		return nil, fmt.Errorf("registry URL is empty. Please edit agenthub.json and add a valid URL")
	}

	return registry, nil
}

// loginNavigator receives the forced redirect the request layer dispatches
// on a 401 and turns it into CLI guidance
type loginNavigator struct{}

func (n *loginNavigator) Navigate(path string) {
	fmt.Fprintln(os.Stderr, "Session expired. Please run 'agenthub login' again.")
}

// newSession builds the API client for a registry and a session store wired
// to its invalidation event
func newSession(registry *config.Registry) (*client.Client, *session.Store) {
	api := client.New(config.NormalizeURL(registry.URL))
	api.SetNavigator(&loginNavigator{})

	store := session.NewStore(api, auth.Default)
	api.OnSessionInvalidated(store.Invalidate)

	return api, store
}

// resolveAuthenticated resolves the session and applies the authentication
// gate. Commands that need a signed-in user call this before any fetch.
func resolveAuthenticated(store *session.Store, from string) (session.Snapshot, error) {
	snap := store.Resolve()
	result := session.RequireAuth(snap, from)
	if result.Decision != session.Allow {
		return snap, fmt.Errorf("not authenticated. Please run 'agenthub login' first")
	}
	return snap, nil
}

// resolveAdmin resolves the session and applies the admin gate. Non-admin
// users get the same generic answer whether or not the surface exists.
func resolveAdmin(store *session.Store, from string) (session.Snapshot, error) {
	snap := store.Resolve()
	result := session.RequireAdmin(snap, from)
	if result.Decision != session.Allow {
		if result.Target == session.HomePath {
			return snap, fmt.Errorf("not available")
		}
		return snap, fmt.Errorf("not authenticated. Please run 'agenthub login' first")
	}
	return snap, nil
}

// openBrowser opens the URL in the default browser
func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
