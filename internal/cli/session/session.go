package session

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/agenthub-dev/agenthub/internal/cli/auth"
	"github.com/agenthub-dev/agenthub/internal/cli/client"
)

// State describes how far credential resolution has progressed
type State int

const (
	// Unresolved means no attempt was made yet to resolve a stored credential
	Unresolved State = iota
	// Resolving means an identity lookup for a stored credential is in flight
	Resolving
	// Resolved means resolution finished, authenticated or anonymous
	Resolved
)

// Snapshot is an immutable view of the session handed to consumers. User is
// present iff a valid credential has been resolved against the backend.
type Snapshot struct {
	User      *client.User
	State     State
	IsLoading bool
}

// IsAuthenticated reports whether an identity has been resolved
func (s Snapshot) IsAuthenticated() bool {
	return s.User != nil
}

// IsAdmin reports whether the resolved identity holds the admin role
func (s Snapshot) IsAdmin() bool {
	return s.User != nil && s.User.Role == "admin"
}

// API is the slice of the registry client the session store depends on
type API interface {
	Login(email, password string) (*client.AuthResponse, error)
	Register(username, email, password string) (*client.AuthResponse, error)
	Me() (*client.User, error)
}

// Store is the single source of truth for the current identity. It owns the
// stored credential's lifecycle: resolution on startup, replacement on
// login/registration, clearing on logout and on unsolicited invalidation.
type Store struct {
	mu          sync.Mutex
	api         API
	credentials auth.CredentialStore
	state       State
	user        *client.User
	apiKey      string // one-time provisioning secret, never persisted
	subscribers []func(Snapshot)
}

// NewStore creates a session store in the Unresolved state
func NewStore(api API, credentials auth.CredentialStore) *Store {
	return &Store{
		api:         api,
		credentials: credentials,
		state:       Unresolved,
	}
}

// Subscribe registers a change observer. It receives the new snapshot after
// every transition.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Current returns the session snapshot
func (s *Store) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// snapshot must be called with the lock held
func (s *Store) snapshot() Snapshot {
	return Snapshot{
		User:      s.user,
		State:     s.state,
		IsLoading: s.state == Resolving,
	}
}

// transition applies fn under the lock, then notifies subscribers with the
// resulting snapshot outside the lock so they may call back into the store
func (s *Store) transition(fn func()) Snapshot {
	s.mu.Lock()
	fn()
	snap := s.snapshot()
	subs := make([]func(Snapshot), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snap)
	}
	return snap
}

// Resolve turns a stored credential into an identity. With no credential the
// session resolves anonymous immediately; otherwise the identity is fetched
// and a rejected or failing lookup clears the credential.
func (s *Store) Resolve() Snapshot {
	credential, err := s.credentials.Load()
	if err != nil || credential == "" {
		if err != nil {
			log.Debug().Err(err).Msg("credential load failed, resolving anonymous")
		}
		return s.transition(func() {
			s.state = Resolved
			s.user = nil
		})
	}

	s.transition(func() { s.state = Resolving })

	user, err := s.api.Me()
	if err != nil {
		// Expired or invalid credential. The client already cleared it on a
		// 401; clearing again is idempotent and covers other failures.
		if clearErr := s.credentials.Clear(); clearErr != nil {
			log.Debug().Err(clearErr).Msg("failed to clear stale credential")
		}
		return s.transition(func() {
			s.state = Resolved
			s.user = nil
		})
	}

	return s.transition(func() {
		s.state = Resolved
		s.user = user
	})
}

// Login authenticates against the backend, stores the returned credential and
// sets the identity synchronously. Failures are propagated untouched for the
// caller to display.
func (s *Store) Login(email, password string) error {
	resp, err := s.api.Login(email, password)
	if err != nil {
		return err
	}

	if err := s.credentials.Save(resp.Token); err != nil {
		return err
	}

	user := resp.User
	s.transition(func() {
		s.user = &user
		s.state = Resolved
	})
	return nil
}

// Register creates an account and returns the one-time provisioning secret.
// The backend never exposes that secret again; it lives only in this process.
func (s *Store) Register(username, email, password string) (string, error) {
	resp, err := s.api.Register(username, email, password)
	if err != nil {
		return "", err
	}

	if err := s.credentials.Save(resp.Token); err != nil {
		return "", err
	}

	user := resp.User
	s.transition(func() {
		s.user = &user
		s.apiKey = resp.APIKey
		s.state = Resolved
	})
	return resp.APIKey, nil
}

// APIKey returns the provisioning secret captured at registration, or empty
// if none was recorded in this process
func (s *Store) APIKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apiKey
}

// Logout clears the stored credential and all session state unconditionally.
// Synchronous, no network call, safe with no prior session.
func (s *Store) Logout() {
	if err := s.credentials.Clear(); err != nil {
		log.Debug().Err(err).Msg("failed to clear credential on logout")
	}
	s.transition(func() {
		s.user = nil
		s.apiKey = ""
		s.state = Resolved
	})
}

// Invalidate is the unsolicited transition forced by an authorization failure
// anywhere in the system. Wire it to the client's invalidation event:
//
//	c.OnSessionInvalidated(store.Invalidate)
func (s *Store) Invalidate() {
	s.Logout()
}
