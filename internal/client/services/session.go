// Package services contains the application services of the sessionkeeper
// client: the session store with its asynchronous state transitions,
// identity resolution, and user-list pagination.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/avetins/sessionkeeper/internal/client/api"
	"github.com/avetins/sessionkeeper/internal/client/models"
	"github.com/avetins/sessionkeeper/internal/client/repositories/cache"
	"github.com/avetins/sessionkeeper/internal/logging"
)

// Messages surfaced to the presentation layer when a transition is rejected.
const (
	msgLoginFailed    = "Login failed"
	msgRegisterFailed = "Registration failed"
	msgUpdateFailed   = "Failed to update user profile"
	msgUserNotFound   = "User not found"
)

// restorePassword is sent when replaying a login from the durable cache.
// The demo backend does not validate the password for a known email, so any
// placeholder works. A credential-checking API needs a proper
// session-refresh call here instead of a login replay.
const restorePassword = "restored-session"

var (
	// ErrUserNotFound means login succeeded at the transport level but no
	// user with that email exists in the listing.
	ErrUserNotFound = errors.New("user not found")

	// ErrNoSession means an operation requiring an authenticated identity
	// was invoked without one.
	ErrNoSession = errors.New("no active session")
)

// SessionState is a point-in-time copy of the session store. Identity is nil
// until a login or registration fulfils; Token is set whenever Identity is.
// Err holds the message of the most recent rejected transition and is
// cleared when the next login/registration/update starts.
type SessionState struct {
	Identity       *models.Identity
	Token          string
	Loading        bool
	LoadingProfile bool
	Err            string
}

// LoggedIn reports whether a login or registration has fulfilled and no
// logout has happened since.
func (s SessionState) LoggedIn() bool { return s.Identity != nil }

// SessionService owns the session state and is the only place that mutates
// it. Every transition takes the mutex for each of its pending/fulfilled/
// rejected writes, so concurrent readers always observe a consistent record.
// Overlapping transitions are allowed and not deduplicated: whichever
// fulfils last wins.
type SessionService struct {
	mu        sync.Mutex
	state     SessionState
	restoring bool

	client   api.Client
	cache    cache.Repository
	resolver IdentityResolver
	log      logging.Logger

	bg sync.WaitGroup
}

// NewSessionService wires the session store to the account service client,
// the durable cache, and an identity resolver. A nil resolver falls back to
// the listing scan.
func NewSessionService(client api.Client, repo cache.Repository, resolver IdentityResolver, log logging.Logger) *SessionService {
	if resolver == nil {
		resolver = NewListScanResolver(client, DefaultPageSize)
	}
	return &SessionService{
		client:   client,
		cache:    repo,
		resolver: resolver,
		log:      log,
	}
}

// State returns a copy of the current session state.
func (s *SessionService) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Identity = s.state.Identity.Clone()
	return st
}

// Restoring reports whether a cached-session bootstrap is in flight. It is
// distinct from Loading so the presentation layer can render nothing at all
// during startup.
func (s *SessionService) Restoring() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restoring
}

// Login authenticates against the account service and establishes a session.
//
// The login endpoint returns only a token, so the user id is resolved
// separately through the configured IdentityResolver. The transition fulfils
// with a minimal identity ({email}); a profile fetch is spawned in the
// background and merges the remaining fields when it lands, possibly after
// Login has already returned.
func (s *SessionService) Login(ctx context.Context, email, password string) error {
	s.begin()

	token, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.reject(messageOr(err, msgLoginFailed))
		return err
	}

	user, err := s.resolver.Resolve(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.reject(msgUserNotFound)
		} else {
			s.reject(messageOr(err, msgLoginFailed))
		}
		return err
	}

	s.saveSnapshot(ctx, token, models.Snapshot{ID: user.ID, Email: email})

	s.mu.Lock()
	s.state.Loading = false
	s.state.Identity = &models.Identity{Email: email}
	s.state.Token = token
	s.mu.Unlock()

	s.spawnProfileFetch(user.ID)
	return nil
}

// Register creates an account and establishes a session. Unlike Login, the
// register endpoint returns the user id directly, so no listing scan is
// needed.
func (s *SessionService) Register(ctx context.Context, email, password string) error {
	s.begin()

	id, token, err := s.client.Register(ctx, email, password)
	if err != nil {
		s.reject(messageOr(err, msgRegisterFailed))
		return err
	}

	s.saveSnapshot(ctx, token, models.Snapshot{ID: id, Email: email})

	s.mu.Lock()
	s.state.Loading = false
	s.state.Identity = &models.Identity{ID: id, Email: email}
	s.state.Token = token
	s.mu.Unlock()

	s.spawnProfileFetch(id)
	return nil
}

// FetchProfile loads the full user record and merges it into the identity.
// Enrichment is best-effort: a failure clears the loading flag, is logged,
// and never surfaces into the state's Err. The merge is skipped without
// error when no identity exists (e.g. logout raced the fetch).
func (s *SessionService) FetchProfile(ctx context.Context, id int64) error {
	s.mu.Lock()
	s.state.LoadingProfile = true
	s.mu.Unlock()

	user, err := s.client.GetUser(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.LoadingProfile = false
	if err != nil {
		s.log.Warn(ctx, "profile fetch failed", "id", id, "error", err)
		return err
	}
	if s.state.Identity == nil {
		return nil
	}
	s.state.Identity.Merge(*user)
	return nil
}

// UpdateProfile saves edited profile fields and merges whatever the service
// echoed back into the identity.
func (s *SessionService) UpdateProfile(ctx context.Context, id int64, upd api.UserUpdate) error {
	s.begin()

	user, err := s.client.UpdateUser(ctx, id, upd)
	if err != nil {
		s.reject(msgUpdateFailed)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	if s.state.Identity != nil {
		s.state.Identity.Merge(*user)
	}
	return nil
}

// Logout resets the session synchronously and clears the durable cache in
// the background. A failed cache clear is logged and otherwise ignored.
// Logging out without a session is a no-op.
func (s *SessionService) Logout() {
	s.mu.Lock()
	s.state = SessionState{}
	s.mu.Unlock()

	s.bg.Add(1)
	go func() {
		defer s.bg.Done()
		ctx := context.Background()
		if err := s.cache.Clear(ctx); err != nil {
			s.log.Warn(ctx, "clearing session cache failed", "error", err)
		}
	}()
}

// DeleteAccount removes the account on the service and tears the session
// down. It needs the enriched identity (profile fetch must have landed) to
// know the id.
func (s *SessionService) DeleteAccount(ctx context.Context) error {
	st := s.State()
	if st.Identity == nil || st.Identity.ID == 0 {
		return ErrNoSession
	}
	if err := s.client.DeleteUser(ctx, st.Identity.ID); err != nil {
		return err
	}
	s.Logout()
	return nil
}

// Bootstrap restores a cached session, if any. Meant to run once at process
// start, before the presentation layer shows anything; Restoring reports
// true for the duration. An empty or unreadable cache leaves the store in
// the unauthenticated state without error.
func (s *SessionService) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	s.restoring = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.restoring = false
		s.mu.Unlock()
	}()

	token, err := s.cache.Get(ctx, cache.KeyToken)
	if err != nil {
		s.log.Warn(ctx, "session cache read failed", "error", err)
		return nil
	}
	raw, err := s.cache.Get(ctx, cache.KeyUser)
	if err != nil {
		s.log.Warn(ctx, "session cache read failed", "error", err)
		return nil
	}
	if len(token) == 0 || len(raw) == 0 {
		return nil
	}

	var snap models.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		s.log.Warn(ctx, "session snapshot is corrupt", "error", err)
		return nil
	}

	s.log.Info(ctx, "restoring session", "email", snap.Email)
	return s.Login(ctx, snap.Email, restorePassword)
}

// Wait blocks until all background work (profile fetches, cache clears) has
// finished. Used on shutdown and by tests.
func (s *SessionService) Wait() {
	s.bg.Wait()
}

// Close waits for background work and releases the underlying client.
func (s *SessionService) Close() error {
	s.bg.Wait()
	return s.client.Close()
}

func (s *SessionService) begin() {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()
}

func (s *SessionService) reject(msg string) {
	s.mu.Lock()
	s.state.Loading = false
	s.state.Err = msg
	s.mu.Unlock()
}

// saveSnapshot persists the credential and the minimal identity snapshot
// atomically. A cache write failure does not reject the transition: the
// session stays usable, it just will not survive a restart.
func (s *SessionService) saveSnapshot(ctx context.Context, token string, snap models.Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		s.log.Error(ctx, "encoding session snapshot failed", "error", err)
		return
	}
	err = s.cache.SetMany(ctx, map[string][]byte{
		cache.KeyToken: []byte(token),
		cache.KeyUser:  data,
	})
	if err != nil {
		s.log.Warn(ctx, "saving session to cache failed", "error", err)
	}
}

// spawnProfileFetch starts the follow-up profile fetch without joining it:
// the parent transition fulfils first and the richer identity lands later.
// The fetch runs on a background context because transitions are never
// cancelled once dispatched.
func (s *SessionService) spawnProfileFetch(id int64) {
	s.bg.Add(1)
	go func() {
		defer s.bg.Done()
		_ = s.FetchProfile(context.Background(), id)
	}()
}

// messageOr prefers the service-provided error payload over the fallback.
func messageOr(err error, fallback string) string {
	if msg := api.Message(err); msg != "" {
		return msg
	}
	return fallback
}
