package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/minired/internal/client/client"
	"github.com/dmitrijs2005/minired/internal/client/models"
	"github.com/dmitrijs2005/minired/internal/logging"
)

// API is the part of the backend the gateway talks to.
type API interface {
	SetToken(token string)
	ClearToken()
	Profile(ctx context.Context) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)
}

// TokenStore persists the credential token between runs.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Remove(ctx context.Context) error
}

type Gateway struct {
	api   API
	store TokenStore
	log   logging.Logger

	// opMu queues the mutating operations.
	opMu sync.Mutex

	// mu guards the fields below. Store writes and API token changes happen
	// under it so that they always agree with state.
	mu        sync.RWMutex
	state     State
	user      *models.User
	token     string
	epoch     uint64
	listeners map[int]func(Snapshot)
	nextID    int
}

type Option func(*Gateway)

func WithLogger(l logging.Logger) Option {
	return func(g *Gateway) { g.log = l }
}

func New(api API, store TokenStore, opts ...Option) *Gateway {
	g := &Gateway{
		api:       api,
		store:     store,
		log:       logging.Nop(),
		listeners: make(map[int]func(Snapshot)),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Initialize restores the previous session, if any. It never reports a bad
// stored token; that only leads to Anonymous. A Logout that lands while it
// runs wins, and Initialize still returns nil.
func (g *Gateway) Initialize(ctx context.Context) error {
	g.opMu.Lock()
	defer g.opMu.Unlock()

	g.mu.Lock()
	if g.state != Uninitialized {
		g.mu.Unlock()
		return ErrAlreadyInitialized
	}
	epoch := g.epoch
	g.state = Initializing
	notify := g.changedLocked()
	g.mu.Unlock()
	notify()

	token, err := g.store.Load(ctx)
	if err != nil {
		g.log.Warn(ctx, "reading stored token failed", "error", err)
		g.settleAnonymous(ctx, epoch)
		return nil
	}
	if token == "" {
		g.log.Debug(ctx, "no stored session")
		g.settleAnonymous(ctx, epoch)
		return nil
	}

	g.mu.Lock()
	if g.epoch != epoch {
		g.mu.Unlock()
		g.log.Debug(ctx, "restore overtaken by logout")
		return nil
	}
	g.api.SetToken(token)
	g.mu.Unlock()

	user, err := g.api.Profile(ctx)
	if err != nil {
		g.log.Warn(ctx, "stored session rejected", "error", fmt.Errorf("%w: %w", ErrInvalidSession, err))

		g.mu.Lock()
		if g.epoch != epoch {
			g.mu.Unlock()
			g.log.Debug(ctx, "restore overtaken by logout")
			return nil
		}
		if err := g.store.Remove(ctx); err != nil {
			g.log.Error(ctx, "removing stored token failed", "error", err)
		}
		g.api.ClearToken()
		g.state = Anonymous
		notify := g.changedLocked()
		g.mu.Unlock()
		notify()
		return nil
	}

	g.mu.Lock()
	if g.epoch != epoch {
		g.mu.Unlock()
		g.log.Debug(ctx, "restore overtaken by logout")
		return nil
	}
	g.state = Authenticated
	g.user = user.Clone()
	g.token = token
	notify = g.changedLocked()
	g.mu.Unlock()
	notify()

	g.log.Info(ctx, "session restored", "user_id", user.ID)
	return nil
}

func (g *Gateway) settleAnonymous(ctx context.Context, epoch uint64) {
	g.mu.Lock()
	if g.epoch != epoch {
		g.mu.Unlock()
		g.log.Debug(ctx, "restore overtaken by logout")
		return
	}
	g.state = Anonymous
	notify := g.changedLocked()
	g.mu.Unlock()
	notify()
}

// Login authenticates with username and password. On failure the session is
// left as it was.
func (g *Gateway) Login(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return &AuthenticationError{Message: "username and password are required"}
	}

	g.opMu.Lock()
	defer g.opMu.Unlock()

	epoch, err := g.beginInitialized()
	if err != nil {
		return err
	}

	resp, err := g.api.Login(ctx, username, password)
	if err != nil {
		g.log.Info(ctx, "login rejected", "username", username, "error", err)
		return &AuthenticationError{Message: messageOr(err, msgLoginFailed), Err: err}
	}

	return g.establish(ctx, epoch, resp, msgLoginFailed)
}

// Register creates an account and logs into it. bio may be empty.
func (g *Gateway) Register(ctx context.Context, username, email, password, bio string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || password == "" {
		return &AuthenticationError{Message: "username, email and password are required"}
	}

	g.opMu.Lock()
	defer g.opMu.Unlock()

	epoch, err := g.beginInitialized()
	if err != nil {
		return err
	}

	resp, err := g.api.Register(ctx, models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
		Bio:      bio,
	})
	if err != nil {
		g.log.Info(ctx, "registration rejected", "username", username, "error", err)
		return &AuthenticationError{Message: messageOr(err, msgRegistrationFailed), Err: err}
	}

	return g.establish(ctx, epoch, resp, msgRegistrationFailed)
}

func (g *Gateway) beginInitialized() (uint64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.state == Uninitialized || g.state == Initializing {
		return 0, ErrNotInitialized
	}
	return g.epoch, nil
}

// establish persists and installs the token and sets the identity, all or
// nothing.
func (g *Gateway) establish(ctx context.Context, epoch uint64, resp *models.AuthResponse, fallback string) error {
	if resp.AccessToken == "" {
		return &AuthenticationError{Message: fallback, Err: errors.New("response carries no access token")}
	}

	g.mu.Lock()
	if g.epoch != epoch {
		g.mu.Unlock()
		return ErrSuperseded
	}
	if err := g.store.Save(ctx, resp.AccessToken); err != nil {
		g.mu.Unlock()
		g.log.Error(ctx, "storing token failed", "error", err)
		return &AuthenticationError{Message: fallback, Err: err}
	}
	g.api.SetToken(resp.AccessToken)
	g.state = Authenticated
	g.user = resp.User.Clone()
	g.token = resp.AccessToken
	notify := g.changedLocked()
	g.mu.Unlock()
	notify()

	g.log.Info(ctx, "authenticated", "user_id", resp.User.ID)
	return nil
}

// Logout forgets the session. It cannot fail and may be called any number of
// times; storage errors are only logged.
func (g *Gateway) Logout(ctx context.Context) {
	g.mu.Lock()
	g.epoch++
	if err := g.store.Remove(ctx); err != nil {
		g.log.Error(ctx, "removing stored token failed", "error", err)
	}
	g.api.ClearToken()

	prev := g.state
	g.user = nil
	g.token = ""
	if prev != Uninitialized {
		g.state = Anonymous
	}
	notify := func() {}
	if prev != g.state {
		notify = g.changedLocked()
	}
	g.mu.Unlock()
	notify()

	if prev == Authenticated {
		g.log.Info(ctx, "logged out")
	}
}

// UpdateProfile sends the changed fields (nil means unchanged) and replaces
// the identity with the server's answer.
func (g *Gateway) UpdateProfile(ctx context.Context, bio, profilePic *string) error {
	g.opMu.Lock()
	defer g.opMu.Unlock()

	g.mu.RLock()
	state, epoch := g.state, g.epoch
	g.mu.RUnlock()
	if state != Authenticated {
		return ErrNotAuthenticated
	}

	user, err := g.api.UpdateProfile(ctx, models.UpdateProfileRequest{Bio: bio, ProfilePic: profilePic})
	if err != nil {
		g.log.Info(ctx, "profile update rejected", "error", err)
		return &ProfileUpdateError{Message: messageOr(err, msgProfileUpdateFailed), Err: err}
	}

	return g.replaceIdentity(epoch, user)
}

// Verify asks the backend who owns the current token. A rejected token ends
// the session and is reported as ErrInvalidSession; other failures leave the
// session untouched.
func (g *Gateway) Verify(ctx context.Context) (*models.User, error) {
	g.opMu.Lock()
	defer g.opMu.Unlock()

	g.mu.RLock()
	state, epoch, token := g.state, g.epoch, g.token
	g.mu.RUnlock()
	if state != Authenticated {
		return nil, ErrNotAuthenticated
	}

	user, err := g.api.Profile(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			g.invalidate(ctx, token)
			return nil, fmt.Errorf("%w: %w", ErrInvalidSession, err)
		}
		return nil, err
	}

	if err := g.replaceIdentity(epoch, user); err != nil {
		return nil, err
	}
	return user.Clone(), nil
}

func (g *Gateway) replaceIdentity(epoch uint64, user *models.User) error {
	g.mu.Lock()
	if g.epoch != epoch {
		g.mu.Unlock()
		return ErrSuperseded
	}
	g.user = user.Clone()
	notify := g.changedLocked()
	g.mu.Unlock()
	notify()
	return nil
}

// HandleUnauthorized ends the session when token, rejected by the backend
// with 401, is still the current one. Stale tokens are ignored.
func (g *Gateway) HandleUnauthorized(token string) {
	g.invalidate(context.Background(), token)
}

func (g *Gateway) invalidate(ctx context.Context, token string) {
	g.mu.Lock()
	if g.state != Authenticated || token == "" || token != g.token {
		g.mu.Unlock()
		g.log.Debug(ctx, "ignoring rejection of a stale token")
		return
	}
	g.epoch++
	if err := g.store.Remove(ctx); err != nil {
		g.log.Error(ctx, "removing stored token failed", "error", err)
	}
	g.api.ClearToken()
	g.state = Anonymous
	g.user = nil
	g.token = ""
	notify := g.changedLocked()
	g.mu.Unlock()
	notify()

	g.log.Warn(ctx, "session invalidated", "error", ErrInvalidSession)
}

func (g *Gateway) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

func (g *Gateway) IsInitializing() bool {
	return g.State() == Initializing
}

// Identity returns a copy of the current user, nil when not authenticated.
func (g *Gateway) Identity() *models.User {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.user.Clone()
}

func (g *Gateway) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.snapshotLocked()
}

func (g *Gateway) snapshotLocked() Snapshot {
	return Snapshot{State: g.state, User: g.user.Clone()}
}

// Subscribe registers fn for every later change of the session. fn runs on
// the goroutine that made the change, after the gateway released its locks.
func (g *Gateway) Subscribe(fn func(Snapshot)) (cancel func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.nextID
	g.nextID++
	g.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			defer g.mu.Unlock()
			delete(g.listeners, id)
		})
	}
}

// changedLocked captures the snapshot and listeners while g.mu is held and
// returns the delivery to run once it is released.
func (g *Gateway) changedLocked() func() {
	snap := g.snapshotLocked()
	if len(g.listeners) == 0 {
		return func() {}
	}
	ids := make([]int, 0, len(g.listeners))
	for id := range g.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(Snapshot), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, g.listeners[id])
	}
	return func() {
		for _, fn := range fns {
			fn(snap)
		}
	}
}
