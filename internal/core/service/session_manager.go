package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jobportal/portal/internal/core/domain"
	"github.com/jobportal/portal/internal/core/ports"
)

const loginFallbackMessage = "Login failed"

// SessionManager owns who is logged in and with what role. Construct one at
// the application root and hand it to every consumer.
//
// Initialize must be called once; until it completes the view reports
// Loading and consumers should not gate on it (wait on Ready).
type SessionManager struct {
	store ports.TokenStore
	api   ports.IdentityAPI
	diag  ports.SessionDiagnostics

	initOnce sync.Once
	ready    chan struct{}

	// writeMu serialises token store writes with the state commit that
	// follows them. Network calls happen outside it.
	writeMu sync.Mutex

	mu      sync.RWMutex
	user    *domain.User
	loading bool
	// epoch advances on every Login and Logout so an identity check that
	// started earlier cannot overwrite their outcome.
	epoch   uint64
	subs    map[int]chan domain.SessionView
	nextSub int
}

// NewSessionManager returns a manager in the Unknown state. A nil diag
// discards diagnostics.
func NewSessionManager(store ports.TokenStore, api ports.IdentityAPI, diag ports.SessionDiagnostics) *SessionManager {
	if diag == nil {
		diag = NopDiagnostics{}
	}
	return &SessionManager{
		store:   store,
		api:     api,
		diag:    diag,
		ready:   make(chan struct{}),
		loading: true,
		subs:    make(map[int]chan domain.SessionView),
	}
}

// Initialize performs the single identity check of this application load.
// Later calls return immediately. Failures are never returned; they leave the
// session logged out and are reported to the diagnostics sink.
func (m *SessionManager) Initialize(ctx context.Context) {
	m.initOnce.Do(func() {
		defer close(m.ready)
		m.check(ctx)
	})
}

// Ready is closed once Initialize has completed.
func (m *SessionManager) Ready() <-chan struct{} {
	return m.ready
}

// Recheck re-validates the stored token against the remote API. A failure
// moves a logged-in session to logged out. Before Initialize has run it
// behaves as Initialize.
func (m *SessionManager) Recheck(ctx context.Context) {
	select {
	case <-m.ready:
	default:
		m.Initialize(ctx)
		return
	}
	m.check(ctx)
}

func (m *SessionManager) check(ctx context.Context) {
	epoch := m.currentEpoch()

	token, err := m.store.Get(ctx)
	if err != nil && ctx.Err() != nil {
		m.abandonCheck()
		return
	}
	if err != nil && !errors.Is(err, domain.ErrTokenNotFound) {
		m.diag.TokenStoreFailed("get", err)
	}
	if err != nil || token == "" {
		// A token that can never be read again is dropped.
		m.commitCheck(ctx, epoch, nil, errors.Is(err, domain.ErrTokenUnreadable))
		return
	}

	user, err := m.api.Me(ctx, token)
	if err != nil {
		// The caller giving up says nothing about the token.
		if ctx.Err() != nil {
			m.abandonCheck()
			return
		}
		m.diag.IdentityCheckFailed(err, TokenExpiry(token))
		m.commitCheck(ctx, epoch, nil, true)
		return
	}
	m.commitCheck(ctx, epoch, user, false)
}

// abandonCheck ends a check whose context was cancelled. The token and the
// current user are kept; only the loading flag is cleared.
func (m *SessionManager) abandonCheck() {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	m.commit(func() {
		m.loading = false
	})
}

// commitCheck applies an identity check outcome unless a Login or Logout
// superseded it. The loading flag is always cleared.
func (m *SessionManager) commitCheck(ctx context.Context, epoch uint64, user *domain.User, dropToken bool) {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	stale := m.currentEpoch() != epoch
	if dropToken && !stale {
		m.deleteToken(ctx)
	}
	m.commit(func() {
		if !stale {
			m.user = user.Clone()
		}
		m.loading = false
	})
}

// Login exchanges credentials for a session. It never fails with a Go error:
// on failure the session is left untouched and the result carries a message
// suitable for display.
func (m *SessionManager) Login(ctx context.Context, username, password string) domain.LoginResult {
	token, user, err := m.api.Login(ctx, username, password)
	if err == nil && (token == "" || user == nil) {
		err = errors.New("login response missing token or user")
	}
	if err != nil {
		m.diag.LoginFailed(err)
		return domain.LoginResult{Error: domain.MessageOr(err, loginFallbackMessage)}
	}

	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	if err := m.store.Set(ctx, token); err != nil {
		m.diag.TokenStoreFailed("set", err)
		return domain.LoginResult{Error: loginFallbackMessage}
	}
	m.commit(func() {
		m.epoch++
		m.user = user.Clone()
	})
	m.diag.LoginSucceeded(user.Clone())
	return domain.LoginResult{Success: true, User: user.Clone()}
}

// Logout forgets the token and the user. It is safe to call when already
// logged out.
func (m *SessionManager) Logout(ctx context.Context) {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	m.deleteToken(ctx)
	m.commit(func() {
		m.epoch++
		m.user = nil
	})
}

// View returns the current derived session view.
func (m *SessionManager) View() domain.SessionView {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return domain.NewSessionView(m.user, m.loading)
}

// Subscribe delivers the view after every state change. A slow subscriber
// only ever sees the latest view. Call cancel to stop delivery; the channel
// is closed afterwards.
func (m *SessionManager) Subscribe() (<-chan domain.SessionView, func()) {
	ch := make(chan domain.SessionView, 1)

	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = ch
	m.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			close(ch)
			m.mu.Unlock()
		})
	}
	return ch, cancel
}

func (m *SessionManager) currentEpoch() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.epoch
}

func (m *SessionManager) deleteToken(ctx context.Context) {
	if err := m.store.Delete(ctx); err != nil && !errors.Is(err, domain.ErrTokenNotFound) {
		m.diag.TokenStoreFailed("delete", err)
	}
}

// commit mutates state under the lock and publishes the resulting view.
func (m *SessionManager) commit(mutate func()) {
	m.mu.Lock()
	from := domain.NewSessionView(m.user, m.loading).State
	mutate()
	view := domain.NewSessionView(m.user, m.loading)
	for _, ch := range m.subs {
		publish(ch, view)
	}
	m.mu.Unlock()

	if from != view.State {
		m.diag.StateChanged(from, view.State)
	}
}

// publish replaces any undelivered view with v.
func publish(ch chan domain.SessionView, v domain.SessionView) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}

// TokenExpiry reads the exp claim of a JWT without verifying it. It returns
// the zero time for opaque tokens.
func TokenExpiry(token string) time.Time {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil || claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

// NopDiagnostics discards everything.
type NopDiagnostics struct{}

func (NopDiagnostics) IdentityCheckFailed(error, time.Time) {}
func (NopDiagnostics) LoginSucceeded(*domain.User) {}
func (NopDiagnostics) LoginFailed(error) {}
func (NopDiagnostics) TokenStoreFailed(string, error) {}
func (NopDiagnostics) StateChanged(domain.SessionState, domain.SessionState) {}
