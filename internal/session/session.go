// Package session keys per-browser console state by an opaque bearer token.
// Authentication is a stub: any non-empty credentials are accepted.
package session

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"orderconsole/internal/cart"
	"orderconsole/internal/catalog"
	"orderconsole/internal/dashboard"
	"orderconsole/internal/domain"
	"orderconsole/internal/gateway"
	"orderconsole/internal/refresh"
)

// Session is one logged-in console: its own dashboard, catalog, cart and
// auto-refresh runner. State is never shared across sessions.
type Session struct {
	Token     string
	Email     string
	Dashboard *dashboard.Controller
	Catalog   *catalog.Controller
	Cart      *cart.Cart
	Refresh   *refresh.Runner

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen) > ttl
}

// Registry owns all live sessions and expires idle ones.
type Registry struct {
	client   *gateway.Client
	interval time.Duration
	ttl      time.Duration
	logger   *log.Logger

	mu       sync.Mutex
	sessions map[string]*Session

	stopJanitor context.CancelFunc
	janitorDone chan struct{}
}

// NewRegistry builds a Registry and starts its expiry sweep.
func NewRegistry(client *gateway.Client, refreshInterval, ttl time.Duration, logger *log.Logger) *Registry {
	ctx, cancel := context.WithCancel(context.Background())
	r := &Registry{
		client:      client,
		interval:    refreshInterval,
		ttl:         ttl,
		logger:      logger,
		sessions:    make(map[string]*Session),
		stopJanitor: cancel,
		janitorDone: make(chan struct{}),
	}
	go r.janitor(ctx)
	return r
}

// Login validates the stub credentials and creates a fresh session.
func (r *Registry) Login(email, password string) (*Session, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("%w: email and password required", domain.ErrInvalid)
	}

	dash := dashboard.New(r.client, r.logger)
	s := &Session{
		Token:     uuid.NewString(),
		Email:     email,
		Dashboard: dash,
		Catalog:   catalog.New(r.client, r.logger),
		Cart:      cart.New(r.client),
		Refresh: refresh.New(r.interval, func(ctx context.Context) {
			// Silent reload: the loading flag is never touched.
			_ = dash.Load(ctx, true)
		}),
	}
	s.touch(time.Now())

	r.mu.Lock()
	r.sessions[s.Token] = s
	r.mu.Unlock()
	return s, nil
}

// Get resolves a token to its live session, refreshing its idle timer.
func (r *Registry) Get(token string) (*Session, bool) {
	r.mu.Lock()
	s, ok := r.sessions[token]
	r.mu.Unlock()
	if !ok {
		return nil, false
	}
	now := time.Now()
	if s.expired(now, r.ttl) {
		r.drop(token)
		return nil, false
	}
	s.touch(now)
	return s, true
}

// Logout tears the session down, including its refresh runner.
func (r *Registry) Logout(token string) {
	r.drop(token)
}

// Close stops the expiry sweep and tears down every session.
func (r *Registry) Close() {
	r.stopJanitor()
	<-r.janitorDone

	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Refresh.Close()
	}
}

func (r *Registry) drop(token string) {
	r.mu.Lock()
	s, ok := r.sessions[token]
	delete(r.sessions, token)
	r.mu.Unlock()
	if ok {
		s.Refresh.Close()
	}
}

func (r *Registry) janitor(ctx context.Context) {
	defer close(r.janitorDone)
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			r.mu.Lock()
			var stale []string
			for token, s := range r.sessions {
				if s.expired(now, r.ttl) {
					stale = append(stale, token)
				}
			}
			r.mu.Unlock()
			for _, token := range stale {
				r.drop(token)
			}
		}
	}
}
