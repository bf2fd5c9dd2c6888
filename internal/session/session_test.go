package session

import (
	"errors"
	"testing"
	"time"

	"orderconsole/internal/domain"
	"orderconsole/internal/gateway"
)

func testRegistry(ttl time.Duration) *Registry {
	client := gateway.New("http://127.0.0.1:0/api", nil, nil)
	return NewRegistry(client, 30*time.Second, ttl, nil)
}

func TestLogin_RequiresCredentials(t *testing.T) {
	r := testRegistry(time.Hour)
	defer r.Close()

	if _, err := r.Login("", "secret"); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for empty email, got %v", err)
	}
	if _, err := r.Login("admin@example.com", "  "); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for blank password, got %v", err)
	}

	s, err := r.Login("admin@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Token == "" || s.Dashboard == nil || s.Catalog == nil || s.Cart == nil || s.Refresh == nil {
		t.Fatalf("incomplete session %+v", s)
	}
}

func TestGet_ResolvesLiveSessions(t *testing.T) {
	r := testRegistry(time.Hour)
	defer r.Close()

	s, err := r.Login("admin@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := r.Get(s.Token)
	if !ok || got != s {
		t.Fatalf("expected session back for its token")
	}
	if _, ok := r.Get("unknown-token"); ok {
		t.Fatalf("unknown token must not resolve")
	}
}

func TestGet_ExpiredSessionIsDropped(t *testing.T) {
	r := testRegistry(time.Millisecond)
	defer r.Close()

	s, err := r.Login("admin@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, ok := r.Get(s.Token); ok {
		t.Fatalf("expired session must not resolve")
	}
}

func TestLogout_StopsRefreshRunner(t *testing.T) {
	r := testRegistry(time.Hour)
	defer r.Close()

	s, err := r.Login("admin@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Refresh.Enable()
	r.Logout(s.Token)

	if s.Refresh.Enabled() {
		t.Fatalf("logout must tear down the session's runner")
	}
	if _, ok := r.Get(s.Token); ok {
		t.Fatalf("token must be invalid after logout")
	}
}
