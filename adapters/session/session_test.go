package session_test

import (
	"testing"
	"time"

	"mytodo/adapters/session"
	"mytodo/core"
)

func TestIssueParse_Roundtrip(t *testing.T) {
	t.Parallel()

	m := session.NewManager("test-secret", time.Hour)

	token, err := m.Issue(core.User{ID: 42, Username: "vicky"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	sess, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if sess.UserID != 42 || sess.Username != "vicky" {
		t.Fatalf("expected {42 vicky}, got %+v", sess)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := session.NewManager("secret-a", time.Hour).Issue(core.User{ID: 1, Username: "vicky"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := session.NewManager("secret-b", time.Hour).Parse(token); err == nil {
		t.Fatalf("expected a token signed with another secret to be rejected")
	}
}

func TestParse_Garbage(t *testing.T) {
	t.Parallel()

	m := session.NewManager("test-secret", time.Hour)
	if _, err := m.Parse("not-a-token"); err == nil {
		t.Fatalf("expected garbage token to be rejected")
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	m := session.NewManager("test-secret", -time.Minute)
	token, err := m.Issue(core.User{ID: 1, Username: "vicky"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestCookies(t *testing.T) {
	t.Parallel()

	m := session.NewManager("test-secret", time.Hour)

	c := m.Cookie("tok")
	if c.Name != session.CookieName || c.Value != "tok" || !c.HttpOnly || c.MaxAge <= 0 {
		t.Fatalf("unexpected session cookie: %+v", c)
	}

	cleared := m.ClearCookie()
	if cleared.Name != session.CookieName || cleared.MaxAge >= 0 {
		t.Fatalf("expected clearing cookie with negative MaxAge, got %+v", cleared)
	}
}
