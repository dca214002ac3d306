package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"portfoliokollen/internal/store/memory"
)

const testSecret = "test-secret"

func newTestService() *Service {
	return NewService(memory.New(zap.NewNop()), NewMemoryBlacklist(), testSecret, zap.NewNop())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "erik@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.ID == "" {
		t.Error("expected generated user id")
	}
	if u.PasswordHash == "hunter2" {
		t.Error("password stored in the clear")
	}

	token, err := svc.Login(ctx, "erik@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}

	claims, err := svc.Verify(ctx, token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Email != "erik@example.com" || claims.UserID != u.ID {
		t.Errorf("wrong claims: %+v", claims)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "dup@example.com", "pw"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := svc.Register(ctx, "dup@example.com", "other")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "user@example.com", "right"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Login(ctx, "user@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, "ghost@example.com", "right"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "out@example.com", "pw"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	token, err := svc.Login(ctx, "out@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := svc.Verify(ctx, token); err != nil {
		t.Fatalf("Verify before logout: %v", err)
	}

	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	_, err = svc.Verify(ctx, token)
	if !errors.Is(err, ErrSessionRevoked) {
		t.Errorf("expected ErrSessionRevoked after logout, got %v", err)
	}
}

func TestVerifyRejectsGarbageToken(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Verify(context.Background(), "not-a-jwt"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	ctx := context.Background()
	users := memory.New(zap.NewNop())

	issuer := NewService(users, NewMemoryBlacklist(), "secret-a", zap.NewNop())
	verifier := NewService(users, NewMemoryBlacklist(), "secret-b", zap.NewNop())

	if _, err := issuer.Register(ctx, "a@example.com", "pw"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	token, err := issuer.Login(ctx, "a@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := verifier.Verify(ctx, token); err == nil {
		t.Error("expected signature mismatch to fail verification")
	}
}

func TestMemoryBlacklistExpiry(t *testing.T) {
	bl := NewMemoryBlacklist()
	ctx := context.Background()

	if err := bl.Revoke(ctx, "short-lived", time.Now().Add(-time.Second)); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	revoked, err := bl.IsRevoked(ctx, "short-lived")
	if err != nil {
		t.Fatalf("IsRevoked: %v", err)
	}
	if revoked {
		t.Error("expired revocation should not block the token")
	}

	if err := bl.Revoke(ctx, "live", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	revoked, err = bl.IsRevoked(ctx, "live")
	if err != nil {
		t.Fatalf("IsRevoked: %v", err)
	}
	if !revoked {
		t.Error("active revocation not reported")
	}
}
