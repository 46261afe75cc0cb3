package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"linq/internal/domain"
	"linq/internal/service"
)

func TestAuth_RequestOTPShortPhone(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	if _, err := e.auth.RequestOTP(context.Background(), "123"); !errors.Is(err, service.ErrInvalidPhone) {
		t.Errorf("expected ErrInvalidPhone, got %v", err)
	}
}

func TestAuth_VerifyOTPHappyPath(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	code, err := e.auth.RequestOTP(ctx, "+91 9000000001")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if len(code) != 4 {
		t.Fatalf("expected 4-digit code, got %q", code)
	}

	token, user, err := e.auth.VerifyOTP(ctx, "+91 9000000001", code)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if user.Role != domain.RoleRider {
		t.Errorf("new accounts start as riders, got %s", user.Role)
	}
	if !user.Verification.Phone {
		t.Error("expected phone marked verified")
	}

	// The token resolves back to the user.
	id, err := e.tokens.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if id != user.ID {
		t.Errorf("token carries %q, expected %q", id, user.ID)
	}
}

func TestAuth_VerifyOTPWrongCode(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	code, err := e.auth.RequestOTP(ctx, "+91 9000000002")
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	wrong := "0000"
	if wrong == code {
		wrong = "1111"
	}
	if _, _, err := e.auth.VerifyOTP(ctx, "+91 9000000002", wrong); !errors.Is(err, service.ErrInvalidOTP) {
		t.Errorf("expected ErrInvalidOTP, got %v", err)
	}

	// A malformed code never matches.
	if _, _, err := e.auth.VerifyOTP(ctx, "+91 9000000002", "12"); !errors.Is(err, service.ErrInvalidOTP) {
		t.Errorf("expected ErrInvalidOTP for short code, got %v", err)
	}
}

func TestAuth_VerifyOTPWithoutRequest(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	if _, _, err := e.auth.VerifyOTP(context.Background(), "+91 9000000003", "1234"); !errors.Is(err, service.ErrInvalidOTP) {
		t.Errorf("expected ErrInvalidOTP, got %v", err)
	}
}

func TestAuth_CodeIsSingleUse(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	code, err := e.auth.RequestOTP(ctx, "+91 9000000004")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if _, _, err := e.auth.VerifyOTP(ctx, "+91 9000000004", code); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if _, _, err := e.auth.VerifyOTP(ctx, "+91 9000000004", code); !errors.Is(err, service.ErrInvalidOTP) {
		t.Errorf("expected ErrInvalidOTP on reuse, got %v", err)
	}
}

func TestAuth_ExistingAccountKeepsProfile(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	// The seeded account signs in with its known number.
	code, err := e.auth.RequestOTP(ctx, "+91 9*** *** 789")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	_, user, err := e.auth.VerifyOTP(ctx, "+91 9*** *** 789", code)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if user.ID != "u_sumanth" {
		t.Errorf("expected the seeded account, got %q", user.ID)
	}
	if user.Role != domain.RoleBoth {
		t.Errorf("existing role must be preserved, got %s", user.Role)
	}
}

func TestAuth_TokenValidation(t *testing.T) {
	t.Parallel()

	e := newEnv(t)

	if _, err := e.tokens.Validate("not-a-token"); err == nil {
		t.Error("expected error for garbage token")
	}

	other := service.NewTokenManager("different-secret", time.Hour)
	token, err := other.Generate(&domain.User{ID: "u_x"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := e.tokens.Validate(token); err == nil {
		t.Error("expected error for token signed with another secret")
	}
}
