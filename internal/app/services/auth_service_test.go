package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sentimente/backend/internal/app/models/dto"
	"github.com/sentimente/backend/internal/pkg/apperrors"
	"github.com/sentimente/backend/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
}

func newTestAuthService() (*AuthService, *fakeUserRepo, *fakeClassRepo) {
	userRepo := newFakeUserRepo()
	classRepo := newFakeClassRepo()
	return NewAuthService(userRepo, classRepo, newTestJWTService()), userRepo, classRepo
}

func TestRegister(t *testing.T) {
	svc, userRepo, _ := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected assigned user ID")
	}
	if user.Role != "teacher" {
		t.Errorf("expected teacher role, got %q", user.Role)
	}

	stored, err := userRepo.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("get stored user: %v", err)
	}
	if stored.Password == "secret123" {
		t.Error("password stored in plaintext")
	}
	if !auth.CheckPassword(stored.Password, "secret123") {
		t.Error("stored hash does not verify against original password")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	req := dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret123"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(ctx, req)
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	cases := []dto.RegisterRequest{
		{Email: "ana@example.com", Password: "secret123"},
		{Name: "Ana", Password: "secret123"},
		{Name: "Ana", Email: "ana@example.com"},
	}
	for _, req := range cases {
		if _, err := svc.Register(ctx, req); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("request %+v: expected ErrValidationFailed, got %v", req, err)
		}
	}
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, dto.RegisterRequest{
		Name: "Ana", Email: "ana@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, err := svc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token.Token == "" {
		t.Error("expected non-empty token")
	}
	if token.TokenType != "Bearer" {
		t.Errorf("expected Bearer token type, got %q", token.TokenType)
	}
	if token.ExpiresIn != int64(time.Hour.Seconds()) {
		t.Errorf("expected expiresIn %d, got %d", int64(time.Hour.Seconds()), token.ExpiresIn)
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLoginBadCredentials(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, dto.RegisterRequest{
		Name: "Ana", Email: "ana@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, unknownErr := svc.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	if !errors.Is(unknownErr, apperrors.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}

	_, wrongErr := svc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "wrong"})
	if !errors.Is(wrongErr, apperrors.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
}

func TestDashboard(t *testing.T) {
	svc, _, classRepo := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterRequest{
		Name: "Ana", Email: "ana@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	classSvc := NewClassService(classRepo)
	if _, err := classSvc.CreateClass(ctx, user.ID, dto.CreateClassRequest{
		Name:     "5A",
		Students: []dto.RosterEntry{{Name: "João"}, {Name: "Maria"}},
	}); err != nil {
		t.Fatalf("create class: %v", err)
	}

	dashboard, err := svc.Dashboard(ctx, user.ID)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dashboard.User.Email != "ana@example.com" {
		t.Errorf("unexpected dashboard user %+v", dashboard.User)
	}
	if len(dashboard.Classes) != 1 {
		t.Fatalf("expected 1 class, got %d", len(dashboard.Classes))
	}
	if len(dashboard.Classes[0].Students) != 2 {
		t.Errorf("expected roster of 2, got %d", len(dashboard.Classes[0].Students))
	}
}

func TestDashboardUnknownUser(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Dashboard(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
