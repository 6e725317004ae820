package services

import (
	"context"
	"strings"

	"github.com/sentimente/backend/internal/app/models"
	"github.com/sentimente/backend/internal/app/models/dto"
	"github.com/sentimente/backend/internal/app/repositories"
	"github.com/sentimente/backend/internal/pkg/apperrors"
	"github.com/sentimente/backend/internal/pkg/auth"
	"github.com/sentimente/backend/internal/pkg/logger"
)

// AuthService handles registration, login and the dashboard view
type AuthService struct {
	userRepo   repositories.IUserRepository
	classRepo  repositories.IClassRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	classRepo repositories.IClassRepository,
	jwtService *auth.JWTService,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		classRepo:  classRepo,
		jwtService: jwtService,
	}
}

// Register creates a new teacher account. The stored password is a bcrypt
// hash, never the plaintext.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserSummary, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("name, email and password are required")
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleTeacher,
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	logger.Info().Int64("userID", id).Msg("User registered")

	summary := dto.NewUserSummary(user)
	return &summary, nil
}

// Login checks credentials and issues a bearer token. An unknown email and
// a wrong password produce the same error, so callers cannot probe which
// emails are registered.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to generate token")
		return nil, err
	}

	logger.Info().Int64("userID", user.ID).Msg("User logged in")

	return &dto.TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
	}, nil
}

// Dashboard returns the authenticated user together with their classes,
// rosters resolved.
func (s *AuthService) Dashboard(ctx context.Context, userID int64) (*dto.DashboardResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	classes, err := s.classRepo.GetClassesByTeacher(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		User:    dto.NewUserSummary(user),
		Classes: classes,
	}, nil
}
