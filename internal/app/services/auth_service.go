package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/edunexus/edunexus-backend/internal/app/models"
	"github.com/edunexus/edunexus-backend/internal/app/models/dto"
	"github.com/edunexus/edunexus-backend/internal/app/repositories"
	"github.com/edunexus/edunexus-backend/internal/pkg/apperrors"
	"github.com/edunexus/edunexus-backend/internal/pkg/auth"
)

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 6

var emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// IAuthService handles registration and login
type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

// AuthService orchestrates the user store and the credential service.
// It is stateless; every call stands alone.
type AuthService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// validateRegistration checks required fields, email shape and password length
func (s *AuthService) validateRegistration(req *dto.RegisterRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return apperrors.NewValidationError("Email is required")
	}
	if !emailRegex.MatchString(strings.ToLower(req.Email)) {
		return apperrors.NewValidationError("Invalid email format")
	}
	if req.Password == "" {
		return apperrors.NewValidationError("Password is required")
	}
	if len(req.Password) < MinPasswordLength {
		return apperrors.NewValidationError(fmt.Sprintf("Password must be at least %d characters long", MinPasswordLength))
	}
	if strings.TrimSpace(req.FirstName) == "" {
		return apperrors.NewValidationError("First name is required")
	}
	if strings.TrimSpace(req.LastName) == "" {
		return apperrors.NewValidationError("Last name is required")
	}
	return nil
}

// Register creates a new user account and issues a token.
// Failure order: duplicate email, invalid role, field validation.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	if !models.IsValidRole(req.Role) {
		return nil, apperrors.ErrInvalidRole
	}

	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:     email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.Role(req.Role),
	}

	// The unique index catches registrations racing past the exists check
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("User registered")

	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password both come back as ErrInvalidCredentials so the response does
// not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Debug().Str("email", email).Msg("Login attempt for unknown email")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		s.logger.Debug().Str("email", email).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}
