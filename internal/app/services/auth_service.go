package services

import (
	"context"
	"fmt"

	"github.com/mvsilva/adapta/internal/app/models"
	"github.com/mvsilva/adapta/internal/app/models/dto"
	"github.com/mvsilva/adapta/internal/app/repositories"
	"github.com/mvsilva/adapta/internal/pkg/apperrors"
	"github.com/mvsilva/adapta/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// SignUp creates a new account profile with a hashed password
func (s *authServiceImpl) SignUp(ctx context.Context, req *dto.SignUpRequest) (*models.User, error) {
	if !req.Role.IsValid() {
		return nil, fmt.Errorf("%w: role must be %s or %s",
			apperrors.ErrValidationFailed, models.RoleCoordinator, models.RoleTeacher)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashed,
		Name:     req.Name,
		Role:     req.Role,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("userId", user.ID).Str("role", string(user.Role)).Msg("User account created")

	// Never hand the hash back to callers
	user.Password = ""
	return user, nil
}

// Login verifies credentials and issues an access token
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		// Same failure for unknown email and wrong password
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.logger.Info().Str("userId", user.ID).Msg("User logged in")

	user.Password = ""
	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: accessToken,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: user,
	}, nil
}
