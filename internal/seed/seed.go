package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mvsilva/adapta/internal/app/models"
	appRepos "github.com/mvsilva/adapta/internal/app/repositories"
	"github.com/mvsilva/adapta/internal/pkg/apperrors"
	"github.com/mvsilva/adapta/internal/pkg/auth"
)

// defaultAccounts are created on startup so a fresh deployment can be
// used immediately. Existing accounts are left untouched.
var defaultAccounts = []struct {
	Email    string
	Password string
	Name     string
	Role     models.RoleType
}{
	{Email: "coordenador@escola.com", Password: "coord123", Name: "Maria Silva", Role: models.RoleCoordinator},
	{Email: "professor@escola.com", Password: "prof123", Name: "João Santos", Role: models.RoleTeacher},
}

// CreateDefaultAccounts creates the default coordinator and teacher
// accounts if they don't exist.
func CreateDefaultAccounts(ctx context.Context, userRepo *appRepos.UserRepository, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default accounts...")
	var finalErr error

	for _, account := range defaultAccounts {
		exists, err := userRepo.EmailExists(ctx, account.Email)
		if err != nil {
			lgr.Error().Err(err).Str("email", account.Email).Msg("Error checking default account")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}

		hashedPassword, err := auth.HashPassword(account.Password)
		if err != nil {
			lgr.Error().Err(err).Str("email", account.Email).Msg("Error hashing default account password")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		user := &models.User{
			Email:    account.Email,
			Password: hashedPassword,
			Name:     account.Name,
			Role:     account.Role,
		}
		if err := userRepo.CreateUser(ctx, user); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Error().Err(err).Str("email", account.Email).Msg("Error creating default account")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		lgr.Info().Str("email", account.Email).Str("role", string(account.Role)).Msg("Default account created")
	}

	return finalErr
}
