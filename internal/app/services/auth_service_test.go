package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvsilva/adapta/internal/app/models"
	"github.com/mvsilva/adapta/internal/app/models/dto"
	"github.com/mvsilva/adapta/internal/pkg/apperrors"
)

func TestSignUpAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.authSvc.SignUp(ctx, &dto.SignUpRequest{
		Email: "nova@escola.com", Password: "segredo1", Name: "Nova Professora", Role: models.RoleTeacher,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Empty(t, user.Password, "Password hash must never leave the service")

	resp, err := f.authSvc.Login(ctx, &dto.LoginRequest{Email: "nova@escola.com", Password: "segredo1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.Empty(t, resp.User.Password)
}

func TestSignUpInvalidRole(t *testing.T) {
	f := newFixture(t)

	_, err := f.authSvc.SignUp(context.Background(), &dto.SignUpRequest{
		Email: "x@escola.com", Password: "segredo1", Name: "X", Role: "diretor",
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestSignUpDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := &dto.SignUpRequest{Email: "dupla@escola.com", Password: "segredo1", Name: "Primeira", Role: models.RoleTeacher}
	_, err := f.authSvc.SignUp(ctx, req)
	require.NoError(t, err)

	_, err = f.authSvc.SignUp(ctx, req)
	assert.True(t, errors.Is(err, apperrors.ErrEmailAlreadyExists))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.authSvc.SignUp(ctx, &dto.SignUpRequest{
		Email: "prof3@escola.com", Password: "segredo1", Name: "Prof", Role: models.RoleTeacher,
	})
	require.NoError(t, err)

	// Wrong password and unknown email fail identically
	_, err = f.authSvc.Login(ctx, &dto.LoginRequest{Email: "prof3@escola.com", Password: "errada"})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))

	_, err = f.authSvc.Login(ctx, &dto.LoginRequest{Email: "ninguem@escola.com", Password: "segredo1"})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
}
