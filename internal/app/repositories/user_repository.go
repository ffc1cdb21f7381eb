package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mvsilva/adapta/internal/app/models"
	"github.com/mvsilva/adapta/internal/kvstore"
	"github.com/mvsilva/adapta/internal/pkg/apperrors"
)

// UserRepository handles user profile persistence. Profiles are stored under
// "user:<id>" with a "useremail:<email>" index for credential lookups.
type UserRepository struct {
	store kvstore.Store
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(store kvstore.Store) *UserRepository {
	return &UserRepository{store: store}
}

// storedUser is the persisted form of a profile. models.User hides the
// password from API responses, so the hash is carried in a separate field
// that only exists at the storage layer.
type storedUser struct {
	models.User
	PasswordHash string `json:"passwordHash,omitempty"`
}

// emailIndexEntry is the value stored under the email index key
type emailIndexEntry struct {
	UserID string `json:"userId"`
}

// CreateUser stores a new user profile. The ID is assigned here; user
// records are immutable after creation.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	exists, err := r.EmailExists(ctx, user.Email)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrEmailAlreadyExists
	}

	user.ID = uuid.New().String()

	record := storedUser{User: *user, PasswordHash: user.Password}
	if err := r.store.Set(ctx, userKey(user.ID), record); err != nil {
		return fmt.Errorf("store user: %w", err)
	}
	if err := r.store.Set(ctx, userEmailKey(user.Email), emailIndexEntry{UserID: user.ID}); err != nil {
		return fmt.Errorf("store user email index: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user profile by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	raw, err := r.store.Get(ctx, userKey(id))
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}

	var record storedUser
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", id, err)
	}

	user := record.User
	user.Password = record.PasswordHash
	return &user, nil
}

// GetUserByEmail retrieves a user profile through the email index
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	raw, err := r.store.Get(ctx, userEmailKey(email))
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user email index %s: %w", email, err)
	}

	var entry emailIndexEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("decode user email index %s: %w", email, err)
	}

	return r.GetUserByID(ctx, entry.UserID)
}

// EmailExists checks whether an account already uses the email
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.store.Get(ctx, userEmailKey(email))
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("check user email %s: %w", email, err)
	}
	return true, nil
}
