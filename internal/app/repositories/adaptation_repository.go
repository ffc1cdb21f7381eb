package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mvsilva/adapta/internal/app/models"
	"github.com/mvsilva/adapta/internal/kvstore"
	"github.com/mvsilva/adapta/internal/pkg/apperrors"
)

// AdaptationRepository handles adaptation persistence under
// "adaptation:<studentId>:<id>" keys.
type AdaptationRepository struct {
	store kvstore.Store
}

// NewAdaptationRepository creates a new AdaptationRepository
func NewAdaptationRepository(store kvstore.Store) *AdaptationRepository {
	return &AdaptationRepository{store: store}
}

// GetByStudentID returns every adaptation recorded for the student
func (r *AdaptationRepository) GetByStudentID(ctx context.Context, studentID string) ([]*models.Adaptation, error) {
	values, err := r.store.GetByPrefix(ctx, adaptationPrefix(studentID))
	if err != nil {
		return nil, fmt.Errorf("list adaptations for student %s: %w", studentID, err)
	}

	adaptations := make([]*models.Adaptation, 0, len(values))
	for _, raw := range values {
		var adaptation models.Adaptation
		if err := json.Unmarshal(raw, &adaptation); err != nil {
			return nil, fmt.Errorf("decode adaptation: %w", err)
		}
		adaptations = append(adaptations, &adaptation)
	}
	return adaptations, nil
}

// GetByID retrieves an adaptation by its student and ID
func (r *AdaptationRepository) GetByID(ctx context.Context, studentID, id string) (*models.Adaptation, error) {
	raw, err := r.store.Get(ctx, adaptationKey(studentID, id))
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, apperrors.ErrAdaptationNotFound
		}
		return nil, fmt.Errorf("get adaptation %s: %w", id, err)
	}

	var adaptation models.Adaptation
	if err := json.Unmarshal(raw, &adaptation); err != nil {
		return nil, fmt.Errorf("decode adaptation %s: %w", id, err)
	}
	return &adaptation, nil
}

// Create stores a new adaptation. The ID and createdAt are assigned here.
func (r *AdaptationRepository) Create(ctx context.Context, adaptation *models.Adaptation) error {
	adaptation.ID = uuid.New().String()
	adaptation.CreatedAt = time.Now().UTC()

	if err := r.store.Set(ctx, adaptationKey(adaptation.StudentID, adaptation.ID), adaptation); err != nil {
		return fmt.Errorf("store adaptation: %w", err)
	}
	return nil
}

// Update overwrites an existing adaptation, refreshing updatedAt.
// ID and studentId are taken from the record and never change.
func (r *AdaptationRepository) Update(ctx context.Context, adaptation *models.Adaptation) error {
	if _, err := r.GetByID(ctx, adaptation.StudentID, adaptation.ID); err != nil {
		return err
	}

	now := time.Now().UTC()
	adaptation.UpdatedAt = &now

	if err := r.store.Set(ctx, adaptationKey(adaptation.StudentID, adaptation.ID), adaptation); err != nil {
		return fmt.Errorf("update adaptation %s: %w", adaptation.ID, err)
	}
	return nil
}

// Delete removes a single adaptation; never cascades
func (r *AdaptationRepository) Delete(ctx context.Context, studentID, id string) error {
	if _, err := r.GetByID(ctx, studentID, id); err != nil {
		return err
	}

	if err := r.store.Delete(ctx, adaptationKey(studentID, id)); err != nil {
		return fmt.Errorf("delete adaptation %s: %w", id, err)
	}
	return nil
}
