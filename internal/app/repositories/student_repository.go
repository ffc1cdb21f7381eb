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
	"github.com/mvsilva/adapta/internal/pkg/logger"
)

// StudentRepository handles student persistence under "student:<id>" keys.
// Deleting a student cascades to its adaptations and reports.
type StudentRepository struct {
	store          kvstore.Store
	adaptationRepo *AdaptationRepository
	reportRepo     *ReportRepository
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(store kvstore.Store, adaptationRepo *AdaptationRepository, reportRepo *ReportRepository) *StudentRepository {
	return &StudentRepository{
		store:          store,
		adaptationRepo: adaptationRepo,
		reportRepo:     reportRepo,
	}
}

// GetAll returns every student record
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	values, err := r.store.GetByPrefix(ctx, studentKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	students := make([]*models.Student, 0, len(values))
	for _, raw := range values {
		var student models.Student
		if err := json.Unmarshal(raw, &student); err != nil {
			return nil, fmt.Errorf("decode student: %w", err)
		}
		students = append(students, &student)
	}
	return students, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	raw, err := r.store.Get(ctx, studentKey(id))
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("get student %s: %w", id, err)
	}

	var student models.Student
	if err := json.Unmarshal(raw, &student); err != nil {
		return nil, fmt.Errorf("decode student %s: %w", id, err)
	}
	return &student, nil
}

// Create stores a new student. The ID and createdAt are assigned here;
// createdBy is set by the caller from the authenticated identity.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	student.ID = uuid.New().String()
	student.CreatedAt = time.Now().UTC()

	if err := r.store.Set(ctx, studentKey(student.ID), student); err != nil {
		return fmt.Errorf("store student: %w", err)
	}
	return nil
}

// Update overwrites an existing student record, refreshing updatedAt.
// The ID is taken from the record and never changes.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	if _, err := r.GetByID(ctx, student.ID); err != nil {
		return err
	}

	now := time.Now().UTC()
	student.UpdatedAt = &now

	if err := r.store.Set(ctx, studentKey(student.ID), student); err != nil {
		return fmt.Errorf("update student %s: %w", student.ID, err)
	}
	return nil
}

// Delete removes a student and purges its adaptations and reports. The
// cascade is a sequence of independent deletes with no atomicity guarantee;
// partial failures are logged and not surfaced to the caller.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}

	if err := r.store.Delete(ctx, studentKey(id)); err != nil {
		return fmt.Errorf("delete student %s: %w", id, err)
	}

	adaptations, err := r.adaptationRepo.GetByStudentID(ctx, id)
	if err != nil {
		logger.Warn().Err(err).Str("studentId", id).Msg("Failed to list adaptations during cascade delete")
	}
	for _, adaptation := range adaptations {
		if err := r.store.Delete(ctx, adaptationKey(id, adaptation.ID)); err != nil {
			logger.Warn().Err(err).Str("studentId", id).Str("adaptationId", adaptation.ID).Msg("Failed to delete adaptation during cascade delete")
		}
	}

	reports, err := r.reportRepo.GetByStudentID(ctx, id)
	if err != nil {
		logger.Warn().Err(err).Str("studentId", id).Msg("Failed to list reports during cascade delete")
	}
	for _, report := range reports {
		if err := r.store.Delete(ctx, reportKey(id, report.ID)); err != nil {
			logger.Warn().Err(err).Str("studentId", id).Str("reportId", report.ID).Msg("Failed to delete report during cascade delete")
		}
	}

	return nil
}
