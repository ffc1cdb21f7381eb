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

// ReportRepository handles report persistence under
// "report:<studentId>:<id>" keys.
type ReportRepository struct {
	store kvstore.Store
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(store kvstore.Store) *ReportRepository {
	return &ReportRepository{store: store}
}

// GetByStudentID returns every report recorded for the student
func (r *ReportRepository) GetByStudentID(ctx context.Context, studentID string) ([]*models.Report, error) {
	values, err := r.store.GetByPrefix(ctx, reportPrefix(studentID))
	if err != nil {
		return nil, fmt.Errorf("list reports for student %s: %w", studentID, err)
	}

	reports := make([]*models.Report, 0, len(values))
	for _, raw := range values {
		var report models.Report
		if err := json.Unmarshal(raw, &report); err != nil {
			return nil, fmt.Errorf("decode report: %w", err)
		}
		reports = append(reports, &report)
	}
	return reports, nil
}

// GetByID retrieves a report by its student and ID
func (r *ReportRepository) GetByID(ctx context.Context, studentID, id string) (*models.Report, error) {
	raw, err := r.store.Get(ctx, reportKey(studentID, id))
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, fmt.Errorf("get report %s: %w", id, err)
	}

	var report models.Report
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", id, err)
	}
	return &report, nil
}

// Create stores a new report. The ID, date and createdAt are assigned here;
// authorship is set by the caller from the authenticated identity.
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	report.ID = uuid.New().String()
	report.CreatedAt = time.Now().UTC()
	if report.Date == "" {
		report.Date = report.CreatedAt.Format(time.RFC3339)
	}

	if err := r.store.Set(ctx, reportKey(report.StudentID, report.ID), report); err != nil {
		return fmt.Errorf("store report: %w", err)
	}
	return nil
}

// Update overwrites an existing report, refreshing updatedAt.
// ID, studentId and authorship are taken from the record and never change.
func (r *ReportRepository) Update(ctx context.Context, report *models.Report) error {
	if _, err := r.GetByID(ctx, report.StudentID, report.ID); err != nil {
		return err
	}

	now := time.Now().UTC()
	report.UpdatedAt = &now

	if err := r.store.Set(ctx, reportKey(report.StudentID, report.ID), report); err != nil {
		return fmt.Errorf("update report %s: %w", report.ID, err)
	}
	return nil
}

// Delete removes a single report; never cascades
func (r *ReportRepository) Delete(ctx context.Context, studentID, id string) error {
	if _, err := r.GetByID(ctx, studentID, id); err != nil {
		return err
	}

	if err := r.store.Delete(ctx, reportKey(studentID, id)); err != nil {
		return fmt.Errorf("delete report %s: %w", id, err)
	}
	return nil
}
