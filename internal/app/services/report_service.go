package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/mvsilva/adapta/internal/app/auth"
	"github.com/mvsilva/adapta/internal/app/models"
	"github.com/mvsilva/adapta/internal/app/models/dto"
	"github.com/mvsilva/adapta/internal/app/repositories"
	"github.com/mvsilva/adapta/internal/pkg/apperrors"
	"github.com/mvsilva/adapta/internal/pkg/helpers"
)

// ReportService defines the interface for report-related operations,
// including the per-student aggregate view.
type ReportService interface {
	ListReports(ctx context.Context, actor *models.User, studentID string) ([]*models.Report, error)
	CreateReport(ctx context.Context, actor *models.User, req *dto.CreateReportRequest) (*models.Report, error)
	UpdateReport(ctx context.Context, actor *models.User, studentID, id string, req *dto.UpdateReportRequest) (*models.Report, error)
	DeleteReport(ctx context.Context, actor *models.User, studentID, id string) error
	GetStudentReport(ctx context.Context, actor *models.User, studentID string) (*models.StudentReport, error)
}

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	reportRepo     *repositories.ReportRepository
	adaptationRepo *repositories.AdaptationRepository
	studentRepo    *repositories.StudentRepository
	policy         *auth.Policy
}

// NewReportService creates a new report service instance
func NewReportService(
	reportRepo *repositories.ReportRepository,
	adaptationRepo *repositories.AdaptationRepository,
	studentRepo *repositories.StudentRepository,
	policy *auth.Policy,
) ReportService {
	return &reportServiceImpl{
		reportRepo:     reportRepo,
		adaptationRepo: adaptationRepo,
		studentRepo:    studentRepo,
		policy:         policy,
	}
}

// ListReports returns the reports recorded for a student
func (s *reportServiceImpl) ListReports(ctx context.Context, actor *models.User, studentID string) ([]*models.Report, error) {
	if err := s.policy.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	return s.reportRepo.GetByStudentID(ctx, studentID)
}

// CreateReport records a new observation. Any authenticated identity may
// author a report; teacherId and teacherName always come from the actor,
// whatever the caller submitted.
func (s *reportServiceImpl) CreateReport(ctx context.Context, actor *models.User, req *dto.CreateReportRequest) (*models.Report, error) {
	if err := s.policy.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	if !req.Result.IsValid() {
		return nil, fmt.Errorf("%w: result must be %s, %s or %s",
			apperrors.ErrValidationFailed, models.ResultPositive, models.ResultNeutral, models.ResultNegative)
	}

	report := &models.Report{
		StudentID:   req.StudentID,
		TeacherID:   actor.ID,
		TeacherName: actor.Name,
		Subject:     req.Subject,
		Date:        req.Date,
		Result:      req.Result,
		Description: req.Description,
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// UpdateReport merges the provided fields over the stored record. Only the
// author may update a report, coordinators included. ID, studentId and
// authorship never change.
func (s *reportServiceImpl) UpdateReport(ctx context.Context, actor *models.User, studentID, id string, req *dto.UpdateReportRequest) (*models.Report, error) {
	if err := s.policy.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	report, err := s.reportRepo.GetByID(ctx, studentID, id)
	if err != nil {
		return nil, err
	}

	if err := s.policy.RequireReportAuthor(actor, report); err != nil {
		return nil, err
	}

	if req.Subject != nil {
		report.Subject = *req.Subject
	}
	if req.Date != nil {
		report.Date = *req.Date
	}
	if req.Result != nil {
		if !req.Result.IsValid() {
			return nil, fmt.Errorf("%w: result must be %s, %s or %s",
				apperrors.ErrValidationFailed, models.ResultPositive, models.ResultNeutral, models.ResultNegative)
		}
		report.Result = *req.Result
	}
	if req.Description != nil {
		report.Description = *req.Description
	}

	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// DeleteReport removes a single report; author only
func (s *reportServiceImpl) DeleteReport(ctx context.Context, actor *models.User, studentID, id string) error {
	if err := s.policy.RequireAuthenticated(actor); err != nil {
		return err
	}

	report, err := s.reportRepo.GetByID(ctx, studentID, id)
	if err != nil {
		return err
	}

	if err := s.policy.RequireReportAuthor(actor, report); err != nil {
		return err
	}

	return s.reportRepo.Delete(ctx, studentID, id)
}

// GetStudentReport builds the aggregate view: the student, its adaptations
// and its reports ordered by date, newest first. Fails with NotFound when
// the student does not exist.
func (s *reportServiceImpl) GetStudentReport(ctx context.Context, actor *models.User, studentID string) (*models.StudentReport, error) {
	if err := s.policy.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	adaptations, err := s.adaptationRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	reports, err := s.reportRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return helpers.ParseDateForSort(reports[i].Date).After(helpers.ParseDateForSort(reports[j].Date))
	})

	return &models.StudentReport{
		Student:     student,
		Adaptations: adaptations,
		Reports:     reports,
	}, nil
}
