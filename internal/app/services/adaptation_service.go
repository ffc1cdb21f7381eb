package services

import (
	"context"

	"github.com/mvsilva/adapta/internal/app/auth"
	"github.com/mvsilva/adapta/internal/app/models"
	"github.com/mvsilva/adapta/internal/app/models/dto"
	"github.com/mvsilva/adapta/internal/app/repositories"
)

// AdaptationService defines the interface for adaptation-related operations
type AdaptationService interface {
	ListAdaptations(ctx context.Context, actor *models.User, studentID string) ([]*models.Adaptation, error)
	CreateAdaptation(ctx context.Context, actor *models.User, req *dto.CreateAdaptationRequest) (*models.Adaptation, error)
	UpdateAdaptation(ctx context.Context, actor *models.User, studentID, id string, req *dto.UpdateAdaptationRequest) (*models.Adaptation, error)
	DeleteAdaptation(ctx context.Context, actor *models.User, studentID, id string) error
}

// adaptationServiceImpl implements the AdaptationService interface
type adaptationServiceImpl struct {
	adaptationRepo *repositories.AdaptationRepository
	policy         *auth.Policy
}

// NewAdaptationService creates a new adaptation service instance
func NewAdaptationService(adaptationRepo *repositories.AdaptationRepository, policy *auth.Policy) AdaptationService {
	return &adaptationServiceImpl{
		adaptationRepo: adaptationRepo,
		policy:         policy,
	}
}

// ListAdaptations returns the adaptations recorded for a student
func (s *adaptationServiceImpl) ListAdaptations(ctx context.Context, actor *models.User, studentID string) ([]*models.Adaptation, error) {
	if err := s.policy.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	return s.adaptationRepo.GetByStudentID(ctx, studentID)
}

// CreateAdaptation records a new accommodation; coordinators only.
// The student reference is taken as-is and not checked for existence.
func (s *adaptationServiceImpl) CreateAdaptation(ctx context.Context, actor *models.User, req *dto.CreateAdaptationRequest) (*models.Adaptation, error) {
	if err := s.policy.RequireCoordinator(actor); err != nil {
		return nil, err
	}

	adaptation := &models.Adaptation{
		StudentID:     req.StudentID,
		Description:   req.Description,
		Justification: req.Justification,
		Date:          req.Date,
		CreatedBy:     actor.ID,
	}

	if err := s.adaptationRepo.Create(ctx, adaptation); err != nil {
		return nil, err
	}
	return adaptation, nil
}

// UpdateAdaptation merges the provided fields over the stored record;
// coordinators only. ID and studentId never change.
func (s *adaptationServiceImpl) UpdateAdaptation(ctx context.Context, actor *models.User, studentID, id string, req *dto.UpdateAdaptationRequest) (*models.Adaptation, error) {
	if err := s.policy.RequireCoordinator(actor); err != nil {
		return nil, err
	}

	adaptation, err := s.adaptationRepo.GetByID(ctx, studentID, id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		adaptation.Description = *req.Description
	}
	if req.Justification != nil {
		adaptation.Justification = *req.Justification
	}
	if req.Date != nil {
		adaptation.Date = *req.Date
	}

	if err := s.adaptationRepo.Update(ctx, adaptation); err != nil {
		return nil, err
	}
	return adaptation, nil
}

// DeleteAdaptation removes a single accommodation; coordinators only
func (s *adaptationServiceImpl) DeleteAdaptation(ctx context.Context, actor *models.User, studentID, id string) error {
	if err := s.policy.RequireCoordinator(actor); err != nil {
		return err
	}
	return s.adaptationRepo.Delete(ctx, studentID, id)
}
