package services

import (
	"context"

	"github.com/mvsilva/adapta/internal/app/auth"
	"github.com/mvsilva/adapta/internal/app/models"
	"github.com/mvsilva/adapta/internal/app/models/dto"
	"github.com/mvsilva/adapta/internal/app/repositories"
)

// StudentService defines the interface for student-related operations.
// Every method takes the authenticated identity explicitly; there is no
// ambient session state.
type StudentService interface {
	ListStudents(ctx context.Context, actor *models.User) ([]*models.Student, error)
	GetStudent(ctx context.Context, actor *models.User, id string) (*models.Student, error)
	CreateStudent(ctx context.Context, actor *models.User, req *dto.CreateStudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, actor *models.User, id string, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, actor *models.User, id string) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
	policy      *auth.Policy
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository, policy *auth.Policy) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		policy:      policy,
	}
}

// ListStudents returns all students; any authenticated identity may read
func (s *studentServiceImpl) ListStudents(ctx context.Context, actor *models.User) ([]*models.Student, error) {
	if err := s.policy.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	return s.studentRepo.GetAll(ctx)
}

// GetStudent retrieves a single student
func (s *studentServiceImpl) GetStudent(ctx context.Context, actor *models.User, id string) (*models.Student, error) {
	if err := s.policy.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	return s.studentRepo.GetByID(ctx, id)
}

// CreateStudent registers a new student; coordinators only
func (s *studentServiceImpl) CreateStudent(ctx context.Context, actor *models.User, req *dto.CreateStudentRequest) (*models.Student, error) {
	if err := s.policy.RequireCoordinator(actor); err != nil {
		return nil, err
	}

	student := &models.Student{
		Name:               req.Name,
		Course:             req.Course,
		Class:              req.Class,
		BirthDate:          req.BirthDate,
		RegistrationNumber: req.RegistrationNumber,
		GuardianName:       req.GuardianName,
		GuardianContact:    req.GuardianContact,
		CreatedBy:          actor.ID,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// UpdateStudent merges the provided fields over the stored record;
// coordinators only. The ID never changes.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, actor *models.User, id string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if err := s.policy.RequireCoordinator(actor); err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Course != nil {
		student.Course = *req.Course
	}
	if req.Class != nil {
		student.Class = *req.Class
	}
	if req.BirthDate != nil {
		student.BirthDate = *req.BirthDate
	}
	if req.RegistrationNumber != nil {
		student.RegistrationNumber = *req.RegistrationNumber
	}
	if req.GuardianName != nil {
		student.GuardianName = *req.GuardianName
	}
	if req.GuardianContact != nil {
		student.GuardianContact = *req.GuardianContact
	}
	student.UpdatedBy = actor.ID

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// DeleteStudent removes a student and its dependent records; coordinators only
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, actor *models.User, id string) error {
	if err := s.policy.RequireCoordinator(actor); err != nil {
		return err
	}
	return s.studentRepo.Delete(ctx, id)
}
