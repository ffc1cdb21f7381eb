package services_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvsilva/adapta/internal/app/auth"
	"github.com/mvsilva/adapta/internal/app/models"
	"github.com/mvsilva/adapta/internal/app/models/dto"
	"github.com/mvsilva/adapta/internal/app/repositories"
	"github.com/mvsilva/adapta/internal/app/services"
	"github.com/mvsilva/adapta/internal/kvstore"
	"github.com/mvsilva/adapta/internal/pkg/apperrors"
	pkgAuth "github.com/mvsilva/adapta/internal/pkg/auth"
)

type fixture struct {
	repos      *repositories.Repositories
	students   services.StudentService
	adapts     services.AdaptationService
	reports    services.ReportService
	authSvc    services.AuthService
	coord      *models.User
	teacher    *models.User
	teacherTwo *models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := kvstore.NewFileStore(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	repos := repositories.NewRepositories(store)
	policy := auth.NewPolicy()

	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "adapta.test"})

	f := &fixture{
		repos:    repos,
		students: services.NewStudentService(repos.StudentRepository, policy),
		adapts:   services.NewAdaptationService(repos.AdaptationRepository, policy),
		reports:  services.NewReportService(repos.ReportRepository, repos.AdaptationRepository, repos.StudentRepository, policy),
		authSvc:  services.NewAuthService(repos.UserRepository, jwtService, zerolog.Nop()),
	}

	f.coord = &models.User{Email: "coord@escola.com", Password: "h", Name: "Maria", Role: models.RoleCoordinator}
	f.teacher = &models.User{Email: "prof@escola.com", Password: "h", Name: "João", Role: models.RoleTeacher}
	f.teacherTwo = &models.User{Email: "prof2@escola.com", Password: "h", Name: "Carla", Role: models.RoleTeacher}
	require.NoError(t, repos.UserRepository.CreateUser(context.Background(), f.coord))
	require.NoError(t, repos.UserRepository.CreateUser(context.Background(), f.teacher))
	require.NoError(t, repos.UserRepository.CreateUser(context.Background(), f.teacherTwo))

	return f
}

func (f *fixture) createStudent(t *testing.T) *models.Student {
	t.Helper()
	student, err := f.students.CreateStudent(context.Background(), f.coord, &dto.CreateStudentRequest{
		Name: "Ana Souza", Course: "Pedagogia", Class: "3A", BirthDate: "2010-04-12", RegistrationNumber: "2024001",
	})
	require.NoError(t, err)
	return student
}

func TestCreateReportOverwritesAuthorship(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.createStudent(t)

	report, err := f.reports.CreateReport(ctx, f.teacher, &dto.CreateReportRequest{
		StudentID: student.ID, Subject: "Matemática", Result: models.ResultPositive, Description: "Avanço nas operações",
	})
	require.NoError(t, err)

	assert.Equal(t, f.teacher.ID, report.TeacherID, "Authorship must come from the authenticated identity")
	assert.Equal(t, "João", report.TeacherName)
	assert.NotEmpty(t, report.Date, "Date defaults to creation time when omitted")
}

func TestCreateReportInvalidResult(t *testing.T) {
	f := newFixture(t)
	student := f.createStudent(t)

	_, err := f.reports.CreateReport(context.Background(), f.teacher, &dto.CreateReportRequest{
		StudentID: student.ID, Subject: "Matemática", Result: "otimo", Description: "X",
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestReportAuthorOnlyEvenForCoordinators(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.createStudent(t)

	report, err := f.reports.CreateReport(ctx, f.teacher, &dto.CreateReportRequest{
		StudentID: student.ID, Subject: "Matemática", Result: models.ResultNeutral, Description: "Inicial",
	})
	require.NoError(t, err)

	newDesc := "Alterado"

	// Another teacher cannot touch it
	_, err = f.reports.UpdateReport(ctx, f.teacherTwo, student.ID, report.ID, &dto.UpdateReportRequest{Description: &newDesc})
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	// Neither can a coordinator
	_, err = f.reports.UpdateReport(ctx, f.coord, student.ID, report.ID, &dto.UpdateReportRequest{Description: &newDesc})
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
	err = f.reports.DeleteReport(ctx, f.coord, student.ID, report.ID)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	// The author can
	updated, err := f.reports.UpdateReport(ctx, f.teacher, student.ID, report.ID, &dto.UpdateReportRequest{Description: &newDesc})
	require.NoError(t, err)
	assert.Equal(t, "Alterado", updated.Description)
	assert.Equal(t, f.teacher.ID, updated.TeacherID)

	require.NoError(t, f.reports.DeleteReport(ctx, f.teacher, student.ID, report.ID))
}

func TestGetStudentReportOrdering(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.createStudent(t)

	_, err := f.adapts.CreateAdaptation(ctx, f.coord, &dto.CreateAdaptationRequest{
		StudentID: student.ID, Description: "Prova adaptada", Justification: "Laudo médico", Date: "2026-02-01",
	})
	require.NoError(t, err)

	for _, date := range []string{"2026-01-10", "2026-03-05", "2026-02-20"} {
		_, err := f.reports.CreateReport(ctx, f.teacher, &dto.CreateReportRequest{
			StudentID: student.ID, Subject: "Matemática", Date: date, Result: models.ResultPositive, Description: "Obs " + date,
		})
		require.NoError(t, err)
	}

	view, err := f.reports.GetStudentReport(ctx, f.teacher, student.ID)
	require.NoError(t, err)

	assert.Equal(t, student.ID, view.Student.ID)
	assert.Len(t, view.Adaptations, 1)
	require.Len(t, view.Reports, 3)
	assert.Equal(t, "2026-03-05", view.Reports[0].Date, "Reports must come newest first")
	assert.Equal(t, "2026-02-20", view.Reports[1].Date)
	assert.Equal(t, "2026-01-10", view.Reports[2].Date)
}

func TestGetStudentReportMissingStudent(t *testing.T) {
	f := newFixture(t)

	_, err := f.reports.GetStudentReport(context.Background(), f.teacher, "does-not-exist")
	assert.True(t, errors.Is(err, apperrors.ErrStudentNotFound))
}

func TestGetStudentReportScopedToStudent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.createStudent(t)

	second, err := f.students.CreateStudent(ctx, f.coord, &dto.CreateStudentRequest{
		Name: "Bruno Lima", Course: "Pedagogia", Class: "3B", BirthDate: "2011-01-30", RegistrationNumber: "2024002",
	})
	require.NoError(t, err)

	_, err = f.reports.CreateReport(ctx, f.teacher, &dto.CreateReportRequest{
		StudentID: second.ID, Subject: "Português", Result: models.ResultNegative, Description: "Dificuldade",
	})
	require.NoError(t, err)

	view, err := f.reports.GetStudentReport(ctx, f.teacher, first.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Reports, "Another student's reports must not leak into the view")
}
