package repositories_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvsilva/adapta/internal/app/models"
	"github.com/mvsilva/adapta/internal/app/repositories"
	"github.com/mvsilva/adapta/internal/kvstore"
	"github.com/mvsilva/adapta/internal/pkg/apperrors"
)

func newRepos(t *testing.T) *repositories.Repositories {
	t.Helper()
	store, err := kvstore.NewFileStore(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err, "Failed to create file store")
	return repositories.NewRepositories(store)
}

func TestStudentCreateAssignsIdentity(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	first := &models.Student{Name: "Ana Souza", Course: "Pedagogia", Class: "3A", BirthDate: "2010-04-12", RegistrationNumber: "2024001", CreatedBy: "coord-1"}
	second := &models.Student{Name: "Bruno Lima", Course: "Pedagogia", Class: "3A", BirthDate: "2011-01-30", RegistrationNumber: "2024002", CreatedBy: "coord-1"}

	require.NoError(t, repos.StudentRepository.Create(ctx, first))
	require.NoError(t, repos.StudentRepository.Create(ctx, second))

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID, "Each student must get a distinct ID")
	assert.False(t, first.CreatedAt.IsZero())
	assert.Nil(t, first.UpdatedAt)

	stored, err := repos.StudentRepository.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", stored.Name)
	assert.Equal(t, "coord-1", stored.CreatedBy)
}

func TestStudentUpdatePreservesIdentity(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	student := &models.Student{Name: "Ana Souza", Course: "Pedagogia", Class: "3A", BirthDate: "2010-04-12", RegistrationNumber: "2024001"}
	require.NoError(t, repos.StudentRepository.Create(ctx, student))

	originalID := student.ID
	originalCreatedAt := student.CreatedAt

	student.Name = "Ana Souza Santos"
	require.NoError(t, repos.StudentRepository.Update(ctx, student))

	stored, err := repos.StudentRepository.GetByID(ctx, originalID)
	require.NoError(t, err)
	assert.Equal(t, originalID, stored.ID, "Update must never change the ID")
	assert.Equal(t, "Ana Souza Santos", stored.Name)
	assert.True(t, originalCreatedAt.Equal(stored.CreatedAt))
	require.NotNil(t, stored.UpdatedAt, "Update must stamp updatedAt")
}

func TestStudentUpdateMissing(t *testing.T) {
	repos := newRepos(t)

	err := repos.StudentRepository.Update(context.Background(), &models.Student{ID: "does-not-exist", Name: "X"})
	assert.True(t, errors.Is(err, apperrors.ErrStudentNotFound))
}

func TestStudentDeleteCascades(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	student := &models.Student{Name: "Ana Souza", Course: "Pedagogia", Class: "3A", BirthDate: "2010-04-12", RegistrationNumber: "2024001"}
	require.NoError(t, repos.StudentRepository.Create(ctx, student))

	other := &models.Student{Name: "Bruno Lima", Course: "Pedagogia", Class: "3A", BirthDate: "2011-01-30", RegistrationNumber: "2024002"}
	require.NoError(t, repos.StudentRepository.Create(ctx, other))

	for i := 0; i < 2; i++ {
		adaptation := &models.Adaptation{StudentID: student.ID, Description: "Prova adaptada", Justification: "Laudo médico", Date: "2026-03-01"}
		require.NoError(t, repos.AdaptationRepository.Create(ctx, adaptation))
	}
	report := &models.Report{StudentID: student.ID, TeacherID: "t1", TeacherName: "João", Subject: "Matemática", Result: models.ResultPositive, Description: "Avanço"}
	require.NoError(t, repos.ReportRepository.Create(ctx, report))

	// Records of the other student must survive the cascade
	otherAdaptation := &models.Adaptation{StudentID: other.ID, Description: "Material ampliado", Justification: "Baixa visão", Date: "2026-03-02"}
	require.NoError(t, repos.AdaptationRepository.Create(ctx, otherAdaptation))

	require.NoError(t, repos.StudentRepository.Delete(ctx, student.ID))

	_, err := repos.StudentRepository.GetByID(ctx, student.ID)
	assert.True(t, errors.Is(err, apperrors.ErrStudentNotFound))

	adaptations, err := repos.AdaptationRepository.GetByStudentID(ctx, student.ID)
	require.NoError(t, err)
	assert.Empty(t, adaptations, "Cascade must remove every adaptation")

	reports, err := repos.ReportRepository.GetByStudentID(ctx, student.ID)
	require.NoError(t, err)
	assert.Empty(t, reports, "Cascade must remove every report")

	remaining, err := repos.AdaptationRepository.GetByStudentID(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestStudentDeleteMissing(t *testing.T) {
	repos := newRepos(t)

	err := repos.StudentRepository.Delete(context.Background(), "does-not-exist")
	assert.True(t, errors.Is(err, apperrors.ErrStudentNotFound))
}

func TestStudentGetAllEmpty(t *testing.T) {
	repos := newRepos(t)

	students, err := repos.StudentRepository.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, students)
}
