package repositories_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvsilva/adapta/internal/app/models"
	"github.com/mvsilva/adapta/internal/pkg/apperrors"
)

func TestReportCreateDefaultsDate(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	report := &models.Report{StudentID: "s1", TeacherID: "t1", TeacherName: "João", Subject: "Matemática", Result: models.ResultPositive, Description: "Avanço nas operações"}
	require.NoError(t, repos.ReportRepository.Create(ctx, report))

	assert.NotEmpty(t, report.ID)
	require.NotEmpty(t, report.Date, "Missing date must default to creation time")
	_, err := time.Parse(time.RFC3339, report.Date)
	assert.NoError(t, err)

	explicit := &models.Report{StudentID: "s1", TeacherID: "t1", TeacherName: "João", Subject: "Português", Date: "2026-02-10", Result: models.ResultNeutral, Description: "Sem mudanças"}
	require.NoError(t, repos.ReportRepository.Create(ctx, explicit))
	assert.Equal(t, "2026-02-10", explicit.Date, "Explicit date must be kept as given")
}

func TestReportUpdatePreservesKeys(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	report := &models.Report{StudentID: "s1", TeacherID: "t1", TeacherName: "João", Subject: "Matemática", Result: models.ResultNeutral, Description: "Inicial"}
	require.NoError(t, repos.ReportRepository.Create(ctx, report))

	report.Description = "Atualizado"
	report.Result = models.ResultPositive
	require.NoError(t, repos.ReportRepository.Update(ctx, report))

	stored, err := repos.ReportRepository.GetByID(ctx, "s1", report.ID)
	require.NoError(t, err)
	assert.Equal(t, "Atualizado", stored.Description)
	assert.Equal(t, models.ResultPositive, stored.Result)
	assert.Equal(t, "t1", stored.TeacherID)
	require.NotNil(t, stored.UpdatedAt)
}

func TestReportScopedByStudent(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	mine := &models.Report{StudentID: "s1", TeacherID: "t1", TeacherName: "João", Subject: "Matemática", Result: models.ResultPositive, Description: "A"}
	require.NoError(t, repos.ReportRepository.Create(ctx, mine))
	other := &models.Report{StudentID: "s2", TeacherID: "t1", TeacherName: "João", Subject: "Matemática", Result: models.ResultNegative, Description: "B"}
	require.NoError(t, repos.ReportRepository.Create(ctx, other))

	// A report is only addressable under its own student
	_, err := repos.ReportRepository.GetByID(ctx, "s2", mine.ID)
	assert.True(t, errors.Is(err, apperrors.ErrReportNotFound))

	reports, err := repos.ReportRepository.GetByStudentID(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, mine.ID, reports[0].ID)
}

func TestAdaptationUpdateMissing(t *testing.T) {
	repos := newRepos(t)

	err := repos.AdaptationRepository.Update(context.Background(), &models.Adaptation{ID: "nope", StudentID: "s1"})
	assert.True(t, errors.Is(err, apperrors.ErrAdaptationNotFound))
}

func TestAdaptationDeleteLeavesSiblings(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	first := &models.Adaptation{StudentID: "s1", Description: "Prova adaptada", Justification: "Laudo", Date: "2026-03-01"}
	second := &models.Adaptation{StudentID: "s1", Description: "Tempo extra", Justification: "Laudo", Date: "2026-03-02"}
	require.NoError(t, repos.AdaptationRepository.Create(ctx, first))
	require.NoError(t, repos.AdaptationRepository.Create(ctx, second))

	require.NoError(t, repos.AdaptationRepository.Delete(ctx, "s1", first.ID))

	remaining, err := repos.AdaptationRepository.GetByStudentID(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, second.ID, remaining[0].ID)
}
