package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvsilva/adapta/internal/bootstrap"
	"github.com/mvsilva/adapta/internal/config"
	"github.com/mvsilva/adapta/internal/kvstore"
	"github.com/mvsilva/adapta/pkg/client"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Port = "0"
	cfg.Server.Mode = "production"
	cfg.Storage.Backend = config.BackendFile
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTokenExpiration = "1h"
	cfg.JWT.Issuer = "adapta.test"

	store, err := kvstore.NewFileStore(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err, "Failed to create file store")

	deps, err := bootstrap.BuildDependencies(cfg, store, zerolog.Nop())
	require.NoError(t, err, "Failed to build dependencies")

	router := bootstrap.SetupRouter(cfg, deps, zerolog.Nop())

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func loginAs(t *testing.T, server *httptest.Server, email, password string) *client.Client {
	t.Helper()
	c := client.New(server.URL)
	_, err := c.Login(context.Background(), email, password)
	require.NoError(t, err, "Login failed for %s", email)
	return c
}

func TestCoordinatorWorkflow(t *testing.T) {
	server := newTestServer(t)
	ctx := context.Background()

	coord := loginAs(t, server, "coordenador@escola.com", "coord123")

	me, err := coord.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, client.RoleCoordinator, me.Role)
	assert.Equal(t, "Maria Silva", me.Name)

	student, err := coord.CreateStudent(ctx, &client.CreateStudentRequest{
		Name: "Ana Souza", Course: "Ensino Fundamental", Class: "5A",
		BirthDate: "2014-06-20", RegistrationNumber: "2026010",
	})
	require.NoError(t, err)
	require.NotEmpty(t, student.ID)

	adaptation, err := coord.CreateAdaptation(ctx, &client.CreateAdaptationRequest{
		StudentID: student.ID, Description: "Prova com fonte ampliada",
		Justification: "Baixa visão", Date: "2026-02-01",
	})
	require.NoError(t, err)
	assert.Equal(t, student.ID, adaptation.StudentID)

	students, err := coord.GetStudents(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)

	class := "5B"
	updated, err := coord.UpdateStudent(ctx, student.ID, &client.UpdateStudentRequest{Class: &class})
	require.NoError(t, err)
	assert.Equal(t, "5B", updated.Class)
	assert.Equal(t, "Ana Souza", updated.Name)

	require.NoError(t, coord.DeleteStudent(ctx, student.ID))

	adaptations, err := coord.GetAdaptations(ctx, student.ID)
	require.NoError(t, err)
	assert.Empty(t, adaptations, "Deleting a student must remove its adaptations")
}

func TestTeacherReportWorkflow(t *testing.T) {
	server := newTestServer(t)
	ctx := context.Background()

	coord := loginAs(t, server, "coordenador@escola.com", "coord123")
	teacher := loginAs(t, server, "professor@escola.com", "prof123")

	student, err := coord.CreateStudent(ctx, &client.CreateStudentRequest{
		Name: "Bruno Lima", Course: "Ensino Fundamental", Class: "4A",
		BirthDate: "2015-03-11", RegistrationNumber: "2026011",
	})
	require.NoError(t, err)

	// A teacher cannot register students
	_, err = teacher.CreateStudent(ctx, &client.CreateStudentRequest{
		Name: "X", Course: "Y", Class: "Z", BirthDate: "2015-01-01", RegistrationNumber: "2026099",
	})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "Apenas coordenadores podem executar esta operação", apiErr.Message)

	report, err := teacher.CreateReport(ctx, &client.CreateReportRequest{
		StudentID: student.ID, Subject: "Matemática", Date: "2026-03-02",
		Result: client.ResultPositive, Description: "Avanço com material adaptado",
	})
	require.NoError(t, err)

	teacherProfile, err := teacher.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, teacherProfile.ID, report.TeacherID, "Author must come from the token, not the payload")
	assert.Equal(t, "João Santos", report.TeacherName)

	// Even the coordinator cannot edit another author's report
	desc := "Alterado"
	_, err = coord.UpdateReport(ctx, student.ID, report.ID, &client.UpdateReportRequest{Description: &desc})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)

	// The author can
	result := client.ResultNeutral
	updatedReport, err := teacher.UpdateReport(ctx, student.ID, report.ID, &client.UpdateReportRequest{Result: &result})
	require.NoError(t, err)
	assert.Equal(t, client.ResultNeutral, updatedReport.Result)

	_, err = teacher.CreateReport(ctx, &client.CreateReportRequest{
		StudentID: student.ID, Subject: "Português", Date: "2026-03-10",
		Result: client.ResultNegative, Description: "Dificuldade de leitura",
	})
	require.NoError(t, err)

	view, err := teacher.GetStudentReport(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, student.ID, view.Student.ID)
	require.Len(t, view.Reports, 2)
	assert.Equal(t, "2026-03-10", view.Reports[0].Date, "Reports come newest first")

	require.NoError(t, teacher.DeleteReport(ctx, student.ID, report.ID))
}

func TestSignUpAndAuthErrors(t *testing.T) {
	server := newTestServer(t)
	ctx := context.Background()

	c := client.New(server.URL)

	user, err := c.SignUp(ctx, &client.SignUpRequest{
		Email: "carla@escola.com", Password: "segredo1", Name: "Carla Nunes", Role: client.RoleTeacher,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Empty(t, user.Password)

	// Same email twice
	_, err = c.SignUp(ctx, &client.SignUpRequest{
		Email: "carla@escola.com", Password: "segredo2", Name: "Outra", Role: client.RoleTeacher,
	})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)

	// Missing required fields
	_, err = c.SignUp(ctx, &client.SignUpRequest{Email: "sem@escola.com"})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)

	// Bad credentials
	_, err = c.Login(ctx, "carla@escola.com", "errada")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	// No token at all
	_, err = c.GetStudents(ctx)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestNotFoundResponses(t *testing.T) {
	server := newTestServer(t)
	ctx := context.Background()

	coord := loginAs(t, server, "coordenador@escola.com", "coord123")

	var apiErr *client.APIError

	_, err := coord.GetStudentReport(ctx, "does-not-exist")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	name := "X"
	_, err = coord.UpdateStudent(ctx, "does-not-exist", &client.UpdateStudentRequest{Name: &name})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	err = coord.DeleteAdaptation(ctx, "s1", "does-not-exist")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestTransportErrorOnNonJSON(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>502 Bad Gateway</html>"))
	}))
	defer broken.Close()

	c := client.New(broken.URL, client.WithToken("whatever"))
	_, err := c.GetStudents(context.Background())

	var transportErr *client.TransportError
	assert.ErrorAs(t, err, &transportErr)
	var apiErr *client.APIError
	assert.False(t, errors.As(err, &apiErr))
}
