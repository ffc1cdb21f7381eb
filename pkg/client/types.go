package client

import (
	"github.com/mvsilva/adapta/internal/app/models"
	"github.com/mvsilva/adapta/internal/app/models/dto"
)

// Aliases for the request and response types used by Client methods, so
// importers outside this module can name every type in its signatures.
type (
	User          = models.User
	Student       = models.Student
	Adaptation    = models.Adaptation
	Report        = models.Report
	StudentReport = models.StudentReport

	RoleType     = models.RoleType
	ReportResult = models.ReportResult

	SignUpRequest           = dto.SignUpRequest
	LoginRequest            = dto.LoginRequest
	AuthResponse            = dto.AuthResponse
	TokenResponse           = dto.TokenResponse
	CreateStudentRequest    = dto.CreateStudentRequest
	UpdateStudentRequest    = dto.UpdateStudentRequest
	CreateAdaptationRequest = dto.CreateAdaptationRequest
	UpdateAdaptationRequest = dto.UpdateAdaptationRequest
	CreateReportRequest     = dto.CreateReportRequest
	UpdateReportRequest     = dto.UpdateReportRequest
)

const (
	RoleCoordinator = models.RoleCoordinator
	RoleTeacher     = models.RoleTeacher

	ResultPositive = models.ResultPositive
	ResultNeutral  = models.ResultNeutral
	ResultNegative = models.ResultNegative
)
