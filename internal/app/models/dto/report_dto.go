package dto

import "github.com/mvsilva/adapta/internal/app/models"

// CreateReportRequest carries the fields accepted on report creation.
// teacherId and teacherName submitted by the caller are ignored: the
// authenticated identity always becomes the author.
type CreateReportRequest struct {
	StudentID   string              `json:"studentId" binding:"required"`
	Subject     string              `json:"subject" binding:"required"`
	Date        string              `json:"date"`
	Result      models.ReportResult `json:"result" binding:"required"`
	Description string              `json:"description" binding:"required"`
}

// UpdateReportRequest carries a partial update; authorship and studentId
// are never updatable
type UpdateReportRequest struct {
	Subject     *string              `json:"subject"`
	Date        *string              `json:"date"`
	Result      *models.ReportResult `json:"result"`
	Description *string              `json:"description"`
}
