package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mvsilva/adapta/internal/app/models/dto"
	"github.com/mvsilva/adapta/internal/app/services"
	"github.com/mvsilva/adapta/internal/middleware"
)

// ReportController handles follow-up report operations
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// GetReports lists a student's follow-up reports
// @Summary List reports
// @Description Retrieves every follow-up report registered for a student
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Success 200 {object} map[string][]models.Report "Reports retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /reports/{studentId} [get]
func (c *ReportController) GetReports(ctx *gin.Context) {
	reports, err := c.reportService.ListReports(ctx.Request.Context(), middleware.CurrentUser(ctx), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"reports": reports})
}

// CreateReport registers a new follow-up report
// @Summary Register a report
// @Description Registers a follow-up report; the authenticated teacher is recorded as its author
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateReportRequest true "Report information"
// @Success 200 {object} map[string]models.Report "Report created"
// @Failure 400 {object} dto.ErrorResponse "Invalid or missing fields"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /reports [post]
func (c *ReportController) CreateReport(ctx *gin.Context) {
	var req dto.CreateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	report, err := c.reportService.CreateReport(ctx.Request.Context(), middleware.CurrentUser(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"report": report})
}

// UpdateReport updates an existing report
// @Summary Update a report
// @Description Merges the provided fields over an existing report; only its author may update it
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Param id path string true "Report ID"
// @Param request body dto.UpdateReportRequest true "Fields to update"
// @Success 200 {object} map[string]models.Report "Report updated"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not the report author"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Router /reports/{studentId}/{id} [put]
func (c *ReportController) UpdateReport(ctx *gin.Context) {
	var req dto.UpdateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	report, err := c.reportService.UpdateReport(
		ctx.Request.Context(),
		middleware.CurrentUser(ctx),
		ctx.Param("studentId"),
		ctx.Param("id"),
		&req,
	)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"report": report})
}

// DeleteReport deletes a report
// @Summary Delete a report
// @Description Deletes a follow-up report; only its author may delete it
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Param id path string true "Report ID"
// @Success 200 {object} map[string]bool "Report deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not the report author"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Router /reports/{studentId}/{id} [delete]
func (c *ReportController) DeleteReport(ctx *gin.Context) {
	err := c.reportService.DeleteReport(
		ctx.Request.Context(),
		middleware.CurrentUser(ctx),
		ctx.Param("studentId"),
		ctx.Param("id"),
	)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// GetStudentReport returns the aggregate view of a student
// @Summary Student dossier
// @Description Returns a student together with every adaptation and report, reports ordered by date descending
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Success 200 {object} models.StudentReport "Aggregate retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /student-report/{studentId} [get]
func (c *ReportController) GetStudentReport(ctx *gin.Context) {
	result, err := c.reportService.GetStudentReport(ctx.Request.Context(), middleware.CurrentUser(ctx), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"student":     result.Student,
		"adaptations": result.Adaptations,
		"reports":     result.Reports,
	})
}
