package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mvsilva/adapta/internal/app/models/dto"
	"github.com/mvsilva/adapta/internal/app/services"
	"github.com/mvsilva/adapta/internal/middleware"
)

// AdaptationController handles curricular adaptation operations
type AdaptationController struct {
	adaptationService services.AdaptationService
}

// NewAdaptationController creates a new AdaptationController
func NewAdaptationController(adaptationService services.AdaptationService) *AdaptationController {
	return &AdaptationController{
		adaptationService: adaptationService,
	}
}

// GetAdaptations lists a student's adaptations
// @Summary List adaptations
// @Description Retrieves every curricular adaptation registered for a student
// @Tags adaptations
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Success 200 {object} map[string][]models.Adaptation "Adaptations retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /adaptations/{studentId} [get]
func (c *AdaptationController) GetAdaptations(ctx *gin.Context) {
	adaptations, err := c.adaptationService.ListAdaptations(ctx.Request.Context(), middleware.CurrentUser(ctx), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"adaptations": adaptations})
}

// CreateAdaptation registers a new adaptation
// @Summary Register an adaptation
// @Description Registers a curricular adaptation for a student; coordinators only
// @Tags adaptations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAdaptationRequest true "Adaptation information"
// @Success 200 {object} map[string]models.Adaptation "Adaptation created"
// @Failure 400 {object} dto.ErrorResponse "Invalid or missing fields"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a coordinator"
// @Router /adaptations [post]
func (c *AdaptationController) CreateAdaptation(ctx *gin.Context) {
	var req dto.CreateAdaptationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	adaptation, err := c.adaptationService.CreateAdaptation(ctx.Request.Context(), middleware.CurrentUser(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"adaptation": adaptation})
}

// UpdateAdaptation updates an existing adaptation
// @Summary Update an adaptation
// @Description Merges the provided fields over an existing adaptation; coordinators only
// @Tags adaptations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Param id path string true "Adaptation ID"
// @Param request body dto.UpdateAdaptationRequest true "Fields to update"
// @Success 200 {object} map[string]models.Adaptation "Adaptation updated"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a coordinator"
// @Failure 404 {object} dto.ErrorResponse "Adaptation not found"
// @Router /adaptations/{studentId}/{id} [put]
func (c *AdaptationController) UpdateAdaptation(ctx *gin.Context) {
	var req dto.UpdateAdaptationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	adaptation, err := c.adaptationService.UpdateAdaptation(
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

	ctx.JSON(http.StatusOK, gin.H{"adaptation": adaptation})
}

// DeleteAdaptation deletes an adaptation
// @Summary Delete an adaptation
// @Description Deletes a curricular adaptation; coordinators only
// @Tags adaptations
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Param id path string true "Adaptation ID"
// @Success 200 {object} map[string]bool "Adaptation deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a coordinator"
// @Failure 404 {object} dto.ErrorResponse "Adaptation not found"
// @Router /adaptations/{studentId}/{id} [delete]
func (c *AdaptationController) DeleteAdaptation(ctx *gin.Context) {
	err := c.adaptationService.DeleteAdaptation(
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
