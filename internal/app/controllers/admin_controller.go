package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mvsilva/adapta/internal/app/repositories"
	"github.com/mvsilva/adapta/internal/kvstore"
	"github.com/mvsilva/adapta/internal/middleware"
	"github.com/mvsilva/adapta/internal/seed"
)

// AdminController exposes maintenance operations. It is only mounted
// when the server runs in debug mode.
type AdminController struct {
	store    kvstore.Store
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(store kvstore.Store, userRepo *repositories.UserRepository, logger zerolog.Logger) *AdminController {
	return &AdminController{
		store:    store,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Reset wipes every stored record and recreates the default accounts
// @Summary Reset all data
// @Description Deletes every stored record and recreates the default accounts; debug mode only
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]bool "Data reset"
// @Failure 500 {object} dto.ErrorResponse "Reset failed"
// @Router /admin/reset [post]
func (c *AdminController) Reset(ctx *gin.Context) {
	c.logger.Warn().Msg("Resetting all stored data")

	if err := c.store.Reset(ctx.Request.Context()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := seed.CreateDefaultAccounts(ctx.Request.Context(), c.userRepo, c.logger); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
