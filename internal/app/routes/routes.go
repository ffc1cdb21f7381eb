package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvsilva/adapta/internal/app/controllers"
	"github.com/mvsilva/adapta/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	adaptationController *controllers.AdaptationController,
	reportController *controllers.ReportController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public Auth routes ---
	v1.POST("/signup", authController.SignUp)
	v1.POST("/login", authController.Login)

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/me", authController.Me)

		// Student routes; writes are restricted to coordinators in the
		// service layer
		students := authenticated.Group("/students")
		{
			students.GET("", studentController.GetStudents)
			students.POST("", studentController.CreateStudent)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
		}

		// Adaptation routes, keyed by the owning student
		adaptations := authenticated.Group("/adaptations")
		{
			adaptations.GET("/:studentId", adaptationController.GetAdaptations)
			adaptations.POST("", adaptationController.CreateAdaptation)
			adaptations.PUT("/:studentId/:id", adaptationController.UpdateAdaptation)
			adaptations.DELETE("/:studentId/:id", adaptationController.DeleteAdaptation)
		}

		// Report routes, keyed by the owning student
		reports := authenticated.Group("/reports")
		{
			reports.GET("/:studentId", reportController.GetReports)
			reports.POST("", reportController.CreateReport)
			reports.PUT("/:studentId/:id", reportController.UpdateReport)
			reports.DELETE("/:studentId/:id", reportController.DeleteReport)
		}

		// Aggregate view of a student's adaptations and reports
		authenticated.GET("/student-report/:studentId", reportController.GetStudentReport)
	}

	// Maintenance routes are only mounted in debug mode
	if adminController != nil && gin.Mode() == gin.DebugMode {
		v1.POST("/admin/reset", adminController.Reset)
	}
}
