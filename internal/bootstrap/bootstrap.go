package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/mvsilva/adapta/internal/app/auth"
	appControllers "github.com/mvsilva/adapta/internal/app/controllers"
	appRepos "github.com/mvsilva/adapta/internal/app/repositories"
	appRoutes "github.com/mvsilva/adapta/internal/app/routes"
	appServices "github.com/mvsilva/adapta/internal/app/services"
	"github.com/mvsilva/adapta/internal/config"
	"github.com/mvsilva/adapta/internal/db"
	"github.com/mvsilva/adapta/internal/kvstore"
	appMiddleware "github.com/mvsilva/adapta/internal/middleware"
	pkgAuth "github.com/mvsilva/adapta/internal/pkg/auth"
	"github.com/mvsilva/adapta/internal/pkg/helpers"
	"github.com/mvsilva/adapta/internal/pkg/logger"
	"github.com/mvsilva/adapta/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	StudentService       appServices.StudentService
	AdaptationService    appServices.AdaptationService
	ReportService        appServices.ReportService
	AuthController       *appControllers.AuthController
	StudentController    *appControllers.StudentController
	AdaptationController *appControllers.AdaptationController
	ReportController     *appControllers.ReportController
	AdminController      *appControllers.AdminController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Policy               *appAuth.Policy
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A .env file is optional; environment variables win over config.yaml
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore opens the configured storage backend. For the postgres
// backend it connects, runs migrations and wraps the pool; for the
// file backend it loads the JSON file.
func SetupStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (kvstore.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		lgr.Info().Msg("Establishing database connection...")
		database, err := db.NewPostgresDB(cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}

		lgr.Info().Msg("Running database migrations...")
		migrator, err := db.NewMigrator(database.Pool, "migrations")
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("migrator setup failed: %w", err)
		}
		if err := migrator.Run(ctx); err != nil {
			database.Close()
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		if err := migrator.Close(); err != nil {
			lgr.Warn().Err(err).Msg("Failed to close migrator connection")
		}
		lgr.Info().Msg("Database migrations successfully applied.")

		// the store takes ownership of the pool; its Close releases it
		return kvstore.NewPostgresStore(database.Pool), nil

	case config.BackendFile:
		lgr.Info().Str("path", cfg.Storage.FilePath).Msg("Opening file store...")
		store, err := kvstore.NewFileStore(cfg.Storage.FilePath)
		if err != nil {
			lgr.Error().Err(err).Str("path", cfg.Storage.FilePath).Msg("Failed to open file store")
			return nil, err
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, store kvstore.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(store)
	deps.Policy = appAuth.NewPolicy()

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Policy)
	deps.AdaptationService = appServices.NewAdaptationService(deps.Repos.AdaptationRepository, deps.Policy)
	deps.ReportService = appServices.NewReportService(
		deps.Repos.ReportRepository,
		deps.Repos.AdaptationRepository,
		deps.Repos.StudentRepository,
		deps.Policy,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.AdaptationController = appControllers.NewAdaptationController(deps.AdaptationService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService)
	deps.AdminController = appControllers.NewAdminController(store, deps.Repos.UserRepository, lgr)

	// Seed the default accounts so a fresh store is usable immediately
	if err := seed.CreateDefaultAccounts(context.Background(), deps.Repos.UserRepository, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default accounts, proceeding anyway...")
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.AdaptationController,
		deps.ReportController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	return router
}
