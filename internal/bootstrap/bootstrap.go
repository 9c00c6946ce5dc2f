package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/emreo/scholaris/docs" // generated swagger docs
	appControllers "github.com/emreo/scholaris/internal/app/controllers"
	appMigrations "github.com/emreo/scholaris/internal/app/migrations"
	appRepos "github.com/emreo/scholaris/internal/app/repositories"
	appRoutes "github.com/emreo/scholaris/internal/app/routes"
	appServices "github.com/emreo/scholaris/internal/app/services"
	"github.com/emreo/scholaris/internal/config"
	"github.com/emreo/scholaris/internal/db"
	appMiddleware "github.com/emreo/scholaris/internal/middleware"
	"github.com/emreo/scholaris/internal/pkg/logger"
	"github.com/emreo/scholaris/internal/pkg/notifier"
	"github.com/emreo/scholaris/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	OfferingService      appServices.OfferingService
	EnrollmentService    appServices.EnrollmentService
	GradeService         appServices.GradeService
	ImportService        appServices.ImportService
	OfferingController   *appControllers.OfferingController
	EnrollmentController *appControllers.EnrollmentController
	GradeController      *appControllers.GradeController
	Repos                *appRepos.Repositories
	Notifier             notifier.Notifier
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default catalog.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Pool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Pool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Pool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database.Pool, lgr); err != nil {
		// Seeding failures are logged but never block startup.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.Notifier = notifier.NewAsyncNotifier(
		&notifier.LogSink{Logger: lgr},
		cfg.Notifier.BufferSize,
		lgr,
	)

	codeGenerator := appServices.NewCodeGenerator(deps.Repos.OfferingRepository)
	scheduleValidator := appServices.NewScheduleValidator(
		deps.Repos.MeetingRepository,
		cfg.Schedule.CrossTermConflicts,
	)

	deps.OfferingService = appServices.NewOfferingService(
		database,
		deps.Repos.OfferingRepository,
		deps.Repos.MeetingRepository,
		deps.Repos.LedgerRepository,
		deps.Repos.StudentRepository,
		deps.Repos.CatalogRepository,
		codeGenerator,
		scheduleValidator,
		deps.Notifier,
		lgr,
	)
	deps.EnrollmentService = appServices.NewEnrollmentService(
		database,
		deps.Repos.OfferingRepository,
		deps.Repos.LedgerRepository,
		deps.Repos.StudentRepository,
		lgr,
	)
	deps.GradeService = appServices.NewGradeService(
		database,
		deps.Repos.OfferingRepository,
		deps.Repos.LedgerRepository,
		lgr,
	)
	deps.ImportService = appServices.NewImportService(
		database,
		deps.Repos.OfferingRepository,
		deps.Repos.LedgerRepository,
		cfg.Importer.MaxRows,
		lgr,
	)

	deps.OfferingController = appControllers.NewOfferingController(deps.OfferingService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService)
	deps.GradeController = appControllers.NewGradeController(deps.GradeService, deps.ImportService)

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

	appMiddleware.RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.OfferingController,
		deps.EnrollmentController,
		deps.GradeController,
	)

	return router
}
