package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	appControllers "github.com/sis-eval/backend/internal/app/controllers"
	appMigrations "github.com/sis-eval/backend/internal/app/migrations"
	appRepos "github.com/sis-eval/backend/internal/app/repositories"
	appRoutes "github.com/sis-eval/backend/internal/app/routes"
	appServices "github.com/sis-eval/backend/internal/app/services"
	"github.com/sis-eval/backend/internal/config"
	"github.com/sis-eval/backend/internal/db"
	appMiddleware "github.com/sis-eval/backend/internal/middleware"
	"github.com/sis-eval/backend/internal/pkg/logger"
	"github.com/sis-eval/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ProfessorService    appServices.ProfessorService // Interface type
	ProfessorController *appControllers.ProfessorController
	HealthController    *appControllers.HealthController
	Repos               *appRepos.Repositories // Include the main repo container
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads .env, the configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Msg("No .env file, using process environment")
		} else {
			logger.Warn().Err(err).Msg("Failed to load .env file")
		}
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = filepath.Join("configs", "config.yaml")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Str("config", configPath).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and seeds default data.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Str("host", cfg.DatabaseHost()).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator, err := appMigrations.NewMigrator(database.Pool, lgr)
	if err != nil {
		database.Close()
		return nil, err
	}

	migrateCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()
	if err := migrator.Up(migrateCtx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	// Seeding runs after migrations. Failures are logged, startup continues.
	if err := seed.CreateDefaultData(ctx, cfg, deps.Repos.UserRepository, deps.Repos.ProfessorRepository, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	deps.ProfessorService = appServices.NewProfessorService(
		deps.Repos.ProfessorRepository,
		deps.Repos.UserRepository,
		lgr,
	)

	deps.ProfessorController = appControllers.NewProfessorController(deps.ProfessorService)
	deps.HealthController = appControllers.NewHealthController(database, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterJSONFieldNames()

	corsHandler, err := appMiddleware.CORS(appMiddleware.CORSConfig{
		AllowedOrigins:       cfg.CORS.AllowedOrigins,
		PreviewOriginPattern: cfg.CORS.PreviewOriginPattern,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to configure CORS: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(corsHandler)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.ProfessorController, deps.HealthController)

	setupStaticFrontend(router, cfg, lgr)

	return router, nil
}

// setupStaticFrontend serves the built front-end for every path no API route
// claims. API paths that miss still get a JSON 404.
func setupStaticFrontend(router *gin.Engine, cfg *config.Config, lgr zerolog.Logger) {
	staticDir := cfg.Server.StaticDir
	if staticDir == "" {
		router.NoRoute(appMiddleware.NotFoundHandler)
		return
	}

	if info, err := os.Stat(staticDir); err != nil || !info.IsDir() {
		lgr.Warn().Str("path", staticDir).Msg("Static directory not found, front-end will not be served")
		router.NoRoute(appMiddleware.NotFoundHandler)
		return
	}

	index := filepath.Join(staticDir, "index.html")
	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || c.Request.Method != "GET" {
			appMiddleware.NotFoundHandler(c)
			return
		}

		file := filepath.Join(staticDir, filepath.Clean("/"+path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(index)
	})
	lgr.Info().Str("path", staticDir).Msg("Static front-end serving configured")
}
