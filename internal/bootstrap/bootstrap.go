package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/edunexus/edunexus-backend/internal/app/controllers"
	appRepos "github.com/edunexus/edunexus-backend/internal/app/repositories"
	appRoutes "github.com/edunexus/edunexus-backend/internal/app/routes"
	appServices "github.com/edunexus/edunexus-backend/internal/app/services"
	"github.com/edunexus/edunexus-backend/internal/config"
	"github.com/edunexus/edunexus-backend/internal/db"
	appMiddleware "github.com/edunexus/edunexus-backend/internal/middleware"
	pkgAuth "github.com/edunexus/edunexus-backend/internal/pkg/auth"
	"github.com/edunexus/edunexus-backend/internal/pkg/logger"
	"github.com/edunexus/edunexus-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService      appServices.IAuthService
	CourseService    appServices.ICourseService
	AuthController   *appControllers.AuthController
	UserController   *appControllers.UserController
	CourseController *appControllers.CourseController
	AuthMiddleware   *appMiddleware.AuthMiddleware
	Repos            *appRepos.Repositories
	JWTService       *pkgAuth.JWTService
	Logger           zerolog.Logger
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

// SetupDatabase connects to MongoDB, ensures indexes and seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.MongoDB, error) {
	lgr.Info().Str("database", cfg.MongoDB.Database).Msg("Establishing database connection...")
	database, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := database.EnsureIndexes(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ensure database indexes")
		_ = database.Close(ctx)
		return nil, err
	}

	// Seed a default admin account; a failure here is logged, not fatal
	if err := seed.CreateDefaultData(ctx, database.Database, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.MongoDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Database)

	tokenExp, err := time.ParseDuration(cfg.JWT.TokenExpiration)
	if err != nil {
		tokenExp = 24 * time.Hour
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    tokenExp,
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.Repos.UserRepository, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, lgr)

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

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	// Cross-origin access is restricted to the single configured origin
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Server.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.CourseController,
		deps.AuthMiddleware,
	)

	return router
}
