package bootstrap

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/campus/internal/app/controllers"
	appRepos "github.com/yigit/campus/internal/app/repositories"
	appRoutes "github.com/yigit/campus/internal/app/routes"
	appServices "github.com/yigit/campus/internal/app/services"
	"github.com/yigit/campus/internal/config"
	"github.com/yigit/campus/internal/db"
	appMiddleware "github.com/yigit/campus/internal/middleware"
	"github.com/yigit/campus/internal/pkg/logger"
	"github.com/yigit/campus/internal/seed"
)

// authenticateTimeout bounds the startup connectivity check
const authenticateTimeout = 5 * time.Second

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                *appRepos.Repositories
	StudentService       *appServices.StudentService
	DepartmentService    *appServices.DepartmentService
	StudentController    *appControllers.StudentController
	DepartmentController *appControllers.DepartmentController
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase creates the database gateway and checks connectivity. A failed
// check is logged and the gateway is still returned, so the server keeps
// serving and requests report the failure themselves.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.Gateway, error) {
	gateway, err := db.NewPostgresDB(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to create database gateway")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), authenticateTimeout)
	defer cancel()
	if err := gateway.Authenticate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Unable to connect to the database")
		return gateway, nil
	}
	lgr.Info().Msg("database is connected.")

	PrepareSchema(context.Background(), cfg, gateway, lgr)
	return gateway, nil
}

// PrepareSchema runs the optional table creation and seeding steps.
// Failures are logged and do not stop startup.
func PrepareSchema(ctx context.Context, cfg *config.Config, gateway *db.Gateway, lgr zerolog.Logger) {
	if cfg.Database.AutoMigrate {
		lgr.Info().Msg("Creating missing tables...")
		if err := gateway.AutoMigrate(ctx); err != nil {
			lgr.Error().Err(err).Msg("Auto migration failed")
			return
		}
	}

	if cfg.Database.Seed {
		if err := seed.CreateDefaultData(ctx, appRepos.NewDepartmentRepository(gateway.DB), lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(gateway *db.Gateway, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(gateway.DB)

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := NewRouter(deps, lgr)
	appRoutes.SetupSwagger(router)
	return router
}

// NewRouter builds the engine with the API routes and shared middleware
func NewRouter(deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CORS())

	appRoutes.SetupRouter(router, deps.StudentController, deps.DepartmentController)
	return router
}
