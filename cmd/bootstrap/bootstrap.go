package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-management/config"
	deliveryHttp "hospital-management/internal/delivery/http"
	"hospital-management/internal/delivery/http/handler"
	"hospital-management/internal/delivery/http/middleware"
	"hospital-management/internal/infrastructure/cache"
	"hospital-management/internal/infrastructure/database"
	"hospital-management/internal/repository"
	"hospital-management/internal/seeder"
	"hospital-management/internal/service"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/jwt"
	"hospital-management/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Seeder      *seeder.Seeder
}

// New creates a new App instance with all dependencies initialized
func New(ctx context.Context) (*App, error) {
	app := &App{}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	app.Log = setupLogger(cfg.App.LogLevel)
	app.Log.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, err
	}
	app.DB = db

	if cfg.DB.Synchronize {
		if err := database.MigrateUp(db); err != nil {
			app.Close()
			return nil, err
		}
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.RedisClient = redisClient

	app.initialize()

	return app, nil
}

// setupLogger configures the standard logrus logger and returns it
func setupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return log
}

// initialize wires repositories, use cases, handlers and the HTTP server
func (app *App) initialize() {
	cfg, db, log := app.Config, app.DB, app.Log

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Repositories
	userRepo := repository.NewUserRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	hospitalRepo := repository.NewHospitalRepository()
	departmentRepo := repository.NewDepartmentRepository()
	doctorHospitalRepo := repository.NewDoctorHospitalRepository()
	availabilityRepo := repository.NewAvailabilityRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Services
	auditService := service.NewAuditService(log, auditLogRepo)
	sessions := service.NewSessionStore(app.RedisClient, log)

	// Use cases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, doctorProfileRepo, auditService, sessions, jwtService)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, doctorProfileRepo, auditService, sessions)
	hospitalUsecase := usecase.NewHospitalUsecase(db, log, hospitalRepo, departmentRepo, doctorHospitalRepo, availabilityRepo, appointmentRepo, auditService)
	departmentUsecase := usecase.NewDepartmentUsecase(db, log, departmentRepo, hospitalRepo, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, userRepo, hospitalRepo, doctorHospitalRepo, auditService)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, availabilityRepo, userRepo, doctorHospitalRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, availabilityRepo, doctorHospitalRepo, userRepo, auditService)
	revenueUsecase := usecase.NewRevenueUsecase(db, log, userRepo, hospitalRepo, departmentRepo, doctorHospitalRepo, appointmentRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	app.Seeder = seeder.New(db, log, userRepo, authUsecase, hospitalUsecase, departmentUsecase, doctorUsecase, availabilityUsecase, appointmentUsecase)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := deliveryHttp.NewRouter(deliveryHttp.RouterConfig{
		HealthHandler:       handler.NewHealthHandler(),
		AuthHandler:         handler.NewAuthHandler(authUsecase, customValidator),
		UserHandler:         handler.NewUserHandler(userUsecase, customValidator),
		HospitalHandler:     handler.NewHospitalHandler(hospitalUsecase, customValidator),
		DepartmentHandler:   handler.NewDepartmentHandler(departmentUsecase, customValidator),
		DoctorHandler:       handler.NewDoctorHandler(doctorUsecase, customValidator),
		AvailabilityHandler: handler.NewAvailabilityHandler(availabilityUsecase, customValidator),
		AppointmentHandler:  handler.NewAppointmentHandler(appointmentUsecase, customValidator),
		RevenueHandler:      handler.NewRevenueHandler(revenueUsecase),
		AuditLogHandler:     handler.NewAuditLogHandler(auditLogUsecase),
		AuthMiddleware:      middleware.NewAuthMiddleware(jwtService, sessions, log),
		CORSMiddleware:      middleware.NewCORSMiddleware(cfg.App.CORSOrigin),
		LoggingMiddleware:   middleware.NewLoggingMiddleware(log),
		MetricsMiddleware:   middleware.NewMetricsMiddleware(registry),
	})

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run seeds development data when needed, starts the HTTP server and
// blocks until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	defer app.Close()

	if app.Config.App.IsDevelopment() {
		if err := app.Seeder.Run(ctx); err != nil {
			// a failed seed leaves a usable, partially populated database
			app.Log.Errorf("Failed to seed demo data: %v", err)
		}
	}

	serverErr := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	app.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Log.Info("Server shutdown complete")
	return nil
}

// Seed loads the demo data set into an empty database.
func (app *App) Seed(ctx context.Context) error {
	defer app.Close()
	return app.Seeder.Run(ctx)
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
		app.DB = nil
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
		app.RedisClient = nil
	}
}

// Migrate applies (up) or rolls back (down) schema migrations without
// starting the rest of the application.
func Migrate(direction string, steps int) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	setupLogger(cfg.App.LogLevel)

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	switch direction {
	case "up":
		return database.MigrateUp(db)
	case "down":
		return database.MigrateDown(db, steps)
	default:
		return fmt.Errorf("unknown migration direction %q, use up or down", direction)
	}
}
