package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-manager/config"
	deliveryHttp "clinic-manager/internal/delivery/http"
	"clinic-manager/internal/delivery/http/handler"
	"clinic-manager/internal/delivery/http/middleware"
	"clinic-manager/internal/repository"
	"clinic-manager/internal/service"
	"clinic-manager/internal/usecase"
	"clinic-manager/pkg/session"
	"clinic-manager/pkg/validator"

	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config  *config.Config
	Log     *logrus.Logger
	Session *session.Session
	Server  *http.Server

	Dashboard usecase.DashboardUsecase
}

// New loads the configuration at configPath and wires the application
func New(configPath string) (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := setupLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	log.Info("Configuration loaded successfully")

	opts := []repository.ClientOption{}
	if cfg.API.Timeout > 0 {
		opts = append(opts, repository.WithTimeout(cfg.API.Timeout))
	}
	return NewWithConfig(cfg, log, opts...)
}

// NewWithConfig wires every layer around an already loaded configuration.
func NewWithConfig(cfg *config.Config, log *logrus.Logger, clientOpts ...repository.ClientOption) (*App, error) {
	app := &App{
		Config:  cfg,
		Log:     log,
		Session: session.New(log),
	}

	if cfg.API.Token != "" {
		if err := app.Session.Login(cfg.API.Token); err != nil {
			return nil, fmt.Errorf("failed to start session from API_TOKEN: %w", err)
		}
	}

	app.Server = app.initializeServer(clientOpts)
	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Level, err)
	}

	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(level)
	return log, nil
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer(clientOpts []repository.ClientOption) *http.Server {
	cfg := app.Config
	log := app.Log

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	client := repository.NewClient(cfg.API.BaseURL, app.Session, log, clientOpts...)
	doctorRepo := repository.NewDoctorRepository(client)
	patientRepo := repository.NewPatientRepository(client)
	appointmentRepo := repository.NewAppointmentRepository(client)
	dependentsRepo := repository.NewDependentsRepository(client)
	authRepo := repository.NewAuthRepository(client, cfg.API.LoginPath, cfg.API.RegisterPath)

	// Initialize services
	auditService := service.NewAuditService(log, app.Session)
	listingStore := service.NewListingStore()

	// Initialize usecases
	enricher := usecase.NewAppointmentEnricher(log, doctorRepo, patientRepo)
	resolver := usecase.NewDependentsResolver(cfg.Cascade, appointmentRepo, patientRepo, dependentsRepo)
	cascadeUsecase := usecase.NewCascadeDeleteUsecase(log, resolver, doctorRepo, patientRepo, appointmentRepo, listingStore, auditService)
	app.Dashboard = usecase.NewDashboardUsecase(log, app.Session, doctorRepo, patientRepo, appointmentRepo, enricher, cascadeUsecase, listingStore, auditService)
	formUsecase := usecase.NewFormSubmissionUsecase(log, customValidator, doctorRepo, patientRepo, appointmentRepo, auditService)
	recordUsecase := usecase.NewRecordUsecase(log, doctorRepo, patientRepo, appointmentRepo, enricher)
	authUsecase := usecase.NewAuthUsecase(log, app.Session, authRepo, auditService)
	activityUsecase := usecase.NewActivityUsecase(auditService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(app.Dashboard)
	doctorHandler := handler.NewDoctorHandler(formUsecase, recordUsecase, app.Dashboard)
	patientHandler := handler.NewPatientHandler(formUsecase, recordUsecase, app.Dashboard)
	appointmentHandler := handler.NewAppointmentHandler(formUsecase, recordUsecase, app.Dashboard)
	activityHandler := handler.NewActivityHandler(activityUsecase)

	// Initialize middleware
	routeGuard := middleware.NewRouteGuard(app.Session, log)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, dashboardHandler, doctorHandler, patientHandler, appointmentHandler, activityHandler, routeGuard, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		app.Log.Infof("Clinic API: %s", app.Config.API.BaseURL)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close ends the session so the token does not outlive the process
func (app *App) Close() {
	if app.Session != nil {
		app.Session.Close()
	}
}
