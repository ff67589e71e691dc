package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/workhive/api/internal/config"
	"github.com/workhive/api/internal/database"
	"github.com/workhive/api/internal/handler"
	"github.com/workhive/api/internal/jobs"
	"github.com/workhive/api/internal/mail"
	"github.com/workhive/api/internal/metrics"
	"github.com/workhive/api/internal/middleware"
	"github.com/workhive/api/internal/repository"
	"github.com/workhive/api/internal/service"
	"github.com/workhive/api/pkg/token"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize token issuer
	issuer, err := token.NewIssuer(token.Config{
		AccessSecret:  cfg.JWT.AccessSecret,
		AccessTTL:     cfg.JWT.AccessTTL,
		RefreshSecret: cfg.JWT.RefreshSecret,
		RefreshTTL:    cfg.JWT.RefreshTTL,
	})
	if err != nil {
		slog.Error("failed to initialize token issuer", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize metrics
	metrics.Init()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permRepo := repository.NewPermissionRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	jobRepo := repository.NewJobRepository(db)
	resumeRepo := repository.NewResumeRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)

	// Initialize services
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo: userRepo,
		RoleRepo: roleRepo,
		PermRepo: permRepo,
		Issuer:   issuer,
	})
	userService := service.NewUserService(userRepo, roleRepo)
	roleService := service.NewRoleService(roleRepo, permRepo)
	permService := service.NewPermissionService(permRepo)
	companyService := service.NewCompanyService(companyRepo)
	jobService := service.NewJobService(jobRepo, companyRepo)
	resumeService := service.NewResumeService(resumeRepo, jobRepo)
	subscriberService := service.NewSubscriberService(subscriberRepo)

	mailer := mail.NewSMTPMailer(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	digestService := service.NewDigestService(subscriberRepo, jobRepo, mailer, logger)

	// Seed initial data when enabled
	seeder := service.NewSeederService(userRepo, roleRepo, permRepo, service.SeederConfig{
		ShouldInit:   cfg.Seed.ShouldInit,
		InitPassword: cfg.Seed.InitPassword,
	}, logger)
	if err := seeder.Run(ctx); err != nil {
		slog.Error("failed to seed initial data", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, issuer.RefreshTTL())
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)
	permHandler := handler.NewPermissionHandler(permService)
	companyHandler := handler.NewCompanyHandler(companyService)
	jobHandler := handler.NewJobHandler(jobService)
	resumeHandler := handler.NewResumeHandler(resumeService)
	subscriberHandler := handler.NewSubscriberHandler(subscriberService)
	mailHandler := handler.NewMailHandler(digestService)
	healthHandler := handler.NewHealthHandler(db)

	// Authentication and permission guard. Permission sets are cached
	// for the access token lifetime.
	guard := middleware.NewGuard(issuer, authService, issuer.AccessTTL())

	mux := http.NewServeMux()

	// Infrastructure endpoints
	mux.HandleFunc("GET /healthz", healthHandler.Check)
	mux.Handle("GET /metrics", metrics.Handler())

	// Auth endpoints
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/v1/auth/refresh", authHandler.Refresh)
	mux.Handle("POST /api/v1/auth/logout", guard.Auth(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /api/v1/auth/account", guard.Auth(http.HandlerFunc(authHandler.Account)))

	// User endpoints
	mux.Handle("POST /api/v1/users", guard.Authorize(http.HandlerFunc(userHandler.Create)))
	mux.Handle("GET /api/v1/users", guard.Authorize(http.HandlerFunc(userHandler.List)))
	mux.Handle("GET /api/v1/users/{id}", guard.Authorize(http.HandlerFunc(userHandler.Get)))
	mux.Handle("PATCH /api/v1/users/{id}", guard.Authorize(http.HandlerFunc(userHandler.Update)))
	mux.Handle("DELETE /api/v1/users/{id}", guard.Authorize(http.HandlerFunc(userHandler.Delete)))

	// Role endpoints
	mux.Handle("POST /api/v1/roles", guard.Authorize(http.HandlerFunc(roleHandler.Create)))
	mux.Handle("GET /api/v1/roles", guard.Authorize(http.HandlerFunc(roleHandler.List)))
	mux.Handle("GET /api/v1/roles/{id}", guard.Authorize(http.HandlerFunc(roleHandler.Get)))
	mux.Handle("PATCH /api/v1/roles/{id}", guard.Authorize(http.HandlerFunc(roleHandler.Update)))
	mux.Handle("DELETE /api/v1/roles/{id}", guard.Authorize(http.HandlerFunc(roleHandler.Delete)))

	// Permission endpoints
	mux.Handle("POST /api/v1/permissions", guard.Authorize(http.HandlerFunc(permHandler.Create)))
	mux.Handle("GET /api/v1/permissions", guard.Authorize(http.HandlerFunc(permHandler.List)))
	mux.Handle("GET /api/v1/permissions/{id}", guard.Authorize(http.HandlerFunc(permHandler.Get)))
	mux.Handle("PATCH /api/v1/permissions/{id}", guard.Authorize(http.HandlerFunc(permHandler.Update)))
	mux.Handle("DELETE /api/v1/permissions/{id}", guard.Authorize(http.HandlerFunc(permHandler.Delete)))

	// Company endpoints; browsing is public for the job board
	mux.Handle("POST /api/v1/companies", guard.Authorize(http.HandlerFunc(companyHandler.Create)))
	mux.HandleFunc("GET /api/v1/companies", companyHandler.List)
	mux.HandleFunc("GET /api/v1/companies/{id}", companyHandler.Get)
	mux.Handle("PATCH /api/v1/companies/{id}", guard.Authorize(http.HandlerFunc(companyHandler.Update)))
	mux.Handle("DELETE /api/v1/companies/{id}", guard.Authorize(http.HandlerFunc(companyHandler.Delete)))

	// Job endpoints; browsing is public for the job board
	mux.Handle("POST /api/v1/jobs", guard.Authorize(http.HandlerFunc(jobHandler.Create)))
	mux.HandleFunc("GET /api/v1/jobs", jobHandler.List)
	mux.HandleFunc("GET /api/v1/jobs/{id}", jobHandler.Get)
	mux.Handle("PATCH /api/v1/jobs/{id}", guard.Authorize(http.HandlerFunc(jobHandler.Update)))
	mux.Handle("DELETE /api/v1/jobs/{id}", guard.Authorize(http.HandlerFunc(jobHandler.Delete)))

	// Resume endpoints
	mux.Handle("POST /api/v1/resumes", guard.Authorize(http.HandlerFunc(resumeHandler.Create)))
	mux.Handle("GET /api/v1/resumes", guard.Authorize(http.HandlerFunc(resumeHandler.List)))
	mux.Handle("POST /api/v1/resumes/by-user", guard.Auth(http.HandlerFunc(resumeHandler.ByUser)))
	mux.Handle("GET /api/v1/resumes/{id}", guard.Authorize(http.HandlerFunc(resumeHandler.Get)))
	mux.Handle("PATCH /api/v1/resumes/{id}", guard.Authorize(http.HandlerFunc(resumeHandler.Update)))
	mux.Handle("DELETE /api/v1/resumes/{id}", guard.Authorize(http.HandlerFunc(resumeHandler.Delete)))

	// Subscriber endpoints
	mux.Handle("POST /api/v1/subscribers", guard.Authorize(http.HandlerFunc(subscriberHandler.Create)))
	mux.Handle("GET /api/v1/subscribers", guard.Authorize(http.HandlerFunc(subscriberHandler.List)))
	mux.Handle("POST /api/v1/subscribers/skills", guard.Auth(http.HandlerFunc(subscriberHandler.Skills)))
	mux.Handle("GET /api/v1/subscribers/{id}", guard.Authorize(http.HandlerFunc(subscriberHandler.Get)))
	mux.Handle("PATCH /api/v1/subscribers/{id}", guard.Authorize(http.HandlerFunc(subscriberHandler.Update)))
	mux.Handle("DELETE /api/v1/subscribers/{id}", guard.Authorize(http.HandlerFunc(subscriberHandler.Delete)))

	// Manual digest trigger
	mux.HandleFunc("GET /api/v1/mail", mailHandler.Send)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Compress,
		metrics.Instrument,
	)

	// Start the weekly digest job
	digestJob := jobs.NewDigestWeeklyJob(digestService, logger)
	digestJob.Start()
	defer digestJob.Stop()

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
