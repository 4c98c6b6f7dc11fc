package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"jobzee/internal/app"
	"jobzee/internal/config"
	"jobzee/internal/database"
	apphttp "jobzee/internal/http"
	"jobzee/internal/http/handlers"
	httpmw "jobzee/internal/http/middleware"
	"jobzee/internal/http/response"
	"jobzee/internal/notify"
	"jobzee/internal/observability"
	"jobzee/internal/repository/postgres"
	"jobzee/internal/security"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	httpmw.SetLogger(logger)
	response.ExposeErrorDetail(!cfg.IsProduction())

	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	accountRepo := postgres.NewAccountRepository(db)
	seekerRepo := postgres.NewJobSeekerRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)

	tokenProvider := security.NewTokenProvider(cfg.JWTSecret, cfg.TokenTTL)
	mailer := notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	mailQueue := notify.NewQueue(mailer, logger, 128)
	defer mailQueue.Close()

	authService := app.NewAuthService(accountRepo, tokenProvider, mailer, mailQueue, logger, cfg.FrontendBaseURL)
	jobService := app.NewJobService(jobRepo, companyRepo, accountRepo, logger, cfg.RequireApprovalForPublicListing)
	applicationService := app.NewApplicationService(applicationRepo, jobRepo, seekerRepo, companyRepo, logger)
	reviewService := app.NewReviewService(reviewRepo, companyRepo, seekerRepo, logger)
	adminService := app.NewAdminService(accountRepo, jobRepo, applicationRepo, logger)
	profileService := app.NewProfileService(seekerRepo, companyRepo, logger)

	var limiter httpmw.Limiter = httpmw.NewRateLimiter()
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer redisClient.Close()
		limiter = httpmw.NewRedisLimiter(redisClient)
	}

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:        handlers.NewAuthHandler(authService),
		JobHandler:         handlers.NewJobHandler(jobService),
		ApplicationHandler: handlers.NewApplicationHandler(applicationService),
		ReviewHandler:      handlers.NewReviewHandler(reviewService),
		AdminHandler:       handlers.NewAdminHandler(adminService),
		ProfileHandler:     handlers.NewProfileHandler(profileService),
		CompanyHandler:     handlers.NewCompanyHandler(profileService),
		HealthHandler:      handlers.NewHealthHandler(db),
		AuthMiddleware:     httpmw.NewAuthMiddleware(tokenProvider),
		Limiter:            limiter,
		CORS:               httpmw.CORS(cfg.CORSOrigins),
		RequestTimeout:     cfg.RequestTimeout,
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
