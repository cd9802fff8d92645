package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/dhruvkrishnavaid/oceaneye/config"
	"github.com/dhruvkrishnavaid/oceaneye/internal/handler"
	"github.com/dhruvkrishnavaid/oceaneye/internal/observability"
	"github.com/dhruvkrishnavaid/oceaneye/internal/repository"
	"github.com/dhruvkrishnavaid/oceaneye/internal/scheduler"
	"github.com/dhruvkrishnavaid/oceaneye/internal/service"
	"github.com/dhruvkrishnavaid/oceaneye/internal/source"
	"github.com/dhruvkrishnavaid/oceaneye/internal/store"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("config/config.json")
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	clock := clockwork.NewRealClock()
	metrics := observability.NewMetrics()

	// Select the upstream data source.
	var src source.DataSource
	switch cfg.Source.Mode {
	case "http":
		src = source.NewHTTPSource(cfg.Source.BaseURL, time.Duration(cfg.Source.TimeoutSeconds)*time.Second)
		logrus.Infof("Using HTTP data source at %s", cfg.Source.BaseURL)
	default:
		src = source.NewMockSource(
			clock,
			time.Duration(cfg.Source.MockDelayMillis)*time.Millisecond,
			cfg.Source.MockFailureRate,
		)
		logrus.Infof("Using mock data source (delay=%dms, failure rate=%.0f%%)",
			cfg.Source.MockDelayMillis, cfg.Source.MockFailureRate*100)
	}

	// Initialize stores
	reportStore := store.NewReportStore()
	notificationStore := store.NewNotificationStore()

	// Initialize repositories
	sessionRepo := repository.NewSessionRepository(cfg.Auth.StorageDir, cfg.Auth.StorageKey)

	// Initialize services
	reportService := service.NewReportService(reportStore, src, metrics)
	notificationService := service.NewNotificationService(notificationStore, src, metrics)
	dashboardService := service.NewDashboardService(src)
	authService := service.NewAuthService(
		sessionRepo,
		clock,
		metrics,
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpirationHours)*time.Hour,
		time.Duration(cfg.Auth.LoginDelayMillis)*time.Millisecond,
	)

	// Seed the stores on startup, the fetch-on-mount of the dashboard.
	// A failure here is recoverable: the views surface the error with a
	// retry affordance.
	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := reportService.Refresh(startupCtx); err != nil {
		logrus.Warnf("Initial report fetch failed: %v", err)
	}
	if err := notificationService.Refresh(startupCtx); err != nil {
		logrus.Warnf("Initial notification fetch failed: %v", err)
	}
	cancel()

	// Start the periodic refresh
	if cfg.Refresh.Enabled {
		sched := scheduler.NewService(reportService, notificationService, cfg.Refresh.Schedule)
		if err := sched.Start(); err != nil {
			logrus.Fatalf("Failed to start scheduler: %v", err)
		}
		defer sched.Stop()
	}

	// Initialize handlers
	reportHandler := handler.NewReportHandler(reportService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	authHandler := handler.NewAuthHandler(authService)

	// Setup Gin
	r := gin.Default()

	// Health check and metrics
	r.GET("/health", reportHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/dashboard/stats", dashboardHandler.GetStats)
		api.GET("/social", dashboardHandler.GetSocialPosts)
		api.GET("/trending", dashboardHandler.GetTrending)

		reports := api.Group("/reports")
		{
			reports.GET("", reportHandler.GetReports)
			reports.GET("/counts", reportHandler.GetCounts)
			reports.POST("", handler.AuthRequired(authService), reportHandler.CreateReport)
			reports.POST("/refresh", reportHandler.Refresh)
			reports.PATCH("/read-all", reportHandler.MarkAllAsRead)
			reports.PATCH("/:id/read", reportHandler.MarkAsRead)
			reports.PATCH("/:id/verify", reportHandler.MarkAsVerified)
			reports.PATCH("/:id/fake", reportHandler.MarkAsFake)
			reports.PATCH("/:id/reset", reportHandler.ResetVerification)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", notificationHandler.GetNotifications)
			notifications.POST("/refresh", notificationHandler.Refresh)
			notifications.PATCH("/read-all", notificationHandler.MarkAllAsRead)
			notifications.PATCH("/:id/read", notificationHandler.MarkAsRead)
			notifications.PATCH("/:id/verify", notificationHandler.MarkAsVerified)
			notifications.PATCH("/:id/fake", notificationHandler.MarkAsFake)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.Me)
			auth.PATCH("/me", authHandler.UpdateMe)
		}
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logrus.Infof("OceanEye dashboard service starting on %s", addr)
	if err := r.Run(addr); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
