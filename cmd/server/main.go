package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"interview_quiz/internal/api"
	"interview_quiz/internal/api/middleware"
	"interview_quiz/internal/app/service"
	"interview_quiz/internal/common/security"
	"interview_quiz/internal/domain/repository"
	"interview_quiz/internal/platform/cache"
	"interview_quiz/internal/platform/config"
	"interview_quiz/internal/platform/database"
	"interview_quiz/internal/platform/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT()
	fmt.Println("JWT initialized.")

	// 3. Initialize Database and apply migrations
	database.Connect()
	defer database.Close()
	if err := database.RunMigrations(config.AppConfig.DBUrl); err != nil {
		log.Fatalf("Could not run migrations: %v", err)
	}
	fmt.Println("Database connected and migrated.")

	// 4. Initialize Redis (token revocation list)
	cache.ConnectRedis()
	defer cache.CloseRedis()
	fmt.Println("Redis connected.")

	// 5. Initialize Metrics
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// 6. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	questionRepo := repository.NewPgQuestionRepository(database.DB)
	resultRepo := repository.NewPgResultRepository(database.DB)

	// 7. Initialize Services
	authService := service.NewAuthService(userRepo, collector)
	questionService := service.NewQuestionService(questionRepo, collector)
	interviewService := service.NewInterviewService(questionRepo, resultRepo, collector)

	// 8. Initialize Router & HTTP Server
	authRateLimiter := middleware.NewRateLimiter(middleware.NewRateLimiterConfig(
		config.AppConfig.AuthRateLimitPerMin, config.AppConfig.AuthRateBurst))
	defer authRateLimiter.Stop()

	router := api.NewRouter(authService, questionService, interviewService, authRateLimiter, registry)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 9. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
