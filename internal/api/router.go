package api

import (
	"net/http"
	"time"

	"interview_quiz/internal/api/handler"
	"interview_quiz/internal/api/middleware"
	"interview_quiz/internal/app/service"
	"interview_quiz/internal/common/security"
	"interview_quiz/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus"
)

func NewRouter(
	authService *service.AuthService,
	questionService *service.QuestionService,
	interviewService *service.InterviewService,
	authRateLimiter *middleware.RateLimiter,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies the token when present and puts claims in context. It looks
	// for "Authorization: Bearer T" and the jwt cookie; route groups decide
	// whether authentication is actually required.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	r.Method(http.MethodGet, "/metrics", metrics.Handler(gatherer))

	// API v1 Routes
	r.Route("/api/v1", func(v1 chi.Router) {
		// Auth routes (public, rate limited)
		authHandler := handler.NewAuthHandler(authService)
		v1.Group(func(publicAuth chi.Router) {
			publicAuth.Use(authRateLimiter.Middleware)
			publicAuth.Route("/auth", authHandler.RegisterRoutes)
		})

		// Question bank routes (admin only)
		questionHandler := handler.NewQuestionHandler(questionService)
		v1.Route("/questions", questionHandler.RegisterRoutes)

		// Interview routes (public)
		interviewHandler := handler.NewInterviewHandler(interviewService)
		v1.Route("/interview", interviewHandler.RegisterRoutes)

		// Result routes (authenticated; listing all is admin only)
		resultHandler := handler.NewResultHandler(interviewService)
		v1.Route("/results", resultHandler.RegisterRoutes)
	})

	return r
}
