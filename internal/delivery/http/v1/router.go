package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"job-portal-backend/config"
	"job-portal-backend/internal/delivery/http/middleware"
	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/token"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	CandidateUC domain.CandidateUsecase
	RecruiterUC domain.RecruiterUsecase
	Tokens      *token.Service
	Validate    *validator.Validate
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CSRFMiddleware())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	authLimiter := middleware.RateLimitMiddleware(
		middleware.AuthRateLimitConfig(deps.Config.RateLimitLoginThreshold, window))
	requireAuth := middleware.AuthMiddleware(deps.Tokens, deps.AuthUC)
	optionalAuth := middleware.OptionalAuth(deps.Tokens, deps.AuthUC)

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewAuthHandler(v1, deps.AuthUC, deps.Tokens, deps.Validate, optionalAuth, requireAuth, authLimiter)

	// Protected routes
	protected := v1.Group("")
	protected.Use(requireAuth)
	{
		NewCandidateHandler(protected, deps.CandidateUC, deps.Validate)
		NewRecruiterHandler(protected, deps.RecruiterUC, deps.Validate)
		NewSkillTestHandler(protected, deps.RecruiterUC, deps.Validate)
	}

	return r
}
