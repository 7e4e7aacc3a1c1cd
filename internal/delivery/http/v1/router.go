package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-intake-backend/config"
	"go-intake-backend/internal/delivery/http/middleware"
	"go-intake-backend/internal/delivery/http/response"
	"go-intake-backend/internal/domain"
	"go-intake-backend/pkg/ratelimit"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	QuoteUC   domain.QuoteUsecase
	Limiter   *ratelimit.Limiter
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK)
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Intake routes. The gate order is a contract: origin first, then
	// rate limit, then (inside the handlers) size, schema, transport.
	// Each gate is cheaper than the next, so abusive traffic is cut off
	// before any parsing or outbound call.
	intake := api.Group("")
	intake.Use(middleware.OriginCheck(deps.Config.AllowedOrigins, !deps.Config.IsProduction()))
	intake.Use(middleware.RateLimit(deps.Limiter, middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitThreshold,
		Window:    deps.Config.RateLimitWindow(),
		KeyPrefix: "rl:intake:",
	}))
	{
		NewContactHandler(intake, deps.ContactUC, deps.Config.MaxBodyBytes)
		NewQuoteHandler(intake, deps.QuoteUC, deps.Config.MaxBodyBytes)
	}

	return r
}

// success sends the acknowledgement envelope
func success(c *gin.Context) {
	response.Success(c, http.StatusOK)
}
