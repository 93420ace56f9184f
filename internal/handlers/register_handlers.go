package handlers

import (
	"github.com/SscSPs/mma_web/cmd/docs"
	portssvc "github.com/SscSPs/mma_web/internal/core/ports/services"
	"github.com/SscSPs/mma_web/internal/middleware"
	"github.com/SscSPs/mma_web/internal/platform/config"
	"github.com/SscSPs/mma_web/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteOptions carries the optional infrastructure the routes depend on.
type RouteOptions struct {
	// DB backs the health check. Nil reports healthy without a ping.
	DB Pinger
	// LoginLimiter throttles the credential endpoints when set.
	LoginLimiter *limiter.Limiter
	// Tracker receives usage events. May be nil.
	Tracker utils.EventTracker
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	opts RouteOptions,
) {
	RegisterValidators()

	r.GET("/health", getHealth(opts.DB))

	var loginLimit gin.HandlerFunc
	if opts.LoginLimiter != nil {
		loginLimit = middleware.RateLimit(opts.LoginLimiter)
	}
	auth := newAuthHandler(services.Auth, services.GoogleOAuth, cfg.IsProduction)
	registerAuthRoutes(r, auth, loginLimit)

	setupAPIV1Routes(r, services, auth, opts.Tracker)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group and its company-scoped subgroup
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	auth *authHandler,
	tracker utils.EventTracker,
) {
	v1 := r.Group("/api/v1", middleware.SessionAuthMiddleware(services.Auth), middleware.PosthogMiddleware(tracker))

	registerSessionRoutes(v1, auth)
	registerCompanyRoutes(v1, newCompanyHandler(services.Company))

	scoped := v1.Group("", middleware.RequireCompany())
	registerAccountRoutes(scoped, newAccountHandler(services.Account))
	registerJournalRoutes(scoped, newJournalHandler(services.JournalEntry))
	registerTransactionRoutes(scoped, newTransactionHandler(services.Transaction))
	registerDraftRoutes(scoped, newDraftHandler(services.Draft))
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
