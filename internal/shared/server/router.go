package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-annex/internal/artifacts"
	googleauth "resume-annex/internal/auth"
	"resume-annex/internal/enhance"
	"resume-annex/internal/intake"
	"resume-annex/internal/services/health"
	"resume-annex/internal/shared/config"
	"resume-annex/internal/shared/metrics"
	"resume-annex/internal/shared/server/middleware"
	"resume-annex/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router mounts. Construction happens in
// bootstrap; the router only wires middleware and routes.
type RouterDeps struct {
	Config          config.Config
	Health          *health.Service
	IntakeHandler   *intake.Handler
	EnhanceHandler  *enhance.Handler
	ArtifactHandler *artifacts.Handler
	GoogleAuth      *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.SecurityHeaders(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Identity(),
		middleware.RateLimit(chatRateLimits()),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})
	registerMeRoutes(api)
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.IntakeHandler != nil {
		deps.IntakeHandler.RegisterRoutes(api)
	}
	if deps.EnhanceHandler != nil {
		deps.EnhanceHandler.RegisterRoutes(api)
	}
	if deps.ArtifactHandler != nil {
		deps.ArtifactHandler.RegisterRoutes(api)
	}

	return r
}

// chatRateLimits throttles the generation endpoints harder than the rest of
// the API; each generation call fans out to the paid provider.
func chatRateLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"CHAT":    {Rate: 0.5, Burst: 10},
			"DEFAULT": {Rate: 5, Burst: 100},
		},
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			switch c.FullPath() {
			case "/api/v1/chat", "/api/v1/optimize", "/api/v1/upload":
				return "CHAT"
			}
			return "DEFAULT"
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
