package api

import (
	"net/http"

	"expgrowth/internal/api/handlers"
	"expgrowth/internal/api/middleware"
	"expgrowth/internal/api/models"
	"expgrowth/internal/cache"
	"expgrowth/internal/config"
	"expgrowth/internal/scenario"

	"github.com/gin-gonic/gin"
)

// Server bundles the router with the resources it owns.
type Server struct {
	Router  *gin.Engine
	limiter *middleware.RateLimiter
}

// NewServer wires handlers and middleware for cfg. The cache may be nil.
func NewServer(cfg *config.Config, c cache.Cache) (*Server, error) {
	refs, err := cfg.References.ToScenario()
	if err != nil {
		return nil, err
	}
	eval := scenario.NewEvaluator(refs)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	s := &Server{Router: router}
	if rl := cfg.Server.RateLimit; rl.Capacity > 0 {
		s.limiter = middleware.NewRateLimiter(rl.Capacity, rl.Refill)
	}

	scenarioHandler := handlers.NewScenarioHandler(eval, cfg.Defaults, c)
	formatHandler := handlers.NewFormatHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	if s.limiter != nil {
		api.Use(middleware.RateLimit(s.limiter))
	}
	{
		api.GET("/scenarios", scenarioHandler.ListScenarios)
		api.GET("/scenarios/:name", scenarioHandler.RunScenario)
		api.POST("/scenarios/:name", scenarioHandler.RunScenario)

		api.GET("/format", formatHandler.FormatNumber)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.NewError("NOT_FOUND", "Not found"))
	})

	return s, nil
}

// Close stops background work started by NewServer.
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}
