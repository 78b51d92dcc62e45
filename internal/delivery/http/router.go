package http

import (
	"github.com/gdugdh24/roomies-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/roomies-backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Router struct {
	authHandler          *handler.AuthHandler
	profileHandler       *handler.ProfileHandler
	compatibilityHandler *handler.CompatibilityHandler
	swipeHandler         *handler.SwipeHandler
	matchHandler         *handler.MatchHandler
	feedHandler          *handler.FeedHandler
	authMiddleware       *middleware.AuthMiddleware
	logger               *zap.Logger
	devTokens            bool
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	compatibilityHandler *handler.CompatibilityHandler,
	swipeHandler *handler.SwipeHandler,
	matchHandler *handler.MatchHandler,
	feedHandler *handler.FeedHandler,
	authMiddleware *middleware.AuthMiddleware,
	logger *zap.Logger,
	devTokens bool,
) *Router {
	return &Router{
		authHandler:          authHandler,
		profileHandler:       profileHandler,
		compatibilityHandler: compatibilityHandler,
		swipeHandler:         swipeHandler,
		matchHandler:         matchHandler,
		feedHandler:          feedHandler,
		authMiddleware:       authMiddleware,
		logger:               logger,
		devTokens:            devTokens,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(r.logger))

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1
	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			if r.devTokens {
				auth.POST("/dev-token", r.authHandler.DevToken)
			}
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			personality := protected.Group("/personality")
			{
				personality.GET("/me", r.profileHandler.GetMyPersonality)
				personality.PUT("/me", r.profileHandler.UpsertMyPersonality)
			}

			protected.GET("/compatibility/:user_id", r.compatibilityHandler.GetCompatibility)
			protected.GET("/suggestions", r.feedHandler.GetSuggestions)

			protected.POST("/swipe", r.swipeHandler.Swipe)

			requests := protected.Group("/requests")
			{
				requests.GET("", r.swipeHandler.ListRequests)
				requests.POST("/respond", r.swipeHandler.RespondToRequest)
			}

			matches := protected.Group("/matches")
			{
				matches.GET("", r.matchHandler.ListMatches)
				matches.PUT("/:id/primary", r.matchHandler.SetPrimary)
				matches.PUT("/:id/status", r.matchHandler.UpdateStatus)
				matches.POST("/:id/space", r.matchHandler.SharedSpace)
				matches.GET("/:id/explanation", r.matchHandler.Explanation)
				matches.DELETE("/:id", r.matchHandler.Unmatch)
			}
		}
	}

	return router
}
