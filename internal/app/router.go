package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"linq/internal/handler"
	"linq/internal/middleware"
	"linq/internal/service"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	AuthHandler    *handler.AuthHandler
	RideHandler    *handler.RideHandler
	FlowHandler    *handler.FlowHandler
	ChatHandler    *handler.ChatHandler
	WalletHandler  *handler.WalletHandler
	AlertHandler   *handler.AlertHandler
	SearchHandler  *handler.SearchHandler
	PlaceHandler   *handler.PlaceHandler
	ProfileHandler *handler.ProfileHandler
	TokenManager   *service.TokenManager
	RedisClient    *redis.Client
	NewRelicApp    *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Onboarding, no session required.
		auth := v1.Group("/auth")
		{
			auth.POST("/otp/request", deps.AuthHandler.RequestOTP)
			auth.POST("/otp/verify", deps.AuthHandler.VerifyOTP)
		}

		// Everything else resolves the current user.
		authed := v1.Group("")
		authed.Use(middleware.AuthMiddleware(deps.TokenManager))
		{
			// Ride routes.
			rides := authed.Group("/rides")
			{
				rides.GET("", deps.RideHandler.List)
				rides.GET("/:id", deps.RideHandler.Get)
				rides.POST("/:id/accept", deps.RideHandler.Accept)
				rides.POST("/:id/board", deps.RideHandler.Board)
				rides.POST("/:id/complete", deps.RideHandler.Complete)
				rides.POST("/:id/cancel", deps.RideHandler.Cancel)
			}

			// Search/request flow routes.
			flows := authed.Group("/flows")
			{
				flows.POST("", deps.FlowHandler.Start)
				flows.GET("/:id", deps.FlowHandler.Get)
				flows.PUT("/:id/route", deps.FlowHandler.UpdateRoute)
				flows.PUT("/:id/mode", deps.FlowHandler.SetMode)
				flows.PUT("/:id/vehicle", deps.FlowHandler.SetVehicle)
				flows.PUT("/:id/schedule", deps.FlowHandler.SetSchedule)
				flows.PUT("/:id/women-only", deps.FlowHandler.SetWomenOnly)
				flows.POST("/:id/seats/increment", deps.FlowHandler.IncrementSeats)
				flows.POST("/:id/seats/decrement", deps.FlowHandler.DecrementSeats)
				flows.POST("/:id/submit", deps.FlowHandler.Submit)
				flows.POST("/:id/results", deps.FlowHandler.ConfirmSearch)
				flows.POST("/:id/select", deps.FlowHandler.SelectMatch)
				flows.POST("/:id/request", deps.FlowHandler.SendRequest)
				flows.POST("/:id/back", deps.FlowHandler.Back)
				flows.DELETE("/:id", deps.FlowHandler.Abandon)
			}

			// Chat routes. The events route upgrades to a websocket.
			chats := authed.Group("/chats")
			{
				chats.GET("", deps.ChatHandler.List)
				chats.GET("/events", deps.ChatHandler.Events)
				chats.GET("/:id", deps.ChatHandler.Get)
				chats.POST("/:id/messages", deps.ChatHandler.SendMessage)
				chats.POST("/:id/read", deps.ChatHandler.MarkRead)
			}

			// Wallet routes.
			wallet := authed.Group("/wallet")
			{
				wallet.GET("", deps.WalletHandler.Get)
				wallet.POST("/:id/settle", deps.WalletHandler.MarkSettled)
			}

			// Alert routes.
			alerts := authed.Group("/alerts")
			{
				alerts.GET("", deps.AlertHandler.List)
				alerts.POST("/read-all", deps.AlertHandler.MarkAllRead)
				alerts.POST("/:id/read", deps.AlertHandler.MarkRead)
			}

			// Global search.
			authed.GET("/search", deps.SearchHandler.Query)

			// Places catalog.
			places := authed.Group("/places")
			{
				places.GET("", deps.PlaceHandler.List)
				places.POST("/:id/plan", deps.PlaceHandler.PlanRide)
			}

			// Profile routes.
			profile := authed.Group("/profile")
			{
				profile.GET("", deps.ProfileHandler.Get)
				profile.PUT("", deps.ProfileHandler.UpdateIdentity)
				profile.PUT("/role", deps.ProfileHandler.SwitchRole)
				profile.PUT("/preferences", deps.ProfileHandler.UpdatePreferences)
				profile.PUT("/provider", deps.ProfileHandler.UpdateProviderDetails)
				profile.PUT("/emergency-contact", deps.ProfileHandler.UpdateEmergencyContact)
			}
		}
	}

	return router
}
