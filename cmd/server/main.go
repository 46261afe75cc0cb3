package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"linq/internal/app"
	"linq/internal/config"
	"linq/internal/handler"
	"linq/internal/repository/memory"
	"linq/internal/service"
	"linq/internal/ws"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic first so the optional Redis client can be
	// instrumented.
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	// Redis backs the idempotency cache only; the service runs without it.
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = app.NewRedisClient(ctx, cfg.Redis, nrApp)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		log.Println("Connected to Redis")
	}

	// Seed the in-memory stores with the demo dataset.
	stores := memory.NewStores()
	if err := stores.Seed(ctx); err != nil {
		log.Fatalf("failed to seed stores: %v", err)
	}
	log.Println("Seeded in-memory stores")

	// Wire dependencies.
	server, hub := wireServer(stores, redisClient, nrApp, cfg)
	go hub.Run()

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server and the
// chat-event hub.
func wireServer(stores *memory.Stores, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) (*http.Server, *ws.Hub) {
	hub := ws.NewHub()

	// Initialize services.
	tokenManager := service.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	alertService := service.NewAlertService(stores.Alerts)
	chatService := service.NewChatService(stores.Chats, hub)
	walletService := service.NewWalletService(stores.Wallet)
	rideService := service.NewRideService(stores.Rides, chatService, walletService, alertService)
	flowService := service.NewFlowService(stores.Matches, rideService)
	searchService := service.NewSearchService(stores.Rides,
		memory.SeedLocations(), memory.SeedPeople(), memory.SeedActions(), memory.SeedRecents())
	authService := service.NewAuthService(stores.Users, tokenManager)
	profileService := service.NewProfileService(stores.Users)

	// Initialize handlers.
	authHandler := handler.NewAuthHandler(authService)
	rideHandler := handler.NewRideHandler(rideService)
	flowHandler := handler.NewFlowHandler(flowService)
	chatHandler := handler.NewChatHandler(chatService, hub)
	walletHandler := handler.NewWalletHandler(walletService)
	alertHandler := handler.NewAlertHandler(alertService)
	searchHandler := handler.NewSearchHandler(searchService)
	placeHandler := handler.NewPlaceHandler(stores.Places, flowService)
	profileHandler := handler.NewProfileHandler(profileService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		AuthHandler:    authHandler,
		RideHandler:    rideHandler,
		FlowHandler:    flowHandler,
		ChatHandler:    chatHandler,
		WalletHandler:  walletHandler,
		AlertHandler:   alertHandler,
		SearchHandler:  searchHandler,
		PlaceHandler:   placeHandler,
		ProfileHandler: profileHandler,
		TokenManager:   tokenManager,
		RedisClient:    redisClient,
		NewRelicApp:    nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, hub
}
