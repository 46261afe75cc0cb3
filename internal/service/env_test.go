package service_test

import (
	"context"
	"testing"
	"time"

	"linq/internal/repository/memory"
	"linq/internal/service"
)

// env bundles seeded stores and fully wired services for tests.
type env struct {
	stores *memory.Stores

	alerts  *service.AlertService
	chats   *service.ChatService
	wallet  *service.WalletService
	rides   *service.RideService
	flows   *service.FlowService
	search  *service.SearchService
	auth    *service.AuthService
	profile *service.ProfileService
	tokens  *service.TokenManager
}

// newEnv builds the service graph over freshly seeded in-memory stores.
func newEnv(t *testing.T) *env {
	t.Helper()

	stores := memory.NewStores()
	if err := stores.Seed(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	tokens := service.NewTokenManager("test-secret", time.Hour)
	alerts := service.NewAlertService(stores.Alerts)
	chats := service.NewChatService(stores.Chats, nil)
	wallet := service.NewWalletService(stores.Wallet)
	rides := service.NewRideService(stores.Rides, chats, wallet, alerts)
	flows := service.NewFlowService(stores.Matches, rides)
	search := service.NewSearchService(stores.Rides,
		memory.SeedLocations(), memory.SeedPeople(), memory.SeedActions(), memory.SeedRecents())
	auth := service.NewAuthService(stores.Users, tokens)
	profile := service.NewProfileService(stores.Users)

	return &env{
		stores:  stores,
		alerts:  alerts,
		chats:   chats,
		wallet:  wallet,
		rides:   rides,
		flows:   flows,
		search:  search,
		auth:    auth,
		profile: profile,
		tokens:  tokens,
	}
}
