package service_test

import (
	"context"
	"errors"
	"testing"

	"linq/internal/domain"
	"linq/internal/service"
)

func TestRide_FullLifecycle(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	// r1 is seeded as CONFIRMED.
	ride, err := e.rides.Board(ctx, "r1")
	if err != nil {
		t.Fatalf("board: %v", err)
	}
	if ride.Status != domain.RideStatusInProgress {
		t.Errorf("expected IN_PROGRESS, got %s", ride.Status)
	}

	ride, err = e.rides.Complete(ctx, "r1")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if ride.Status != domain.RideStatusCompleted {
		t.Errorf("expected COMPLETED, got %s", ride.Status)
	}
}

func TestRide_AcceptRequested(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	// r2 is seeded as REQUESTED.
	ride, err := e.rides.Accept(ctx, "r2")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if ride.Status != domain.RideStatusConfirmed {
		t.Errorf("expected CONFIRMED, got %s", ride.Status)
	}
}

func TestRide_TerminalStatesRejectTransitions(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	if _, err := e.rides.Board(ctx, "r1"); err != nil {
		t.Fatalf("board: %v", err)
	}
	if _, err := e.rides.Complete(ctx, "r1"); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// Every further transition must be rejected.
	if _, err := e.rides.Accept(ctx, "r1"); !errors.Is(err, service.ErrInvalidTransition) {
		t.Errorf("accept on completed: expected ErrInvalidTransition, got %v", err)
	}
	if _, err := e.rides.Board(ctx, "r1"); !errors.Is(err, service.ErrInvalidTransition) {
		t.Errorf("board on completed: expected ErrInvalidTransition, got %v", err)
	}
	if _, err := e.rides.Cancel(ctx, "r1", ""); !errors.Is(err, service.ErrRideNotCancellable) {
		t.Errorf("cancel on completed: expected ErrRideNotCancellable, got %v", err)
	}

	// Status must be unchanged after the rejected attempts.
	ride, err := e.rides.Get(ctx, "r1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ride.Status != domain.RideStatusCompleted {
		t.Errorf("expected COMPLETED, got %s", ride.Status)
	}
}

func TestRide_SkippingStepsRejected(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	// r2 is REQUESTED; boarding before acceptance is not modeled.
	if _, err := e.rides.Board(ctx, "r2"); !errors.Is(err, service.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
	if _, err := e.rides.Complete(ctx, "r2"); !errors.Is(err, service.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestRide_CancelInProgressRejected(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	if _, err := e.rides.Board(ctx, "r1"); err != nil {
		t.Fatalf("board: %v", err)
	}
	if _, err := e.rides.Cancel(ctx, "r1", "changed plans"); !errors.Is(err, service.ErrRideNotCancellable) {
		t.Errorf("expected ErrRideNotCancellable, got %v", err)
	}
}

func TestRide_CancelRecordsReason(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	ride, err := e.rides.Cancel(ctx, "r2", "found another ride")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if ride.Status != domain.RideStatusCancelled {
		t.Errorf("expected CANCELLED, got %s", ride.Status)
	}
	if ride.CancelReason != "found another ride" {
		t.Errorf("unexpected reason: %q", ride.CancelReason)
	}
	if ride.CancelledAt.IsZero() {
		t.Error("expected CancelledAt to be set")
	}
}

func TestRide_CompleteLocksChatThread(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	// Thread c1 belongs to ride r1 and starts unlocked.
	thread, err := e.chats.Get(ctx, "c1")
	if err != nil {
		t.Fatalf("get thread: %v", err)
	}
	if thread.IsLocked() {
		t.Fatal("thread should start unlocked")
	}
	messagesBefore := len(thread.Messages)

	if _, err := e.rides.Board(ctx, "r1"); err != nil {
		t.Fatalf("board: %v", err)
	}
	if _, err := e.rides.Complete(ctx, "r1"); err != nil {
		t.Fatalf("complete: %v", err)
	}

	thread, err = e.chats.Get(ctx, "c1")
	if err != nil {
		t.Fatalf("get thread: %v", err)
	}
	if !thread.IsLocked() {
		t.Error("thread should be locked after ride completion")
	}
	if thread.RideStatus != domain.RideStatusCompleted {
		t.Errorf("expected mirrored COMPLETED, got %s", thread.RideStatus)
	}

	// Sending on the locked thread must not change the history.
	if _, err := e.chats.SendMessage(ctx, "c1", "hello?"); !errors.Is(err, service.ErrThreadLocked) {
		t.Errorf("expected ErrThreadLocked, got %v", err)
	}
	thread, _ = e.chats.Get(ctx, "c1")
	if len(thread.Messages) != messagesBefore {
		t.Errorf("message history changed: %d -> %d", messagesBefore, len(thread.Messages))
	}
}

func TestRide_CancelLocksChatThread(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	if _, err := e.rides.Cancel(ctx, "r1", "plans changed"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	thread, err := e.chats.Get(ctx, "c1")
	if err != nil {
		t.Fatalf("get thread: %v", err)
	}
	if !thread.IsLocked() {
		t.Error("thread should be locked after cancellation")
	}
}

func TestRide_CompleteCreatesWalletItem(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	before, err := e.wallet.Active(ctx)
	if err != nil {
		t.Fatalf("active: %v", err)
	}

	if _, err := e.rides.Board(ctx, "r1"); err != nil {
		t.Fatalf("board: %v", err)
	}
	if _, err := e.rides.Complete(ctx, "r1"); err != nil {
		t.Fatalf("complete: %v", err)
	}

	after, err := e.wallet.Active(ctx)
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Fatalf("expected %d active items, got %d", len(before)+1, len(after))
	}

	var created *domain.WalletItem
	for _, item := range after {
		if item.RideID == "r1" && item.Status == domain.ContributionPending && item.Amount == 40 {
			created = item
		}
	}
	if created == nil {
		t.Fatal("expected a pending 40 contribution for r1")
	}
	if created.Type != domain.ContributionFuelShare {
		t.Errorf("expected FUEL_SHARE, got %s", created.Type)
	}
}

func TestRide_CompleteFreeRideSkipsWallet(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	// r5 is seeded with price 0.
	if _, err := e.rides.Accept(ctx, "r5"); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if _, err := e.rides.Board(ctx, "r5"); err != nil {
		t.Fatalf("board: %v", err)
	}

	before, _ := e.wallet.Active(ctx)
	if _, err := e.rides.Complete(ctx, "r5"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	after, _ := e.wallet.Active(ctx)

	if len(after) != len(before) {
		t.Errorf("free ride should not create a wallet item: %d -> %d", len(before), len(after))
	}
}

func TestRide_ListBuckets(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	if _, err := e.rides.Board(ctx, "r1"); err != nil {
		t.Fatalf("board: %v", err)
	}
	if _, err := e.rides.Cancel(ctx, "r2", ""); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	groups, err := e.rides.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	find := func(rides []*domain.Ride, id string) bool {
		for _, r := range rides {
			if r.ID == id {
				return true
			}
		}
		return false
	}

	if !find(groups.Active, "r1") {
		t.Error("r1 should be active while in progress")
	}
	if !find(groups.Completed, "r2") {
		t.Error("cancelled r2 should be in the history bucket")
	}
	if !find(groups.Upcoming, "r4") || !find(groups.Upcoming, "r3") {
		t.Error("r3 and r4 should stay upcoming")
	}
}

func TestRide_TransitionsEmitAlerts(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	before, err := e.alerts.List(ctx, domain.AlertCategoryRide)
	if err != nil {
		t.Fatalf("list alerts: %v", err)
	}

	if _, err := e.rides.Accept(ctx, "r2"); err != nil {
		t.Fatalf("accept: %v", err)
	}

	after, err := e.alerts.List(ctx, domain.AlertCategoryRide)
	if err != nil {
		t.Fatalf("list alerts: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Fatalf("expected a new ride alert, %d -> %d", len(before), len(after))
	}
	// Newest first.
	if after[0].Title != "Ride Confirmed" {
		t.Errorf("unexpected alert title %q", after[0].Title)
	}
	if after[0].StatusTag != string(domain.RideStatusConfirmed) {
		t.Errorf("unexpected status tag %q", after[0].StatusTag)
	}
}

func TestRide_GetUnknownID(t *testing.T) {
	t.Parallel()

	e := newEnv(t)

	if _, err := e.rides.Get(context.Background(), "missing"); err == nil {
		t.Error("expected error for unknown ride")
	}
	if _, err := e.rides.Get(context.Background(), ""); !errors.Is(err, service.ErrInvalidRideID) {
		t.Errorf("expected ErrInvalidRideID, got %v", err)
	}
}
