package service_test

import (
	"context"
	"errors"
	"testing"

	"linq/internal/domain"
	"linq/internal/service"
)

func TestWallet_SeededBuckets(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	active, err := e.wallet.Active(ctx)
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if len(active) != 1 || active[0].ID != "w1" {
		t.Errorf("expected only w1 active, got %v", active)
	}

	history, err := e.wallet.History(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].ID != "w2" {
		t.Errorf("expected only w2 in history, got %v", history)
	}
}

func TestWallet_MarkSettledMovesBuckets(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	item, err := e.wallet.MarkSettled(ctx, "w1")
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if item.Status != domain.ContributionResolved {
		t.Errorf("expected RESOLVED, got %s", item.Status)
	}

	active, _ := e.wallet.Active(ctx)
	if len(active) != 0 {
		t.Errorf("expected no active items, got %d", len(active))
	}
	history, _ := e.wallet.History(ctx)
	if len(history) != 2 {
		t.Errorf("expected 2 resolved items, got %d", len(history))
	}
}

func TestWallet_MarkSettledIdempotent(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	if _, err := e.wallet.MarkSettled(ctx, "w1"); err != nil {
		t.Fatalf("settle: %v", err)
	}
	// Settling again succeeds and changes nothing.
	item, err := e.wallet.MarkSettled(ctx, "w1")
	if err != nil {
		t.Fatalf("settle twice: %v", err)
	}
	if item.Status != domain.ContributionResolved {
		t.Errorf("expected RESOLVED, got %s", item.Status)
	}

	history, _ := e.wallet.History(ctx)
	if len(history) != 2 {
		t.Errorf("expected 2 resolved items, got %d", len(history))
	}
}

func TestWallet_Summary(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	summary, err := e.wallet.Summarize(ctx)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.PendingToPay != 40 {
		t.Errorf("expected 40 pending to pay, got %v", summary.PendingToPay)
	}
	if summary.PendingToReceive != 0 {
		t.Errorf("expected 0 pending to receive, got %v", summary.PendingToReceive)
	}
	if summary.ClearedTotal != 70 {
		t.Errorf("expected 70 cleared, got %v", summary.ClearedTotal)
	}
	if summary.ActiveCount != 1 {
		t.Errorf("expected 1 active item, got %d", summary.ActiveCount)
	}
}

func TestWallet_SummaryAfterSettling(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	if _, err := e.wallet.MarkSettled(ctx, "w1"); err != nil {
		t.Fatalf("settle: %v", err)
	}

	summary, err := e.wallet.Summarize(ctx)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.PendingToPay != 0 {
		t.Errorf("expected 0 pending to pay, got %v", summary.PendingToPay)
	}
	if summary.ClearedTotal != 110 {
		t.Errorf("expected 110 cleared, got %v", summary.ClearedTotal)
	}
	if summary.ActiveCount != 0 {
		t.Errorf("expected 0 active items, got %d", summary.ActiveCount)
	}
}

func TestWallet_MarkSettledUnknownID(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	if _, err := e.wallet.MarkSettled(ctx, "missing"); err == nil {
		t.Error("expected error for unknown item")
	}
	if _, err := e.wallet.MarkSettled(ctx, ""); !errors.Is(err, service.ErrInvalidWalletItemID) {
		t.Errorf("expected ErrInvalidWalletItemID, got %v", err)
	}
}
