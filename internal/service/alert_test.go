package service_test

import (
	"context"
	"testing"

	"linq/internal/domain"
)

func TestAlert_ListNewestFirst(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	alerts, err := e.alerts.List(context.Background(), "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(alerts) != 2 {
		t.Fatalf("expected 2 seeded alerts, got %d", len(alerts))
	}
	if alerts[0].ID != "a1" {
		t.Errorf("expected a1 first, got %s", alerts[0].ID)
	}
}

func TestAlert_ListFilterByCategory(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	alerts, err := e.alerts.List(context.Background(), domain.AlertCategorySafety)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(alerts) != 1 || alerts[0].ID != "a2" {
		t.Errorf("expected only the safety alert, got %v", alerts)
	}
}

func TestAlert_MarkReadAndCount(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	count, err := e.alerts.UnreadCount(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 unread, got %d", count)
	}

	alert, err := e.alerts.MarkRead(ctx, "a1")
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if !alert.IsRead {
		t.Error("expected alert to be read")
	}

	// Second call changes nothing.
	if _, err := e.alerts.MarkRead(ctx, "a1"); err != nil {
		t.Fatalf("mark read again: %v", err)
	}

	count, _ = e.alerts.UnreadCount(ctx)
	if count != 0 {
		t.Errorf("expected 0 unread, got %d", count)
	}
}

func TestAlert_MarkAllRead(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	// Generate another unread ride alert first.
	if _, err := e.rides.Accept(ctx, "r2"); err != nil {
		t.Fatalf("accept: %v", err)
	}

	if err := e.alerts.MarkAllRead(ctx); err != nil {
		t.Fatalf("mark all: %v", err)
	}
	count, err := e.alerts.UnreadCount(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 unread, got %d", count)
	}
}
