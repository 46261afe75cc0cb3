package service_test

import (
	"context"
	"testing"

	"linq/internal/domain"
)

func TestSearch_EmptyQueryShowsRecentsAndActions(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	results, err := e.search.Query(context.Background(), "   ")
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	if len(results.Recents) == 0 {
		t.Error("expected recent searches for an empty query")
	}
	if len(results.Actions) == 0 {
		t.Error("expected quick actions for an empty query")
	}
	if len(results.Locations) != 0 || len(results.Rides) != 0 || len(results.People) != 0 {
		t.Error("empty query should not return matches")
	}
}

func TestSearch_SubstringAcrossSections(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	results, err := e.search.Query(context.Background(), "hitech")
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	if len(results.Locations) != 1 || results.Locations[0].Title != "Hitech City" {
		t.Errorf("unexpected locations: %v", results.Locations)
	}
	if len(results.Rides) != 1 {
		t.Fatalf("expected one ride match, got %d", len(results.Rides))
	}
	if results.Rides[0].RideID != "r1" {
		t.Errorf("expected ride r1, got %q", results.Rides[0].RideID)
	}
	if results.Rides[0].Type != domain.SearchResultRide {
		t.Errorf("unexpected result type %s", results.Rides[0].Type)
	}
	if len(results.Recents) != 0 {
		t.Error("recents should only appear for an empty query")
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	results, err := e.search.Query(context.Background(), "ADITI")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(results.People) != 1 || results.People[0].Title != "Aditi" {
		t.Errorf("unexpected people: %v", results.People)
	}
}

func TestSearch_SubtitleMatches(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	// "Intercity" appears only in location subtitles.
	results, err := e.search.Query(context.Background(), "intercity")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(results.Locations) != 2 {
		t.Errorf("expected 2 intercity locations, got %d", len(results.Locations))
	}
}

func TestSearch_SectionLimit(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	// Broad single-letter query; no section may exceed three entries.
	results, err := e.search.Query(context.Background(), "a")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	for name, section := range map[string][]domain.SearchResult{
		"locations": results.Locations,
		"rides":     results.Rides,
		"people":    results.People,
		"actions":   results.Actions,
	} {
		if len(section) > 3 {
			t.Errorf("%s section exceeds limit: %d", name, len(section))
		}
	}
}

func TestSearch_NoMatches(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	results, err := e.search.Query(context.Background(), "zzzzzz")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(results.Locations)+len(results.Rides)+len(results.People)+len(results.Actions) != 0 {
		t.Errorf("expected no matches, got %+v", results)
	}
}
