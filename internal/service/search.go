package service

import (
	"context"
	"strings"

	"linq/internal/domain"
	"linq/internal/repository"
)

// sectionLimit caps each result section.
const sectionLimit = 3

// SearchResults is the grouped global-search response. Recents appear only
// for an empty query.
type SearchResults struct {
	Locations []domain.SearchResult
	Rides     []domain.SearchResult
	People    []domain.SearchResult
	Actions   []domain.SearchResult
	Recents   []domain.SearchResult
}

// SearchService answers the global search box: a case-insensitive substring
// query over locations, rides, people and quick actions.
type SearchService struct {
	rideRepo  repository.RideRepository
	locations []domain.SearchResult
	people    []domain.SearchResult
	actions   []domain.SearchResult
	recents   []domain.SearchResult
}

// NewSearchService creates a new SearchService over the given static
// indexes.
func NewSearchService(
	rideRepo repository.RideRepository,
	locations, people, actions, recents []domain.SearchResult,
) *SearchService {
	return &SearchService{
		rideRepo:  rideRepo,
		locations: locations,
		people:    people,
		actions:   actions,
		recents:   recents,
	}
}

// Query runs the global search. An empty query returns the recent searches
// and the quick actions instead of matches.
func (s *SearchService) Query(ctx context.Context, query string) (*SearchResults, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return &SearchResults{
			Recents: s.recents,
			Actions: s.actions,
		}, nil
	}

	results := &SearchResults{
		Locations: filterResults(s.locations, q),
		People:    filterResults(s.people, q),
		Actions:   filterResults(s.actions, q),
	}

	rides, err := s.rideRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range rides {
		if len(results.Rides) == sectionLimit {
			break
		}
		route := rideRoute(r)
		if !strings.Contains(strings.ToLower(route), q) {
			continue
		}
		results.Rides = append(results.Rides, domain.SearchResult{
			ID:       "ride_" + r.ID,
			Type:     domain.SearchResultRide,
			Title:    route,
			Subtitle: r.Date + " • " + string(r.Status),
			RideID:   r.ID,
		})
	}
	return results, nil
}

func filterResults(index []domain.SearchResult, q string) []domain.SearchResult {
	var matched []domain.SearchResult
	for _, r := range index {
		if len(matched) == sectionLimit {
			break
		}
		if strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.Subtitle), q) {
			matched = append(matched, r)
		}
	}
	return matched
}
