package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"linq/internal/domain"
	"linq/internal/service"
)

// SearchHandler handles HTTP requests for the global search.
type SearchHandler struct {
	searchService *service.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchResultResponse is the HTTP representation of one search result.
type SearchResultResponse struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	RideID   string `json:"ride_id,omitempty"`
}

// SearchResponse is the grouped global-search response.
type SearchResponse struct {
	Locations []SearchResultResponse `json:"locations,omitempty"`
	Rides     []SearchResultResponse `json:"rides,omitempty"`
	People    []SearchResultResponse `json:"people,omitempty"`
	Actions   []SearchResultResponse `json:"actions,omitempty"`
	Recents   []SearchResultResponse `json:"recents,omitempty"`
}

func toSearchResultResponses(results []domain.SearchResult) []SearchResultResponse {
	responses := make([]SearchResultResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, SearchResultResponse{
			ID:       r.ID,
			Type:     string(r.Type),
			Title:    r.Title,
			Subtitle: r.Subtitle,
			RideID:   r.RideID,
		})
	}
	return responses
}

// Query handles GET /v1/search?q=
func (h *SearchHandler) Query(c *gin.Context) {
	results, err := h.searchService.Query(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, SearchResponse{
		Locations: toSearchResultResponses(results.Locations),
		Rides:     toSearchResultResponses(results.Rides),
		People:    toSearchResultResponses(results.People),
		Actions:   toSearchResultResponses(results.Actions),
		Recents:   toSearchResultResponses(results.Recents),
	})
}
