package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"linq/internal/domain"
	"linq/internal/repository"
	"linq/internal/service"
)

// PlaceHandler handles HTTP requests for the places catalog.
type PlaceHandler struct {
	placeRepo   repository.PlaceRepository
	flowService *service.FlowService
}

// NewPlaceHandler creates a new PlaceHandler.
func NewPlaceHandler(placeRepo repository.PlaceRepository, flowService *service.FlowService) *PlaceHandler {
	return &PlaceHandler{placeRepo: placeRepo, flowService: flowService}
}

// PlaceResponse is the HTTP representation of a catalog entry.
type PlaceResponse struct {
	ID                 string   `json:"id"`
	Category           string   `json:"category"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Area               string   `json:"area"`
	Tags               []string `json:"tags,omitempty"`
	RecommendedVehicle string   `json:"recommended_vehicle"`
}

func toPlaceResponse(p *domain.Place) PlaceResponse {
	return PlaceResponse{
		ID:                 p.ID,
		Category:           string(p.Category),
		Title:              p.Title,
		Description:        p.Description,
		Area:               p.Area,
		Tags:               p.Tags,
		RecommendedVehicle: string(p.RecommendedVehicle),
	}
}

// List handles GET /v1/places?category=
func (h *PlaceHandler) List(c *gin.Context) {
	places, err := h.placeRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	category := domain.PlaceCategory(strings.ToUpper(c.Query("category")))
	responses := make([]PlaceResponse, 0, len(places))
	for _, p := range places {
		if category != "" && p.Category != category {
			continue
		}
		responses = append(responses, toPlaceResponse(p))
	}
	respondJSON(c, http.StatusOK, responses)
}

// PlanRide handles POST /v1/places/:id/plan, starting a flow prefilled with
// the place as destination.
func (h *PlaceHandler) PlanRide(c *gin.Context) {
	place, err := h.placeRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	flow := h.flowService.Start(c.Request.Context(), currentUserID(c), place.Title)
	respondJSON(c, http.StatusCreated, toFlowResponse(flow))
}
