package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"linq/internal/domain"
	"linq/internal/service"
)

// RideHandler handles HTTP requests for rides.
type RideHandler struct {
	rideService *service.RideService
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(rideService *service.RideService) *RideHandler {
	return &RideHandler{rideService: rideService}
}

// RideResponse is the HTTP representation of a ride.
type RideResponse struct {
	ID             string  `json:"id"`
	Mode           string  `json:"mode"`
	VehicleType    string  `json:"vehicle_type"`
	From           string  `json:"from"`
	To             string  `json:"to"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	Seats          int     `json:"seats"`
	Price          float64 `json:"price"`
	ProviderName   string  `json:"provider_name"`
	ProviderRating float64 `json:"provider_rating"`
	Status         string  `json:"status"`
	Category       string  `json:"category"`
	CancelledAt    string  `json:"cancelled_at,omitempty"`
	CancelReason   string  `json:"cancel_reason,omitempty"`
}

func toRideResponse(ride *domain.Ride) RideResponse {
	response := RideResponse{
		ID:             ride.ID,
		Mode:           string(ride.Mode),
		VehicleType:    string(ride.VehicleType),
		From:           ride.From,
		To:             ride.To,
		Date:           ride.Date,
		Time:           ride.Time,
		Seats:          ride.Seats,
		Price:          ride.Price,
		ProviderName:   ride.ProviderName,
		ProviderRating: ride.ProviderRating,
		Status:         string(ride.Status),
		Category:       string(domain.CategoryOf(ride.Status)),
	}
	if !ride.CancelledAt.IsZero() {
		response.CancelledAt = ride.CancelledAt.Format("2006-01-02T15:04:05Z07:00")
		response.CancelReason = ride.CancelReason
	}
	return response
}

func toRideResponses(rides []*domain.Ride) []RideResponse {
	responses := make([]RideResponse, 0, len(rides))
	for _, r := range rides {
		responses = append(responses, toRideResponse(r))
	}
	return responses
}

// ListRidesResponse is the HTTP response for the grouped ride list.
type ListRidesResponse struct {
	Upcoming  []RideResponse `json:"upcoming"`
	Active    []RideResponse `json:"active"`
	Completed []RideResponse `json:"completed"`
}

// CancelRideRequest is the HTTP request body for cancelling a ride.
type CancelRideRequest struct {
	Reason string `json:"reason,omitempty"`
}

// List handles GET /v1/rides
func (h *RideHandler) List(c *gin.Context) {
	groups, err := h.rideService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, ListRidesResponse{
		Upcoming:  toRideResponses(groups.Upcoming),
		Active:    toRideResponses(groups.Active),
		Completed: toRideResponses(groups.Completed),
	})
}

// Get handles GET /v1/rides/:id
func (h *RideHandler) Get(c *gin.Context) {
	ride, err := h.rideService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toRideResponse(ride))
}

// Accept handles POST /v1/rides/:id/accept
func (h *RideHandler) Accept(c *gin.Context) {
	ride, err := h.rideService.Accept(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toRideResponse(ride))
}

// Board handles POST /v1/rides/:id/board
func (h *RideHandler) Board(c *gin.Context) {
	ride, err := h.rideService.Board(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toRideResponse(ride))
}

// Complete handles POST /v1/rides/:id/complete
func (h *RideHandler) Complete(c *gin.Context) {
	ride, err := h.rideService.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toRideResponse(ride))
}

// Cancel handles POST /v1/rides/:id/cancel
func (h *RideHandler) Cancel(c *gin.Context) {
	var req CancelRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ride, err := h.rideService.Cancel(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toRideResponse(ride))
}
