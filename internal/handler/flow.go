package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"linq/internal/domain"
	"linq/internal/service"
)

// FlowHandler handles HTTP requests for search/request flows.
type FlowHandler struct {
	flowService *service.FlowService
}

// NewFlowHandler creates a new FlowHandler.
func NewFlowHandler(flowService *service.FlowService) *FlowHandler {
	return &FlowHandler{flowService: flowService}
}

// SearchStateResponse is the HTTP representation of a flow's search form.
type SearchStateResponse struct {
	From        string   `json:"from"`
	To          string   `json:"to"`
	Mode        string   `json:"mode"`
	VehicleType string   `json:"vehicle_type"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Days        []string `json:"days,omitempty"`
	Seats       int      `json:"seats"`
	WomenOnly   bool     `json:"women_only"`
}

// FlowResponse is the HTTP representation of a flow.
type FlowResponse struct {
	ID              string              `json:"id"`
	State           string              `json:"state"`
	Search          SearchStateResponse `json:"search"`
	SelectedMatchID string              `json:"selected_match_id,omitempty"`
}

func toFlowResponse(flow *service.Flow) FlowResponse {
	return FlowResponse{
		ID:              flow.ID,
		State:           string(flow.State),
		SelectedMatchID: flow.SelectedMatchID,
		Search: SearchStateResponse{
			From:        flow.Search.From,
			To:          flow.Search.To,
			Mode:        string(flow.Search.Mode),
			VehicleType: string(flow.Search.VehicleType),
			Date:        flow.Search.Date,
			Time:        flow.Search.Time,
			Days:        flow.Search.Days,
			Seats:       flow.Search.Seats,
			WomenOnly:   flow.Search.WomenOnly,
		},
	}
}

// MatchResponse is the HTTP representation of a search match.
type MatchResponse struct {
	ID              string   `json:"id"`
	DriverName      string   `json:"driver_name"`
	Rating          float64  `json:"rating"`
	IsVerified      bool     `json:"is_verified"`
	VehicleType     string   `json:"vehicle_type"`
	VehicleModel    string   `json:"vehicle_model"`
	SeatsAvailable  int      `json:"seats_available"`
	PricePerSeat    float64  `json:"price_per_seat"`
	LeavingIn       string   `json:"leaving_in"`
	Tags            []string `json:"tags,omitempty"`
	FromLandmark    string   `json:"from_landmark"`
	ToLandmark      string   `json:"to_landmark"`
	HelmetAvailable bool     `json:"helmet_available"`
}

func toMatchResponse(match *domain.RideMatch) MatchResponse {
	return MatchResponse{
		ID:              match.ID,
		DriverName:      match.DriverName,
		Rating:          match.Rating,
		IsVerified:      match.IsVerified,
		VehicleType:     string(match.VehicleType),
		VehicleModel:    match.VehicleModel,
		SeatsAvailable:  match.SeatsAvailable,
		PricePerSeat:    match.PricePerSeat,
		LeavingIn:       match.LeavingIn,
		Tags:            match.Tags,
		FromLandmark:    match.FromLandmark,
		ToLandmark:      match.ToLandmark,
		HelmetAvailable: match.HelmetAvailable,
	}
}

// StartFlowRequest is the HTTP request body for opening a flow.
type StartFlowRequest struct {
	Destination string `json:"destination,omitempty"`
}

// UpdateRouteRequest is the HTTP request body for setting the route.
type UpdateRouteRequest struct {
	From string `json:"from,omitempty"`
	To   string `json:"to"`
}

// SetModeRequest is the HTTP request body for switching modes.
type SetModeRequest struct {
	Mode string `json:"mode"`
}

// SetVehicleRequest is the HTTP request body for picking a vehicle.
type SetVehicleRequest struct {
	VehicleType string `json:"vehicle_type"`
}

// SetScheduleRequest is the HTTP request body for the travel date and time.
type SetScheduleRequest struct {
	Date string `json:"date,omitempty"`
	Time string `json:"time,omitempty"`
}

// SetWomenOnlyRequest is the HTTP request body for the women-only filter.
type SetWomenOnlyRequest struct {
	Enabled bool `json:"enabled"`
}

// SelectMatchRequest is the HTTP request body for choosing a match.
type SelectMatchRequest struct {
	MatchID string `json:"match_id"`
}

// ResultsResponse is the HTTP response for the results step.
type ResultsResponse struct {
	Flow    FlowResponse    `json:"flow"`
	Matches []MatchResponse `json:"matches"`
}

// Start handles POST /v1/flows
func (h *FlowHandler) Start(c *gin.Context) {
	var req StartFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	flow := h.flowService.Start(c.Request.Context(), currentUserID(c), req.Destination)
	respondJSON(c, http.StatusCreated, toFlowResponse(flow))
}

// Get handles GET /v1/flows/:id
func (h *FlowHandler) Get(c *gin.Context) {
	flow, err := h.flowService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toFlowResponse(flow))
}

// UpdateRoute handles PUT /v1/flows/:id/route
func (h *FlowHandler) UpdateRoute(c *gin.Context) {
	var req UpdateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	flow, err := h.flowService.UpdateRoute(c.Request.Context(), c.Param("id"), req.From, req.To)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toFlowResponse(flow))
}

// SetMode handles PUT /v1/flows/:id/mode
func (h *FlowHandler) SetMode(c *gin.Context) {
	var req SetModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	flow, err := h.flowService.SetMode(c.Request.Context(), c.Param("id"), domain.RideMode(req.Mode))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toFlowResponse(flow))
}

// SetVehicle handles PUT /v1/flows/:id/vehicle
func (h *FlowHandler) SetVehicle(c *gin.Context) {
	var req SetVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	flow, err := h.flowService.SetVehicle(c.Request.Context(), c.Param("id"), domain.VehicleType(req.VehicleType))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toFlowResponse(flow))
}

// SetSchedule handles PUT /v1/flows/:id/schedule
func (h *FlowHandler) SetSchedule(c *gin.Context) {
	var req SetScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	flow, err := h.flowService.SetSchedule(c.Request.Context(), c.Param("id"), req.Date, req.Time)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toFlowResponse(flow))
}

// SetWomenOnly handles PUT /v1/flows/:id/women-only
func (h *FlowHandler) SetWomenOnly(c *gin.Context) {
	var req SetWomenOnlyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	flow, err := h.flowService.SetWomenOnly(c.Request.Context(), c.Param("id"), req.Enabled)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toFlowResponse(flow))
}

// IncrementSeats handles POST /v1/flows/:id/seats/increment
func (h *FlowHandler) IncrementSeats(c *gin.Context) {
	flow, err := h.flowService.IncrementSeats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toFlowResponse(flow))
}

// DecrementSeats handles POST /v1/flows/:id/seats/decrement
func (h *FlowHandler) DecrementSeats(c *gin.Context) {
	flow, err := h.flowService.DecrementSeats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toFlowResponse(flow))
}

// Submit handles POST /v1/flows/:id/submit
func (h *FlowHandler) Submit(c *gin.Context) {
	flow, err := h.flowService.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toFlowResponse(flow))
}

// ConfirmSearch handles POST /v1/flows/:id/results
func (h *FlowHandler) ConfirmSearch(c *gin.Context) {
	flow, matches, err := h.flowService.ConfirmSearch(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := ResultsResponse{Flow: toFlowResponse(flow)}
	for _, m := range matches {
		response.Matches = append(response.Matches, toMatchResponse(m))
	}
	respondJSON(c, http.StatusOK, response)
}

// SelectMatch handles POST /v1/flows/:id/select
func (h *FlowHandler) SelectMatch(c *gin.Context) {
	var req SelectMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	flow, match, err := h.flowService.SelectMatch(c.Request.Context(), c.Param("id"), req.MatchID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{
		"flow":  toFlowResponse(flow),
		"match": toMatchResponse(match),
	})
}

// SendRequest handles POST /v1/flows/:id/request
func (h *FlowHandler) SendRequest(c *gin.Context) {
	ride, err := h.flowService.SendRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, toRideResponse(ride))
}

// Back handles POST /v1/flows/:id/back
func (h *FlowHandler) Back(c *gin.Context) {
	flow, err := h.flowService.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toFlowResponse(flow))
}

// Abandon handles DELETE /v1/flows/:id
func (h *FlowHandler) Abandon(c *gin.Context) {
	if err := h.flowService.Abandon(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
