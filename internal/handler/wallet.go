package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"linq/internal/domain"
	"linq/internal/service"
)

// WalletHandler handles HTTP requests for contribution records.
type WalletHandler struct {
	walletService *service.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletService *service.WalletService) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// WalletItemResponse is the HTTP representation of a contribution record.
type WalletItemResponse struct {
	ID              string  `json:"id"`
	RideID          string  `json:"ride_id"`
	Date            string  `json:"date"`
	OtherUserName   string  `json:"other_user_name"`
	Role            string  `json:"role"`
	Amount          float64 `json:"amount"`
	VehicleType     string  `json:"vehicle_type"`
	Type            string  `json:"type"`
	Status          string  `json:"status"`
	RideDescription string  `json:"ride_description"`
}

func toWalletItemResponse(item *domain.WalletItem) WalletItemResponse {
	return WalletItemResponse{
		ID:              item.ID,
		RideID:          item.RideID,
		Date:            item.Date,
		OtherUserName:   item.OtherUserName,
		Role:            string(item.Role),
		Amount:          item.Amount,
		VehicleType:     string(item.VehicleType),
		Type:            string(item.Type),
		Status:          string(item.Status),
		RideDescription: item.RideDescription,
	}
}

func toWalletItemResponses(items []*domain.WalletItem) []WalletItemResponse {
	responses := make([]WalletItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toWalletItemResponse(item))
	}
	return responses
}

// SummaryResponse is the HTTP representation of the wallet summary.
type SummaryResponse struct {
	PendingToPay     float64 `json:"pending_to_pay"`
	PendingToReceive float64 `json:"pending_to_receive"`
	ClearedTotal     float64 `json:"cleared_total"`
	ActiveCount      int     `json:"active_count"`
}

// WalletResponse is the HTTP response for the wallet view.
type WalletResponse struct {
	Summary SummaryResponse      `json:"summary"`
	Active  []WalletItemResponse `json:"active"`
	History []WalletItemResponse `json:"history"`
}

// Get handles GET /v1/wallet
func (h *WalletHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	summary, err := h.walletService.Summarize(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	active, err := h.walletService.Active(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	history, err := h.walletService.History(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, WalletResponse{
		Summary: SummaryResponse{
			PendingToPay:     summary.PendingToPay,
			PendingToReceive: summary.PendingToReceive,
			ClearedTotal:     summary.ClearedTotal,
			ActiveCount:      summary.ActiveCount,
		},
		Active:  toWalletItemResponses(active),
		History: toWalletItemResponses(history),
	})
}

// MarkSettled handles POST /v1/wallet/:id/settle
func (h *WalletHandler) MarkSettled(c *gin.Context) {
	item, err := h.walletService.MarkSettled(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toWalletItemResponse(item))
}
