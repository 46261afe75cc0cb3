package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"linq/internal/domain"
	"linq/internal/service"
)

// AlertHandler handles HTTP requests for the inbox.
type AlertHandler struct {
	alertService *service.AlertService
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(alertService *service.AlertService) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

// AlertResponse is the HTTP representation of an inbox alert.
type AlertResponse struct {
	ID         string `json:"id"`
	Category   string `json:"category"`
	Severity   string `json:"severity"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
	StatusTag  string `json:"status_tag,omitempty"`
	ActionPath string `json:"action_path"`
	IsRead     bool   `json:"is_read"`
}

func toAlertResponse(a *domain.Alert) AlertResponse {
	return AlertResponse{
		ID:         a.ID,
		Category:   string(a.Category),
		Severity:   string(a.Severity),
		Title:      a.Title,
		Message:    a.Message,
		Timestamp:  a.Timestamp,
		StatusTag:  a.StatusTag,
		ActionPath: a.ActionPath,
		IsRead:     a.IsRead,
	}
}

// ListAlertsResponse is the HTTP response for the inbox.
type ListAlertsResponse struct {
	Alerts      []AlertResponse `json:"alerts"`
	UnreadCount int             `json:"unread_count"`
}

// List handles GET /v1/alerts?category=ride|safety|system
func (h *AlertHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	category := domain.AlertCategory(strings.ToUpper(c.Query("category")))

	alerts, err := h.alertService.List(ctx, category)
	if err != nil {
		respondError(c, err)
		return
	}
	unread, err := h.alertService.UnreadCount(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	response := ListAlertsResponse{
		Alerts:      make([]AlertResponse, 0, len(alerts)),
		UnreadCount: unread,
	}
	for _, a := range alerts {
		response.Alerts = append(response.Alerts, toAlertResponse(a))
	}
	respondJSON(c, http.StatusOK, response)
}

// MarkRead handles POST /v1/alerts/:id/read
func (h *AlertHandler) MarkRead(c *gin.Context) {
	alert, err := h.alertService.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toAlertResponse(alert))
}

// MarkAllRead handles POST /v1/alerts/read-all
func (h *AlertHandler) MarkAllRead(c *gin.Context) {
	if err := h.alertService.MarkAllRead(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
