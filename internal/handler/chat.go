package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"linq/internal/domain"
	"linq/internal/service"
	"linq/internal/ws"
)

// ChatHandler handles HTTP requests for chat threads.
type ChatHandler struct {
	chatService *service.ChatService
	hub         *ws.Hub
}

// NewChatHandler creates a new ChatHandler. The hub may be nil when no
// websocket stream is exposed.
func NewChatHandler(chatService *service.ChatService, hub *ws.Hub) *ChatHandler {
	return &ChatHandler{chatService: chatService, hub: hub}
}

// MessageResponse is the HTTP representation of a chat message.
type MessageResponse struct {
	ID        string `json:"id"`
	SenderID  string `json:"sender_id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
	IsSystem  bool   `json:"is_system,omitempty"`
}

// ThreadResponse is the HTTP representation of a chat thread.
type ThreadResponse struct {
	ID              string            `json:"id"`
	RideID          string            `json:"ride_id"`
	OtherUserName   string            `json:"other_user_name"`
	RideContext     string            `json:"ride_context"`
	VehicleType     string            `json:"vehicle_type"`
	RideStatus      string            `json:"ride_status"`
	IsLocked        bool              `json:"is_locked"`
	LastMessage     string            `json:"last_message"`
	LastMessageTime string            `json:"last_message_time"`
	UnreadCount     int               `json:"unread_count"`
	Messages        []MessageResponse `json:"messages,omitempty"`
}

func toMessageResponse(m domain.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		SenderID:  m.SenderID,
		Text:      m.Text,
		Timestamp: m.Timestamp,
		IsSystem:  m.IsSystem,
	}
}

func toThreadResponse(t *domain.ChatThread, withMessages bool) ThreadResponse {
	response := ThreadResponse{
		ID:              t.ID,
		RideID:          t.RideID,
		OtherUserName:   t.OtherUserName,
		RideContext:     t.RideContext,
		VehicleType:     string(t.VehicleType),
		RideStatus:      string(t.RideStatus),
		IsLocked:        t.IsLocked(),
		LastMessage:     t.LastMessage,
		LastMessageTime: t.LastMessageTime,
		UnreadCount:     t.UnreadCount,
	}
	if withMessages {
		for _, m := range t.Messages {
			response.Messages = append(response.Messages, toMessageResponse(m))
		}
	}
	return response
}

func toThreadResponses(threads []*domain.ChatThread) []ThreadResponse {
	responses := make([]ThreadResponse, 0, len(threads))
	for _, t := range threads {
		responses = append(responses, toThreadResponse(t, false))
	}
	return responses
}

// ListThreadsResponse is the HTTP response for the grouped inbox.
type ListThreadsResponse struct {
	Active  []ThreadResponse `json:"active"`
	Pending []ThreadResponse `json:"pending"`
	Closed  []ThreadResponse `json:"closed"`
	Presets []string         `json:"presets"`
}

// SendMessageRequest is the HTTP request body for sending a message.
type SendMessageRequest struct {
	Text string `json:"text"`
}

// List handles GET /v1/chats
func (h *ChatHandler) List(c *gin.Context) {
	groups, err := h.chatService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, ListThreadsResponse{
		Active:  toThreadResponses(groups.Active),
		Pending: toThreadResponses(groups.Pending),
		Closed:  toThreadResponses(groups.Closed),
		Presets: service.PresetMessages,
	})
}

// Get handles GET /v1/chats/:id
func (h *ChatHandler) Get(c *gin.Context) {
	thread, err := h.chatService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toThreadResponse(thread, true))
}

// SendMessage handles POST /v1/chats/:id/messages
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	message, err := h.chatService.SendMessage(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, toMessageResponse(*message))
}

// MarkRead handles POST /v1/chats/:id/read
func (h *ChatHandler) MarkRead(c *gin.Context) {
	if err := h.chatService.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Events handles GET /v1/chats/events, upgrading to the websocket stream.
func (h *ChatHandler) Events(c *gin.Context) {
	if h.hub == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "event stream not available"})
		return
	}
	h.hub.Serve(c.Writer, c.Request, currentUserID(c))
}
