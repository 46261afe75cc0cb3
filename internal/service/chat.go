package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"linq/internal/domain"
	"linq/internal/repository"
)

// PresetMessages is the quick-reply list served alongside chat threads.
var PresetMessages = []string{
	"Where should we meet?",
	"I am here.",
	"Running 5 mins late.",
	"How many seats free?",
	"Can I bring a bag?",
	"Where is the drop-off?",
}

// EventBroadcaster pushes chat events to connected clients.
// This interface allows for testing with mock implementations.
type EventBroadcaster interface {
	BroadcastJSON(v interface{}) error
}

// ChatEvent is the payload streamed over the chat websocket.
type ChatEvent struct {
	Type     string          `json:"type"`
	ThreadID string          `json:"thread_id"`
	Message  *domain.Message `json:"message,omitempty"`
	Status   string          `json:"status,omitempty"`
	Locked   bool            `json:"locked"`
}

// ThreadGroups is the inbox layout: conversations bucketed by the mirrored
// ride status.
type ThreadGroups struct {
	Active  []*domain.ChatThread
	Pending []*domain.ChatThread
	Closed  []*domain.ChatThread
}

// ChatService handles conversations tied to rides. Threads lock when the
// owning ride reaches a terminal status; locked threads keep their history
// readable but reject new messages.
type ChatService struct {
	chatRepo    repository.ChatRepository
	broadcaster EventBroadcaster
}

// NewChatService creates a new ChatService. The broadcaster may be nil when
// no realtime stream is attached.
func NewChatService(chatRepo repository.ChatRepository, broadcaster EventBroadcaster) *ChatService {
	return &ChatService{
		chatRepo:    chatRepo,
		broadcaster: broadcaster,
	}
}

// List groups all threads: active (Confirmed, InProgress), pending
// (Requested), closed (Completed, Cancelled).
func (s *ChatService) List(ctx context.Context) (*ThreadGroups, error) {
	threads, err := s.chatRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	groups := &ThreadGroups{}
	for _, t := range threads {
		switch t.RideStatus {
		case domain.RideStatusConfirmed, domain.RideStatusInProgress:
			groups.Active = append(groups.Active, t)
		case domain.RideStatusRequested:
			groups.Pending = append(groups.Pending, t)
		default:
			groups.Closed = append(groups.Closed, t)
		}
	}
	return groups, nil
}

// Get retrieves a single thread with its full message history.
func (s *ChatService) Get(ctx context.Context, threadID string) (*domain.ChatThread, error) {
	if threadID == "" {
		return nil, ErrInvalidThreadID
	}
	return s.chatRepo.GetByID(ctx, threadID)
}

// SendMessage appends a message from the local user. Empty or whitespace
// text and locked threads are rejected; neither changes the message history.
func (s *ChatService) SendMessage(ctx context.Context, threadID, text string) (*domain.Message, error) {
	if threadID == "" {
		return nil, ErrInvalidThreadID
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyMessage
	}

	thread, err := s.chatRepo.GetByID(ctx, threadID)
	if err != nil {
		return nil, err
	}

	if thread.IsLocked() {
		return nil, ErrThreadLocked
	}

	message := domain.Message{
		ID:        uuid.New().String(),
		SenderID:  domain.LocalSenderID,
		Text:      trimmed,
		Timestamp: time.Now().Format("03:04 PM"),
	}
	thread.Messages = append(thread.Messages, message)
	thread.LastMessage = message.Text
	thread.LastMessageTime = "now"

	if err := s.chatRepo.Update(ctx, thread); err != nil {
		return nil, err
	}

	s.broadcast(ChatEvent{
		Type:     "message",
		ThreadID: thread.ID,
		Message:  &message,
	})
	return &message, nil
}

// MarkRead clears the unread counter of a thread.
func (s *ChatService) MarkRead(ctx context.Context, threadID string) error {
	if threadID == "" {
		return ErrInvalidThreadID
	}
	thread, err := s.chatRepo.GetByID(ctx, threadID)
	if err != nil {
		return err
	}
	if thread.UnreadCount == 0 {
		return nil
	}
	thread.UnreadCount = 0
	return s.chatRepo.Update(ctx, thread)
}

// CreateForRide opens the conversation tied to a new ride request.
func (s *ChatService) CreateForRide(ctx context.Context, ride *domain.Ride) (*domain.ChatThread, error) {
	thread := &domain.ChatThread{
		ID:            uuid.New().String(),
		RideID:        ride.ID,
		OtherUserName: ride.ProviderName,
		RideContext:   rideRoute(ride),
		VehicleType:   ride.VehicleType,
		RideStatus:    ride.Status,
	}
	if err := s.chatRepo.Create(ctx, thread); err != nil {
		return nil, err
	}
	return thread, nil
}

// SyncRideStatus mirrors a ride status change onto its thread. The lock
// state follows from the new status. Rides without a thread are skipped.
func (s *ChatService) SyncRideStatus(ctx context.Context, rideID string, status domain.RideStatus) error {
	thread, err := s.chatRepo.GetByRideID(ctx, rideID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil
		}
		return err
	}

	thread.RideStatus = status
	if err := s.chatRepo.Update(ctx, thread); err != nil {
		return err
	}

	s.broadcast(ChatEvent{
		Type:     "thread_status",
		ThreadID: thread.ID,
		Status:   string(status),
		Locked:   thread.IsLocked(),
	})
	return nil
}

func (s *ChatService) broadcast(event ChatEvent) {
	if s.broadcaster == nil {
		return
	}
	_ = s.broadcaster.BroadcastJSON(event)
}
