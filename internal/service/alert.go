package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"linq/internal/domain"
	"linq/internal/repository"
)

// AlertService maintains the inbox: ride alerts appended by lifecycle
// transitions plus the system and safety notices.
type AlertService struct {
	alertRepo repository.AlertRepository
}

// NewAlertService creates a new AlertService.
func NewAlertService(alertRepo repository.AlertRepository) *AlertService {
	return &AlertService{alertRepo: alertRepo}
}

// List returns alerts newest first, optionally filtered by category.
func (s *AlertService) List(ctx context.Context, category domain.AlertCategory) ([]*domain.Alert, error) {
	alerts, err := s.alertRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return alerts, nil
	}
	filtered := make([]*domain.Alert, 0, len(alerts))
	for _, a := range alerts {
		if a.Category == category {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// UnreadCount returns the number of unread alerts.
func (s *AlertService) UnreadCount(ctx context.Context) (int, error) {
	alerts, err := s.alertRepo.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, a := range alerts {
		if !a.IsRead {
			count++
		}
	}
	return count, nil
}

// MarkRead marks a single alert as read. Already-read alerts stay read.
func (s *AlertService) MarkRead(ctx context.Context, alertID string) (*domain.Alert, error) {
	if alertID == "" {
		return nil, repository.ErrNotFound
	}
	alert, err := s.alertRepo.GetByID(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if alert.IsRead {
		return alert, nil
	}
	alert.IsRead = true
	if err := s.alertRepo.Update(ctx, alert); err != nil {
		return nil, err
	}
	return alert, nil
}

// MarkAllRead marks every alert as read.
func (s *AlertService) MarkAllRead(ctx context.Context) error {
	alerts, err := s.alertRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, a := range alerts {
		if a.IsRead {
			continue
		}
		a.IsRead = true
		if err := s.alertRepo.Update(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

// PublishRideAlert appends a ride alert for a lifecycle event.
func (s *AlertService) PublishRideAlert(ctx context.Context, ride *domain.Ride, title, message string) error {
	alert := &domain.Alert{
		ID:         uuid.New().String(),
		Category:   domain.AlertCategoryRide,
		Severity:   domain.SeverityDefault,
		Title:      title,
		Message:    message,
		Timestamp:  "Just now",
		StatusTag:  string(ride.Status),
		ActionPath: "rides",
	}
	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return err
	}
	log.Printf("[ALERT] Category=%s, Title=%s, Ride=%s, Status=%s",
		alert.Category, alert.Title, ride.ID, ride.Status)
	return nil
}

// rideRoute renders the route line used in alert messages.
func rideRoute(ride *domain.Ride) string {
	return fmt.Sprintf("%s → %s", ride.From, ride.To)
}
