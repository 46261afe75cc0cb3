package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"linq/internal/domain"
	"linq/internal/repository"
)

// FlowState is the step a search/request flow is in.
type FlowState string

const (
	FlowStateSearch    FlowState = "SEARCH"
	FlowStatePreview   FlowState = "PREVIEW"
	FlowStateResults   FlowState = "RESULTS"
	FlowStateDetails   FlowState = "DETAILS"
	FlowStateConfirmed FlowState = "CONFIRMED"
)

// SearchState holds the editable search form of a flow.
type SearchState struct {
	RiderID     string
	From        string
	To          string
	Mode        domain.RideMode
	VehicleType domain.VehicleType
	Date        string
	Time        string
	Days        []string
	Seats       int
	WomenOnly   bool
}

// Flow is one transient search/request session. Flows live in memory only
// and are discarded once a request is sent or the flow is abandoned.
type Flow struct {
	ID              string
	State           FlowState
	Search          SearchState
	SelectedMatchID string
	RideID          string
	CreatedAt       time.Time
}

var weekdayPattern = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}

const (
	minSeats = 1
	maxSeats = 4
)

// FlowService drives the search/request flow: Search → Preview → Results →
// Details → Confirmed, with backward steps always allowed before confirm.
type FlowService struct {
	mu    sync.Mutex
	flows map[string]*Flow

	matchRepo   repository.MatchRepository
	rideService *RideService
}

// NewFlowService creates a new FlowService.
func NewFlowService(matchRepo repository.MatchRepository, rideService *RideService) *FlowService {
	return &FlowService{
		flows:       make(map[string]*Flow),
		matchRepo:   matchRepo,
		rideService: rideService,
	}
}

// Start opens a new flow for a rider. A prefilled destination (from global
// search or the places catalog) skips the form and starts at Preview.
func (s *FlowService) Start(ctx context.Context, riderID, prefilledDestination string) *Flow {
	flow := &Flow{
		ID:    uuid.New().String(),
		State: FlowStateSearch,
		Search: SearchState{
			RiderID:     riderID,
			From:        "Miyapur",
			Mode:        domain.RideModeInstant,
			VehicleType: domain.VehicleCar,
			Date:        "Today",
			Time:        "Now",
			Seats:       minSeats,
		},
		CreatedAt: time.Now(),
	}
	if prefilledDestination != "" {
		flow.Search.To = prefilledDestination
		flow.State = FlowStatePreview
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.flows[flow.ID] = flow
	return copyFlow(flow)
}

// Get retrieves a flow by ID.
func (s *FlowService) Get(ctx context.Context, flowID string) (*Flow, error) {
	if flowID == "" {
		return nil, ErrInvalidFlowID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	flow, ok := s.flows[flowID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyFlow(flow), nil
}

// UpdateRoute sets the origin and destination. The form is editable only in
// the Search step.
func (s *FlowService) UpdateRoute(ctx context.Context, flowID, from, to string) (*Flow, error) {
	return s.edit(flowID, func(flow *Flow) error {
		if from != "" {
			flow.Search.From = from
		}
		flow.Search.To = to
		return nil
	})
}

// SetMode switches the scheduling mode and applies the mode's field policy:
// Instant travels now, Daily defaults to a 09:00 weekday pattern, and Long
// Distance forces a car. Switching away from Long Distance keeps the car
// until the vehicle is changed again.
func (s *FlowService) SetMode(ctx context.Context, flowID string, mode domain.RideMode) (*Flow, error) {
	return s.edit(flowID, func(flow *Flow) error {
		switch mode {
		case domain.RideModeInstant:
			flow.Search.Mode = mode
			flow.Search.Date = "Today"
			flow.Search.Time = "Now"
			flow.Search.Days = nil
		case domain.RideModeDaily:
			flow.Search.Mode = mode
			flow.Search.Date = ""
			flow.Search.Time = "09:00"
			flow.Search.Days = append([]string(nil), weekdayPattern...)
		case domain.RideModeLongDistance:
			flow.Search.Mode = mode
			flow.Search.VehicleType = domain.VehicleCar
			flow.Search.Date = ""
			flow.Search.Days = nil
		default:
			return ErrFlowStateConflict
		}
		return nil
	})
}

// SetVehicle picks the vehicle. Long-distance flows accept cars only.
func (s *FlowService) SetVehicle(ctx context.Context, flowID string, vehicle domain.VehicleType) (*Flow, error) {
	return s.edit(flowID, func(flow *Flow) error {
		switch vehicle {
		case domain.VehicleBike, domain.VehicleAuto, domain.VehicleCar:
		default:
			return ErrVehicleNotAllowed
		}
		if flow.Search.Mode == domain.RideModeLongDistance && vehicle != domain.VehicleCar {
			return ErrVehicleNotAllowed
		}
		flow.Search.VehicleType = vehicle
		return nil
	})
}

// SetSchedule sets the travel date and time.
func (s *FlowService) SetSchedule(ctx context.Context, flowID, date, timeOfDay string) (*Flow, error) {
	return s.edit(flowID, func(flow *Flow) error {
		if date != "" {
			flow.Search.Date = date
		}
		if timeOfDay != "" {
			flow.Search.Time = timeOfDay
		}
		return nil
	})
}

// SetWomenOnly toggles the women-only match filter.
func (s *FlowService) SetWomenOnly(ctx context.Context, flowID string, womenOnly bool) (*Flow, error) {
	return s.edit(flowID, func(flow *Flow) error {
		flow.Search.WomenOnly = womenOnly
		return nil
	})
}

// IncrementSeats adds a seat, saturating at the upper bound.
func (s *FlowService) IncrementSeats(ctx context.Context, flowID string) (*Flow, error) {
	return s.edit(flowID, func(flow *Flow) error {
		if flow.Search.Seats < maxSeats {
			flow.Search.Seats++
		}
		return nil
	})
}

// DecrementSeats removes a seat, saturating at one.
func (s *FlowService) DecrementSeats(ctx context.Context, flowID string) (*Flow, error) {
	return s.edit(flowID, func(flow *Flow) error {
		if flow.Search.Seats > minSeats {
			flow.Search.Seats--
		}
		return nil
	})
}

// Submit moves Search to Preview. A destination is required; long-distance
// travel also needs a calendar date. A rejected submit leaves the flow in
// Search untouched.
func (s *FlowService) Submit(ctx context.Context, flowID string) (*Flow, error) {
	return s.withFlow(flowID, func(flow *Flow) error {
		if flow.State != FlowStateSearch {
			return ErrFlowStateConflict
		}
		if flow.Search.To == "" {
			return ErrMissingDestination
		}
		if flow.Search.Mode == domain.RideModeLongDistance && flow.Search.Date == "" {
			return ErrMissingTravelDate
		}
		flow.State = FlowStatePreview
		return nil
	})
}

// ConfirmSearch moves Preview to Results and returns the match catalog.
func (s *FlowService) ConfirmSearch(ctx context.Context, flowID string) (*Flow, []*domain.RideMatch, error) {
	flow, err := s.withFlow(flowID, func(flow *Flow) error {
		if flow.State != FlowStatePreview {
			return ErrFlowStateConflict
		}
		flow.State = FlowStateResults
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	matches, err := s.matchRepo.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	return flow, matches, nil
}

// SelectMatch moves Results to Details for an existing match.
func (s *FlowService) SelectMatch(ctx context.Context, flowID, matchID string) (*Flow, *domain.RideMatch, error) {
	if matchID == "" {
		return nil, nil, ErrInvalidMatchID
	}

	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, nil, err
	}

	flow, err := s.withFlow(flowID, func(flow *Flow) error {
		if flow.State != FlowStateResults {
			return ErrFlowStateConflict
		}
		flow.State = FlowStateDetails
		flow.SelectedMatchID = match.ID
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return flow, match, nil
}

// SendRequest confirms the flow: it creates the ride request from the
// selected match together with its conversation, then discards the flow.
func (s *FlowService) SendRequest(ctx context.Context, flowID string) (*domain.Ride, error) {
	flow, err := s.withFlow(flowID, func(flow *Flow) error {
		if flow.State != FlowStateDetails {
			return ErrFlowStateConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	match, err := s.matchRepo.GetByID(ctx, flow.SelectedMatchID)
	if err != nil {
		return nil, err
	}

	ride, err := s.rideService.CreateFromMatch(ctx, match, flow.Search)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.flows, flowID)
	s.mu.Unlock()
	return ride, nil
}

// Back steps the flow backward one screen, preserving the search form.
func (s *FlowService) Back(ctx context.Context, flowID string) (*Flow, error) {
	return s.withFlow(flowID, func(flow *Flow) error {
		switch flow.State {
		case FlowStatePreview:
			flow.State = FlowStateSearch
		case FlowStateResults:
			flow.State = FlowStatePreview
		case FlowStateDetails:
			flow.State = FlowStateResults
			flow.SelectedMatchID = ""
		default:
			return ErrFlowStateConflict
		}
		return nil
	})
}

// Abandon discards a flow.
func (s *FlowService) Abandon(ctx context.Context, flowID string) error {
	if flowID == "" {
		return ErrInvalidFlowID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.flows[flowID]; !ok {
		return repository.ErrNotFound
	}
	delete(s.flows, flowID)
	return nil
}

// edit applies a form mutation, allowed only in the Search step.
func (s *FlowService) edit(flowID string, fn func(*Flow) error) (*Flow, error) {
	return s.withFlow(flowID, func(flow *Flow) error {
		if flow.State != FlowStateSearch {
			return ErrFlowStateConflict
		}
		return fn(flow)
	})
}

// withFlow runs fn against the live flow under the lock and returns a copy.
// An error from fn leaves the flow unchanged.
func (s *FlowService) withFlow(flowID string, fn func(*Flow) error) (*Flow, error) {
	if flowID == "" {
		return nil, ErrInvalidFlowID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	flow, ok := s.flows[flowID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	candidate := copyFlow(flow)
	if err := fn(candidate); err != nil {
		return nil, err
	}
	s.flows[flowID] = candidate
	return copyFlow(candidate), nil
}

func copyFlow(flow *Flow) *Flow {
	c := *flow
	c.Search.Days = append([]string(nil), flow.Search.Days...)
	return &c
}
