package domain

import "time"

// RideStatus represents the current status of a ride.
type RideStatus string

const (
	RideStatusRequested  RideStatus = "REQUESTED"
	RideStatusConfirmed  RideStatus = "CONFIRMED"
	RideStatusInProgress RideStatus = "IN_PROGRESS"
	RideStatusCompleted  RideStatus = "COMPLETED"
	RideStatusCancelled  RideStatus = "CANCELLED"
)

// IsTerminal reports whether no further status transition is allowed.
func (s RideStatus) IsTerminal() bool {
	return s == RideStatusCompleted || s == RideStatusCancelled
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Transitions are forward-only: Requested → Confirmed → InProgress →
// Completed, with Cancelled reachable from Requested or Confirmed. Ending a
// live ride uses Completed, never Cancelled.
func (s RideStatus) CanTransitionTo(next RideStatus) bool {
	switch s {
	case RideStatusRequested:
		return next == RideStatusConfirmed || next == RideStatusCancelled
	case RideStatusConfirmed:
		return next == RideStatusInProgress || next == RideStatusCancelled
	case RideStatusInProgress:
		return next == RideStatusCompleted
	case RideStatusCompleted, RideStatusCancelled:
		return false
	}
	return false
}

// RideMode represents how a ride is scheduled.
type RideMode string

const (
	RideModeInstant      RideMode = "INSTANT"
	RideModeDaily        RideMode = "DAILY"
	RideModeLongDistance RideMode = "LONG_DISTANCE"
)

// VehicleType represents the vehicle a ride is taken on.
type VehicleType string

const (
	VehicleBike VehicleType = "BIKE"
	VehicleAuto VehicleType = "AUTO"
	VehicleCar  VehicleType = "CAR"
)

// RideCategory is the list bucket a ride falls into, derived from status.
type RideCategory string

const (
	CategoryUpcoming  RideCategory = "UPCOMING"
	CategoryActive    RideCategory = "ACTIVE"
	CategoryCompleted RideCategory = "COMPLETED"
)

// CategoryOf derives the list bucket for a ride status. Completed and
// Cancelled rides share the history bucket.
func CategoryOf(s RideStatus) RideCategory {
	switch s {
	case RideStatusRequested, RideStatusConfirmed:
		return CategoryUpcoming
	case RideStatusInProgress:
		return CategoryActive
	case RideStatusCompleted, RideStatusCancelled:
		return CategoryCompleted
	}
	return CategoryUpcoming
}

// Ride represents one trip instance, shared or sought between a rider and a
// provider. Created when a request is sent; retained for history after
// completion or cancellation, never deleted.
type Ride struct {
	ID             string
	RiderID        string
	Mode           RideMode
	VehicleType    VehicleType
	From           string
	To             string
	Date           string
	Time           string
	Seats          int
	Price          float64
	ProviderName   string
	ProviderRating float64
	Status         RideStatus
	CreatedAt      time.Time
	CancelledAt    time.Time
	CancelReason   string
}
