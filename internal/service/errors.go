package service

import "errors"

var (
	// ErrInvalidRideID is returned when ride ID is empty.
	ErrInvalidRideID = errors.New("invalid ride id")

	// ErrInvalidTransition is returned when a ride status change is not part
	// of the lifecycle.
	ErrInvalidTransition = errors.New("ride transition not allowed")

	// ErrRideNotCancellable is returned when cancelling a ride that already
	// started or finished.
	ErrRideNotCancellable = errors.New("ride cannot be cancelled in current state")

	// ErrInvalidThreadID is returned when thread ID is empty.
	ErrInvalidThreadID = errors.New("invalid thread id")

	// ErrThreadLocked is returned when sending on a closed conversation.
	ErrThreadLocked = errors.New("thread is locked")

	// ErrEmptyMessage is returned when message text is empty or whitespace.
	ErrEmptyMessage = errors.New("message text is empty")

	// ErrInvalidFlowID is returned when flow ID is empty.
	ErrInvalidFlowID = errors.New("invalid flow id")

	// ErrFlowStateConflict is returned when an operation does not apply to
	// the flow's current step.
	ErrFlowStateConflict = errors.New("operation not allowed in current flow state")

	// ErrMissingDestination is returned when submitting a search without a
	// destination.
	ErrMissingDestination = errors.New("destination is required")

	// ErrMissingTravelDate is returned when a long-distance search has no
	// travel date.
	ErrMissingTravelDate = errors.New("travel date is required")

	// ErrVehicleNotAllowed is returned when the vehicle is not available for
	// the selected mode.
	ErrVehicleNotAllowed = errors.New("vehicle not available for this mode")

	// ErrInvalidMatchID is returned when match ID is empty.
	ErrInvalidMatchID = errors.New("invalid match id")

	// ErrInvalidWalletItemID is returned when wallet item ID is empty.
	ErrInvalidWalletItemID = errors.New("invalid wallet item id")

	// ErrInvalidPhone is returned when the phone number is too short.
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrInvalidOTP is returned when the verification code is not 4 digits.
	ErrInvalidOTP = errors.New("invalid verification code")

	// ErrInvalidRole is returned when the role is not a known value.
	ErrInvalidRole = errors.New("invalid role")

	// ErrProviderDetailsMissing is returned when switching to a provider role
	// without vehicle details on file.
	ErrProviderDetailsMissing = errors.New("provider details required")

	// ErrHelmetNotApplicable is returned when setting helmet availability on
	// a non-bike vehicle.
	ErrHelmetNotApplicable = errors.New("helmet option applies to bikes only")

	// ErrLuggageNotApplicable is returned when setting luggage allowance on a
	// bike.
	ErrLuggageNotApplicable = errors.New("luggage option applies to autos and cars only")
)
