package domain

// RideMatch is a candidate provider surfaced during search. It is reference
// data only: selecting one and sending a request is what creates a Ride.
type RideMatch struct {
	ID              string
	DriverName      string
	Rating          float64
	IsVerified      bool
	VehicleType     VehicleType
	VehicleModel    string
	SeatsAvailable  int
	PricePerSeat    float64
	LeavingIn       string
	Tags            []string
	FromLandmark    string
	ToLandmark      string
	HelmetAvailable bool
}
