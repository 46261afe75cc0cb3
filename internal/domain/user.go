package domain

// UserRole says how the account uses the platform.
type UserRole string

const (
	RoleRider    UserRole = "RIDER"
	RoleProvider UserRole = "PROVIDER"
	RoleBoth     UserRole = "BOTH"
)

// IsProvider reports whether the role includes offering rides.
func (r UserRole) IsProvider() bool {
	return r == RoleProvider || r == RoleBoth
}

// DocumentStatus is the review state of a submitted verification document.
type DocumentStatus string

const (
	DocumentVerified DocumentStatus = "VERIFIED"
	DocumentPending  DocumentStatus = "PENDING"
	DocumentRejected DocumentStatus = "REJECTED"
	DocumentNone     DocumentStatus = "NONE"
)

// VerificationStatus groups the trust-center checks for an account.
type VerificationStatus struct {
	Phone            bool
	GovtID           DocumentStatus
	License          DocumentStatus
	VehicleRC        DocumentStatus
	Photo            bool
	EmergencyContact bool
}

// UserPreferences holds the rider-side matching preferences.
type UserPreferences struct {
	Gender  string // "All" or "Women Only"
	Pickup  string // "Exact" or "Flexible"
	Time    string // "Strict" or "Flexible"
	Music   bool
	Smoking bool
	Chat    string // "Quiet", "Neutral" or "Chatty"
}

// ProviderDetails describes the vehicle an account offers seats on. Helmet
// applies to bikes only; luggage and AC to autos and cars.
type ProviderDetails struct {
	VehicleType     VehicleType
	VehicleModel    string
	PlateNumber     string
	TotalSeats      int
	AvailableSeats  int
	PricingPolicy   string // "Split", "Free" or "Discuss"
	HelmetAvailable bool
	LuggageAllowed  bool
	AC              bool
}

// EmergencyContact is the safety contact on file for an account.
type EmergencyContact struct {
	Name     string
	Phone    string
	Relation string
}

// User represents the local account. ProviderDetails is present only when
// the role includes Provider.
type User struct {
	ID               string
	Name             string
	DisplayName      string
	Phone            string
	Role             UserRole
	IsVerified       bool
	Gender           string
	AgeRange         string
	City             string
	Bio              string
	Verification     VerificationStatus
	Preferences      UserPreferences
	ProviderDetails  *ProviderDetails
	EmergencyContact *EmergencyContact
}
