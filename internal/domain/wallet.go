package domain

// ContributionType classifies an informal cost-split record.
type ContributionType string

const (
	ContributionFuelShare ContributionType = "FUEL_SHARE"
	ContributionVoluntary ContributionType = "VOLUNTARY"
	ContributionFree      ContributionType = "FREE"
)

// ContributionStatus tracks acknowledgment of a contribution. Resolved is
// terminal; no transition leaves it.
type ContributionStatus string

const (
	ContributionSuggested  ContributionStatus = "SUGGESTED"
	ContributionPending    ContributionStatus = "PENDING"
	ContributionClarifying ContributionStatus = "CLARIFYING"
	ContributionResolved   ContributionStatus = "RESOLVED"
)

// WalletRole says which side of a contribution the account owner is on.
type WalletRole string

const (
	WalletRolePayer    WalletRole = "PAYER"
	WalletRoleReceiver WalletRole = "RECEIVER"
)

// WalletItem is an informal cost-contribution acknowledgment tied to a ride.
// No money moves through the system; the item only records whether the
// parties consider the contribution settled.
type WalletItem struct {
	ID              string
	RideID          string
	Date            string
	OtherUserID     string
	OtherUserName   string
	Role            WalletRole
	Amount          float64
	VehicleType     VehicleType
	Type            ContributionType
	Status          ContributionStatus
	RideDescription string
}
