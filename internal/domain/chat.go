package domain

// LocalSenderID marks messages authored by the account owner.
const LocalSenderID = "me"

// Message is one chat entry. Ordering is append-only insertion order; system
// notices are flagged but follow the same ordering rule.
type Message struct {
	ID        string
	SenderID  string
	Text      string
	Timestamp string
	IsSystem  bool
}

// ChatThread is the conversation tied 1:1 to a ride. RideStatus mirrors the
// owning ride and is updated on every lifecycle transition.
type ChatThread struct {
	ID              string
	RideID          string
	OtherUserID     string
	OtherUserName   string
	RideContext     string
	VehicleType     VehicleType
	RideStatus      RideStatus
	LastMessage     string
	LastMessageTime string
	UnreadCount     int
	Messages        []Message
}

// IsLocked derives the read-only state from the mirrored ride status. Locked
// threads keep their history visible but accept no further messages.
func (t *ChatThread) IsLocked() bool {
	return t.RideStatus.IsTerminal()
}
