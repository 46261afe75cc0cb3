package domain

// AlertCategory groups inbox alerts.
type AlertCategory string

const (
	AlertCategoryRide   AlertCategory = "RIDE"
	AlertCategorySafety AlertCategory = "SAFETY"
	AlertCategorySystem AlertCategory = "SYSTEM"
)

// AlertSeverity controls how prominently an alert is surfaced.
type AlertSeverity string

const (
	SeverityDefault  AlertSeverity = "DEFAULT"
	SeverityUrgent   AlertSeverity = "URGENT"
	SeverityCritical AlertSeverity = "CRITICAL"
)

// Alert is a notification record shown in the inbox. ActionPath is the tab
// identifier a client should deep-link to when the alert is opened.
type Alert struct {
	ID         string
	Category   AlertCategory
	Severity   AlertSeverity
	Title      string
	Message    string
	Timestamp  string
	StatusTag  string
	ActionPath string
	IsRead     bool
}
