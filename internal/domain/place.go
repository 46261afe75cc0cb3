package domain

// PlaceCategory filters the places-and-events catalog.
type PlaceCategory string

const (
	PlaceCafe     PlaceCategory = "CAFE"
	PlaceEvent    PlaceCategory = "EVENT"
	PlaceWork     PlaceCategory = "WORK"
	PlaceWeekend  PlaceCategory = "WEEKEND"
	PlaceOutdoors PlaceCategory = "OUTDOORS"
)

// Place is a static catalog entry riders can plan a shared ride to.
type Place struct {
	ID                 string
	Category           PlaceCategory
	Title              string
	Description        string
	Area               string
	Tags               []string
	RecommendedVehicle VehicleType
}
