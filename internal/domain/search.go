package domain

// SearchResultType tags entries returned by the global search.
type SearchResultType string

const (
	SearchResultLocation SearchResultType = "LOCATION"
	SearchResultRide     SearchResultType = "RIDE"
	SearchResultPerson   SearchResultType = "PERSON"
	SearchResultAction   SearchResultType = "ACTION"
	SearchResultRecent   SearchResultType = "RECENT"
)

// SearchResult is one global-search entry. RideID is set for ride-typed
// results so clients can deep-link into the ride's detail view.
type SearchResult struct {
	ID       string
	Type     SearchResultType
	Title    string
	Subtitle string
	RideID   string
}
