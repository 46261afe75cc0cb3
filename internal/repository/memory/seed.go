package memory

import (
	"context"

	"linq/internal/domain"
)

// Stores bundles every in-memory store backing the server.
type Stores struct {
	Rides   *RideStore
	Matches *MatchStore
	Chats   *ChatStore
	Wallet  *WalletStore
	Users   *UserStore
	Alerts  *AlertStore
	Places  *PlaceStore
}

// NewStores creates an empty store bundle.
func NewStores() *Stores {
	return &Stores{
		Rides:   NewRideStore(),
		Matches: NewMatchStore(),
		Chats:   NewChatStore(),
		Wallet:  NewWalletStore(),
		Users:   NewUserStore(),
		Alerts:  NewAlertStore(),
		Places:  NewPlaceStore(),
	}
}

// Seed loads the demo dataset: the local account, five rides across all
// modes and statuses, the match catalog, two chat threads, two wallet
// entries, two alerts and the places catalog.
func (s *Stores) Seed(ctx context.Context) error {
	for _, u := range seedUsers() {
		if err := s.Users.Create(ctx, u); err != nil {
			return err
		}
	}
	for _, r := range seedRides() {
		if err := s.Rides.Create(ctx, r); err != nil {
			return err
		}
	}
	for _, m := range seedMatches() {
		s.Matches.Add(m)
	}
	for _, t := range seedThreads() {
		if err := s.Chats.Create(ctx, t); err != nil {
			return err
		}
	}
	for _, w := range seedWalletItems() {
		if err := s.Wallet.Create(ctx, w); err != nil {
			return err
		}
	}
	for _, a := range seedAlerts() {
		if err := s.Alerts.Create(ctx, a); err != nil {
			return err
		}
	}
	for _, p := range seedPlaces() {
		s.Places.Add(p)
	}
	return nil
}

// LocalUserID is the account the demo dataset belongs to.
const LocalUserID = "u_sumanth"

func seedUsers() []*domain.User {
	return []*domain.User{
		{
			ID:          LocalUserID,
			Name:        "Sumanth",
			DisplayName: "Sumanth",
			Phone:       "+91 9*** *** 789",
			Role:        domain.RoleBoth,
			IsVerified:  true,
			Gender:      "Male",
			AgeRange:    "21",
			City:        "Hyderabad",
			Bio:         "Daily commuter from Miyapur to Hitech City. Flexible with bike or car.",
			Verification: domain.VerificationStatus{
				Phone:            true,
				GovtID:           domain.DocumentPending,
				License:          domain.DocumentNone,
				VehicleRC:        domain.DocumentNone,
				Photo:            true,
				EmergencyContact: true,
			},
			Preferences: domain.UserPreferences{
				Gender:  "All",
				Pickup:  "Flexible",
				Time:    "Strict",
				Music:   true,
				Smoking: false,
				Chat:    "Neutral",
			},
			ProviderDetails: &domain.ProviderDetails{
				VehicleType:     domain.VehicleBike,
				VehicleModel:    "Pulsar 150",
				PlateNumber:     "TS 07 ** 1234",
				TotalSeats:      1,
				AvailableSeats:  1,
				PricingPolicy:   "Split",
				HelmetAvailable: true,
				LuggageAllowed:  false,
			},
			EmergencyContact: &domain.EmergencyContact{
				Name:     "Karthik",
				Phone:    "+91 9XXXXXXXX1",
				Relation: "Friend",
			},
		},
	}
}

func seedRides() []*domain.Ride {
	return []*domain.Ride{
		{
			ID:             "r1",
			RiderID:        LocalUserID,
			Mode:           domain.RideModeDaily,
			VehicleType:    domain.VehicleBike,
			From:           "Miyapur Metro",
			To:             "Hitech City",
			Date:           "Today",
			Time:           "08:30 AM",
			Seats:          1,
			Price:          40,
			ProviderName:   "Aditi",
			ProviderRating: 4.8,
			Status:         domain.RideStatusConfirmed,
		},
		{
			ID:             "r2",
			RiderID:        LocalUserID,
			Mode:           domain.RideModeInstant,
			VehicleType:    domain.VehicleAuto,
			From:           "Kondapur",
			To:             "Gachibowli",
			Date:           "Today",
			Time:           "Now",
			Seats:          2,
			Price:          60,
			ProviderName:   "Finding...",
			ProviderRating: 0,
			Status:         domain.RideStatusRequested,
		},
		{
			ID:             "r3",
			RiderID:        LocalUserID,
			Mode:           domain.RideModeInstant,
			VehicleType:    domain.VehicleCar,
			From:           "Madhapur",
			To:             "Jubilee Hills",
			Date:           "Today",
			Time:           "06:45 PM",
			Seats:          1,
			Price:          80,
			ProviderName:   "Pending",
			ProviderRating: 0,
			Status:         domain.RideStatusRequested,
		},
		{
			ID:             "r4",
			RiderID:        LocalUserID,
			Mode:           domain.RideModeLongDistance,
			VehicleType:    domain.VehicleCar,
			From:           "Hyderabad",
			To:             "Vijayawada",
			Date:           "Sat",
			Time:           "07:00 AM",
			Seats:          2,
			Price:          450,
			ProviderName:   "Rohit",
			ProviderRating: 4.7,
			Status:         domain.RideStatusConfirmed,
		},
		{
			ID:             "r5",
			RiderID:        LocalUserID,
			Mode:           domain.RideModeLongDistance,
			VehicleType:    domain.VehicleCar,
			From:           "Hyderabad",
			To:             "Bangalore",
			Date:           "Fri",
			Time:           "10:00 PM",
			Seats:          1,
			Price:          0,
			ProviderName:   "Abdul",
			ProviderRating: 4.9,
			Status:         domain.RideStatusRequested,
		},
	}
}

func seedMatches() []*domain.RideMatch {
	return []*domain.RideMatch{
		{
			ID:             "m1",
			DriverName:     "Priya S.",
			Rating:         4.9,
			IsVerified:     true,
			VehicleType:    domain.VehicleCar,
			VehicleModel:   "Honda City",
			SeatsAvailable: 3,
			PricePerSeat:   60,
			LeavingIn:      "10 mins",
			Tags:           []string{"Women Only", "AC"},
			FromLandmark:   "Miyapur X Roads",
			ToLandmark:     "Hitech City Cyber Towers",
		},
		{
			ID:              "m2",
			DriverName:      "Ravi K.",
			Rating:          4.7,
			IsVerified:      true,
			VehicleType:     domain.VehicleBike,
			VehicleModel:    "Royal Enfield",
			SeatsAvailable:  1,
			PricePerSeat:    40,
			LeavingIn:       "5 mins",
			Tags:            []string{"Quick Ride"},
			FromLandmark:    "Miyapur Metro",
			ToLandmark:      "Mindspace",
			HelmetAvailable: true,
		},
		{
			ID:             "m3",
			DriverName:     "Amit V.",
			Rating:         4.5,
			IsVerified:     true,
			VehicleType:    domain.VehicleAuto,
			VehicleModel:   "Bajaj RE",
			SeatsAvailable: 2,
			PricePerSeat:   50,
			LeavingIn:      "20 mins",
			Tags:           []string{"Daily Commuter"},
			FromLandmark:   "Allwyn X Roads",
			ToLandmark:     "Raheja Mindspace",
		},
	}
}

func seedThreads() []*domain.ChatThread {
	return []*domain.ChatThread{
		{
			ID:              "c1",
			RideID:          "r1",
			OtherUserID:     "u_aditi",
			OtherUserName:   "Aditi",
			RideContext:     "Miyapur → Hitech City",
			VehicleType:     domain.VehicleBike,
			RideStatus:      domain.RideStatusConfirmed,
			LastMessage:     "Yes, I have an extra.",
			LastMessageTime: "2m",
			UnreadCount:     1,
			Messages: []domain.Message{
				{ID: "m0", SenderID: "u_aditi", IsSystem: true, Text: "Helmet available? Confirm before ride.", Timestamp: "08:09 AM"},
				{ID: "m1", SenderID: "u_aditi", Text: "Can we meet near Miyapur Metro Gate 2?", Timestamp: "08:10 AM"},
				{ID: "m2", SenderID: "me", Text: "Yes, I’ll be there in 5 mins.", Timestamp: "08:12 AM"},
				{ID: "m3", SenderID: "u_aditi", Text: "Helmet available?", Timestamp: "08:13 AM"},
				{ID: "m4", SenderID: "me", Text: "Yes, I have an extra.", Timestamp: "08:14 AM"},
			},
		},
		{
			ID:              "c2",
			RideID:          "r4",
			OtherUserID:     "u_rohit",
			OtherUserName:   "Rohit",
			RideContext:     "Hitech City → Kondapur",
			VehicleType:     domain.VehicleCar,
			RideStatus:      domain.RideStatusConfirmed,
			LastMessage:     "Okay.",
			LastMessageTime: "15m",
			UnreadCount:     0,
			Messages: []domain.Message{
				{ID: "m0", SenderID: "u_rohit", IsSystem: true, Text: "Luggage size okay? Confirm boot space if needed.", Timestamp: "05:59 PM"},
				{ID: "m1", SenderID: "u_rohit", Text: "I'm leaving in 15 mins, coming?", Timestamp: "06:00 PM"},
				{ID: "m2", SenderID: "me", Text: "Yes, wait 5 mins please.", Timestamp: "06:02 PM"},
				{ID: "m3", SenderID: "u_rohit", Text: "Okay.", Timestamp: "06:03 PM"},
			},
		},
	}
}

func seedWalletItems() []*domain.WalletItem {
	return []*domain.WalletItem{
		{
			ID:              "w1",
			RideID:          "r1",
			Date:            "Today, 8:30 AM",
			OtherUserID:     "u_aditi",
			OtherUserName:   "Aditi",
			Role:            domain.WalletRolePayer,
			Amount:          40,
			VehicleType:     domain.VehicleBike,
			Type:            domain.ContributionFuelShare,
			Status:          domain.ContributionPending,
			RideDescription: "Miyapur → Hitech City",
		},
		{
			ID:              "w2",
			RideID:          "r_old",
			Date:            "Yesterday",
			OtherUserID:     "u_unknown",
			OtherUserName:   "Ravi",
			Role:            domain.WalletRolePayer,
			Amount:          70,
			VehicleType:     domain.VehicleAuto,
			Type:            domain.ContributionFuelShare,
			Status:          domain.ContributionResolved,
			RideDescription: "Bachupally → Madhapur",
		},
	}
}

func seedAlerts() []*domain.Alert {
	return []*domain.Alert{
		{
			ID:         "a2",
			Category:   domain.AlertCategorySafety,
			Severity:   domain.SeverityDefault,
			Title:      "Emergency Contact Verified",
			Message:    "Karthik has been added as your emergency contact.",
			Timestamp:  "1 day ago",
			ActionPath: "profile",
			IsRead:     true,
		},
		{
			ID:         "a1",
			Category:   domain.AlertCategoryRide,
			Severity:   domain.SeverityDefault,
			Title:      "Ride Confirmed",
			Message:    "Aditi accepted your request for Miyapur → Hitech City.",
			Timestamp:  "10 mins ago",
			StatusTag:  "CONFIRMED",
			ActionPath: "rides",
			IsRead:     false,
		},
	}
}

func seedPlaces() []*domain.Place {
	return []*domain.Place{
		{
			ID:                 "pl1",
			Category:           domain.PlaceCafe,
			Title:              "Over The Moon Brewery",
			Description:        "Popular evening hangout with great ambience.",
			Area:               "Gachibowli",
			Tags:               []string{"Evening Hangout", "Food", "Drinks"},
			RecommendedVehicle: domain.VehicleAuto,
		},
		{
			ID:                 "pl2",
			Category:           domain.PlaceCafe,
			Title:              "Taj Deccan Cafe",
			Description:        "Quiet coffee meetup spot.",
			Area:               "Banjara Hills Rd 1",
			Tags:               []string{"Coffee", "Meetings"},
			RecommendedVehicle: domain.VehicleCar,
		},
		{
			ID:                 "pl3",
			Category:           domain.PlaceWeekend,
			Title:              "Khajaguda Hills",
			Description:        "Perfect for a morning trek and sunrise view.",
			Area:               "Puppalaguda",
			Tags:               []string{"Morning Trek", "Nature", "Adventure"},
			RecommendedVehicle: domain.VehicleCar,
		},
		{
			ID:                 "pl4",
			Category:           domain.PlaceEvent,
			Title:              "Hyderabad Comic Con",
			Description:        "The biggest pop-culture event in the city.",
			Area:               "HITEX Exhibition Center",
			Tags:               []string{"Sat • 3:00 PM", "Pop Culture"},
			RecommendedVehicle: domain.VehicleAuto,
		},
		{
			ID:                 "pl5",
			Category:           domain.PlaceEvent,
			Title:              "Stand-up Comedy Night",
			Description:        "Live comedy show.",
			Area:               "Heart Cup Coffee, Jubilee Hills",
			Tags:               []string{"Fri • 8:00 PM", "Comedy"},
			RecommendedVehicle: domain.VehicleBike,
		},
	}
}

// SeedLocations is the location index used by the global search.
func SeedLocations() []domain.SearchResult {
	return []domain.SearchResult{
		{ID: "l1", Type: domain.SearchResultLocation, Title: "Hitech City", Subtitle: "Madhapur"},
		{ID: "l2", Type: domain.SearchResultLocation, Title: "Miyapur Metro Station", Subtitle: "Miyapur"},
		{ID: "l3", Type: domain.SearchResultLocation, Title: "Gachibowli", Subtitle: "Financial District"},
		{ID: "l4", Type: domain.SearchResultLocation, Title: "Jubilee Hills", Subtitle: "Checkpost"},
		{ID: "l5", Type: domain.SearchResultLocation, Title: "Vijayawada", Subtitle: "Intercity"},
		{ID: "l6", Type: domain.SearchResultLocation, Title: "Bangalore", Subtitle: "Intercity"},
	}
}

// SeedPeople is the people index used by the global search.
func SeedPeople() []domain.SearchResult {
	return []domain.SearchResult{
		{ID: "p1", Type: domain.SearchResultPerson, Title: "Aditi", Subtitle: "4.8★ • Co-rider"},
		{ID: "p2", Type: domain.SearchResultPerson, Title: "Rohit", Subtitle: "4.7★ • Provider"},
	}
}

// SeedActions is the quick-action index used by the global search.
func SeedActions() []domain.SearchResult {
	return []domain.SearchResult{
		{ID: "ac1", Type: domain.SearchResultAction, Title: "Offer seats", Subtitle: "Switch to Provider mode"},
		{ID: "ac2", Type: domain.SearchResultAction, Title: "Plan Weekend Trip", Subtitle: "Khajaguda Hills"},
	}
}

// SeedRecents is the recent-search list shown for an empty query.
func SeedRecents() []domain.SearchResult {
	return []domain.SearchResult{
		{ID: "rc1", Type: domain.SearchResultRecent, Title: "Home ↔ Office (Weekdays)"},
		{ID: "rc2", Type: domain.SearchResultRecent, Title: "Miyapur Metro ↔ Hitech City"},
	}
}
