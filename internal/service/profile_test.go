package service_test

import (
	"context"
	"errors"
	"testing"

	"linq/internal/domain"
	"linq/internal/service"
)

const testUserID = "u_sumanth"

func TestProfile_Get(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	user, err := e.profile.Get(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if user.Role != domain.RoleBoth {
		t.Errorf("unexpected role %s", user.Role)
	}
	if user.ProviderDetails == nil {
		t.Fatal("expected provider details on file")
	}
	if user.ProviderDetails.VehicleType != domain.VehicleBike {
		t.Errorf("unexpected vehicle %s", user.ProviderDetails.VehicleType)
	}
}

func TestProfile_UpdateIdentityKeepsEmptyFields(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	user, err := e.profile.UpdateIdentity(ctx, testUserID, "Sumanth R.", "", "")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if user.DisplayName != "Sumanth R." {
		t.Errorf("display name not updated: %q", user.DisplayName)
	}
	if user.City != "Hyderabad" {
		t.Errorf("empty city must leave the field unchanged, got %q", user.City)
	}
	if user.Bio == "" {
		t.Error("empty bio must leave the field unchanged")
	}
}

func TestProfile_SwitchToRiderClearsProviderDetails(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	user, err := e.profile.SwitchRole(ctx, testUserID, domain.RoleRider, nil)
	if err != nil {
		t.Fatalf("switch: %v", err)
	}
	if user.Role != domain.RoleRider {
		t.Errorf("expected RIDER, got %s", user.Role)
	}
	if user.ProviderDetails != nil {
		t.Error("rider-only accounts carry no vehicle details")
	}
}

func TestProfile_SwitchBackToProviderNeedsDetails(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	if _, err := e.profile.SwitchRole(ctx, testUserID, domain.RoleRider, nil); err != nil {
		t.Fatalf("switch to rider: %v", err)
	}

	// Details were cleared, so the way back needs them supplied.
	if _, err := e.profile.SwitchRole(ctx, testUserID, domain.RoleProvider, nil); !errors.Is(err, service.ErrProviderDetailsMissing) {
		t.Fatalf("expected ErrProviderDetailsMissing, got %v", err)
	}

	user, err := e.profile.SwitchRole(ctx, testUserID, domain.RoleProvider, &domain.ProviderDetails{
		VehicleType:     domain.VehicleBike,
		VehicleModel:    "Pulsar 150",
		TotalSeats:      1,
		AvailableSeats:  1,
		PricingPolicy:   "Split",
		HelmetAvailable: true,
	})
	if err != nil {
		t.Fatalf("switch with details: %v", err)
	}
	if user.Role != domain.RoleProvider {
		t.Errorf("expected PROVIDER, got %s", user.Role)
	}
	if user.ProviderDetails == nil {
		t.Error("expected supplied details to be stored")
	}
}

func TestProfile_SwitchRoleInvalid(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	if _, err := e.profile.SwitchRole(context.Background(), testUserID, "DRIVER", nil); !errors.Is(err, service.ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
}

func TestProfile_VehicleFieldPolicy(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	// A helmet belongs to bikes only.
	_, err := e.profile.UpdateProviderDetails(ctx, testUserID, domain.ProviderDetails{
		VehicleType:     domain.VehicleCar,
		VehicleModel:    "Honda City",
		TotalSeats:      4,
		HelmetAvailable: true,
	})
	if !errors.Is(err, service.ErrHelmetNotApplicable) {
		t.Errorf("expected ErrHelmetNotApplicable, got %v", err)
	}

	// Luggage space belongs to autos and cars only.
	_, err = e.profile.UpdateProviderDetails(ctx, testUserID, domain.ProviderDetails{
		VehicleType:    domain.VehicleBike,
		VehicleModel:   "Pulsar 150",
		TotalSeats:     1,
		LuggageAllowed: true,
	})
	if !errors.Is(err, service.ErrLuggageNotApplicable) {
		t.Errorf("expected ErrLuggageNotApplicable, got %v", err)
	}

	_, err = e.profile.UpdateProviderDetails(ctx, testUserID, domain.ProviderDetails{
		VehicleType:  "TRUCK",
		VehicleModel: "Tata",
	})
	if !errors.Is(err, service.ErrVehicleNotAllowed) {
		t.Errorf("expected ErrVehicleNotAllowed, got %v", err)
	}
}

func TestProfile_UpdateProviderDetailsValid(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	user, err := e.profile.UpdateProviderDetails(context.Background(), testUserID, domain.ProviderDetails{
		VehicleType:    domain.VehicleCar,
		VehicleModel:   "Honda City",
		PlateNumber:    "TS 09 ** 4321",
		TotalSeats:     4,
		AvailableSeats: 3,
		PricingPolicy:  "Split",
		LuggageAllowed: true,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if user.ProviderDetails.VehicleType != domain.VehicleCar {
		t.Errorf("details not replaced: %+v", user.ProviderDetails)
	}
}

func TestProfile_UpdateProviderDetailsAsRiderRejected(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	if _, err := e.profile.SwitchRole(ctx, testUserID, domain.RoleRider, nil); err != nil {
		t.Fatalf("switch: %v", err)
	}
	_, err := e.profile.UpdateProviderDetails(ctx, testUserID, domain.ProviderDetails{
		VehicleType: domain.VehicleCar,
	})
	if !errors.Is(err, service.ErrProviderDetailsMissing) {
		t.Errorf("expected ErrProviderDetailsMissing, got %v", err)
	}
}

func TestProfile_UpdatePreferences(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	user, err := e.profile.UpdatePreferences(context.Background(), testUserID, domain.UserPreferences{
		Gender:  "Same Gender",
		Pickup:  "Strict",
		Time:    "Flexible",
		Music:   false,
		Smoking: false,
		Chat:    "Quiet",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if user.Preferences.Gender != "Same Gender" || user.Preferences.Chat != "Quiet" {
		t.Errorf("preferences not replaced: %+v", user.Preferences)
	}
}

func TestProfile_UpdateEmergencyContact(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	user, err := e.profile.UpdateEmergencyContact(context.Background(), testUserID, domain.EmergencyContact{
		Name:     "Priya",
		Phone:    "+91 9XXXXXXXX2",
		Relation: "Sister",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if user.EmergencyContact == nil || user.EmergencyContact.Name != "Priya" {
		t.Errorf("contact not stored: %+v", user.EmergencyContact)
	}
	if !user.Verification.EmergencyContact {
		t.Error("expected the trust-center flag to be set")
	}
}
