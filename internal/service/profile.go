package service

import (
	"context"

	"linq/internal/domain"
	"linq/internal/repository"
)

// ProfileService manages the account profile and trust center.
type ProfileService struct {
	userRepo repository.UserRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

// Get retrieves a user profile.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateIdentity edits the free-text identity fields. Empty fields are left
// unchanged.
func (s *ProfileService) UpdateIdentity(ctx context.Context, userID, displayName, bio, city string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if displayName != "" {
		user.DisplayName = displayName
	}
	if bio != "" {
		user.Bio = bio
	}
	if city != "" {
		user.City = city
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SwitchRole changes how the account uses the platform. Provider roles need
// vehicle details, either already on file or supplied with the switch; a
// rider-only account carries none.
func (s *ProfileService) SwitchRole(ctx context.Context, userID string, role domain.UserRole, details *domain.ProviderDetails) (*domain.User, error) {
	switch role {
	case domain.RoleRider, domain.RoleProvider, domain.RoleBoth:
	default:
		return nil, ErrInvalidRole
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if role.IsProvider() {
		if details != nil {
			if err := validateProviderDetails(details); err != nil {
				return nil, err
			}
			user.ProviderDetails = details
		}
		if user.ProviderDetails == nil {
			return nil, ErrProviderDetailsMissing
		}
	} else {
		user.ProviderDetails = nil
	}
	user.Role = role

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePreferences replaces the matching preferences.
func (s *ProfileService) UpdatePreferences(ctx context.Context, userID string, prefs domain.UserPreferences) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Preferences = prefs
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProviderDetails replaces the vehicle details of a provider account.
func (s *ProfileService) UpdateProviderDetails(ctx context.Context, userID string, details domain.ProviderDetails) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.Role.IsProvider() {
		return nil, ErrProviderDetailsMissing
	}
	if err := validateProviderDetails(&details); err != nil {
		return nil, err
	}

	user.ProviderDetails = &details
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateEmergencyContact sets the safety contact on file.
func (s *ProfileService) UpdateEmergencyContact(ctx context.Context, userID string, contact domain.EmergencyContact) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.EmergencyContact = &contact
	user.Verification.EmergencyContact = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// validateProviderDetails enforces the vehicle-specific field policy: a
// helmet belongs to bikes, luggage space to autos and cars.
func validateProviderDetails(details *domain.ProviderDetails) error {
	switch details.VehicleType {
	case domain.VehicleBike:
		if details.LuggageAllowed {
			return ErrLuggageNotApplicable
		}
	case domain.VehicleAuto, domain.VehicleCar:
		if details.HelmetAvailable {
			return ErrHelmetNotApplicable
		}
	default:
		return ErrVehicleNotAllowed
	}
	return nil
}
