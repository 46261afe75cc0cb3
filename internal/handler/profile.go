package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"linq/internal/domain"
	"linq/internal/service"
)

// ProfileHandler handles HTTP requests for the account profile.
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// VerificationResponse is the HTTP representation of the trust-center
// checks.
type VerificationResponse struct {
	Phone            bool   `json:"phone"`
	GovtID           string `json:"govt_id"`
	License          string `json:"license"`
	VehicleRC        string `json:"vehicle_rc"`
	Photo            bool   `json:"photo"`
	EmergencyContact bool   `json:"emergency_contact"`
}

// PreferencesBody is the preferences payload, used in both directions.
type PreferencesBody struct {
	Gender  string `json:"gender"`
	Pickup  string `json:"pickup"`
	Time    string `json:"time"`
	Music   bool   `json:"music"`
	Smoking bool   `json:"smoking"`
	Chat    string `json:"chat"`
}

// ProviderDetailsBody is the vehicle-details payload, used in both
// directions.
type ProviderDetailsBody struct {
	VehicleType     string `json:"vehicle_type"`
	VehicleModel    string `json:"vehicle_model"`
	PlateNumber     string `json:"plate_number"`
	TotalSeats      int    `json:"total_seats"`
	AvailableSeats  int    `json:"available_seats"`
	PricingPolicy   string `json:"pricing_policy"`
	HelmetAvailable bool   `json:"helmet_available"`
	LuggageAllowed  bool   `json:"luggage_allowed"`
	AC              bool   `json:"ac"`
}

// EmergencyContactBody is the safety-contact payload, used in both
// directions.
type EmergencyContactBody struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// UserResponse is the HTTP representation of the account.
type UserResponse struct {
	ID               string                `json:"id"`
	Name             string                `json:"name"`
	DisplayName      string                `json:"display_name"`
	Phone            string                `json:"phone"`
	Role             string                `json:"role"`
	IsVerified       bool                  `json:"is_verified"`
	Gender           string                `json:"gender,omitempty"`
	AgeRange         string                `json:"age_range,omitempty"`
	City             string                `json:"city,omitempty"`
	Bio              string                `json:"bio,omitempty"`
	Verification     VerificationResponse  `json:"verification"`
	Preferences      PreferencesBody       `json:"preferences"`
	ProviderDetails  *ProviderDetailsBody  `json:"provider_details,omitempty"`
	EmergencyContact *EmergencyContactBody `json:"emergency_contact,omitempty"`
}

func toUserResponse(user *domain.User) UserResponse {
	response := UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		DisplayName: user.DisplayName,
		Phone:       user.Phone,
		Role:        string(user.Role),
		IsVerified:  user.IsVerified,
		Gender:      user.Gender,
		AgeRange:    user.AgeRange,
		City:        user.City,
		Bio:         user.Bio,
		Verification: VerificationResponse{
			Phone:            user.Verification.Phone,
			GovtID:           string(user.Verification.GovtID),
			License:          string(user.Verification.License),
			VehicleRC:        string(user.Verification.VehicleRC),
			Photo:            user.Verification.Photo,
			EmergencyContact: user.Verification.EmergencyContact,
		},
		Preferences: PreferencesBody{
			Gender:  user.Preferences.Gender,
			Pickup:  user.Preferences.Pickup,
			Time:    user.Preferences.Time,
			Music:   user.Preferences.Music,
			Smoking: user.Preferences.Smoking,
			Chat:    user.Preferences.Chat,
		},
	}
	if user.ProviderDetails != nil {
		response.ProviderDetails = &ProviderDetailsBody{
			VehicleType:     string(user.ProviderDetails.VehicleType),
			VehicleModel:    user.ProviderDetails.VehicleModel,
			PlateNumber:     user.ProviderDetails.PlateNumber,
			TotalSeats:      user.ProviderDetails.TotalSeats,
			AvailableSeats:  user.ProviderDetails.AvailableSeats,
			PricingPolicy:   user.ProviderDetails.PricingPolicy,
			HelmetAvailable: user.ProviderDetails.HelmetAvailable,
			LuggageAllowed:  user.ProviderDetails.LuggageAllowed,
			AC:              user.ProviderDetails.AC,
		}
	}
	if user.EmergencyContact != nil {
		response.EmergencyContact = &EmergencyContactBody{
			Name:     user.EmergencyContact.Name,
			Phone:    user.EmergencyContact.Phone,
			Relation: user.EmergencyContact.Relation,
		}
	}
	return response
}

func toProviderDetails(body *ProviderDetailsBody) *domain.ProviderDetails {
	if body == nil {
		return nil
	}
	return &domain.ProviderDetails{
		VehicleType:     domain.VehicleType(body.VehicleType),
		VehicleModel:    body.VehicleModel,
		PlateNumber:     body.PlateNumber,
		TotalSeats:      body.TotalSeats,
		AvailableSeats:  body.AvailableSeats,
		PricingPolicy:   body.PricingPolicy,
		HelmetAvailable: body.HelmetAvailable,
		LuggageAllowed:  body.LuggageAllowed,
		AC:              body.AC,
	}
}

// UpdateIdentityRequest is the HTTP request body for editing the profile.
type UpdateIdentityRequest struct {
	DisplayName string `json:"display_name,omitempty"`
	Bio         string `json:"bio,omitempty"`
	City        string `json:"city,omitempty"`
}

// SwitchRoleRequest is the HTTP request body for switching roles.
type SwitchRoleRequest struct {
	Role            string               `json:"role"`
	ProviderDetails *ProviderDetailsBody `json:"provider_details,omitempty"`
}

// Get handles GET /v1/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	user, err := h.profileService.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toUserResponse(user))
}

// UpdateIdentity handles PUT /v1/profile
func (h *ProfileHandler) UpdateIdentity(c *gin.Context) {
	var req UpdateIdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.profileService.UpdateIdentity(c.Request.Context(), currentUserID(c),
		req.DisplayName, req.Bio, req.City)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toUserResponse(user))
}

// SwitchRole handles PUT /v1/profile/role
func (h *ProfileHandler) SwitchRole(c *gin.Context) {
	var req SwitchRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.profileService.SwitchRole(c.Request.Context(), currentUserID(c),
		domain.UserRole(req.Role), toProviderDetails(req.ProviderDetails))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toUserResponse(user))
}

// UpdatePreferences handles PUT /v1/profile/preferences
func (h *ProfileHandler) UpdatePreferences(c *gin.Context) {
	var req PreferencesBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.profileService.UpdatePreferences(c.Request.Context(), currentUserID(c),
		domain.UserPreferences{
			Gender:  req.Gender,
			Pickup:  req.Pickup,
			Time:    req.Time,
			Music:   req.Music,
			Smoking: req.Smoking,
			Chat:    req.Chat,
		})
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toUserResponse(user))
}

// UpdateProviderDetails handles PUT /v1/profile/provider
func (h *ProfileHandler) UpdateProviderDetails(c *gin.Context) {
	var req ProviderDetailsBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.profileService.UpdateProviderDetails(c.Request.Context(), currentUserID(c),
		*toProviderDetails(&req))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toUserResponse(user))
}

// UpdateEmergencyContact handles PUT /v1/profile/emergency-contact
func (h *ProfileHandler) UpdateEmergencyContact(c *gin.Context) {
	var req EmergencyContactBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.profileService.UpdateEmergencyContact(c.Request.Context(), currentUserID(c),
		domain.EmergencyContact{
			Name:     req.Name,
			Phone:    req.Phone,
			Relation: req.Relation,
		})
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toUserResponse(user))
}
