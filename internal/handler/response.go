package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"linq/internal/repository"
	"linq/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidRideID),
		errors.Is(err, service.ErrInvalidThreadID),
		errors.Is(err, service.ErrInvalidFlowID),
		errors.Is(err, service.ErrInvalidMatchID),
		errors.Is(err, service.ErrInvalidWalletItemID),
		errors.Is(err, service.ErrEmptyMessage),
		errors.Is(err, service.ErrMissingDestination),
		errors.Is(err, service.ErrMissingTravelDate),
		errors.Is(err, service.ErrInvalidPhone),
		errors.Is(err, service.ErrInvalidOTP),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrHelmetNotApplicable),
		errors.Is(err, service.ErrLuggageNotApplicable):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrRideNotCancellable),
		errors.Is(err, service.ErrThreadLocked),
		errors.Is(err, service.ErrFlowStateConflict),
		errors.Is(err, service.ErrVehicleNotAllowed),
		errors.Is(err, service.ErrProviderDetailsMissing):
		return http.StatusConflict

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}

// currentUserID returns the user resolved by the auth middleware.
func currentUserID(c *gin.Context) string {
	return c.GetString("userID")
}
