package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"linq/internal/service"
)

// AuthHandler handles HTTP requests for the simulated OTP login.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RequestOTPRequest is the HTTP request body for requesting a code.
type RequestOTPRequest struct {
	Phone string `json:"phone"`
}

// RequestOTPResponse is the HTTP response for requesting a code. The code is
// returned directly because no SMS is sent in this prototype.
type RequestOTPResponse struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// VerifyOTPRequest is the HTTP request body for verifying a code.
type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// VerifyOTPResponse is the HTTP response for a successful login.
type VerifyOTPResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RequestOTP handles POST /v1/auth/otp/request
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	code, err := h.authService.RequestOTP(c.Request.Context(), req.Phone)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, RequestOTPResponse{Phone: req.Phone, Code: code})
}

// VerifyOTP handles POST /v1/auth/otp/verify
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	token, user, err := h.authService.VerifyOTP(c.Request.Context(), req.Phone, req.Code)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, VerifyOTPResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}
