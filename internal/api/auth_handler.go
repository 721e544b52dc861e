package api

import (
	"net/http"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/service"
)

// Generic failure messages of the auth endpoints.
const (
	msgRegisterFailed      = "Registration failed. Please try again later."
	msgLoginFailed         = "Login failed. Please try again later."
	msgLogoutFailed        = "Logout failed. Please try again later."
	msgSendResetFailed     = "Failed to send reset token. Please try again later."
	msgResetPasswordFailed = "Failed to reset password. Please try again later."
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /v1/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, msgRegisterFailed)
		return
	}

	shared.RespondSuccess(w, r, http.StatusCreated, "User registered successfully.", AuthResponse{
		Token: session.Token,
		User:  userToResponse(session.User),
	})
}

// Login handles POST /v1/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, msgLoginFailed, shared.WithElevatedLogLevel())
		return
	}

	shared.RespondSuccess(w, r, http.StatusOK, "Login successful.", AuthResponse{
		Token: session.Token,
		User:  userToResponse(session.User),
	})
}

// Logout handles POST /v1/logout. It revokes every token of the caller.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, MsgUnauthenticated)
		return
	}

	if err := h.authService.Logout(r.Context(), user.ID); err != nil {
		HandleAPIError(w, r, err, msgLogoutFailed)
		return
	}

	shared.RespondSuccess(w, r, http.StatusOK, "Successfully logged out", nil)
}

// ForgotPassword handles POST /v1/forgot-password.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.authService.SendResetToken(r.Context(), req.Email)
	if err != nil {
		HandleAPIError(w, r, err, msgSendResetFailed)
		return
	}

	if result.Token != "" {
		shared.RespondSuccess(w, r, http.StatusOK, "Password reset token generated", ResetTokenResponse{
			Token: result.Token,
			Email: result.Email,
		})
		return
	}
	shared.RespondSuccess(w, r, http.StatusOK, "Password reset link sent", nil)
}

// ResetPassword handles POST /v1/reset-password.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.authService.ResetPassword(r.Context(), req.Email, req.Token, req.Password); err != nil {
		HandleAPIError(w, r, err, msgResetPasswordFailed, shared.WithElevatedLogLevel())
		return
	}

	shared.RespondSuccess(w, r, http.StatusOK, "Password has been reset", nil)
}
