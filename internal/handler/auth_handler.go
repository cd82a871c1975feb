package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"gymcrm/internal/auth"
	"gymcrm/internal/authz"
	"gymcrm/internal/errors"
	"gymcrm/internal/service"
)

// AuthHandler handles login and logout. The session is a signed JWT stored in
// an HTTP-only cookie; logout just clears the cookie, the token itself stays
// valid until it expires.
type AuthHandler struct {
	authService service.AuthService
	cookieName  string
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cookieName string) *AuthHandler {
	return &AuthHandler{authService: authService, cookieName: cookieName}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse represents the signed-in user.
type SessionResponse struct {
	UserID      string   `json:"user_id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	Image       string   `json:"image,omitempty"`
}

// Login godoc
// @Summary Sign in and receive a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /public/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(auth.SessionExpiry),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	// The response mirrors the token: role defaults, or the explicit set for
	// CUSTOM users.
	effective := authz.EffectivePermissions(user)
	perms := make([]string, len(effective))
	for i, p := range effective {
		perms[i] = string(p)
	}
	return c.JSON(http.StatusOK, SessionResponse{
		UserID:      user.ID.String(),
		Name:        user.Name,
		Email:       user.Email,
		Role:        string(user.Role),
		Permissions: perms,
		Image:       user.Avatar,
	})
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}

// Me godoc
// @Summary Return the current session
// @Tags auth
// @Produce json
// @Security SessionCookie
// @Success 200 {object} SessionResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess := authz.SessionFromToken(c)
	if sess == nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrUnauthorized)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	perms := make([]string, len(sess.Permissions))
	for i, p := range sess.Permissions {
		perms[i] = string(p)
	}
	return c.JSON(http.StatusOK, SessionResponse{
		UserID:      sess.UserID.String(),
		Name:        sess.Name,
		Email:       sess.Email,
		Role:        string(sess.Role),
		Permissions: perms,
	})
}
