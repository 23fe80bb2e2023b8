package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventback/auth-server/internal/api/metrics"
	"github.com/eventback/auth-server/internal/api/middleware"
	"github.com/eventback/auth-server/internal/core/domain"
	"github.com/eventback/auth-server/internal/core/ports"
)

// AuthHandler serves the /auth endpoints.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignIn authenticates a user and returns an access token.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      500   {object}  envelope
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return respond(c, http.StatusBadRequest, "invalid payload", nil)
	}
	if err := c.Validate(&req); err != nil {
		return respond(c, http.StatusBadRequest, err.Error(), nil)
	}

	token, err := h.authService.SignIn(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.SignInsTotal.WithLabelValues("invalid_credentials").Inc()
			return respond(c, http.StatusUnauthorized, "Invalid credentials", nil)
		}
		metrics.SignInsTotal.WithLabelValues("error").Inc()
		return respond(c, http.StatusInternalServerError, "Server error", err.Error())
	}

	metrics.SignInsTotal.WithLabelValues("success").Inc()
	return respond(c, http.StatusOK, "Login successful", signInResponse{AccessToken: token})
}

// Profile returns the verified claims of the caller.
//
// @Summary      Get the authenticated user's profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return respond(c, http.StatusOK, "Profile fetched successfully", claims)
}

// AdminData returns the admin-only payload.
//
// @Summary      Admin-only data
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Failure      403  {object}  envelope
// @Router       /auth/admin [get]
func (h *AuthHandler) AdminData(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return respond(c, http.StatusOK, "Welcome, Admin! This is admin-only data.", claims)
}

// Check reports that the presented token is valid and echoes its claims.
//
// @Summary      Check token validity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Failure      403  {object}  envelope
// @Router       /auth/check [post]
func (h *AuthHandler) Check(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return respond(c, http.StatusOK, "Token is valid", claims)
}
