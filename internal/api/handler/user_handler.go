package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventback/auth-server/internal/api/metrics"
	"github.com/eventback/auth-server/internal/core/domain"
	"github.com/eventback/auth-server/internal/core/ports"
)

// UserHandler serves the /users endpoints.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// SignUp registers a new user account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "New account credentials"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      409   {object}  envelope
// @Failure      500   {object}  envelope
// @Router       /users/signup [post]
func (h *UserHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return respond(c, http.StatusBadRequest, "invalid payload", nil)
	}
	if err := c.Validate(&req); err != nil {
		metrics.SignUpsTotal.WithLabelValues("invalid").Inc()
		return respond(c, http.StatusBadRequest, err.Error(), nil)
	}

	user, err := h.userService.SignUp(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			metrics.SignUpsTotal.WithLabelValues("invalid").Inc()
			return respond(c, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, domain.ErrUserExists):
			metrics.SignUpsTotal.WithLabelValues("duplicate").Inc()
			return respond(c, http.StatusConflict,
				fmt.Sprintf("Username %q already exists.", req.Username), nil)
		default:
			metrics.SignUpsTotal.WithLabelValues("error").Inc()
			return respond(c, http.StatusInternalServerError, "Failed to save user.", nil)
		}
	}

	metrics.SignUpsTotal.WithLabelValues("success").Inc()
	return respond(c, http.StatusCreated, "SUCCESS REGISTER", user)
}

// GetByID returns a single user by its identifier.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Failure      500  {object}  envelope
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	id := c.Param("id")

	user, err := h.userService.FindByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return respond(c, http.StatusNotFound,
				fmt.Sprintf("User with ID %q not found.", id), nil)
		}
		return respond(c, http.StatusInternalServerError, "Error finding user.", nil)
	}

	return respond(c, http.StatusOK, "User found", user)
}
