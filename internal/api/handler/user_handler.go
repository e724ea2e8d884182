package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/precify/pricing-api/internal/api/middleware"
	"github.com/precify/pricing-api/internal/core/domain"
	"github.com/precify/pricing-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Create registers a new account.
//
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "New user"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	user, err := h.userService.Create(c.Request().Context(), req.Username, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing required fields"})
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "user already exists"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, user)
}

// List returns all accounts ordered by username.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      500  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// Delete removes an account by id. Deleting the acting account is rejected.
//
// @Summary      Delete user
// @Tags         users
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	if err := h.userService.Delete(c.Request().Context(), identity.ID, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrSelfDelete) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "cannot delete own account"})
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
