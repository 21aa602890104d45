package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fencewise/field-service/internal/core/domain"
	"github.com/fencewise/field-service/internal/core/ports"
)

// UserHandler handles admin user management and the dashboard stats endpoint.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type userActionResponse struct {
	Message string `json:"message"`
}

// List handles GET /api/users. Admin only (enforced at the route).
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// Suspend handles PUT /api/users/:id/suspend. Admin only. Unknown ids
// succeed silently.
//
// @Summary      Suspend a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userActionResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/users/{id}/suspend [put]
func (h *UserHandler) Suspend(c echo.Context) error {
	if err := h.service.SetActive(c.Request().Context(), c.Param("id"), false); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userActionResponse{Message: "user suspended"})
}

// Activate handles PUT /api/users/:id/activate. Admin only. Unknown ids
// succeed silently.
//
// @Summary      Reactivate a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userActionResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/users/{id}/activate [put]
func (h *UserHandler) Activate(c echo.Context) error {
	if err := h.service.SetActive(c.Request().Context(), c.Param("id"), true); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userActionResponse{Message: "user activated"})
}

// Stats handles GET /api/dashboard/stats. The payload shape depends on the
// caller's role; nothing is cached.
//
// @Summary      Dashboard statistics
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Failure      401  {object}  errorResponse
// @Router       /api/dashboard/stats [get]
func (h *UserHandler) Stats(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Stats(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
