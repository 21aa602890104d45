package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fencewise/field-service/internal/core/domain"
	"github.com/fencewise/field-service/internal/core/ports"
)

// TimesheetHandler handles HTTP requests for timesheet operations.
type TimesheetHandler struct {
	service ports.TimesheetService
}

func NewTimesheetHandler(service ports.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{service: service}
}

type createTimesheetRequest struct {
	Date       string  `json:"date"        validate:"required"`
	StartTime  string  `json:"start_time"  validate:"required"`
	FinishTime string  `json:"finish_time" validate:"required"`
	BreakTime  string  `json:"break_time"  validate:"required"`
	Notes      string  `json:"notes"`
	JobID      *string `json:"job_id"`
}

type approvedResponse struct {
	Message string `json:"message"`
}

// Create handles POST /api/timesheets. The sheet is always attributed to the
// caller; hours are computed once at creation.
//
// @Summary      Submit a timesheet
// @Tags         timesheets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTimesheetRequest  true  "Timesheet details (HH:MM clock strings)"
// @Success      201   {object}  domain.Timesheet
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/timesheets [post]
func (h *TimesheetHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createTimesheetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ts, err := h.service.Create(c.Request().Context(), user, ports.CreateTimesheetInput{
		Date:       req.Date,
		StartTime:  req.StartTime,
		FinishTime: req.FinishTime,
		BreakTime:  req.BreakTime,
		Notes:      req.Notes,
		JobID:      req.JobID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, ts)
}

// List handles GET /api/timesheets. Elevated roles see every sheet; workers
// only their own.
//
// @Summary      List timesheets
// @Tags         timesheets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Timesheet
// @Failure      401  {object}  errorResponse
// @Router       /api/timesheets [get]
func (h *TimesheetHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	sheets, err := h.service.List(c.Request().Context(), user)
	if err != nil {
		return err
	}
	if sheets == nil {
		sheets = []*domain.Timesheet{}
	}
	return c.JSON(http.StatusOK, sheets)
}

// Approve handles PUT /api/timesheets/:id/approve. Elevated roles only
// (enforced at the route); approving twice is not an error.
//
// @Summary      Approve a timesheet
// @Tags         timesheets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Timesheet id"
// @Success      200  {object}  approvedResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/timesheets/{id}/approve [put]
func (h *TimesheetHandler) Approve(c echo.Context) error {
	if err := h.service.Approve(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, approvedResponse{Message: "timesheet approved"})
}
