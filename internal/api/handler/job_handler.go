package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fencewise/field-service/internal/core/domain"
	"github.com/fencewise/field-service/internal/core/ports"
)

// JobHandler handles HTTP requests for job operations.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// Create handles POST /api/jobs.
//
// @Summary      Create a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  domain.Job
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.service.Create(c.Request().Context(), user, ports.CreateJobInput{
		ClientName: req.ClientName,
		Address:    req.Address,
		Contact:    req.Contact,
		JobType:    req.JobType,
		Notes:      req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, job)
}

// List handles GET /api/jobs. Elevated roles see every job; workers only
// their own.
//
// @Summary      List jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Job
// @Failure      401  {object}  errorResponse
// @Router       /api/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	jobs, err := h.service.List(c.Request().Context(), user)
	if err != nil {
		return err
	}
	if jobs == nil {
		jobs = []*domain.Job{}
	}
	return c.JSON(http.StatusOK, jobs)
}

// Get handles GET /api/jobs/:id.
//
// @Summary      Get a job by id
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  domain.Job
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	job, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Update handles PUT /api/jobs/:id with partial-update semantics.
//
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Job id"
// @Param        body  body      updateJobRequest  true  "Fields to update (absent fields untouched)"
// @Success      200   {object}  domain.Job
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.service.Update(c.Request().Context(), user, c.Param("id"), domain.JobUpdate{
		ClientName:   req.ClientName,
		Address:      req.Address,
		Contact:      req.Contact,
		JobType:      req.JobType,
		Notes:        req.Notes,
		Status:       req.Status,
		SignatureURL: req.SignatureURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, job)
}

// Delete handles DELETE /api/jobs/:id. Admin only.
//
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  deletedResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{Message: "job deleted"})
}
