package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fencewise/field-service/internal/core/domain"
	"github.com/fencewise/field-service/internal/core/ports"
)

// PhotoHandler handles HTTP requests for job photos.
type PhotoHandler struct {
	service ports.PhotoService
}

func NewPhotoHandler(service ports.PhotoService) *PhotoHandler {
	return &PhotoHandler{service: service}
}

type uploadPhotoRequest struct {
	JobID       string `json:"job_id"       validate:"required"`
	ImageBase64 string `json:"image_base64" validate:"required"`
	Caption     string `json:"caption"`
}

// Upload handles POST /api/photos. The referenced job must exist at upload
// time. No size or type validation is applied to the payload.
//
// @Summary      Upload a job photo
// @Tags         photos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      uploadPhotoRequest  true  "Photo (base64 payload)"
// @Success      201   {object}  domain.Photo
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/photos [post]
func (h *PhotoHandler) Upload(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req uploadPhotoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	photo, err := h.service.Upload(c.Request().Context(), user, ports.UploadPhotoInput{
		JobID:       req.JobID,
		ImageBase64: req.ImageBase64,
		Caption:     req.Caption,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, photo)
}

// ListByJob handles GET /api/photos/job/:id: every photo on the job, newest
// first, visible to any authenticated user.
//
// @Summary      List photos for a job
// @Tags         photos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {array}   domain.Photo
// @Failure      401  {object}  errorResponse
// @Router       /api/photos/job/{id} [get]
func (h *PhotoHandler) ListByJob(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	photos, err := h.service.ListByJob(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if photos == nil {
		photos = []*domain.Photo{}
	}
	return c.JSON(http.StatusOK, photos)
}
