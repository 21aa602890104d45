package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fencewise/field-service/internal/core/domain"
	"github.com/fencewise/field-service/internal/core/ports"
)

// MessageHandler handles HTTP requests for team and direct messaging.
type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

type sendMessageRequest struct {
	To       string  `json:"to"      validate:"required"`
	Message  string  `json:"message" validate:"required"`
	ImageURL *string `json:"image_url"`
}

// Send handles POST /api/messages. The recipient is either "team" or a user
// id; a direct recipient is not validated to exist.
//
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendMessageRequest  true  "Message (to is a user id or the literal team)"
// @Success      201   {object}  domain.Message
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.service.Send(c.Request().Context(), user, ports.SendMessageInput{
		To:       req.To,
		Message:  req.Message,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, msg)
}

// ListChannel handles GET /api/messages/:channel: the team feed when channel
// is "team", otherwise the conversation between the caller and that user.
//
// @Summary      List messages in a channel
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        channel  path      string  true  "Channel: 'team' or a user id"
// @Success      200      {array}   domain.Message
// @Failure      401      {object}  errorResponse
// @Router       /api/messages/{channel} [get]
func (h *MessageHandler) ListChannel(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	msgs, err := h.service.ListChannel(c.Request().Context(), user, c.Param("channel"))
	if err != nil {
		return err
	}
	if msgs == nil {
		msgs = []*domain.Message{}
	}
	return c.JSON(http.StatusOK, msgs)
}
