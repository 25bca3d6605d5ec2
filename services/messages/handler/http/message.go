package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	nrpkg "github.com/piresc/nairaxchange/internal/pkg/newrelic"
	"github.com/piresc/nairaxchange/internal/utils"
	"github.com/piresc/nairaxchange/services/messages"
)

// MessageHandler handles HTTP requests for trade chat
type MessageHandler struct {
	messageUC messages.MessageUC
}

// NewMessageHandler creates a new message HTTP handler
func NewMessageHandler(messageUC messages.MessageUC) *MessageHandler {
	return &MessageHandler{
		messageUC: messageUC,
	}
}

// SendMessage posts a chat line to a trade
func (h *MessageHandler) SendMessage(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Messages.Send")

	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	tradeID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.SendMessageRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	msg, err := h.messageUC.SendMessage(c.Request().Context(), actor, tradeID, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Message sent", msg)
}

// ListMessages returns a trade's chat history
func (h *MessageHandler) ListMessages(c echo.Context) error {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	tradeID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	list, err := h.messageUC.ListMessages(c.Request().Context(), actor, tradeID, utils.ParsePagination(c))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Messages retrieved", list)
}
