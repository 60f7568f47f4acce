package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/p2p-escrow/internal/service"
	"github.com/gin-gonic/gin"
)

type MessagesHandler struct {
	chatSvs ChatServicer
}

func NewMessagesHandler(chatSvs ChatServicer) *MessagesHandler {
	return &MessagesHandler{chatSvs: chatSvs}
}

type AppendMessageParams struct {
	Text          string  `binding:"max=2000"                    json:"text"`
	AttachmentURL *string `binding:"omitempty,url,max_bytes=2048" json:"attachmentUrl"`
}

// Create POST RouteGroup + OrderMessagesRoute.
func (h *MessagesHandler) Create(c *gin.Context) {
	var params AppendMessageParams
	if !bindJSON(c, &params) {
		return
	}
	orderID, ok := paramOrderID(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	msg, err := h.chatSvs.Append(reqCtx, service.AppendMessageArgs{
		OrderID:       orderID,
		SenderID:      getUserIDFromContext(c),
		Text:          params.Text,
		AttachmentURL: params.AttachmentURL,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newMessageResponse(msg))
}

// Index GET RouteGroup + OrderMessagesRoute.
func (h *MessagesHandler) Index(c *gin.Context) {
	orderID, ok := paramOrderID(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	messages, err := h.chatSvs.History(reqCtx, orderID, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := make([]MessageResponse, len(messages))
	for i := range messages {
		response[i] = newMessageResponse(&messages[i])
	}
	c.JSON(http.StatusOK, response)
}
