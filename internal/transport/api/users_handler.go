package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UsersHandler struct {
	userSvs UserServicer
}

func NewUsersHandler(userSvs UserServicer) *UsersHandler {
	return &UsersHandler{userSvs: userSvs}
}

// Show GET RouteGroup + UserRoute. Публичный профиль с количеством завершенных сделок.
func (h *UsersHandler) Show(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userSvs.Profile(reqCtx, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		TradesCount: user.TradesCount,
		IsArbiter:   user.IsArbiter,
		CreatedAt:   user.CreatedAt,
	})
}
