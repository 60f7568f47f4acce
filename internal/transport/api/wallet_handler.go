package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	svs WalletServicer
}

func NewWalletHandler(svs WalletServicer) *WalletHandler {
	return &WalletHandler{
		svs: svs,
	}
}

// Index GET RouteGroup + WalletRoute. Доступные и заблокированные в эскроу средства.
func (w *WalletHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	wallet, err := w.svs.Balance(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &WalletResponse{
		Available: wallet.Available,
		Locked:    wallet.Locked,
		Total:     wallet.Total(),
	})
}

type WalletHistoryParams struct {
	Limit uint `binding:"max=50" form:"limit"`
}

// History GET RouteGroup + WalletHistoryRoute.
func (w *WalletHandler) History(c *gin.Context) {
	var params WalletHistoryParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entries, err := w.svs.History(reqCtx, getUserIDFromContext(c), params.Limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		response[i] = LedgerEntryResponse{
			ID:              e.ID,
			OrderID:         e.Ref.OrderID,
			AdvertisementID: e.Ref.AdvertisementID,
			Kind:            e.Kind,
			Amount:          e.Amount,
			CreatedAt:       e.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, response)
}
