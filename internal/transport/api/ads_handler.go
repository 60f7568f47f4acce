package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var errInvalidAmount = errors.New("amount must be a positive number")

type AdsHandler struct {
	adSvs AdServicer
}

func NewAdsHandler(adSvs AdServicer) *AdsHandler {
	return &AdsHandler{adSvs: adSvs}
}

type PublishAdParams struct {
	Side             domain.Side     `binding:"required,oneof=BUY SELL"   json:"side"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	MinLimit         decimal.Decimal `json:"minLimit"`
	MaxLimit         decimal.Decimal `json:"maxLimit"`
	Quantity         decimal.Decimal `json:"quantity"`
	PaymentMethodIDs []int64         `binding:"required,min=1,dive,gt=0" json:"paymentMethodIds"`
	Terms            string          `binding:"max_bytes=4000"           json:"terms"`
}

// Create POST RouteGroup + AdsRoute. Размещает объявление текущего пользователя.
func (h *AdsHandler) Create(c *gin.Context) {
	var params PublishAdParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	ad, err := h.adSvs.Publish(reqCtx, service.PublishAdArgs{
		OwnerID:          getUserIDFromContext(c),
		Side:             params.Side,
		UnitPrice:        params.UnitPrice,
		MinLimit:         params.MinLimit,
		MaxLimit:         params.MaxLimit,
		Quantity:         params.Quantity,
		PaymentMethodIDs: params.PaymentMethodIDs,
		Terms:            params.Terms,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newAdvertisementResponse(ad))
}

type ListAdsParams struct {
	Side       domain.Side `binding:"omitempty,oneof=BUY SELL" form:"side"`
	FiatAmount string      `form:"amount"`
	Bank       string      `binding:"omitempty,bank"          form:"bank"`
	Limit      uint        `binding:"max=100"                 form:"limit"`
	Offset     uint        `form:"offset"`
}

// Index GET RouteGroup + AdsRoute. Страница активных объявлений.
func (h *AdsHandler) Index(c *gin.Context) {
	var params ListAdsParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	var fiat decimal.NullDecimal
	if params.FiatAmount != "" {
		amount, parseErr := decimal.NewFromString(params.FiatAmount)
		if parseErr != nil || !amount.IsPositive() {
			_ = c.AbortWithError(http.StatusBadRequest, errInvalidAmount).SetType(gin.ErrorTypePublic)
			return
		}
		fiat = decimal.NewNullDecimal(amount)
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	ads, err := h.adSvs.ListActive(reqCtx, service.ListAdsArgs{
		Side:       params.Side,
		FiatAmount: fiat,
		Bank:       params.Bank,
		Limit:      params.Limit,
		Offset:     params.Offset,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := make([]AdvertisementResponse, len(ads))
	for i := range ads {
		response[i] = newAdvertisementResponse(&ads[i])
	}
	c.JSON(http.StatusOK, response)
}

// Show GET RouteGroup + AdRoute.
func (h *AdsHandler) Show(c *gin.Context) {
	adID, ok := paramID(c, "id")
	if !ok {
		return
	}
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	ad, err := h.adSvs.Get(reqCtx, adID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAdvertisementResponse(ad))
}

func (h *AdsHandler) Pause(c *gin.Context) {
	h.change(c, h.adSvs.Pause)
}

func (h *AdsHandler) Resume(c *gin.Context) {
	h.change(c, h.adSvs.Resume)
}

func (h *AdsHandler) Close(c *gin.Context) {
	h.change(c, h.adSvs.Close)
}

func (h *AdsHandler) change(
	c *gin.Context,
	fn func(ctx context.Context, adID, ownerID int64) (*domain.Advertisement, error),
) {
	adID, ok := paramID(c, "id")
	if !ok {
		return
	}
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	ad, err := fn(reqCtx, adID, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAdvertisementResponse(ad))
}
