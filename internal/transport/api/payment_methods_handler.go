package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/p2p-escrow/internal/service"
	"github.com/gin-gonic/gin"
)

type PaymentMethodsHandler struct {
	svs PaymentMethodServicer
}

func NewPaymentMethodsHandler(svs PaymentMethodServicer) *PaymentMethodsHandler {
	return &PaymentMethodsHandler{svs: svs}
}

type AddPaymentMethodParams struct {
	BankName      string `binding:"required,bank"             json:"bankName"`
	AccountNumber string `binding:"required,max_bytes=34"     json:"accountNumber"`
	AccountHolder string `binding:"required,max_bytes=100"    json:"accountHolder"`
	NationalID    string `binding:"required,max_bytes=20"     json:"nationalId"`
}

// Create POST RouteGroup + PaymentMethodsRoute.
func (h *PaymentMethodsHandler) Create(c *gin.Context) {
	var params AddPaymentMethodParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	method, err := h.svs.Add(reqCtx, service.AddPaymentMethodArgs{
		UserID:        getUserIDFromContext(c),
		BankName:      params.BankName,
		AccountNumber: params.AccountNumber,
		AccountHolder: params.AccountHolder,
		NationalID:    params.NationalID,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newPaymentMethodResponse(method))
}

// Index GET RouteGroup + PaymentMethodsRoute.
func (h *PaymentMethodsHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	methods, err := h.svs.List(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := make([]PaymentMethodResponse, len(methods))
	for i := range methods {
		response[i] = newPaymentMethodResponse(&methods[i])
	}
	c.JSON(http.StatusOK, response)
}

// Delete DELETE RouteGroup + PaymentMethodRoute. Выключает реквизиты, история заказов не меняется.
func (h *PaymentMethodsHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.Deactivate(reqCtx, id, getUserIDFromContext(c)); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}
