package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrdersHandler struct {
	escrowSvs  EscrowServicer
	disputeSvs DisputeServicer
}

func NewOrdersHandler(escrowSvs EscrowServicer, disputeSvs DisputeServicer) *OrdersHandler {
	return &OrdersHandler{
		escrowSvs:  escrowSvs,
		disputeSvs: disputeSvs,
	}
}

type CreateOrderParams struct {
	AdvertisementID int64           `binding:"required,gt=0" json:"advertisementId"`
	FiatAmount      decimal.Decimal `json:"fiatAmount"`
}

// Create POST RouteGroup + OrdersRoute. Открывает заказ по объявлению.
func (o *OrdersHandler) Create(c *gin.Context) {
	var params CreateOrderParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.escrowSvs.CreateOrder(reqCtx, service.CreateOrderArgs{
		TakerID:         getUserIDFromContext(c),
		AdvertisementID: params.AdvertisementID,
		FiatAmount:      params.FiatAmount,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newOrderResponse(order))
}

type PageParams struct {
	Limit  uint `binding:"max=200" form:"limit"`
	Offset uint `form:"offset"`
}

// Index GET RouteGroup + OrdersRoute. Заказы текущего пользователя, новые первыми.
func (o *OrdersHandler) Index(c *gin.Context) {
	var params PageParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := o.escrowSvs.GetByUserID(reqCtx, getUserIDFromContext(c), params.Limit, params.Offset)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	var response = make([]OrderResponse, len(orders))
	for i := range orders {
		response[i] = newOrderResponse(&orders[i])
	}
	c.JSON(http.StatusOK, response)
}

// Show GET RouteGroup + OrderRoute.
func (o *OrdersHandler) Show(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orderID, ok := paramOrderID(c)
	if !ok {
		return
	}
	order, err := o.escrowSvs.GetOrder(reqCtx, orderID, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}

// MarkPaid POST RouteGroup + OrderPayRoute.
func (o *OrdersHandler) MarkPaid(c *gin.Context) {
	o.transition(c, o.escrowSvs.MarkPaid)
}

// Release POST RouteGroup + OrderReleaseRoute.
func (o *OrdersHandler) Release(c *gin.Context) {
	o.transition(c, o.escrowSvs.Release)
}

// Cancel POST RouteGroup + OrderCancelRoute.
func (o *OrdersHandler) Cancel(c *gin.Context) {
	o.transition(c, o.escrowSvs.Cancel)
}

type DisputeParams struct {
	Reason string `binding:"required,max=1000" json:"reason"`
}

// Dispute POST RouteGroup + OrderDisputeRoute.
func (o *OrdersHandler) Dispute(c *gin.Context) {
	var params DisputeParams
	if !bindJSON(c, &params) {
		return
	}
	o.transition(c, func(ctx context.Context, orderID string, userID int64) (*domain.Order, error) {
		return o.disputeSvs.RaiseDispute(ctx, orderID, userID, params.Reason)
	})
}

type ResolveParams struct {
	WinnerID int64 `binding:"required,gt=0" json:"winnerId"`
}

// Resolve POST RouteGroup + OrderResolveRoute. Доступен только арбитрам.
func (o *OrdersHandler) Resolve(c *gin.Context) {
	var params ResolveParams
	if !bindJSON(c, &params) {
		return
	}
	o.transition(c, func(ctx context.Context, orderID string, userID int64) (*domain.Order, error) {
		return o.disputeSvs.ResolveDispute(ctx, service.ResolveDisputeArgs{
			OrderID:   orderID,
			ArbiterID: userID,
			WinnerID:  params.WinnerID,
		})
	})
}

// Audit GET RouteGroup + OrderAuditRoute.
func (o *OrdersHandler) Audit(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orderID, ok := paramOrderID(c)
	if !ok {
		return
	}
	records, err := o.disputeSvs.AuditTrail(reqCtx, orderID, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := make([]AuditRecordResponse, len(records))
	for i, r := range records {
		response[i] = AuditRecordResponse{
			ID:        r.ID,
			ActorID:   r.ActorID,
			Action:    r.Action,
			Details:   r.Details,
			CreatedAt: r.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, response)
}

func (o *OrdersHandler) transition(
	c *gin.Context,
	fn func(ctx context.Context, orderID string, userID int64) (*domain.Order, error),
) {
	orderID, ok := paramOrderID(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := fn(reqCtx, orderID, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}
