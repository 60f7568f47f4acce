package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/p2p-escrow/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 5 * time.Second
)

const (
	RouteGroup          = "/api"
	AdsRoute            = "/ads"
	AdRoute             = "/ads/:id"
	AdPauseRoute        = "/ads/:id/pause"
	AdResumeRoute       = "/ads/:id/resume"
	AdCloseRoute        = "/ads/:id/close"
	OrdersRoute         = "/orders"
	OrderRoute          = "/orders/:id"
	OrderPayRoute       = "/orders/:id/pay"
	OrderReleaseRoute   = "/orders/:id/release"
	OrderCancelRoute    = "/orders/:id/cancel"
	OrderDisputeRoute   = "/orders/:id/dispute"
	OrderResolveRoute   = "/orders/:id/resolve"
	OrderAuditRoute     = "/orders/:id/audit"
	OrderMessagesRoute  = "/orders/:id/messages"
	WalletRoute         = "/wallet"
	WalletHistoryRoute  = "/wallet/history"
	PaymentMethodsRoute = "/payment-methods"
	PaymentMethodRoute  = "/payment-methods/:id"
	UserRoute           = "/users/:id"
)

type RouterArgs struct {
	Logger               *logrus.Logger
	EscrowService        EscrowServicer
	DisputeService       DisputeServicer
	AdService            AdServicer
	ChatService          ChatServicer
	WalletService        WalletServicer
	PaymentMethodService PaymentMethodServicer
	UserService          UserServicer
	JWTSecretKey         []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	adsHandler := NewAdsHandler(args.AdService)
	ordersHandler := NewOrdersHandler(args.EscrowService, args.DisputeService)
	messagesHandler := NewMessagesHandler(args.ChatService)
	walletHandler := NewWalletHandler(args.WalletService)
	pmHandler := NewPaymentMethodsHandler(args.PaymentMethodService)
	usersHandler := NewUsersHandler(args.UserService)

	api := r.Group(RouteGroup)

	// стакан объявлений и профили доступны без авторизации.
	api.GET(AdsRoute, adsHandler.Index)
	api.GET(AdRoute, adsHandler.Show)
	api.GET(UserRoute, usersHandler.Show)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.POST(AdsRoute, adsHandler.Create)
	api.POST(AdPauseRoute, adsHandler.Pause)
	api.POST(AdResumeRoute, adsHandler.Resume)
	api.POST(AdCloseRoute, adsHandler.Close)

	api.POST(OrdersRoute, ordersHandler.Create)
	api.GET(OrdersRoute, ordersHandler.Index)
	api.GET(OrderRoute, ordersHandler.Show)
	api.POST(OrderPayRoute, ordersHandler.MarkPaid)
	api.POST(OrderReleaseRoute, ordersHandler.Release)
	api.POST(OrderCancelRoute, ordersHandler.Cancel)
	api.POST(OrderDisputeRoute, ordersHandler.Dispute)
	api.POST(OrderResolveRoute, ordersHandler.Resolve)
	api.GET(OrderAuditRoute, ordersHandler.Audit)

	api.POST(OrderMessagesRoute, messagesHandler.Create)
	api.GET(OrderMessagesRoute, messagesHandler.Index)

	api.GET(WalletRoute, walletHandler.Index)
	api.GET(WalletHistoryRoute, walletHandler.History)

	api.POST(PaymentMethodsRoute, pmHandler.Create)
	api.GET(PaymentMethodsRoute, pmHandler.Index)
	api.DELETE(PaymentMethodRoute, pmHandler.Delete)
	return r, nil
}
