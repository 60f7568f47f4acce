package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/logger"
	"github.com/fsdevblog/p2p-escrow/internal/service"
	"github.com/fsdevblog/p2p-escrow/internal/transport/api/mocks"
	"github.com/fsdevblog/p2p-escrow/internal/transport/api/testutils"
	"github.com/fsdevblog/p2p-escrow/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AccountHandlersTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockWallet      *mocks.MockWalletServicer
	mockMethods     *mocks.MockPaymentMethodServicer
	mockChat        *mocks.MockChatServicer
	mockUserService *mocks.MockUserServicer
	token           string
}

func TestAccountHandlersSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlersTestSuite))
}

const accountUserID int64 = 8

func (s *AccountHandlersTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockWallet = mocks.NewMockWalletServicer(mockCtrl)
	s.mockMethods = mocks.NewMockPaymentMethodServicer(mockCtrl)
	s.mockChat = mocks.NewMockChatServicer(mockCtrl)
	s.mockUserService = mocks.NewMockUserServicer(mockCtrl)

	secret := []byte("account secret")
	router, err := New(RouterArgs{
		Logger:               logger.New(io.Discard),
		ChatService:          s.mockChat,
		WalletService:        s.mockWallet,
		PaymentMethodService: s.mockMethods,
		UserService:          s.mockUserService,
		JWTSecretKey:         secret,
	})
	s.Require().NoError(err)
	s.router = router

	s.token, err = tokens.GenerateUserJWT(accountUserID, time.Hour, secret)
	s.Require().NoError(err)
}

func (s *AccountHandlersTestSuite) do(method, url string, payload any) *http.Response {
	var body io.Reader
	if payload != nil {
		var err error
		body, err = testutils.JSONBody(payload)
		s.Require().NoError(err)
	}
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
		Body:   body,
	}, testutils.WithBearer(s.token), testutils.WithJSON())
	s.Require().NoError(err)
	return res
}

func (s *AccountHandlersTestSuite) TestWallet() {
	s.mockWallet.EXPECT().Balance(gomock.Any(), accountUserID).Return(&domain.Wallet{
		UserID:    accountUserID,
		Available: decimal.RequireFromString("10.5"),
		Locked:    decimal.RequireFromString("4.25"),
	}, nil)

	res := s.do(http.MethodGet, RouteGroup+WalletRoute, nil)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()
	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body map[string]string
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal("10.5", body["available"])
	s.Equal("4.25", body["locked"])
	s.Equal("14.75", body["total"])
}

func (s *AccountHandlersTestSuite) TestWalletHistory() {
	orderID := uuid.NewString()
	s.mockWallet.EXPECT().History(gomock.Any(), accountUserID, uint(20)).Return([]domain.LedgerEntry{
		{ID: 2, UserID: accountUserID, Ref: domain.OrderRef(orderID), Kind: domain.LedgerEntryLock,
			Amount: decimal.NewFromInt(3)},
		{ID: 1, UserID: accountUserID, Ref: domain.AdvertisementRef(4), Kind: domain.LedgerEntryUnlock,
			Amount: decimal.NewFromInt(3)},
	}, nil)

	res := s.do(http.MethodGet, RouteGroup+WalletHistoryRoute+"?limit=20", nil)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()
	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body []LedgerEntryResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Require().Len(body, 2)
	s.Require().NotNil(body[0].OrderID)
	s.Equal(orderID, *body[0].OrderID)
	s.Nil(body[0].AdvertisementID)
	s.Require().NotNil(body[1].AdvertisementID)
	s.Equal(int64(4), *body[1].AdvertisementID)

	res = s.do(http.MethodGet, RouteGroup+WalletHistoryRoute+"?limit=500", nil)
	s.Equal(http.StatusBadRequest, res.StatusCode)
	s.Require().NoError(res.Body.Close())
}

func (s *AccountHandlersTestSuite) TestPaymentMethods() {
	s.mockMethods.EXPECT().Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args service.AddPaymentMethodArgs) (*domain.PaymentMethod, error) {
			s.Equal(accountUserID, args.UserID)
			return &domain.PaymentMethod{
				ID:            1,
				UserID:        args.UserID,
				BankName:      domain.Bank(args.BankName),
				AccountNumber: args.AccountNumber,
				AccountHolder: args.AccountHolder,
				NationalID:    args.NationalID,
				IsActive:      true,
			}, nil
		})
	s.mockMethods.EXPECT().List(gomock.Any(), accountUserID).
		Return([]domain.PaymentMethod{{ID: 1, BankName: domain.BankPagoMovil}}, nil)
	s.mockMethods.EXPECT().Deactivate(gomock.Any(), int64(1), accountUserID).Return(nil)
	s.mockMethods.EXPECT().Deactivate(gomock.Any(), int64(2), accountUserID).
		Return(fmt.Errorf("deactivating payment method: %w", domain.ErrRecordNotFound))

	valid := gin.H{
		"bankName":      string(domain.BankBanesco),
		"accountNumber": "01340000000000000000",
		"accountHolder": gofakeit.Name(),
		"nationalId":    "V-12345678",
	}

	res := s.do(http.MethodPost, RouteGroup+PaymentMethodsRoute, valid)
	s.Equal(http.StatusCreated, res.StatusCode)
	s.Require().NoError(res.Body.Close())

	unknownBank := gin.H{}
	for k, v := range valid {
		unknownBank[k] = v
	}
	unknownBank["bankName"] = "MONOPOLY"
	res = s.do(http.MethodPost, RouteGroup+PaymentMethodsRoute, unknownBank)
	s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
	s.Require().NoError(res.Body.Close())

	longHolder := gin.H{}
	for k, v := range valid {
		longHolder[k] = v
	}
	longHolder["accountHolder"] = testutils.OverByteLimit(100)
	res = s.do(http.MethodPost, RouteGroup+PaymentMethodsRoute, longHolder)
	s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
	s.Require().NoError(res.Body.Close())

	res = s.do(http.MethodGet, RouteGroup+PaymentMethodsRoute, nil)
	s.Equal(http.StatusOK, res.StatusCode)
	s.Require().NoError(res.Body.Close())

	res = s.do(http.MethodDelete, RouteGroup+"/payment-methods/1", nil)
	s.Equal(http.StatusNoContent, res.StatusCode)
	s.Require().NoError(res.Body.Close())

	res = s.do(http.MethodDelete, RouteGroup+"/payment-methods/2", nil)
	s.Equal(http.StatusNotFound, res.StatusCode)
	s.Require().NoError(res.Body.Close())
}

func (s *AccountHandlersTestSuite) TestMessages() {
	orderID := uuid.NewString()
	sender := accountUserID

	s.mockChat.EXPECT().
		Append(gomock.Any(), service.AppendMessageArgs{OrderID: orderID, SenderID: accountUserID, Text: "paid"}).
		Return(&domain.ChatMessage{ID: 1, OrderID: orderID, SenderID: &sender, Text: "paid"}, nil)
	s.mockChat.EXPECT().History(gomock.Any(), orderID, accountUserID).Return([]domain.ChatMessage{
		{ID: 1, OrderID: orderID, Text: "order created", IsSystem: true},
		{ID: 2, OrderID: orderID, SenderID: &sender, Text: "paid"},
	}, nil)
	s.mockChat.EXPECT().History(gomock.Any(), gomock.Not(orderID), accountUserID).
		Return(nil, fmt.Errorf("chat history: %w", domain.ErrUnauthorized))

	url := RouteGroup + "/orders/" + orderID + "/messages"

	res := s.do(http.MethodPost, url, gin.H{"text": "paid"})
	s.Equal(http.StatusCreated, res.StatusCode)
	s.Require().NoError(res.Body.Close())

	res = s.do(http.MethodPost, url, gin.H{"text": strings.Repeat("a", 2001)})
	s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
	s.Require().NoError(res.Body.Close())

	res = s.do(http.MethodPost, url, gin.H{"attachmentUrl": "not a url"})
	s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
	s.Require().NoError(res.Body.Close())

	res = s.do(http.MethodGet, url, nil)
	s.Require().Equal(http.StatusOK, res.StatusCode)
	var body []MessageResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Require().NoError(res.Body.Close())
	s.Require().Len(body, 2)
	s.True(body[0].IsSystem)
	s.Nil(body[0].SenderID)

	res = s.do(http.MethodGet, RouteGroup+"/orders/"+uuid.NewString()+"/messages", nil)
	s.Equal(http.StatusForbidden, res.StatusCode)
	s.Require().NoError(res.Body.Close())
}

func (s *AccountHandlersTestSuite) TestUserProfileIsPublic() {
	s.mockUserService.EXPECT().Profile(gomock.Any(), int64(3)).
		Return(&domain.User{ID: 3, Username: "maria", TradesCount: 17}, nil)
	s.mockUserService.EXPECT().Profile(gomock.Any(), int64(4)).
		Return(nil, fmt.Errorf("profile: %w", domain.ErrRecordNotFound))

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + "/users/3",
	})
	s.Require().NoError(err)
	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body UserResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Require().NoError(res.Body.Close())
	s.Equal("maria", body.Username)
	s.Equal(int64(17), body.TradesCount)

	res, err = testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + "/users/4",
	})
	s.Require().NoError(err)
	s.Equal(http.StatusNotFound, res.StatusCode)
	s.Require().NoError(res.Body.Close())
}

func (s *AccountHandlersTestSuite) TestExpiredToken() {
	token, err := tokens.GenerateUserJWT(accountUserID, -time.Minute, []byte("account secret"))
	s.Require().NoError(err)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + WalletRoute,
	}, testutils.WithBearer(token))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()
	s.Equal(http.StatusUnauthorized, res.StatusCode)
}
