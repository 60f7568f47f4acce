package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultPaymentWindow рекомендованное время на оплату заказа покупателем.
const DefaultPaymentWindow = 15 * time.Minute

type transitionKey struct {
	from   OrderStatus
	action OrderAction
}

// orderTransitions полная таблица переходов заказа. Все, чего здесь нет, запрещено.
var orderTransitions = map[transitionKey]OrderStatus{
	{OrderStatusCreated, OrderActionMarkPaid}: OrderStatusPaid,
	{OrderStatusPaid, OrderActionRelease}:     OrderStatusCompleted,
	{OrderStatusCreated, OrderActionCancel}:   OrderStatusCancelled,
	{OrderStatusCreated, OrderActionDispute}:  OrderStatusDispute,
	{OrderStatusPaid, OrderActionDispute}:     OrderStatusDispute,
	{OrderStatusDispute, OrderActionResolve}:  OrderStatusResolved,
}

// NextOrderStatus возвращает статус, в который переходит заказ из from при действии action,
// или *IllegalTransitionError.
func NextOrderStatus(from OrderStatus, action OrderAction) (OrderStatus, error) {
	to, ok := orderTransitions[transitionKey{from: from, action: action}]
	if !ok {
		return "", NewIllegalTransitionError(from, action)
	}
	return to, nil
}

func (o *Order) IsParty(userID int64) bool {
	return userID == o.BuyerID || userID == o.SellerID
}

// CryptoAmount считает сумму в USDT для фиатной суммы fiat по курсу rate. Результат усекается до CryptoScale
// знаков, чтобы в эскроу никогда не блокировалось больше, чем оплачено.
func CryptoAmount(fiat, rate decimal.Decimal) decimal.Decimal {
	if !rate.IsPositive() {
		return decimal.Zero
	}
	q, _ := fiat.QuoRem(rate, CryptoScale)
	return q
}
