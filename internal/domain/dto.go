package domain

type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "CREATED"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusDispute   OrderStatus = "DISPUTE"
	OrderStatusResolved  OrderStatus = "RESOLVED"
)

// IsTerminal сообщает, что из статуса больше нет переходов.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled || s == OrderStatusResolved
}

type OrderAction string

const (
	OrderActionMarkPaid OrderAction = "mark_paid"
	OrderActionRelease  OrderAction = "release"
	OrderActionCancel   OrderAction = "cancel"
	OrderActionDispute  OrderAction = "dispute"
	OrderActionResolve  OrderAction = "resolve"
)

type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

type AdStatus string

const (
	AdStatusActive   AdStatus = "ACTIVE"
	AdStatusPaused   AdStatus = "PAUSED"
	AdStatusFinished AdStatus = "FINISHED"
)

type LedgerEntryKind string

const (
	LedgerEntryLock         LedgerEntryKind = "LOCK"
	LedgerEntryUnlock       LedgerEntryKind = "UNLOCK"
	LedgerEntrySettleDebit  LedgerEntryKind = "SETTLE_DEBIT"
	LedgerEntrySettleCredit LedgerEntryKind = "SETTLE_CREDIT"
)

type EventType string

const (
	EventOrderCreated   EventType = "order.created"
	EventOrderPaid      EventType = "order.paid"
	EventOrderCompleted EventType = "order.completed"
	EventOrderCancelled EventType = "order.cancelled"
	EventOrderDispute   EventType = "order.dispute"
	EventOrderResolved  EventType = "order.resolved"
	EventChatMessage    EventType = "chat.message"
)

var statusEvents = map[OrderStatus]EventType{
	OrderStatusCreated:   EventOrderCreated,
	OrderStatusPaid:      EventOrderPaid,
	OrderStatusCompleted: EventOrderCompleted,
	OrderStatusCancelled: EventOrderCancelled,
	OrderStatusDispute:   EventOrderDispute,
	OrderStatusResolved:  EventOrderResolved,
}

// EventForStatus возвращает тип события, публикуемого при переходе заказа в статус s.
func EventForStatus(s OrderStatus) EventType {
	return statusEvents[s]
}

type AuditAction string

const (
	AuditActionDispute AuditAction = "dispute"
	AuditActionResolve AuditAction = "resolve"
)

type Bank string

const (
	BankPagoMovil        Bank = "PAGO_MOVIL"
	BankBanesco          Bank = "BANESCO"
	BankMercantil        Bank = "MERCANTIL"
	BankBBVAProvincial   Bank = "BBVA_PROVINCIAL"
	BankBancoDeVenezuela Bank = "BANCO_DE_VENEZUELA"
	BankBNC              Bank = "BNC"
	BankBancamiga        Bank = "BANCAMIGA"
)

// SupportedBanks список банков, реквизиты которых принимаются платформой.
var SupportedBanks = []Bank{
	BankPagoMovil,
	BankBanesco,
	BankMercantil,
	BankBBVAProvincial,
	BankBancoDeVenezuela,
	BankBNC,
	BankBancamiga,
}

func IsSupportedBank(name string) bool {
	for _, b := range SupportedBanks {
		if string(b) == name {
			return true
		}
	}
	return false
}
