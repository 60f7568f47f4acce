package notify

import (
	"time"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
)

type messagePayload struct {
	ID            int64     `json:"id"`
	SenderID      *int64    `json:"senderId,omitempty"`
	Text          string    `json:"text"`
	AttachmentURL *string   `json:"attachmentUrl,omitempty"`
	IsSystem      bool      `json:"isSystem"`
	CreatedAt     time.Time `json:"createdAt"`
}

// eventPayload тело сообщения, которое получают подписчики обменника.
type eventPayload struct {
	Type      domain.EventType   `json:"type"`
	OrderID   string             `json:"orderId"`
	NewStatus domain.OrderStatus `json:"newStatus,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	ActorID   int64              `json:"actorId,omitempty"`
	Message   *messagePayload    `json:"message,omitempty"`
}

func newEventPayload(event domain.Event) eventPayload {
	p := eventPayload{
		Type:      event.Type,
		OrderID:   event.OrderID,
		NewStatus: event.Status,
		Timestamp: event.Timestamp.UTC(),
		ActorID:   event.ActorID,
	}
	if p.Timestamp.IsZero() {
		p.Timestamp = time.Now().UTC()
	}
	if m := event.Message; m != nil {
		p.Message = &messagePayload{
			ID:            m.ID,
			SenderID:      m.SenderID,
			Text:          m.Text,
			AttachmentURL: m.AttachmentURL,
			IsSystem:      m.IsSystem,
			CreatedAt:     m.CreatedAt,
		}
	}
	return p
}
