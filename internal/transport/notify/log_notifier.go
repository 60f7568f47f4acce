package notify

import (
	"context"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/sirupsen/logrus"
)

// LogNotifier пишет события в лог. Используется, когда брокер не настроен.
type LogNotifier struct {
	l *logrus.Entry
}

func NewLogNotifier(l *logrus.Logger) *LogNotifier {
	return &LogNotifier{
		l: l.WithFields(logrus.Fields{
			"component": "notify",
			"module":    "log",
		}),
	}
}

func (n *LogNotifier) Publish(_ context.Context, event domain.Event) error {
	fields := logrus.Fields{
		"event":   event.Type,
		"orderID": event.OrderID,
		"status":  event.Status,
	}
	if event.ActorID != 0 {
		fields["actorID"] = event.ActorID
	}
	n.l.WithFields(fields).Info("order event")
	return nil
}
