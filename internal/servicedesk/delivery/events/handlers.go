// Package events binds trade-in lifecycle events to the service desk.
package events

import (
	"context"

	"github.com/skavtech/ict-platform/internal/servicedesk/usecase/command"
	"github.com/skavtech/ict-platform/kafka"
	"github.com/skavtech/ict-platform/pkg/logger"
)

// Registrar is satisfied by *kafka.Consumer.
type Registrar interface {
	RegisterHandler(eventType string, handler kafka.EventHandler)
}

// Register routes collected trade-ins to the intake board. Quotes are
// acknowledged without side effects.
func Register(consumer Registrar, intake *command.IntakeTradeInHandler) {
	consumer.RegisterHandler(kafka.EventTypeTradeInCollected, intake.Handle)
	consumer.RegisterHandler(kafka.EventTypeTradeInQuoted, func(ctx context.Context, event kafka.TradeInEvent) error {
		logger.Debug(ctx).
			Uint("trade_in_id", event.TradeInID).
			Msg("Trade-in quoted, nothing to receive yet")
		return nil
	})
}
