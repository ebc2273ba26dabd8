package command

import (
	"context"
	"fmt"

	"github.com/skavtech/ict-platform/internal/tradein/domain"
	"github.com/skavtech/ict-platform/internal/tradein/valuation"
	"github.com/skavtech/ict-platform/kafka"
	"github.com/skavtech/ict-platform/pkg/logger"
)

// CreateTradeInCommand requests a stored quote. Any client side estimate
// is ignored; the value is always recomputed.
type CreateTradeInCommand struct {
	Request  valuation.RawRequest
	Customer domain.CustomerInfo
}

type CreateTradeInHandler struct {
	repo      domain.TradeInRepository
	estimator *valuation.Estimator
	publisher kafka.EventPublisher
}

func NewCreateTradeInHandler(repo domain.TradeInRepository, estimator *valuation.Estimator, publisher kafka.EventPublisher) *CreateTradeInHandler {
	return &CreateTradeInHandler{repo: repo, estimator: estimator, publisher: publisher}
}

// Handle prices the device and stores a pending quote.
func (h *CreateTradeInHandler) Handle(ctx context.Context, cmd CreateTradeInCommand) (*domain.TradeIn, error) {
	// Validation
	req, err := valuation.ParseRequest(cmd.Request)
	if err != nil {
		return nil, err
	}

	// Estimate and persist
	tradeIn := domain.NewTradeIn(h.estimator.Estimate(req), cmd.Customer)
	if err := h.repo.Create(ctx, tradeIn); err != nil {
		return nil, fmt.Errorf("failed to create trade-in: %w", err)
	}

	logger.Info(ctx).
		Uint("trade_in_id", tradeIn.ID).
		Str("brand", tradeIn.Brand).
		Str("model", tradeIn.Model).
		Int64("estimated_value", tradeIn.EstimatedValue).
		Msg("Trade-in quote created")

	publish(ctx, h.publisher, kafka.EventTypeTradeInQuoted, tradeIn)
	return tradeIn, nil
}

// publish emits the lifecycle event. The quote is already stored, so a
// broker failure is logged rather than returned.
func publish(ctx context.Context, publisher kafka.EventPublisher, eventType string, t *domain.TradeIn) {
	customer := t.CustomerInfo.Data()
	err := publisher.PublishTradeInEvent(ctx, kafka.TradeInEvent{
		EventType:      eventType,
		TradeInID:      t.ID,
		DeviceType:     string(t.DeviceType),
		Brand:          t.Brand,
		Model:          t.Model,
		Age:            string(t.Age),
		Condition:      string(t.Condition),
		EstimatedValue: t.EstimatedValue,
		Status:         string(t.Status),
		CustomerName:   customer.Name,
		CustomerEmail:  customer.Email,
		CustomerPhone:  customer.Phone,
	})
	if err != nil {
		logger.Error(ctx).
			Err(err).
			Str("event_type", eventType).
			Uint("trade_in_id", t.ID).
			Msg("Failed to publish trade-in event")
	}
}
