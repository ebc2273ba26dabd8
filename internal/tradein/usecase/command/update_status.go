package command

import (
	"context"
	"fmt"

	"github.com/skavtech/ict-platform/internal/tradein/domain"
	"github.com/skavtech/ict-platform/kafka"
	"github.com/skavtech/ict-platform/pkg/logger"
)

type UpdateStatusCommand struct {
	ID     uint
	Status string
}

type UpdateStatusHandler struct {
	repo      domain.TradeInRepository
	publisher kafka.EventPublisher
}

func NewUpdateStatusHandler(repo domain.TradeInRepository, publisher kafka.EventPublisher) *UpdateStatusHandler {
	return &UpdateStatusHandler{repo: repo, publisher: publisher}
}

// Handle advances the quote. Reaching or passing collected hands the
// device over to the service desk through a tradein.collected event.
func (h *UpdateStatusHandler) Handle(ctx context.Context, cmd UpdateStatusCommand) (*domain.TradeIn, error) {
	next, err := domain.ParseStatus(cmd.Status)
	if err != nil {
		return nil, err
	}

	tradeIn, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	previous := tradeIn.Status
	if err := tradeIn.Advance(next); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, tradeIn); err != nil {
		return nil, fmt.Errorf("failed to update trade-in: %w", err)
	}

	logger.Info(ctx).
		Uint("trade_in_id", tradeIn.ID).
		Str("from", string(previous)).
		Str("to", string(next)).
		Msg("Trade-in status updated")

	if !previous.AtLeast(domain.StatusCollected) && next.AtLeast(domain.StatusCollected) {
		publish(ctx, h.publisher, kafka.EventTypeTradeInCollected, tradeIn)
	}
	return tradeIn, nil
}
