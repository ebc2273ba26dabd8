package query

import (
	"context"

	"github.com/skavtech/ict-platform/internal/tradein/domain"
)

type GetTradeInQuery struct {
	ID uint
}

type GetTradeInHandler struct {
	repo domain.TradeInRepository
}

func NewGetTradeInHandler(repo domain.TradeInRepository) *GetTradeInHandler {
	return &GetTradeInHandler{repo: repo}
}

func (h *GetTradeInHandler) Handle(ctx context.Context, q GetTradeInQuery) (*domain.TradeIn, error) {
	if q.ID == 0 {
		return nil, domain.ErrTradeInNotFound
	}
	return h.repo.FindByID(ctx, q.ID)
}
