package query

import (
	"context"
	"fmt"

	"github.com/skavtech/ict-platform/internal/tradein/domain"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ListTradeInsQuery lists quotes newest first, optionally by status.
type ListTradeInsQuery struct {
	Status string
	Limit  int
	Offset int
}

type TradeInPage struct {
	TradeIns []domain.TradeIn `json:"tradeIns"`
	Total    int64            `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

type ListTradeInsHandler struct {
	repo domain.TradeInRepository
}

func NewListTradeInsHandler(repo domain.TradeInRepository) *ListTradeInsHandler {
	return &ListTradeInsHandler{repo: repo}
}

func (h *ListTradeInsHandler) Handle(ctx context.Context, q ListTradeInsQuery) (*TradeInPage, error) {
	if q.Limit <= 0 {
		q.Limit = defaultListLimit
	}
	if q.Limit > maxListLimit {
		q.Limit = maxListLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	filter := domain.ListFilter{Limit: q.Limit, Offset: q.Offset}
	if q.Status != "" {
		status, err := domain.ParseStatus(q.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}

	tradeIns, err := h.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list trade-ins: %w", err)
	}
	total, err := h.repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count trade-ins: %w", err)
	}
	if tradeIns == nil {
		tradeIns = []domain.TradeIn{}
	}

	return &TradeInPage{TradeIns: tradeIns, Total: total, Limit: q.Limit, Offset: q.Offset}, nil
}
