package query

import (
	"context"

	"github.com/skavtech/ict-platform/internal/servicedesk/domain"
)

type GetRepairQuery struct {
	TicketID string
}

type GetRepairHandler struct {
	repo domain.RepairTicketRepository
}

func NewGetRepairHandler(repo domain.RepairTicketRepository) *GetRepairHandler {
	return &GetRepairHandler{repo: repo}
}

func (h *GetRepairHandler) Handle(ctx context.Context, q GetRepairQuery) (*domain.RepairTicket, error) {
	return h.repo.FindByTicketID(ctx, q.TicketID)
}
