package command

import (
	"context"
	"fmt"
	"time"

	"github.com/skavtech/ict-platform/internal/servicedesk/domain"
	"github.com/skavtech/ict-platform/pkg/logger"
)

type CreateRepairCommand struct {
	Ticket domain.RepairTicket
}

type CreateRepairHandler struct {
	repo domain.RepairTicketRepository
	now  func() time.Time
}

func NewCreateRepairHandler(repo domain.RepairTicketRepository) *CreateRepairHandler {
	return &CreateRepairHandler{repo: repo, now: time.Now}
}

// Handle opens a ticket. Status and history sent by the client are replaced.
func (h *CreateRepairHandler) Handle(ctx context.Context, cmd CreateRepairCommand) (*domain.RepairTicket, error) {
	ticket := cmd.Ticket
	ticket.ID = 0
	if err := ticket.Open(h.now()); err != nil {
		return nil, err
	}
	if err := h.repo.Create(ctx, &ticket); err != nil {
		return nil, fmt.Errorf("failed to create repair ticket: %w", err)
	}

	logger.Info(ctx).
		Str("ticket_id", ticket.TicketID).
		Str("serial_number", ticket.SerialNumber).
		Msg("Repair ticket opened")
	return &ticket, nil
}

type UpdateRepairStatusCommand struct {
	TicketID string
	Status   string
	Notes    string
}

type UpdateRepairStatusHandler struct {
	repo domain.RepairTicketRepository
	now  func() time.Time
}

func NewUpdateRepairStatusHandler(repo domain.RepairTicketRepository) *UpdateRepairStatusHandler {
	return &UpdateRepairStatusHandler{repo: repo, now: time.Now}
}

func (h *UpdateRepairStatusHandler) Handle(ctx context.Context, cmd UpdateRepairStatusCommand) (*domain.RepairTicket, error) {
	// Validation
	status, ok := domain.ParseRepairStatus(cmd.Status)
	if !ok {
		return nil, domain.ValidationErrors{{
			Field:   "status",
			Message: "Status must be received, diagnosed, in_progress, qc, or completed",
		}}
	}

	// Find ticket
	ticket, err := h.repo.FindByTicketID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	// Append history entry
	ticket.Record(status, cmd.Notes, h.now())
	if err := h.repo.Update(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to update repair ticket: %w", err)
	}

	logger.Info(ctx).
		Str("ticket_id", ticket.TicketID).
		Str("status", string(status)).
		Msg("Repair ticket status updated")
	return ticket, nil
}
