package command

import (
	"context"
	"fmt"

	"github.com/skavtech/ict-platform/internal/servicedesk/domain"
	"github.com/skavtech/ict-platform/pkg/logger"
)

type CreateWarrantyCommand struct {
	Warranty domain.Warranty
}

type CreateWarrantyHandler struct {
	repo domain.WarrantyRepository
}

func NewCreateWarrantyHandler(repo domain.WarrantyRepository) *CreateWarrantyHandler {
	return &CreateWarrantyHandler{repo: repo}
}

func (h *CreateWarrantyHandler) Handle(ctx context.Context, cmd CreateWarrantyCommand) (*domain.Warranty, error) {
	warranty := cmd.Warranty
	// Ids are always assigned by the store
	warranty.ID = 0
	if err := warranty.Validate(); err != nil {
		return nil, err
	}
	if err := h.repo.Create(ctx, &warranty); err != nil {
		return nil, fmt.Errorf("failed to create warranty: %w", err)
	}

	logger.Info(ctx).
		Str("serial_number", warranty.SerialNumber).
		Time("expiry_date", warranty.ExpiryDate).
		Msg("Warranty registered")
	return &warranty, nil
}
