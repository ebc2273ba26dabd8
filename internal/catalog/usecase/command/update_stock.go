package command

import (
	"context"
	"fmt"

	"github.com/skavtech/ict-platform/internal/catalog/domain"
)

// UpdateStockCommand represents the command to update product stock
type UpdateStockCommand struct {
	ProductID uint
	Stock     int
}

// UpdateStockHandler handles stock update command
type UpdateStockHandler struct {
	repo domain.ProductRepository
}

// NewUpdateStockHandler creates a new update stock handler
func NewUpdateStockHandler(repo domain.ProductRepository) *UpdateStockHandler {
	return &UpdateStockHandler{repo: repo}
}

// Handle executes the update stock command
func (h *UpdateStockHandler) Handle(ctx context.Context, cmd UpdateStockCommand) error {
	// Validation
	if cmd.ProductID == 0 {
		return fmt.Errorf("%w: invalid product id", domain.ErrInvalidProduct)
	}
	if cmd.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", domain.ErrInvalidProduct)
	}

	if err := h.repo.UpdateStock(ctx, cmd.ProductID, cmd.Stock); err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}

	return nil
}
