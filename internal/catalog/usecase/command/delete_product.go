package command

import (
	"context"
	"fmt"

	"github.com/skavtech/ict-platform/internal/catalog/domain"
)

type DeleteProductCommand struct {
	ID uint
}

type DeleteProductHandler struct {
	repo domain.ProductRepository
}

func NewDeleteProductHandler(repo domain.ProductRepository) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo}
}

// Handle soft deletes the product.
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	// Validation
	if cmd.ID == 0 {
		return fmt.Errorf("%w: invalid product id", domain.ErrInvalidProduct)
	}

	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
