package command

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/skavtech/ict-platform/internal/catalog/domain"
)

// UpdateProductCommand carries a partial update; nil fields are left as is.
type UpdateProductCommand struct {
	ID             uint
	Name           *string
	Brand          *string
	Category       *domain.Category
	Condition      *domain.Condition
	Price          *float64
	OriginalPrice  *float64
	ClearOriginal  bool
	Description    *string
	Specifications json.RawMessage
	WarrantyYears  *int
	ImageURL       *string
	IsActive       *bool
}

type UpdateProductHandler struct {
	repo domain.ProductRepository
}

func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	// Validation
	if cmd.ID == 0 {
		return nil, fmt.Errorf("%w: invalid product id", domain.ErrInvalidProduct)
	}

	// Check if product exists
	product, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	// Update fields
	if cmd.Name != nil {
		product.Name = *cmd.Name
	}
	if cmd.Brand != nil {
		product.Brand = *cmd.Brand
	}
	if cmd.Category != nil {
		product.Category = *cmd.Category
	}
	if cmd.Condition != nil {
		product.Condition = *cmd.Condition
	}
	if cmd.Price != nil {
		product.Price = *cmd.Price
	}
	switch {
	case cmd.ClearOriginal:
		product.OriginalPrice = nil
	case cmd.OriginalPrice != nil:
		product.OriginalPrice = cmd.OriginalPrice
	}
	if cmd.Description != nil {
		product.Description = *cmd.Description
	}
	if cmd.Specifications != nil {
		product.Specifications = datatypes.JSON(cmd.Specifications)
	}
	if cmd.WarrantyYears != nil {
		product.WarrantyYears = *cmd.WarrantyYears
	}
	if cmd.ImageURL != nil {
		product.ImageURL = *cmd.ImageURL
	}
	if cmd.IsActive != nil {
		product.IsActive = *cmd.IsActive
	}

	// Re-validate the merged product
	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
