package command

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/skavtech/ict-platform/internal/catalog/domain"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Name           string
	Brand          string
	Category       domain.Category
	Condition      domain.Condition
	Price          float64
	OriginalPrice  *float64
	Description    string
	Specifications json.RawMessage
	WarrantyYears  *int
	StockQuantity  int
	ImageURL       string
	IsActive       *bool
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command. Warranty defaults to one
// year and new products are active unless stated otherwise.
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	// Warranty defaults to one year
	product := &domain.Product{
		Name:           cmd.Name,
		Brand:          cmd.Brand,
		Category:       cmd.Category,
		Condition:      cmd.Condition,
		Price:          cmd.Price,
		OriginalPrice:  cmd.OriginalPrice,
		Description:    cmd.Description,
		Specifications: datatypes.JSON(cmd.Specifications),
		WarrantyYears:  1,
		StockQuantity:  cmd.StockQuantity,
		ImageURL:       cmd.ImageURL,
		IsActive:       true,
	}
	if cmd.WarrantyYears != nil {
		product.WarrantyYears = *cmd.WarrantyYears
	}
	if cmd.IsActive != nil {
		product.IsActive = *cmd.IsActive
	}

	// Validation
	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := h.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
