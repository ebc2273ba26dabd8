package command

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"

	"github.com/skavtech/ict-platform/internal/catalog/domain"
	"github.com/skavtech/ict-platform/internal/catalog/repository"
)

func ptr[T any](v T) *T { return &v }

func validCreate() CreateProductCommand {
	return CreateProductCommand{
		Name:           "HP EliteDesk 800 G6",
		Brand:          "HP",
		Category:       domain.CategoryDesktops,
		Condition:      domain.ConditionRefurbished,
		Price:          549,
		OriginalPrice:  ptr(899.0),
		Specifications: json.RawMessage(`{"processor":"Intel Core i5-10500","ram":"16GB DDR4"}`),
		StockQuantity:  12,
	}
}

func TestCreateProductDefaults(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryProductRepository()

	product, err := NewCreateProductHandler(repo).Handle(ctx, validCreate())
	assert.NoError(t, err)

	check.Equal(t, uint(1), product.ID)
	check.Equal(t, 1, product.WarrantyYears)
	check.True(t, product.IsActive)

	stored, err := repo.FindByID(ctx, product.ID)
	assert.NoError(t, err)
	check.Equal(t, "HP EliteDesk 800 G6", stored.Name)
	check.Equal(t, "processor: Intel Core i5-10500, ram: 16GB DDR4", domain.FormatSpecifications(stored.Specifications))
}

func TestCreateProductExplicitWarrantyAndInactive(t *testing.T) {
	cmd := validCreate()
	cmd.WarrantyYears = ptr(0)
	cmd.IsActive = ptr(false)

	product, err := NewCreateProductHandler(repository.NewMemoryProductRepository()).Handle(context.Background(), cmd)
	assert.NoError(t, err)
	check.Equal(t, 0, product.WarrantyYears)
	check.False(t, product.IsActive)
}

func TestCreateProductValidation(t *testing.T) {
	cmd := validCreate()
	cmd.OriginalPrice = ptr(100.0)

	_, err := NewCreateProductHandler(repository.NewMemoryProductRepository()).Handle(context.Background(), cmd)
	check.True(t, errors.Is(err, domain.ErrInvalidProduct))
}

func TestUpdateProductPartial(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryProductRepository()
	created, err := NewCreateProductHandler(repo).Handle(ctx, validCreate())
	assert.NoError(t, err)

	updated, err := NewUpdateProductHandler(repo).Handle(ctx, UpdateProductCommand{
		ID:            created.ID,
		Price:         ptr(499.0),
		WarrantyYears: ptr(2),
	})
	assert.NoError(t, err)
	check.Equal(t, 499.0, updated.Price)
	check.Equal(t, 2, updated.WarrantyYears)
	check.Equal(t, "HP", updated.Brand)
	assert.NotNil(t, updated.OriginalPrice)
	check.Equal(t, 899.0, *updated.OriginalPrice)

	cleared, err := NewUpdateProductHandler(repo).Handle(ctx, UpdateProductCommand{ID: created.ID, ClearOriginal: true})
	assert.NoError(t, err)
	check.True(t, cleared.OriginalPrice == nil)
}

func TestUpdateProductErrors(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryProductRepository()
	h := NewUpdateProductHandler(repo)

	_, err := h.Handle(ctx, UpdateProductCommand{ID: 7})
	check.True(t, errors.Is(err, domain.ErrProductNotFound))

	created, err := NewCreateProductHandler(repo).Handle(ctx, validCreate())
	assert.NoError(t, err)
	_, err = h.Handle(ctx, UpdateProductCommand{ID: created.ID, Category: ptr(domain.Category("phones"))})
	check.True(t, errors.Is(err, domain.ErrInvalidProduct))
}

func TestUpdateStock(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryProductRepository()
	created, err := NewCreateProductHandler(repo).Handle(ctx, validCreate())
	assert.NoError(t, err)

	h := NewUpdateStockHandler(repo)
	assert.NoError(t, h.Handle(ctx, UpdateStockCommand{ProductID: created.ID, Stock: 3}))

	stored, err := repo.FindByID(ctx, created.ID)
	assert.NoError(t, err)
	check.Equal(t, 3, stored.StockQuantity)

	check.True(t, errors.Is(h.Handle(ctx, UpdateStockCommand{ProductID: created.ID, Stock: -1}), domain.ErrInvalidProduct))
	check.True(t, errors.Is(h.Handle(ctx, UpdateStockCommand{ProductID: 99, Stock: 1}), domain.ErrProductNotFound))
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryProductRepository()
	created, err := NewCreateProductHandler(repo).Handle(ctx, validCreate())
	assert.NoError(t, err)

	h := NewDeleteProductHandler(repo)
	assert.NoError(t, h.Handle(ctx, DeleteProductCommand{ID: created.ID}))
	check.True(t, errors.Is(h.Handle(ctx, DeleteProductCommand{ID: created.ID}), domain.ErrProductNotFound))
}
