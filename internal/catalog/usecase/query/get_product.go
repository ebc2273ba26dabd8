package query

import (
	"context"

	"github.com/skavtech/ict-platform/internal/catalog/domain"
)

type GetProductQuery struct {
	ID uint
}

type GetProductHandler struct {
	repo domain.ProductRepository
}

func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.Product, error) {
	if q.ID == 0 {
		return nil, domain.ErrProductNotFound
	}
	return h.repo.FindByID(ctx, q.ID)
}
