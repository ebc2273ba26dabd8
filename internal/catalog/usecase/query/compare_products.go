package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/skavtech/ict-platform/internal/catalog/comparison"
	"github.com/skavtech/ict-platform/internal/catalog/domain"
)

const (
	MinCompareProducts = 2
	MaxCompareProducts = 3
)

var (
	// ErrCompareSelection is returned for fewer than two or more than three ids.
	ErrCompareSelection = errors.New("between 2 and 3 product ids required")
	// ErrNotEnoughComparable is returned when fewer than two ids resolve.
	ErrNotEnoughComparable = errors.New("not enough valid products found")
)

type CompareProductsQuery struct {
	ProductIDs []uint
}

type CompareProductsHandler struct {
	repo domain.ProductRepository
}

func NewCompareProductsHandler(repo domain.ProductRepository) *CompareProductsHandler {
	return &CompareProductsHandler{repo: repo}
}

// Handle resolves the requested ids in request order and compares what
// resolves. Unknown or inactive ids are dropped; a repeated id is compared
// against itself.
func (h *CompareProductsHandler) Handle(ctx context.Context, q CompareProductsQuery) (*comparison.ProductComparison, error) {
	if len(q.ProductIDs) < MinCompareProducts || len(q.ProductIDs) > MaxCompareProducts {
		return nil, ErrCompareSelection
	}

	found, err := h.repo.FindByIDs(ctx, q.ProductIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	byID := make(map[uint]domain.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	products := make([]domain.Product, 0, len(q.ProductIDs))
	for _, id := range q.ProductIDs {
		if p, ok := byID[id]; ok {
			products = append(products, p)
		}
	}

	if len(products) < MinCompareProducts {
		return nil, ErrNotEnoughComparable
	}

	return comparison.Compare(products)
}
