package query

import (
	"context"
	"fmt"

	"github.com/skavtech/ict-platform/internal/catalog/domain"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ListProductsQuery represents the query to list catalog products
type ListProductsQuery struct {
	Limit  int
	Offset int
	// Category filter; empty or "all" lists every category.
	Category        string
	IncludeInactive bool
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Products []domain.Product `json:"products"`
	Total    int64            `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ctx context.Context, q ListProductsQuery) (*ProductPage, error) {
	if q.Limit <= 0 {
		q.Limit = defaultListLimit
	}
	if q.Limit > maxListLimit {
		q.Limit = maxListLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	filter := domain.ListFilter{
		ActiveOnly: !q.IncludeInactive,
		Limit:      q.Limit,
		Offset:     q.Offset,
	}
	if q.Category != "" && q.Category != "all" {
		category := domain.Category(q.Category)
		if !category.Valid() {
			return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidProduct, q.Category)
		}
		filter.Category = category
	}

	products, err := h.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	total, err := h.repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	if products == nil {
		products = []domain.Product{}
	}
	return &ProductPage{
		Products: products,
		Total:    total,
		Limit:    q.Limit,
		Offset:   q.Offset,
	}, nil
}
