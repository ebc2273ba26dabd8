package query

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/skavtech/ict-platform/internal/catalog/domain"
)

// GetStatsQuery represents the query to get catalog statistics
type GetStatsQuery struct{}

// CatalogStats summarises the catalog.
type CatalogStats struct {
	TotalProducts  int64                      `json:"totalProducts"`
	ActiveProducts int64                      `json:"activeProducts"`
	OutOfStock     int64                      `json:"outOfStock"`
	TotalStock     int64                      `json:"totalStock"`
	AveragePrice   float64                    `json:"averagePrice"`
	InventoryValue float64                    `json:"inventoryValue"`
	ByCategory     map[domain.Category]int64  `json:"byCategory"`
	ByCondition    map[domain.Condition]int64 `json:"byCondition"`
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	repo domain.ProductRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.ProductRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(ctx context.Context, _ GetStatsQuery) (*CatalogStats, error) {
	products, err := h.repo.FindAll(ctx, domain.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	stats := &CatalogStats{
		TotalProducts: int64(len(products)),
		ByCategory:    make(map[domain.Category]int64),
		ByCondition:   make(map[domain.Condition]int64),
	}

	totalPrice := decimal.Zero
	inventory := decimal.Zero
	for _, p := range products {
		price := decimal.NewFromFloat(p.Price)
		if p.IsActive {
			stats.ActiveProducts++
		}
		if p.StockQuantity <= 0 {
			stats.OutOfStock++
		}
		stats.TotalStock += int64(p.StockQuantity)
		stats.ByCategory[p.Category]++
		stats.ByCondition[p.Condition]++
		totalPrice = totalPrice.Add(price)
		inventory = inventory.Add(price.Mul(decimal.NewFromInt(int64(p.StockQuantity))))
	}

	if len(products) > 0 {
		stats.AveragePrice = totalPrice.Div(decimal.NewFromInt(int64(len(products)))).Round(2).InexactFloat64()
	}
	stats.InventoryValue = inventory.Round(2).InexactFloat64()

	return stats, nil
}
