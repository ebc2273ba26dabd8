package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/skavtech/ict-platform/internal/catalog/domain"
)

// MemoryProductRepository keeps products in process. It backs offline
// tooling and tests.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	nextID   uint
	products map[uint]domain.Product
}

func NewMemoryProductRepository(seed ...domain.Product) *MemoryProductRepository {
	r := &MemoryProductRepository{products: make(map[uint]domain.Product)}
	for _, p := range seed {
		_ = r.Create(context.Background(), &p)
	}
	return r
}

func (r *MemoryProductRepository) Create(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		r.nextID++
		product.ID = r.nextID
	} else if product.ID > r.nextID {
		r.nextID = product.ID
	}
	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now
	r.products[product.ID] = *product
	return nil
}

func (r *MemoryProductRepository) FindByID(_ context.Context, id uint) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

func (r *MemoryProductRepository) FindByIDs(_ context.Context, ids []uint) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok && p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *MemoryProductRepository) FindAll(_ context.Context, filter domain.ListFilter) ([]domain.Product, error) {
	matched := r.matching(filter)
	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return []domain.Product{}, nil
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (r *MemoryProductRepository) Count(_ context.Context, filter domain.ListFilter) (int64, error) {
	return int64(len(r.matching(filter))), nil
}

func (r *MemoryProductRepository) Update(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	product.UpdatedAt = time.Now()
	r.products[product.ID] = *product
	return nil
}

func (r *MemoryProductRepository) UpdateStock(_ context.Context, id uint, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.StockQuantity = stock
	p.UpdatedAt = time.Now()
	r.products[id] = p
	return nil
}

func (r *MemoryProductRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

// matching returns the filtered products ordered by id.
func (r *MemoryProductRepository) matching(filter domain.ListFilter) []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.ActiveOnly && !p.IsActive {
			continue
		}
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b domain.Product) int { return int(a.ID) - int(b.ID) })
	return out
}
