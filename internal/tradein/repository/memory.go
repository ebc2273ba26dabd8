package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/skavtech/ict-platform/internal/tradein/domain"
)

// MemoryTradeInRepository keeps quotes in process, for tests.
type MemoryTradeInRepository struct {
	mu       sync.RWMutex
	nextID   uint
	tradeIns map[uint]domain.TradeIn
	now      func() time.Time
}

func NewMemoryTradeInRepository() *MemoryTradeInRepository {
	return &MemoryTradeInRepository{
		tradeIns: make(map[uint]domain.TradeIn),
		now:      time.Now,
	}
}

func (r *MemoryTradeInRepository) Create(_ context.Context, tradeIn *domain.TradeIn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	tradeIn.ID = r.nextID
	now := r.now()
	tradeIn.CreatedAt, tradeIn.UpdatedAt = now, now
	r.tradeIns[tradeIn.ID] = *tradeIn
	return nil
}

func (r *MemoryTradeInRepository) FindByID(_ context.Context, id uint) (*domain.TradeIn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tradeIns[id]
	if !ok {
		return nil, domain.ErrTradeInNotFound
	}
	return &t, nil
}

func (r *MemoryTradeInRepository) FindAll(_ context.Context, filter domain.ListFilter) ([]domain.TradeIn, error) {
	matched := r.matching(filter)
	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return []domain.TradeIn{}, nil
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (r *MemoryTradeInRepository) Count(_ context.Context, filter domain.ListFilter) (int64, error) {
	return int64(len(r.matching(filter))), nil
}

func (r *MemoryTradeInRepository) Update(_ context.Context, tradeIn *domain.TradeIn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tradeIns[tradeIn.ID]; !ok {
		return domain.ErrTradeInNotFound
	}
	tradeIn.UpdatedAt = r.now()
	r.tradeIns[tradeIn.ID] = *tradeIn
	return nil
}

// matching returns the filtered quotes newest first.
func (r *MemoryTradeInRepository) matching(filter domain.ListFilter) []domain.TradeIn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.TradeIn, 0, len(r.tradeIns))
	for _, t := range r.tradeIns {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b domain.TradeIn) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return int(b.ID) - int(a.ID)
	})
	return out
}
