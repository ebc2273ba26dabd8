package query

import (
	"context"
	"strings"
	"time"

	"github.com/skavtech/ict-platform/internal/servicedesk/domain"
)

type LookupWarrantyQuery struct {
	SerialNumber string
}

type LookupWarrantyHandler struct {
	repo domain.WarrantyRepository
	now  func() time.Time
}

func NewLookupWarrantyHandler(repo domain.WarrantyRepository) *LookupWarrantyHandler {
	return &LookupWarrantyHandler{repo: repo, now: time.Now}
}

func (h *LookupWarrantyHandler) Handle(ctx context.Context, q LookupWarrantyQuery) (*domain.WarrantyLookup, error) {
	serial := strings.TrimSpace(q.SerialNumber)
	if serial == "" {
		return nil, domain.ErrWarrantyNotFound
	}
	warranty, err := h.repo.FindActiveBySerial(ctx, serial)
	if err != nil {
		return nil, err
	}
	lookup := warranty.Lookup(h.now())
	return &lookup, nil
}
