package command

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"

	"github.com/skavtech/ict-platform/internal/tradein/domain"
	"github.com/skavtech/ict-platform/internal/tradein/repository"
	"github.com/skavtech/ict-platform/internal/tradein/valuation"
	"github.com/skavtech/ict-platform/kafka"
)

type fixedJitter float64

func (f fixedJitter) Float64() float64 { return float64(f) }

type recordingPublisher struct {
	mu     sync.Mutex
	events []kafka.TradeInEvent
	err    error
}

func (p *recordingPublisher) PublishTradeInEvent(_ context.Context, event kafka.TradeInEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func macbook() valuation.RawRequest {
	return valuation.RawRequest{DeviceType: "laptop", Brand: "Apple", Model: "MacBook Pro 14", Age: "0-1", Condition: "excellent"}
}

func TestCreateTradeInRecomputesEstimate(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryTradeInRepository()
	pub := &recordingPublisher{}
	h := NewCreateTradeInHandler(repo, valuation.NewEstimator(fixedJitter(0.5)), pub)

	tradeIn, err := h.Handle(ctx, CreateTradeInCommand{
		Request:  macbook(),
		Customer: domain.CustomerInfo{Name: "Otieno", Email: "otieno@example.co.ke"},
	})
	assert.NoError(t, err)

	check.Equal(t, uint(1), tradeIn.ID)
	check.Equal(t, int64(1030), tradeIn.EstimatedValue)
	check.Equal(t, domain.StatusQuoted, tradeIn.Status)
	check.False(t, tradeIn.PickupScheduled)

	assert.Equal(t, 1, len(pub.events))
	check.Equal(t, kafka.EventTypeTradeInQuoted, pub.events[0].EventType)
	check.Equal(t, uint(1), pub.events[0].TradeInID)
	check.Equal(t, "otieno@example.co.ke", pub.events[0].CustomerEmail)
}

func TestCreateTradeInValidation(t *testing.T) {
	pub := &recordingPublisher{}
	h := NewCreateTradeInHandler(repository.NewMemoryTradeInRepository(), valuation.NewEstimator(fixedJitter(0.5)), pub)

	raw := macbook()
	raw.Condition = "mint"
	_, err := h.Handle(context.Background(), CreateTradeInCommand{Request: raw})

	var verrs valuation.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
	check.Equal(t, "condition", verrs[0].Field)
	check.Equal(t, 0, len(pub.events))
}

func TestCreateTradeInSurvivesPublishFailure(t *testing.T) {
	repo := repository.NewMemoryTradeInRepository()
	pub := &recordingPublisher{err: errors.New("broker down")}
	h := NewCreateTradeInHandler(repo, valuation.NewEstimator(fixedJitter(0.5)), pub)

	tradeIn, err := h.Handle(context.Background(), CreateTradeInCommand{Request: macbook()})
	assert.NoError(t, err)

	stored, err := repo.FindByID(context.Background(), tradeIn.ID)
	assert.NoError(t, err)
	check.Equal(t, int64(1030), stored.EstimatedValue)
}

func TestUpdateStatusPublishesCollected(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryTradeInRepository()
	pub := &recordingPublisher{}
	created, err := NewCreateTradeInHandler(repo, valuation.NewEstimator(fixedJitter(0.5)), pub).
		Handle(ctx, CreateTradeInCommand{Request: macbook()})
	assert.NoError(t, err)

	h := NewUpdateStatusHandler(repo, pub)

	scheduled, err := h.Handle(ctx, UpdateStatusCommand{ID: created.ID, Status: "scheduled"})
	assert.NoError(t, err)
	check.True(t, scheduled.PickupScheduled)
	check.Equal(t, 1, len(pub.events))

	_, err = h.Handle(ctx, UpdateStatusCommand{ID: created.ID, Status: "collected"})
	assert.NoError(t, err)
	assert.Equal(t, 2, len(pub.events))
	check.Equal(t, kafka.EventTypeTradeInCollected, pub.events[1].EventType)
	check.Equal(t, "collected", pub.events[1].Status)
	check.Equal(t, int64(1030), pub.events[1].EstimatedValue)

	_, err = h.Handle(ctx, UpdateStatusCommand{ID: created.ID, Status: "processed"})
	assert.NoError(t, err)
	check.Equal(t, 2, len(pub.events))

	stored, err := repo.FindByID(ctx, created.ID)
	assert.NoError(t, err)
	check.Equal(t, domain.StatusProcessed, stored.Status)
}

func TestUpdateStatusSkippingCollectedStillPublishes(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryTradeInRepository()
	pub := &recordingPublisher{}
	created, err := NewCreateTradeInHandler(repo, valuation.NewEstimator(fixedJitter(0.5)), pub).
		Handle(ctx, CreateTradeInCommand{Request: macbook()})
	assert.NoError(t, err)

	_, err = NewUpdateStatusHandler(repo, pub).Handle(ctx, UpdateStatusCommand{ID: created.ID, Status: "processed"})
	assert.NoError(t, err)
	assert.Equal(t, 2, len(pub.events))
	check.Equal(t, kafka.EventTypeTradeInCollected, pub.events[1].EventType)
}

func TestUpdateStatusErrors(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryTradeInRepository()
	pub := &recordingPublisher{}
	h := NewUpdateStatusHandler(repo, pub)

	_, err := h.Handle(ctx, UpdateStatusCommand{ID: 1, Status: "collected"})
	check.True(t, errors.Is(err, domain.ErrTradeInNotFound))

	_, err = h.Handle(ctx, UpdateStatusCommand{ID: 1, Status: "lost"})
	check.True(t, errors.Is(err, domain.ErrInvalidStatus))

	created, err := NewCreateTradeInHandler(repo, valuation.NewEstimator(fixedJitter(0.5)), pub).
		Handle(ctx, CreateTradeInCommand{Request: macbook()})
	assert.NoError(t, err)

	_, err = h.Handle(ctx, UpdateStatusCommand{ID: created.ID, Status: "quoted"})
	check.True(t, errors.Is(err, domain.ErrInvalidStatusTransition))
}
