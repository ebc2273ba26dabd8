package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/skavtech/ict-platform/internal/tradein/domain"
)

var tracer = otel.Tracer("tradein-repository")

// TracingTradeInRepository records a span around every repository call.
type TracingTradeInRepository struct {
	next domain.TradeInRepository
}

func NewTracingTradeInRepository(next domain.TradeInRepository) *TracingTradeInRepository {
	return &TracingTradeInRepository{next: next}
}

func (r *TracingTradeInRepository) Create(ctx context.Context, tradeIn *domain.TradeIn) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("tradein.device_type", string(tradeIn.DeviceType)),
			attribute.String("tradein.brand", tradeIn.Brand),
			attribute.Int64("tradein.estimated_value", tradeIn.EstimatedValue),
		),
	)
	defer span.End()

	if err := r.next.Create(ctx, tradeIn); err != nil {
		recordError(span, err)
		return err
	}
	span.SetAttributes(attribute.Int("tradein.id", int(tradeIn.ID)))
	return nil
}

func (r *TracingTradeInRepository) FindByID(ctx context.Context, id uint) (*domain.TradeIn, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("tradein.id", int(id))),
	)
	defer span.End()

	tradeIn, err := r.next.FindByID(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.String("tradein.status", string(tradeIn.Status)))
	return tradeIn, nil
}

func (r *TracingTradeInRepository) FindAll(ctx context.Context, filter domain.ListFilter) ([]domain.TradeIn, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.String("query.status", string(filter.Status)),
			attribute.Int("query.limit", filter.Limit),
			attribute.Int("query.offset", filter.Offset),
		),
	)
	defer span.End()

	tradeIns, err := r.next.FindAll(ctx, filter)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("result.count", len(tradeIns)))
	return tradeIns, nil
}

func (r *TracingTradeInRepository) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.Count")
	defer span.End()

	count, err := r.next.Count(ctx, filter)
	if err != nil {
		recordError(span, err)
		return 0, err
	}
	return count, nil
}

func (r *TracingTradeInRepository) Update(ctx context.Context, tradeIn *domain.TradeIn) error {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.Int("tradein.id", int(tradeIn.ID)),
			attribute.String("tradein.status", string(tradeIn.Status)),
		),
	)
	defer span.End()

	if err := r.next.Update(ctx, tradeIn); err != nil {
		recordError(span, err)
		return err
	}
	return nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
