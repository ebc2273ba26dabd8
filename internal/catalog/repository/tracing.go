package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/skavtech/ict-platform/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// TracingProductRepository records a span around every call to the wrapped
// repository.
type TracingProductRepository struct {
	next domain.ProductRepository
}

func NewTracingProductRepository(next domain.ProductRepository) *TracingProductRepository {
	return &TracingProductRepository{next: next}
}

func (r *TracingProductRepository) Create(ctx context.Context, product *domain.Product) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("product.name", product.Name),
			attribute.String("product.brand", product.Brand),
			attribute.String("product.category", string(product.Category)),
			attribute.Float64("product.price", product.Price),
		),
	)
	defer span.End()

	if err := r.next.Create(ctx, product); err != nil {
		recordError(span, err)
		return err
	}
	span.SetAttributes(attribute.Int("product.id", int(product.ID)))
	return nil
}

func (r *TracingProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	product, err := r.next.FindByID(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(
		attribute.String("product.name", product.Name),
		attribute.Bool("product.is_active", product.IsActive),
	)
	return product, nil
}

func (r *TracingProductRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByIDs",
		trace.WithAttributes(attribute.Int("query.ids", len(ids))),
	)
	defer span.End()

	products, err := r.next.FindByIDs(ctx, ids)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

func (r *TracingProductRepository) FindAll(ctx context.Context, filter domain.ListFilter) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.String("query.category", string(filter.Category)),
			attribute.Int("query.limit", filter.Limit),
			attribute.Int("query.offset", filter.Offset),
		),
	)
	defer span.End()

	products, err := r.next.FindAll(ctx, filter)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

func (r *TracingProductRepository) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.Count")
	defer span.End()

	count, err := r.next.Count(ctx, filter)
	if err != nil {
		recordError(span, err)
		return 0, err
	}
	span.SetAttributes(attribute.Int64("result.count", count))
	return count, nil
}

func (r *TracingProductRepository) Update(ctx context.Context, product *domain.Product) error {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.Int("product.id", int(product.ID)),
			attribute.Float64("product.price", product.Price),
		),
	)
	defer span.End()

	if err := r.next.Update(ctx, product); err != nil {
		recordError(span, err)
		return err
	}
	return nil
}

func (r *TracingProductRepository) UpdateStock(ctx context.Context, id uint, stock int) error {
	ctx, span := tracer.Start(ctx, "repository.UpdateStock",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
			attribute.Int("stock.new_value", stock),
		),
	)
	defer span.End()

	if err := r.next.UpdateStock(ctx, id, stock); err != nil {
		recordError(span, err)
		return err
	}
	return nil
}

func (r *TracingProductRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	if err := r.next.Delete(ctx, id); err != nil {
		recordError(span, err)
		return err
	}
	return nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
