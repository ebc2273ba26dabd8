package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/skavtech/ict-platform/internal/user/domain"
)

var tracer = otel.Tracer("user-repository")

// TracingUserRepository wraps a UserRepository with a span per call
type TracingUserRepository struct {
	next domain.UserRepository
}

// NewTracingUserRepository creates a new repository with tracing
func NewTracingUserRepository(next domain.UserRepository) *TracingUserRepository {
	return &TracingUserRepository{next: next}
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (r *TracingUserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("user.username", user.Username),
			attribute.String("user.role", user.Role),
		),
	)
	err := r.next.Create(ctx, user)
	if err == nil {
		span.SetAttributes(attribute.Int("user.id", int(user.ID)))
	}
	finish(span, err)
	return err
}

func (r *TracingUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("user.id", int(id))),
	)
	user, err := r.next.FindByID(ctx, id)
	finish(span, err)
	return user, err
}

func (r *TracingUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByUsername",
		trace.WithAttributes(attribute.String("user.username", username)),
	)
	user, err := r.next.FindByUsername(ctx, username)
	finish(span, err)
	return user, err
}

func (r *TracingUserRepository) FindAll(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.String("filter.role", filter.Role),
			attribute.Int("filter.limit", filter.Limit),
			attribute.Int("filter.offset", filter.Offset),
		),
	)
	users, err := r.next.FindAll(ctx, filter)
	if err == nil {
		span.SetAttributes(attribute.Int("users.count", len(users)))
	}
	finish(span, err)
	return users, err
}

func (r *TracingUserRepository) Update(ctx context.Context, user *domain.User) error {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(attribute.Int("user.id", int(user.ID))),
	)
	err := r.next.Update(ctx, user)
	finish(span, err)
	return err
}

func (r *TracingUserRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.Int("user.id", int(id))),
	)
	err := r.next.Delete(ctx, id)
	finish(span, err)
	return err
}

func (r *TracingUserRepository) Count(ctx context.Context, role string) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.Count",
		trace.WithAttributes(attribute.String("filter.role", role)),
	)
	n, err := r.next.Count(ctx, role)
	finish(span, err)
	return n, err
}

func (r *TracingUserRepository) CountActive(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.CountActive")
	n, err := r.next.CountActive(ctx)
	finish(span, err)
	return n, err
}
