package query

import (
	"context"
	"fmt"

	"github.com/skavtech/ict-platform/internal/user/domain"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// ListUsersQuery represents the query to list users
type ListUsersQuery struct {
	Role   string
	Limit  int
	Offset int
}

// ListUsersHandler handles list users query
type ListUsersHandler struct {
	repo domain.UserRepository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(repo domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle executes the list users query
func (h *ListUsersHandler) Handle(ctx context.Context, query ListUsersQuery) ([]domain.User, error) {
	// Validation
	if query.Role != "" && !domain.ValidRole(query.Role) {
		return nil, domain.ValidationErrors{{Field: "role", Message: "Must be one of customer, admin, technician"}}
	}

	// Apply pagination defaults
	limit := query.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	limit = min(limit, maxPageSize)

	users, err := h.repo.FindAll(ctx, domain.UserFilter{
		Role:   query.Role,
		Limit:  limit,
		Offset: max(query.Offset, 0),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}
