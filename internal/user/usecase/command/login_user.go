package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/skavtech/ict-platform/internal/user/domain"
	"github.com/skavtech/ict-platform/pkg/auth"
)

// LoginUserCommand represents the command to login a user
type LoginUserCommand struct {
	Username string
	Password string
}

// LoginResult carries the issued token and the authenticated user
type LoginResult struct {
	Token string
	User  *domain.User
}

// LoginUserHandler handles user login command
type LoginUserHandler struct {
	repo domain.UserRepository
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(repo domain.UserRepository) *LoginUserHandler {
	return &LoginUserHandler{repo: repo}
}

// Handle checks the credentials and issues a JWT. Unknown usernames and
// wrong passwords both yield ErrInvalidCredentials.
func (h *LoginUserHandler) Handle(ctx context.Context, cmd LoginUserCommand) (*LoginResult, error) {
	// Validation
	if cmd.Username == "" || cmd.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	// Find user by username
	user, err := h.repo.FindByUsername(ctx, cmd.Username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	// Verify password
	if !auth.CheckPassword(user.Password, cmd.Password) {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrAccountDisabled
	}

	// Generate JWT token
	token, err := auth.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResult{Token: token, User: user}, nil
}
