package command

import (
	"context"
	"fmt"

	"github.com/skavtech/ict-platform/internal/user/domain"
	"github.com/skavtech/ict-platform/pkg/auth"
	"github.com/skavtech/ict-platform/pkg/logger"
)

// RegisterUserCommand represents the command to register a new user
type RegisterUserCommand struct {
	Username    string
	Password    string
	Email       string
	CountryCode string
	PhoneNumber string
	Role        string
	AccountType string
	CompanyName string
}

// RegisterUserHandler handles user registration command
type RegisterUserHandler struct {
	repo domain.UserRepository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

// Handle validates the signup, hashes the password and stores the account.
func (h *RegisterUserHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*domain.User, error) {
	reg := domain.Registration(cmd)
	// Validation
	phone, err := reg.Validate()
	if err != nil {
		return nil, err
	}

	// Hash password
	hashed, err := auth.HashPassword(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:    reg.Username,
		Password:    hashed,
		Role:        reg.Role,
		Email:       reg.Email,
		PhoneNumber: phone,
		AccountType: reg.AccountType,
		CompanyName: reg.CompanyName,
		IsActive:    true,
	}
	// Duplicate usernames surface as ErrUsernameTaken
	if err := h.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info(ctx).
		Uint("user_id", user.ID).
		Str("role", user.Role).
		Str("account_type", user.AccountType).
		Msg("User registered")
	return user, nil
}
