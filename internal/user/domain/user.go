package domain

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Roles
const (
	RoleCustomer   = "customer"
	RoleAdmin      = "admin"
	RoleTechnician = "technician"
)

// Account types
const (
	AccountIndividual = "individual"
	AccountBusiness   = "business"
)

// SupportedCountryCode is the only dialling code accepted at signup.
const SupportedCountryCode = "+254"

const minPasswordLength = 8

var kenyanPhone = regexp.MustCompile(`^\+254[0-9]{9}$`)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is deactivated")
	ErrUnsupportedCountry = errors.New("unsupported country code")
	ErrInvalidPhone       = errors.New("invalid phone number")
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors carries every field rejected during signup.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// User represents the user entity (domain model)
type User struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Username    string         `json:"username" gorm:"uniqueIndex;not null"`
	Password    string         `json:"-" gorm:"not null"`
	Role        string         `json:"role" gorm:"not null;default:'customer'"`
	Email       string         `json:"email,omitempty"`
	PhoneNumber string         `json:"phoneNumber,omitempty"`
	AccountType string         `json:"accountType" gorm:"not null;default:'individual'"`
	CompanyName string         `json:"companyName,omitempty"`
	IsActive    bool           `json:"isActive" gorm:"default:true"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ValidRole reports whether role is one of the platform roles.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleAdmin, RoleTechnician:
		return true
	}
	return false
}

// Registration is a signup request before hashing. PhoneNumber holds the
// local part; the country code is prepended by Validate.
type Registration struct {
	Username    string
	Password    string
	Email       string
	CountryCode string
	PhoneNumber string
	Role        string
	AccountType string
	CompanyName string
}

// Validate normalises the registration and returns the full phone number.
// Country and phone checks run first and yield their own errors so callers
// can surface the dedicated messages.
func (r *Registration) Validate() (string, error) {
	if r.CountryCode != SupportedCountryCode {
		return "", ErrUnsupportedCountry
	}
	phone := r.CountryCode + strings.TrimPrefix(strings.TrimSpace(r.PhoneNumber), r.CountryCode)
	if !kenyanPhone.MatchString(phone) {
		return "", ErrInvalidPhone
	}

	r.Username = strings.TrimSpace(r.Username)
	if r.Role == "" {
		r.Role = RoleCustomer
	}
	if r.AccountType == "" {
		r.AccountType = AccountIndividual
	}

	var errs ValidationErrors
	if r.Username == "" {
		errs = append(errs, FieldError{Field: "username", Message: "Required"})
	}
	switch {
	case r.Password == "":
		errs = append(errs, FieldError{Field: "password", Message: "Required"})
	case len(r.Password) < minPasswordLength:
		errs = append(errs, FieldError{Field: "password", Message: "Must be at least 8 characters"})
	}
	if !ValidRole(r.Role) {
		errs = append(errs, FieldError{Field: "role", Message: "Must be one of customer, admin, technician"})
	}
	switch r.AccountType {
	case AccountIndividual:
	case AccountBusiness:
		if strings.TrimSpace(r.CompanyName) == "" {
			errs = append(errs, FieldError{Field: "companyName", Message: "Required for business accounts"})
		}
	default:
		errs = append(errs, FieldError{Field: "accountType", Message: "Must be individual or business"})
	}
	if len(errs) > 0 {
		return "", errs
	}
	return phone, nil
}

// UserFilter narrows a user listing. Zero values mean no filter.
type UserFilter struct {
	Role   string
	Limit  int
	Offset int
}

// UserStats summarises accounts by role and activation.
type UserStats struct {
	Total       int64 `json:"total_users"`
	Customers   int64 `json:"customer_count"`
	Admins      int64 `json:"admin_count"`
	Technicians int64 `json:"technician_count"`
	Active      int64 `json:"active_users"`
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindAll(ctx context.Context, filter UserFilter) ([]User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, role string) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}
