package domain

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"gorm.io/datatypes"

	"github.com/skavtech/ict-platform/internal/tradein/valuation"
)

var (
	ErrTradeInNotFound         = errors.New("trade-in not found")
	ErrInvalidStatus           = errors.New("invalid trade-in status")
	ErrInvalidStatusTransition = errors.New("invalid trade-in status transition")
)

// Status is the lifecycle stage of a trade-in quote.
type Status string

const (
	StatusQuoted    Status = "quoted"
	StatusScheduled Status = "scheduled"
	StatusCollected Status = "collected"
	StatusProcessed Status = "processed"
)

// lifecycle is ordered; quotes only move forward through it.
var lifecycle = []Status{StatusQuoted, StatusScheduled, StatusCollected, StatusProcessed}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !slices.Contains(lifecycle, st) {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

// CanTransitionTo reports whether next lies strictly after s. Stages may be
// skipped.
func (s Status) CanTransitionTo(next Status) bool {
	from, to := slices.Index(lifecycle, s), slices.Index(lifecycle, next)
	return from >= 0 && to > from
}

// AtLeast reports whether s is other or a later stage.
func (s Status) AtLeast(other Status) bool {
	return slices.Index(lifecycle, s) >= slices.Index(lifecycle, other)
}

// CustomerInfo is the contact stored with a quote.
type CustomerInfo struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// TradeIn is a stored trade-in quote.
type TradeIn struct {
	ID              uint                             `json:"id" gorm:"primaryKey"`
	DeviceType      valuation.DeviceType             `json:"deviceType" gorm:"type:varchar(16);not null"`
	Brand           string                           `json:"brand" gorm:"not null"`
	Model           string                           `json:"model" gorm:"not null"`
	Age             valuation.AgeBucket              `json:"age" gorm:"type:varchar(8);not null"`
	Condition       valuation.Condition              `json:"condition" gorm:"type:varchar(16);not null"`
	EstimatedValue  int64                            `json:"estimatedValue" gorm:"not null"`
	CustomerInfo    datatypes.JSONType[CustomerInfo] `json:"customerInfo" swaggertype:"object"`
	PickupScheduled bool                             `json:"pickupScheduled" gorm:"default:false"`
	Status          Status                           `json:"status" gorm:"type:varchar(16);not null;default:quoted;index"`
	CreatedAt       time.Time                        `json:"createdAt"`
	UpdatedAt       time.Time                        `json:"updatedAt"`
}

func (TradeIn) TableName() string {
	return "trade_ins"
}

// NewTradeIn builds a quote for an already priced request.
func NewTradeIn(est valuation.Estimate, customer CustomerInfo) *TradeIn {
	return &TradeIn{
		DeviceType:     est.Request.DeviceType,
		Brand:          est.Request.Brand,
		Model:          est.Request.Model,
		Age:            est.Request.Age,
		Condition:      est.Request.Condition,
		EstimatedValue: est.Value,
		CustomerInfo:   datatypes.NewJSONType(customer),
		Status:         StatusQuoted,
	}
}

// Advance moves the quote to next, marking the pickup as scheduled once the
// quote reaches the scheduled stage.
func (t *TradeIn) Advance(next Status) error {
	if !t.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, t.Status, next)
	}
	t.Status = next
	if next != StatusQuoted {
		t.PickupScheduled = true
	}
	return nil
}

type ListFilter struct {
	Status Status
	Limit  int
	Offset int
}

// TradeInRepository defines the contract for trade-in data access
type TradeInRepository interface {
	Create(ctx context.Context, tradeIn *TradeIn) error
	FindByID(ctx context.Context, id uint) (*TradeIn, error)
	// FindAll returns quotes newest first.
	FindAll(ctx context.Context, filter ListFilter) ([]TradeIn, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
	Update(ctx context.Context, tradeIn *TradeIn) error
}
