package domain

import (
	"context"
	"math"
	"time"
)

type WarrantyStatus string

const (
	WarrantyActive  WarrantyStatus = "active"
	WarrantyExpired WarrantyStatus = "expired"
)

// Warranty covers one serial number between PurchaseDate and ExpiryDate.
type Warranty struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	SerialNumber  string    `json:"serialNumber" gorm:"not null;index"`
	ProductID     *uint     `json:"productId,omitempty"`
	PurchaseDate  time.Time `json:"purchaseDate" gorm:"not null"`
	ExpiryDate    time.Time `json:"expiryDate" gorm:"not null"`
	Coverage      string    `json:"coverage" gorm:"not null"`
	InvoiceNumber string    `json:"invoiceNumber,omitempty"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	IsActive      bool      `json:"isActive" gorm:"not null"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (w *Warranty) Validate() error {
	var errs ValidationErrors
	required(&errs, "serialNumber", w.SerialNumber)
	required(&errs, "coverage", w.Coverage)
	if w.PurchaseDate.IsZero() {
		errs = append(errs, FieldError{Field: "purchaseDate", Message: "Required"})
	}
	if w.ExpiryDate.IsZero() {
		errs = append(errs, FieldError{Field: "expiryDate", Message: "Required"})
	} else if !w.PurchaseDate.IsZero() && !w.ExpiryDate.After(w.PurchaseDate) {
		errs = append(errs, FieldError{Field: "expiryDate", Message: "Expiry date must be after purchase date"})
	}
	return errs.orNil()
}

// WarrantyLookup is a warranty as seen at a point in time.
type WarrantyLookup struct {
	Warranty
	Status        WarrantyStatus `json:"status"`
	DaysRemaining int            `json:"days_remaining"`
}

// Lookup evaluates w at now. Partial days count as a whole day; an
// expired warranty has zero days remaining.
func (w Warranty) Lookup(now time.Time) WarrantyLookup {
	left := w.ExpiryDate.Sub(now)
	if left <= 0 {
		return WarrantyLookup{Warranty: w, Status: WarrantyExpired}
	}
	return WarrantyLookup{
		Warranty:      w,
		Status:        WarrantyActive,
		DaysRemaining: int(math.Ceil(left.Hours() / 24)),
	}
}

// WarrantyRepository stores warranties. FindActiveBySerial returns the
// active warranty with the latest expiry.
type WarrantyRepository interface {
	Create(ctx context.Context, warranty *Warranty) error
	FindActiveBySerial(ctx context.Context, serial string) (*Warranty, error)
}
