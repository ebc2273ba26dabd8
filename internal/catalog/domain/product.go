package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("invalid product")
)

// Category groups catalog items by hardware class.
type Category string

const (
	CategoryServers     Category = "servers"
	CategoryLaptops     Category = "laptops"
	CategoryDesktops    Category = "desktops"
	CategoryAccessories Category = "accessories"
)

// Categories lists the accepted catalog categories.
var Categories = []Category{CategoryServers, CategoryLaptops, CategoryDesktops, CategoryAccessories}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Condition tells brand new stock apart from refurbished units.
type Condition string

const (
	ConditionNew         Condition = "new"
	ConditionRefurbished Condition = "refurbished"
)

func (c Condition) Valid() bool {
	return c == ConditionNew || c == ConditionRefurbished
}

// Product represents a catalog item
type Product struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Name           string         `json:"name" gorm:"not null"`
	Brand          string         `json:"brand" gorm:"not null;index"`
	Category       Category       `json:"category" gorm:"type:varchar(32);not null;index"`
	Condition      Condition      `json:"condition" gorm:"type:varchar(32);not null"`
	Price          float64        `json:"price" gorm:"type:numeric(12,2);not null"`
	OriginalPrice  *float64       `json:"originalPrice" gorm:"type:numeric(12,2)"`
	Description    string         `json:"description"`
	Specifications datatypes.JSON `json:"specifications" swaggertype:"object"`
	WarrantyYears  int            `json:"warrantyYears" gorm:"not null;default:1"`
	StockQuantity  int            `json:"stockQuantity" gorm:"not null;default:0"`
	ImageURL       string         `json:"imageUrl"`
	IsActive       bool           `json:"isActive" gorm:"default:true"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// InStock reports whether the product can currently be ordered.
func (p *Product) InStock() bool {
	return p.IsActive && p.StockQuantity > 0
}

// Savings is the discount against the original price, never negative.
func (p *Product) Savings() float64 {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price {
		return 0
	}
	return *p.OriginalPrice - p.Price
}

// Validate checks the field constraints of a product about to be stored.
func (p *Product) Validate() error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	case p.Brand == "":
		return fmt.Errorf("%w: brand is required", ErrInvalidProduct)
	case !p.Category.Valid():
		return fmt.Errorf("%w: category must be servers, laptops, desktops, or accessories", ErrInvalidProduct)
	case !p.Condition.Valid():
		return fmt.Errorf("%w: condition must be new or refurbished", ErrInvalidProduct)
	case p.Price < 0:
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidProduct)
	case p.OriginalPrice != nil && *p.OriginalPrice < p.Price:
		return fmt.Errorf("%w: original price cannot be below price", ErrInvalidProduct)
	case p.WarrantyYears < 0:
		return fmt.Errorf("%w: warranty years cannot be negative", ErrInvalidProduct)
	case p.StockQuantity < 0:
		return fmt.Errorf("%w: stock cannot be negative", ErrInvalidProduct)
	}
	if len(p.Specifications) > 0 && !IsNullJSON(p.Specifications) {
		if _, ok := ParseSpecifications(p.Specifications); !ok {
			return fmt.Errorf("%w: specifications must be a JSON object", ErrInvalidProduct)
		}
	}
	return nil
}

// ListFilter narrows product listings.
type ListFilter struct {
	Category   Category
	ActiveOnly bool
	Limit      int
	Offset     int
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	FindByIDs(ctx context.Context, ids []uint) ([]Product, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Product, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
	Update(ctx context.Context, product *Product) error
	UpdateStock(ctx context.Context, id uint, stock int) error
	Delete(ctx context.Context, id uint) error
}
