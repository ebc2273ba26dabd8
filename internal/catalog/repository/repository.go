package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/skavtech/ict-platform/internal/catalog/domain"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

func (r *GormProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDs returns the active products among ids, in no particular order.
func (r *GormProductRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []domain.Product
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Where("is_active = ?", true).
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindAll(ctx context.Context, filter domain.ListFilter) ([]domain.Product, error) {
	var products []domain.Product
	q := r.scope(ctx, filter).Order("created_at DESC").Order("id")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	err := q.Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	var count int64
	err := r.scope(ctx, filter).Count(&count).Error
	return count, err
}

func (r *GormProductRepository) Update(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *GormProductRepository) UpdateStock(ctx context.Context, id uint, stock int) error {
	res := r.db.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", id).Update("stock_quantity", stock)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *GormProductRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *GormProductRepository) scope(ctx context.Context, filter domain.ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.Product{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	return q
}
