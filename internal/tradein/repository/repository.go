package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/skavtech/ict-platform/internal/tradein/domain"
)

type GormTradeInRepository struct {
	db *gorm.DB
}

func NewGormTradeInRepository(db *gorm.DB) *GormTradeInRepository {
	return &GormTradeInRepository{db: db}
}

func (r *GormTradeInRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.TradeIn{})
}

func (r *GormTradeInRepository) Create(ctx context.Context, tradeIn *domain.TradeIn) error {
	return r.db.WithContext(ctx).Create(tradeIn).Error
}

func (r *GormTradeInRepository) FindByID(ctx context.Context, id uint) (*domain.TradeIn, error) {
	var tradeIn domain.TradeIn
	err := r.db.WithContext(ctx).First(&tradeIn, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrTradeInNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tradeIn, nil
}

func (r *GormTradeInRepository) FindAll(ctx context.Context, filter domain.ListFilter) ([]domain.TradeIn, error) {
	var tradeIns []domain.TradeIn
	q := r.scope(ctx, filter).Order("created_at DESC").Order("id DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	err := q.Find(&tradeIns).Error
	return tradeIns, err
}

func (r *GormTradeInRepository) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	var count int64
	err := r.scope(ctx, filter).Count(&count).Error
	return count, err
}

func (r *GormTradeInRepository) Update(ctx context.Context, tradeIn *domain.TradeIn) error {
	res := r.db.WithContext(ctx).Model(tradeIn).Select("status", "pickup_scheduled", "updated_at").Updates(tradeIn)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTradeInNotFound
	}
	return nil
}

func (r *GormTradeInRepository) scope(ctx context.Context, filter domain.ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.TradeIn{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	return q
}
