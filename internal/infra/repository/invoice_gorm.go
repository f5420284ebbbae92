package repository

import (
	"context"
	"errors"

	"shoppos/internal/domain/model"
	repo "shoppos/internal/repository"

	"gorm.io/gorm"
)

type InvoiceGormRepository struct {
	db *gorm.DB
}

func NewInvoiceGormRepository(db *gorm.DB) *InvoiceGormRepository {
	return &InvoiceGormRepository{db: db}
}

func (r *InvoiceGormRepository) Create(ctx context.Context, invoice model.Invoice) error {
	return r.db.WithContext(ctx).Create(&invoice).Error
}

func (r *InvoiceGormRepository) FindByID(ctx context.Context, shopID string, invoiceID string) (model.Invoice, error) {
	if !isUUID(invoiceID, shopID) {
		return model.Invoice{}, repo.ErrNotFound
	}
	return r.findOne(ctx, "id = ? AND shop_id = ?", invoiceID, shopID)
}

func (r *InvoiceGormRepository) FindByOrderID(ctx context.Context, shopID string, orderID string) (model.Invoice, error) {
	if !isUUID(orderID, shopID) {
		return model.Invoice{}, repo.ErrNotFound
	}
	return r.findOne(ctx, "order_id = ? AND shop_id = ?", orderID, shopID)
}

func (r *InvoiceGormRepository) findOne(ctx context.Context, query string, args ...interface{}) (model.Invoice, error) {
	var inv model.Invoice
	err := r.db.WithContext(ctx).Where(query, args...).First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Invoice{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Invoice{}, err
	}
	return inv, nil
}

// 新しい順
func (r *InvoiceGormRepository) ListByShopID(ctx context.Context, shopID string) ([]model.Invoice, error) {
	var items []model.Invoice
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("date desc").Order("id desc").
		Find(&items).Error
	if err != nil {
		return []model.Invoice{}, err
	}
	return items, nil
}
