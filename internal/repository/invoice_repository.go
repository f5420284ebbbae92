package repository

import (
	"context"

	"shoppos/internal/domain/model"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice model.Invoice) error
	FindByID(ctx context.Context, shopID string, invoiceID string) (model.Invoice, error)
	FindByOrderID(ctx context.Context, shopID string, orderID string) (model.Invoice, error)
	ListByShopID(ctx context.Context, shopID string) ([]model.Invoice, error)
}
