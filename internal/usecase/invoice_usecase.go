package usecase

import (
	"context"
	"errors"
	"io"
	"io/fs"

	"shoppos/internal/domain/model"
	repo "shoppos/internal/repository"
)

type InvoiceUsecase struct {
	tx    repo.TransactionManager
	store ArtifactStore
}

func NewInvoiceUsecase(tx repo.TransactionManager, store ArtifactStore) *InvoiceUsecase {
	return &InvoiceUsecase{tx: tx, store: store}
}

// 新しい順
func (u *InvoiceUsecase) List(ctx context.Context, shopID string, p model.Principal) ([]model.Invoice, error) {
	if err := authorizeShop(p, shopID); err != nil {
		return nil, err
	}

	var out []model.Invoice
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		items, err := r.Invoices().ListByShopID(ctx, shopID)
		if err != nil {
			return dbError(err)
		}
		out = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Open は請求書とPDFの中身を返す。呼び出し側でCloseすること。
func (u *InvoiceUsecase) Open(ctx context.Context, shopID string, p model.Principal, invoiceID string) (model.Invoice, io.ReadCloser, error) {
	if err := authorizeShop(p, shopID); err != nil {
		return model.Invoice{}, nil, err
	}

	var inv model.Invoice
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		found, err := r.Invoices().FindByID(ctx, shopID, invoiceID)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound("invoice not found")
		}
		if err != nil {
			return dbError(err)
		}
		inv = found
		return nil
	})
	if err != nil {
		return model.Invoice{}, nil, err
	}

	rc, err := u.store.Open(ctx, inv.PDFPath)
	if errors.Is(err, fs.ErrNotExist) {
		return model.Invoice{}, nil, notFound("invoice file not found on server")
	}
	if err != nil {
		return model.Invoice{}, nil, artifactError(err)
	}
	return inv, rc, nil
}
