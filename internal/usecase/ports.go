package usecase

import (
	"context"
	"io"
	"net/http"
	"time"

	"shoppos/internal/domain/model"
)

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// 注文+店舗からPDFを作る（同じ入力なら同じ見た目）
type InvoiceRenderer interface {
	Render(order model.Order, shop model.Shop) ([]byte, error)
}

// 請求書PDFの保存先。Saveが返った時点で永続化済みであること。
// 無いファイルのOpenは fs.ErrNotExist を包んで返す。
type ArtifactStore interface {
	Save(ctx context.Context, path string, data []byte) error
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// 店舗のメンバーかどうか（他店舗は403）
func authorizeShop(p model.Principal, shopID string) error {
	if p.UserID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if shopID == "" || p.ShopID != shopID {
		return forbidden()
	}
	return nil
}
