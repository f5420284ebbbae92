package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"shoppos/internal/domain/model"
	repo "shoppos/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderUsecase struct {
	tx       repo.TransactionManager
	renderer InvoiceRenderer
	store    ArtifactStore
	idGen    IDGenerator
	clock    Clock
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	renderer InvoiceRenderer,
	store ArtifactStore,
	idGen IDGenerator,
	clock Clock,
) *OrderUsecase {
	return &OrderUsecase{
		tx:       tx,
		renderer: renderer,
		store:    store,
		idGen:    idGen,
		clock:    clock,
	}
}

type OrderLineInput struct {
	ProductID string
	Quantity  int64
}

type CreateOrderInput struct {
	CustomerName string
	Items        []OrderLineInput
}

type CreateOrderOutput struct {
	Order   model.Order   `json:"order"`
	Invoice model.Invoice `json:"invoice"`
}

type OrderListOutput struct {
	Orders []model.Order `json:"orders"`
	Total  int64         `json:"total"`
	Page   int           `json:"page"`
	Limit  int           `json:"limit"`
}

// 請求書PDFの保存パス（注文IDから決まる）
func InvoicePath(orderID string) string {
	return "invoices/invoice-" + orderID + ".pdf"
}

// 確定済みの1行（ロックした商品と数量）
type resolvedLine struct {
	product  model.Product
	quantity int64
}

// CreateOrder は在庫チェック→注文作成→在庫減算・低在庫通知→請求書PDF→請求書保存
// を1つのトランザクションで行う。途中で失敗したら何も残らない。
func (u *OrderUsecase) CreateOrder(ctx context.Context, shopID string, p model.Principal, in CreateOrderInput) (CreateOrderOutput, error) {
	//他店舗はDBに触る前に403
	if err := authorizeShop(p, shopID); err != nil {
		return CreateOrderOutput{}, err
	}
	if err := validateOrderInput(in); err != nil {
		return CreateOrderOutput{}, err
	}

	customer := strings.TrimSpace(in.CustomerName)
	if customer == "" {
		customer = model.DefaultCustomerName
	}

	var out CreateOrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//商品を行ロックして在庫チェック
		lines, err := u.resolveLines(ctx, r, shopID, in.Items)
		if err != nil {
			return err
		}

		now := u.clock.Now()
		order := model.Order{
			ID:           u.idGen.NewID(),
			ShopID:       shopID,
			CustomerName: customer,
			BillerName:   p.Name, // クライアントからは受け取らない
			Date:         now,
		}

		//スナップショット＋合計
		items := make([]model.OrderItem, 0, len(lines))
		revenue := decimal.Zero
		cost := decimal.Zero
		for i, l := range lines {
			it := model.OrderItem{
				ID:            u.idGen.NewID(),
				OrderID:       order.ID,
				ProductID:     l.product.ID,
				NameSnapshot:  l.product.Name,
				Quantity:      l.quantity,
				PriceSnapshot: l.product.Price,
				CostSnapshot:  l.product.Cost,
				Position:      i,
			}
			revenue = revenue.Add(it.LineTotal())
			cost = cost.Add(it.LineCost())
			items = append(items, it)
		}
		if revenue.GreaterThan(maxMoney) || cost.GreaterThan(maxMoney) {
			return invalidInput("order total is too large")
		}
		order.TotalRevenue = revenue
		order.TotalCost = cost
		order.TotalProfit = revenue.Sub(cost)

		// 注文作成
		if err := r.Orders().Create(ctx, order); err != nil {
			return dbError(err)
		}
		if err := r.OrderItems().CreateBulk(ctx, order.ID, items); err != nil {
			return dbError(err)
		}
		order.Items = items

		//在庫減算＋低在庫通知
		if err := u.decrementStock(ctx, r, shopID, lines, now); err != nil {
			return err
		}

		//PDFを作って保存できてから請求書を作る
		shop, err := r.Shops().FindByID(ctx, shopID)
		if err != nil {
			return dbError(err)
		}
		pdf, err := u.renderer.Render(order, shop)
		if err != nil {
			return artifactError(err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		path := InvoicePath(order.ID)
		if err := u.store.Save(ctx, path, pdf); err != nil {
			return artifactError(err)
		}

		invoice := model.Invoice{
			ID:           u.idGen.NewID(),
			ShopID:       shopID,
			OrderID:      order.ID,
			PDFPath:      path,
			CustomerName: order.CustomerName,
			BillerName:   order.BillerName,
			Total:        order.TotalRevenue,
			Date:         now,
		}
		if err := r.Invoices().Create(ctx, invoice); err != nil {
			return dbError(err)
		}

		out = CreateOrderOutput{Order: order, Invoice: invoice}
		return nil
	})

	if err != nil {
		return CreateOrderOutput{}, classifyTxError(err)
	}
	return out, nil
}

func (u *OrderUsecase) resolveLines(ctx context.Context, r repo.TxRepos, shopID string, items []OrderLineInput) ([]resolvedLine, error) {
	// ロックはID順（カートの並びが違う注文同士でデッドロックしない）
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)

	locked := make(map[string]model.Product, len(ids))
	for _, id := range ids {
		found, err := r.Products().FindByIDForUpdate(ctx, shopID, id)
		if errors.Is(err, repo.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, dbError(err)
		}
		locked[id] = found
	}

	// 判定とエラーはカートの並び順
	lines := make([]resolvedLine, 0, len(items))
	claimed := make(map[string]int64, len(ids))
	for _, it := range items {
		p, ok := locked[it.ProductID]
		if !ok {
			return nil, productNotFound(it.ProductID)
		}

		//同じ商品が複数行あるときは前の行の分を引いて比べる
		available := p.Stock - claimed[it.ProductID]
		if it.Quantity > available {
			return nil, insufficientStock(p.Name, it.Quantity, available)
		}
		claimed[it.ProductID] += it.Quantity
		lines = append(lines, resolvedLine{product: p, quantity: it.Quantity})
	}
	return lines, nil
}

func (u *OrderUsecase) decrementStock(ctx context.Context, r repo.TxRepos, shopID string, lines []resolvedLine, now time.Time) error {
	current := make(map[string]int64, len(lines))

	for _, l := range lines {
		oldStock, ok := current[l.product.ID]
		if !ok {
			oldStock = l.product.Stock
		}
		newStock := oldStock - l.quantity

		if ShouldNotify(oldStock, newStock, l.product.LowStockThreshold) {
			if err := r.Notifications().Create(ctx, model.Notification{
				ID:        u.idGen.NewID(),
				ShopID:    shopID,
				Message:   LowStockMessage(l.product.Name, newStock),
				CreatedAt: now,
			}); err != nil {
				return dbError(err)
			}
		}

		ok, err := r.Inventory().DecreaseStockIfEnough(ctx, shopID, l.product.ID, l.quantity)
		if err != nil {
			return dbError(err)
		}
		if !ok {
			return insufficientStock(l.product.Name, l.quantity, oldStock)
		}
		current[l.product.ID] = newStock
	}
	return nil
}

// 店舗の注文一覧（新しい順）
func (u *OrderUsecase) ListOrders(ctx context.Context, shopID string, p model.Principal, page int, limit int) (OrderListOutput, error) {
	if err := authorizeShop(p, shopID); err != nil {
		return OrderListOutput{}, err
	}
	if page < 1 {
		return OrderListOutput{}, invalidInput("invalid page")
	}
	if limit < 1 || limit > 100 {
		return OrderListOutput{}, invalidInput("invalid limit")
	}

	var out OrderListOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, total, err := r.Orders().ListByShopID(ctx, shopID, page, limit)
		if err != nil {
			return dbError(err)
		}
		out = OrderListOutput{Orders: orders, Total: total, Page: page, Limit: limit}
		return nil
	})
	if err != nil {
		return OrderListOutput{}, err
	}
	return out, nil
}

func (u *OrderUsecase) GetOrder(ctx context.Context, shopID string, p model.Principal, orderID string) (model.Order, error) {
	if err := authorizeShop(p, shopID); err != nil {
		return model.Order{}, err
	}

	var out model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, shopID, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound("order not found")
		}
		if err != nil {
			return dbError(err)
		}
		out = o
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}
	return out, nil
}

func LowStockMessage(name string, newStock int64) string {
	return fmt.Sprintf("%s is low on stock! Only %d left.", name, newStock)
}

func validateOrderInput(in CreateOrderInput) error {
	if len(in.Items) == 0 {
		return invalidInput("cart is empty")
	}
	for i, it := range in.Items {
		if strings.TrimSpace(it.ProductID) == "" {
			return invalidInput(fmt.Sprintf("items[%d]: productId is required", i))
		}
		if it.Quantity <= 0 {
			return invalidInput(fmt.Sprintf("items[%d]: quantity must be a positive integer", i))
		}
	}
	return nil
}

func productNotFound(productID string) error {
	return newKindError(ErrProductNotFound, http.StatusBadRequest, fmt.Sprintf("product not found: %s", productID))
}

func insufficientStock(name string, requested, available int64) error {
	return newKindError(ErrInsufficientStock, http.StatusBadRequest,
		fmt.Sprintf("not enough stock for %s: requested %d, available %d", name, requested, available))
}

func artifactError(err error) error {
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Message: "failed to generate invoice",
		Kind:    ErrArtifactPersist,
		cause:   err,
	}
}

// txの外に出てきたエラーを種類つきにそろえる
func classifyTxError(err error) error {
	if errors.Is(err, repo.ErrConflict) {
		return &HTTPError{
			Status:  http.StatusConflict,
			Message: "order conflicted with a concurrent update, please retry",
			Kind:    ErrConflict,
			cause:   err,
		}
	}
	if _, ok := AsHTTPError(err); ok {
		return err
	}
	// commit失敗・キャンセルなど
	return dbError(err)
}
