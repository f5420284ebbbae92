package handler

import (
	"net/http"

	"shoppos/internal/middleware"
	"shoppos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ProductCreateRequest struct {
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Price             decimal.Decimal `json:"price"`
	Cost              decimal.Decimal `json:"cost"`
	Stock             int64           `json:"stock"`
	LowStockThreshold *int64          `json:"lowStockThreshold"`
}

// 省略した項目は変更しない
type ProductUpdateRequest struct {
	Name              *string          `json:"name"`
	Category          *string          `json:"category"`
	Price             *decimal.Decimal `json:"price"`
	Cost              *decimal.Decimal `json:"cost"`
	Stock             *int64           `json:"stock"`
	LowStockThreshold *int64           `json:"lowStockThreshold"`
	Reason            string           `json:"reason"`
}

type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// g は /shops/:shopId（認証済み）
func (h *ProductHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/products", h.list)
	g.POST("/products", h.create, middleware.OwnerRoleGuard())
	g.PUT("/products/:productId", h.update)
	g.DELETE("/products/:productId", h.delete, middleware.OwnerRoleGuard())
}

func (h *ProductHandler) list(c echo.Context) error {
	p, ok := principal(c)
	if !ok {
		return unauthorized(c)
	}
	out, err := h.uc.List(c.Request().Context(), c.Param("shopId"), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) create(c echo.Context) error {
	p, ok := principal(c)
	if !ok {
		return unauthorized(c)
	}
	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	out, err := h.uc.Create(c.Request().Context(), c.Param("shopId"), p, usecase.CreateProductInput{
		Name:              req.Name,
		Category:          req.Category,
		Price:             req.Price,
		Cost:              req.Cost,
		Stock:             req.Stock,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

// 在庫だけなら従業員も可（価格などはusecaseで弾く）
func (h *ProductHandler) update(c echo.Context) error {
	p, ok := principal(c)
	if !ok {
		return unauthorized(c)
	}
	var req ProductUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	out, err := h.uc.Update(c.Request().Context(), c.Param("shopId"), p, c.Param("productId"), usecase.UpdateProductInput{
		Name:              req.Name,
		Category:          req.Category,
		Price:             req.Price,
		Cost:              req.Cost,
		Stock:             req.Stock,
		LowStockThreshold: req.LowStockThreshold,
		Reason:            req.Reason,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) delete(c echo.Context) error {
	p, ok := principal(c)
	if !ok {
		return unauthorized(c)
	}
	if err := h.uc.Delete(c.Request().Context(), c.Param("shopId"), p, c.Param("productId")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "product deleted"})
}
