package handler

import (
	"fmt"
	"net/http"

	"shoppos/internal/usecase"

	"github.com/labstack/echo/v4"
)

type InvoiceHandler struct {
	uc *usecase.InvoiceUsecase
}

func NewInvoiceHandler(uc *usecase.InvoiceUsecase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// g は /shops/:shopId（認証済み）
func (h *InvoiceHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/invoices", h.list)
	g.GET("/invoices/:invoiceId", h.download)
}

func (h *InvoiceHandler) list(c echo.Context) error {
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

// PDFをそのまま返す（ブラウザで開く）
func (h *InvoiceHandler) download(c echo.Context) error {
	p, ok := principal(c)
	if !ok {
		return unauthorized(c)
	}
	inv, rc, err := h.uc.Open(c.Request().Context(), c.Param("shopId"), p, c.Param("invoiceId"))
	if err != nil {
		return writeError(c, err)
	}
	defer rc.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`inline; filename="invoice-%s.pdf"`, inv.OrderID))
	return c.Stream(http.StatusOK, "application/pdf", rc)
}
