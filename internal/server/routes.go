package server

import (
	"net/http"

	"shoppos/internal/handler"
	"shoppos/internal/middleware"
	"shoppos/internal/repository"

	"github.com/labstack/echo/v4"
)

// Handlers はルート登録に必要な部品一式
type Handlers struct {
	JWTSecret string
	Users     repository.UserRepository

	Auth         *handler.AuthHandler
	Shop         *handler.ShopHandler
	Product      *handler.ProductHandler
	Order        *handler.OrderHandler
	Invoice      *handler.InvoiceHandler
	Notification *handler.NotificationHandler
	Dashboard    *handler.DashboardHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	authed := []echo.MiddlewareFunc{
		middleware.AuthJWT(h.JWTSecret),
		middleware.TokenVersionGuard(h.Users),
	}
	h.Auth.RegisterRoutes(e, authed...)

	//店舗配下は全部ログイン必須
	shop := e.Group("/shops/:shopId", authed...)
	h.Shop.RegisterRoutes(shop)
	h.Product.RegisterRoutes(shop)
	h.Order.RegisterRoutes(shop)
	h.Invoice.RegisterRoutes(shop)
	h.Notification.RegisterRoutes(shop)
	h.Dashboard.RegisterRoutes(shop)
}
