package handler

import (
	"net/http"
	"strconv"

	"shoppos/internal/usecase"

	"github.com/labstack/echo/v4"
)

type NotificationHandler struct {
	uc *usecase.NotificationUsecase
}

func NewNotificationHandler(uc *usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// g は /shops/:shopId（認証済み）
func (h *NotificationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/notifications", h.list)
	g.PUT("/notifications/mark-read", h.markRead)
}

func (h *NotificationHandler) list(c echo.Context) error {
	p, ok := principal(c)
	if !ok {
		return unauthorized(c)
	}

	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = n
	}

	out, err := h.uc.List(c.Request().Context(), c.Param("shopId"), p, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *NotificationHandler) markRead(c echo.Context) error {
	p, ok := principal(c)
	if !ok {
		return unauthorized(c)
	}
	out, err := h.uc.MarkAllRead(c.Request().Context(), c.Param("shopId"), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
