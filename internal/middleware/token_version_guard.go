package middleware

import (
	"shoppos/internal/repository"

	"github.com/labstack/echo/v4"
)

// JWTのtvとDBのtoken_versionの一致するか確認。
// 停止ユーザー・店舗が変わったユーザーもここで落とす。
func TokenVersionGuard(userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return unauthorized(c)
			}
			tv, ok := c.Get(CtxTokenVersionKey).(int)
			if !ok {
				return unauthorized(c)
			}

			//DBから最新のuserを取得する
			user, err := userRepo.FindByID(c.Request().Context(), p.UserID)
			if err != nil || user == nil {
				return unauthorized(c)
			}
			if user.TokenVersion != tv || !user.IsActive {
				return unauthorized(c)
			}
			if user.ShopID == nil || *user.ShopID != p.ShopID || user.Role != p.Role {
				return unauthorized(c)
			}

			return next(c)
		}
	}
}
