package middleware

import (
	"errors"
	"net/http"
	"strings"

	"shoppos/internal/domain/model"
	"shoppos/internal/infra/token"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	CtxPrincipalKey    = "principal"     // model.Principal
	CtxTokenVersionKey = "token_version" // int
)

// bearerAuth用のJWT検証ミドルウェア。
func AuthJWT(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Bearer形式か確認してtokenを抜く
			authz := c.Request().Header.Get("Authorization")
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return unauthorized(c)
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return unauthorized(c)
			}

			//JWTをパースして検証する（expも見る）
			tok, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(secret), nil
			})
			if err != nil || tok == nil || !tok.Valid {
				return unauthorized(c)
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return unauthorized(c)
			}

			p, tv, err := principalFromClaims(claims)
			if err != nil {
				return unauthorized(c)
			}

			c.Set(CtxPrincipalKey, p)
			c.Set(CtxTokenVersionKey, tv)
			return next(c)
		}
	}
}

// handlerから操作者を取り出す
func PrincipalFrom(c echo.Context) (model.Principal, bool) {
	p, ok := c.Get(CtxPrincipalKey).(model.Principal)
	if !ok || p.UserID == "" {
		return model.Principal{}, false
	}
	return p, true
}

func principalFromClaims(claims jwt.MapClaims) (model.Principal, int, error) {
	sub, _ := claims[token.ClaimSubject].(string)
	name, _ := claims[token.ClaimName].(string)
	role, _ := claims[token.ClaimRole].(string)
	shopID, _ := claims[token.ClaimShopID].(string)
	if sub == "" || shopID == "" {
		return model.Principal{}, 0, errors.New("missing claims")
	}

	r := model.Role(role)
	if r != model.RoleOwner && r != model.RoleEmployee {
		return model.Principal{}, 0, errors.New("invalid role")
	}

	// JSONの数値はfloat64で来る
	tvf, ok := claims[token.ClaimTokenVersion].(float64)
	if !ok || tvf < 0 {
		return model.Principal{}, 0, errors.New("invalid tv")
	}

	return model.Principal{UserID: sub, Name: name, Role: r, ShopID: shopID}, int(tvf), nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
}
