package handler

import (
	"net/http"

	auth "shoppos/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	registerUC *auth.RegisterOwnerUsecase // オーナー登録usecase
	loginUC    *auth.LoginUsecase         // ログインusecase
	logoutUC   *auth.LogoutUsecase        // 全トークン失効
}

// DIコンストラクタ
func NewAuthHandler(registerUC *auth.RegisterOwnerUsecase, loginUC *auth.LoginUsecase, logoutUC *auth.LogoutUsecase) *AuthHandler {
	return &AuthHandler{registerUC: registerUC, loginUC: loginUC, logoutUC: logoutUC}
}

// /auth/register のリクエストボディ。
type registerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	ShopName    string `json:"shopName"`
	ShopAddress string `json:"address"`
}

// /auth/login のリクエストボディ。
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authed はlogoutに掛ける認証ミドルウェア
func (h *AuthHandler) RegisterRoutes(e *echo.Echo, authed ...echo.MiddlewareFunc) {
	g := e.Group("/auth")
	g.POST("/register", h.register)
	g.POST("/login", h.login)
	g.POST("/logout", h.logout, authed...)
}

func (h *AuthHandler) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	out, err := h.registerUC.Execute(c.Request().Context(), auth.RegisterOwnerInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		ShopName:    req.ShopName,
		ShopAddress: req.ShopAddress,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	out, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) logout(c echo.Context) error {
	p, ok := principal(c)
	if !ok {
		return unauthorized(c)
	}
	out, err := h.logoutUC.Execute(c.Request().Context(), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
