package handler

import (
	"net/http"
	"time"

	"shoppos/internal/domain/model"
	"shoppos/internal/middleware"
	"shoppos/internal/usecase"
	auth "shoppos/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ShopHandler struct {
	uc         *usecase.ShopUsecase
	registerUC *auth.RegisterEmployeeUsecase // 従業員アカウント作成
	employeeUC *usecase.EmployeeUsecase      // 一覧・給与・削除
}

func NewShopHandler(uc *usecase.ShopUsecase, registerUC *auth.RegisterEmployeeUsecase, employeeUC *usecase.EmployeeUsecase) *ShopHandler {
	return &ShopHandler{uc: uc, registerUC: registerUC, employeeUC: employeeUC}
}

type shopUpdateRequest struct {
	ShopName *string `json:"shopName"`
	Address  *string `json:"address"`
}

type salaryRequest struct {
	Amount          *decimal.Decimal    `json:"amount"`
	Status          *model.SalaryStatus `json:"status"`
	NextPaymentDate *time.Time          `json:"nextPaymentDate"`
}

type employeeCreateRequest struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Salary   *salaryRequest `json:"salary"`
}

type employeeUpdateRequest struct {
	Salary *salaryRequest `json:"salary"`
}

// g は /shops/:shopId（認証済み）
func (h *ShopHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.get)
	g.PUT("", h.update, middleware.OwnerRoleGuard())

	owner := middleware.OwnerRoleGuard()
	g.GET("/employees", h.listEmployees, owner)
	g.POST("/employees", h.addEmployee, owner)
	g.PUT("/employees/:employeeId", h.updateEmployee, owner)
	g.DELETE("/employees/:employeeId", h.removeEmployee, owner)
}

func (h *ShopHandler) get(c echo.Context) error {
	p, ok := principal(c)
	if !ok {
		return unauthorized(c)
	}
	out, err := h.uc.Get(c.Request().Context(), c.Param("shopId"), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ShopHandler) update(c echo.Context) error {
	p, ok := principal(c)
	if !ok {
		return unauthorized(c)
	}
	var req shopUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	out, err := h.uc.Update(c.Request().Context(), c.Param("shopId"), p, usecase.UpdateShopInput{
		Name:    req.ShopName,
		Address: req.Address,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ShopHandler) addEmployee(c echo.Context) error {
	p, ok := principal(c)
	if !ok {
		return unauthorized(c)
	}
	var req employeeCreateRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	in := auth.RegisterEmployeeInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if s := req.Salary; s != nil {
		if s.Amount != nil {
			in.SalaryAmount = *s.Amount
		}
		if s.Status != nil {
			in.SalaryStatus = *s.Status
		}
		in.NextPaymentDate = s.NextPaymentDate
	}

	out, err := h.registerUC.Execute(c.Request().Context(), c.Param("shopId"), p, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ShopHandler) listEmployees(c echo.Context) error {
	p, ok := principal(c)
	if !ok {
		return unauthorized(c)
	}
	out, err := h.employeeUC.List(c.Request().Context(), c.Param("shopId"), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// 今は給与だけ更新できる
func (h *ShopHandler) updateEmployee(c echo.Context) error {
	p, ok := principal(c)
	if !ok {
		return unauthorized(c)
	}
	var req employeeUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	var in usecase.UpdateSalaryInput
	if s := req.Salary; s != nil {
		in = usecase.UpdateSalaryInput{Amount: s.Amount, Status: s.Status, NextPaymentDate: s.NextPaymentDate}
	}
	out, err := h.employeeUC.UpdateSalary(c.Request().Context(), c.Param("shopId"), p, c.Param("employeeId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ShopHandler) removeEmployee(c echo.Context) error {
	p, ok := principal(c)
	if !ok {
		return unauthorized(c)
	}
	if err := h.employeeUC.Remove(c.Request().Context(), c.Param("shopId"), p, c.Param("employeeId")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "employee removed"})
}
