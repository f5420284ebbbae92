package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"shoppos/internal/domain/model"
	"shoppos/internal/repository"
	"shoppos/internal/usecase"

	"github.com/shopspring/decimal"
)

type RegisterEmployeeInput struct {
	Name     string
	Email    string
	Password string

	// 給与（省略時は0・pending）
	SalaryAmount    decimal.Decimal
	SalaryStatus    model.SalaryStatus
	NextPaymentDate *time.Time
}

type RegisterEmployeeOutput struct {
	Employee model.User `json:"employee"`
}

// オーナーが自分の店舗に従業員を追加する
type RegisterEmployeeUsecase struct {
	tx        repository.TransactionManager
	validator InputValidator
	hasher    PasswordHasher
	idGen     usecase.IDGenerator
	clock     usecase.Clock
}

// DI
func NewRegisterEmployeeUsecase(
	tx repository.TransactionManager,
	validator InputValidator,
	hasher PasswordHasher,
	idGen usecase.IDGenerator,
	clock usecase.Clock,
) *RegisterEmployeeUsecase {
	return &RegisterEmployeeUsecase{
		tx:        tx,
		validator: validator,
		hasher:    hasher,
		idGen:     idGen,
		clock:     clock,
	}
}

func (u *RegisterEmployeeUsecase) Execute(ctx context.Context, shopID string, p model.Principal, in RegisterEmployeeInput) (RegisterEmployeeOutput, error) {
	var out RegisterEmployeeOutput

	if p.UserID == "" {
		return out, unauthorized()
	}
	if p.ShopID != shopID || !p.IsOwner() {
		return out, usecase.NewHTTPError(http.StatusForbidden, "only the shop owner can add employees")
	}
	if err := u.validator.ValidateRegister(in.Name, in.Email, in.Password); err != nil {
		return out, invalidInput(err.Error())
	}
	status := in.SalaryStatus
	if status == "" {
		status = model.SalaryPending
	}
	if in.SalaryAmount.IsNegative() {
		return out, invalidInput("salary amount must be >= 0")
	}
	if !status.Valid() {
		return out, invalidInput("salary status must be paid or pending")
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return out, hashError(err)
	}

	now := u.clock.Now()
	sid := shopID
	emp := &model.User{
		ID:           u.idGen.NewID(),
		Name:         strings.TrimSpace(in.Name),
		Email:        normalizeEmail(in.Email),
		PasswordHash: hashed,
		Role:         model.RoleEmployee,
		ShopID:       &sid,
		IsActive:     true,

		SalaryAmount:    in.SalaryAmount.Round(2),
		SalaryStatus:    status,
		NextPaymentDate: in.NextPaymentDate,

		CreatedAt: now,
		UpdatedAt: now,
	}

	err = u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		if _, err := r.Shops().FindByID(ctx, shopID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return usecase.NewHTTPError(http.StatusNotFound, "shop not found")
			}
			return err
		}
		return r.Users().Create(ctx, emp)
	})
	if err != nil {
		return out, registerError(err)
	}

	out.Employee = *emp
	return out, nil
}
