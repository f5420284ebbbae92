package usecase

import (
	"context"
	"errors"
	"time"

	"shoppos/internal/domain/model"
	repo "shoppos/internal/repository"

	"github.com/shopspring/decimal"
)

// 従業員の一覧・給与更新・削除（オーナーのみ）。
// 追加はauth.RegisterEmployeeUsecase（パスワードを扱うため）。
type EmployeeUsecase struct {
	tx repo.TransactionManager
}

func NewEmployeeUsecase(tx repo.TransactionManager) *EmployeeUsecase {
	return &EmployeeUsecase{tx: tx}
}

type UpdateSalaryInput struct {
	Amount          *decimal.Decimal
	Status          *model.SalaryStatus
	NextPaymentDate *time.Time
}

type EmployeeListOutput struct {
	Employees []model.User `json:"employees"`
}

type EmployeeOutput struct {
	Message  string     `json:"message"`
	Employee model.User `json:"employee"`
}

func authorizeOwner(p model.Principal, shopID string) error {
	if err := authorizeShop(p, shopID); err != nil {
		return err
	}
	if !p.IsOwner() {
		return ownerOnly("you do not have permission to manage employees for this shop")
	}
	return nil
}

func (u *EmployeeUsecase) List(ctx context.Context, shopID string, p model.Principal) (EmployeeListOutput, error) {
	if err := authorizeOwner(p, shopID); err != nil {
		return EmployeeListOutput{}, err
	}

	var out EmployeeListOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		items, err := r.Users().ListByShopID(ctx, shopID, model.RoleEmployee)
		if err != nil {
			return dbError(err)
		}
		out.Employees = items
		return nil
	})
	if err != nil {
		return EmployeeListOutput{}, err
	}
	return out, nil
}

func (u *EmployeeUsecase) UpdateSalary(ctx context.Context, shopID string, p model.Principal, employeeID string, in UpdateSalaryInput) (EmployeeOutput, error) {
	if err := authorizeOwner(p, shopID); err != nil {
		return EmployeeOutput{}, err
	}
	if in.Amount == nil && in.Status == nil && in.NextPaymentDate == nil {
		return EmployeeOutput{}, invalidInput("salary object is required for update")
	}
	if in.Amount != nil && in.Amount.IsNegative() {
		return EmployeeOutput{}, invalidInput("salary amount must be >= 0")
	}
	if in.Amount != nil && in.Amount.Round(2).GreaterThan(maxMoney) {
		return EmployeeOutput{}, invalidInput("salary amount is too large")
	}
	if in.Status != nil && !in.Status.Valid() {
		return EmployeeOutput{}, invalidInput("salary status must be paid or pending")
	}

	var out EmployeeOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		emp, err := u.findEmployee(ctx, r, shopID, employeeID)
		if err != nil {
			return err
		}
		if in.Amount != nil {
			emp.SalaryAmount = in.Amount.Round(2)
		}
		if in.Status != nil {
			emp.SalaryStatus = *in.Status
		}
		if in.NextPaymentDate != nil {
			emp.NextPaymentDate = in.NextPaymentDate
		}
		if err := r.Users().Update(ctx, emp); err != nil {
			return dbError(err)
		}
		out = EmployeeOutput{Message: "employee updated", Employee: *emp}
		return nil
	})
	if err != nil {
		return EmployeeOutput{}, err
	}
	return out, nil
}

// 過去の注文は担当者名のスナップショットを持つので残る
func (u *EmployeeUsecase) Remove(ctx context.Context, shopID string, p model.Principal, employeeID string) error {
	if err := authorizeOwner(p, shopID); err != nil {
		return err
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := u.findEmployee(ctx, r, shopID, employeeID); err != nil {
			return err
		}
		if err := r.Users().Delete(ctx, shopID, employeeID); err != nil {
			if errors.Is(err, repo.ErrUserNotFound) {
				return notFound("employee not found in this shop")
			}
			return dbError(err)
		}
		return nil
	})
}

// オーナー自身や他店舗のユーザーは404
func (u *EmployeeUsecase) findEmployee(ctx context.Context, r repo.TxRepos, shopID string, employeeID string) (*model.User, error) {
	emp, err := r.Users().FindByID(ctx, employeeID)
	if errors.Is(err, repo.ErrUserNotFound) {
		return nil, notFound("employee not found in this shop")
	}
	if err != nil {
		return nil, dbError(err)
	}
	if emp.Role != model.RoleEmployee || emp.ShopID == nil || *emp.ShopID != shopID {
		return nil, notFound("employee not found in this shop")
	}
	return emp, nil
}
