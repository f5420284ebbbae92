package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleOwner    Role = "owner"
	RoleEmployee Role = "employee"
)

// 給与の支払い状況
type SalaryStatus string

const (
	SalaryPending SalaryStatus = "pending"
	SalaryPaid    SalaryStatus = "paid"
)

func (s SalaryStatus) Valid() bool {
	return s == SalaryPending || s == SalaryPaid
}

type User struct {
	ID           string     `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"column:password_hash;not null" json:"-"`
	Role         Role       `gorm:"type:varchar(20);not null" json:"role"`
	ShopID       *string    `gorm:"type:uuid;index" json:"shopId"`
	TokenVersion int        `gorm:"not null;default:0" json:"-"`
	IsActive     bool       `gorm:"not null;default:true" json:"-"`
	LastLoginAt  *time.Time `json:"-"`

	// 従業員のみ意味を持つ
	SalaryAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"salaryAmount"`
	SalaryStatus    SalaryStatus    `gorm:"type:varchar(20);not null;default:'pending'" json:"salaryStatus"`
	NextPaymentDate *time.Time      `json:"nextPaymentDate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
