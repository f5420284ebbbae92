package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"shoppos/internal/domain/model"
	"shoppos/internal/repository"
	"shoppos/internal/usecase"
)

// 入力検証の約束（validatorパッケージが実装）
type InputValidator interface {
	ValidateRegister(name string, email string, password string) error
	ValidateLogin(email string, password string) error
}

// オーナー登録の入力（店舗も同時に作る）
type RegisterOwnerInput struct {
	Name        string
	Email       string
	Password    string
	ShopName    string
	ShopAddress string
}

type RegisterOwnerOutput struct {
	User model.User `json:"user"`
	Shop model.Shop `json:"shop"`
}

// RegisterOwnerUsecase はオーナーと店舗を1つのtxで作る
type RegisterOwnerUsecase struct {
	tx        repository.TransactionManager
	validator InputValidator
	hasher    PasswordHasher
	idGen     usecase.IDGenerator
	clock     usecase.Clock
}

// DI
func NewRegisterOwnerUsecase(
	tx repository.TransactionManager,
	validator InputValidator,
	hasher PasswordHasher,
	idGen usecase.IDGenerator,
	clock usecase.Clock,
) *RegisterOwnerUsecase {
	return &RegisterOwnerUsecase{
		tx:        tx,
		validator: validator,
		hasher:    hasher,
		idGen:     idGen,
		clock:     clock,
	}
}

func (u *RegisterOwnerUsecase) Execute(ctx context.Context, in RegisterOwnerInput) (RegisterOwnerOutput, error) {
	var out RegisterOwnerOutput

	if err := u.validator.ValidateRegister(in.Name, in.Email, in.Password); err != nil {
		return out, invalidInput(err.Error())
	}
	shopName := strings.TrimSpace(in.ShopName)
	if shopName == "" {
		return out, invalidInput("shopName is required")
	}
	address := strings.TrimSpace(in.ShopAddress)
	if address == "" {
		address = model.DefaultShopAddress
	}

	// パスワードをハッシュ化（平文は保存しない）
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return out, hashError(err)
	}

	now := u.clock.Now()
	shopID := u.idGen.NewID()
	user := &model.User{
		ID:           u.idGen.NewID(),
		Name:         strings.TrimSpace(in.Name),
		Email:        normalizeEmail(in.Email),
		PasswordHash: hashed,
		Role:         model.RoleOwner,
		ShopID:       &shopID,
		IsActive:     true,
		SalaryStatus: model.SalaryPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	shop := model.Shop{
		ID:        shopID,
		Name:      shopName,
		Address:   address,
		OwnerID:   user.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		if err := r.Users().Create(ctx, user); err != nil {
			return err
		}
		return r.Shops().Create(ctx, shop)
	})
	if err != nil {
		return out, registerError(err)
	}

	out.User = *user
	out.Shop = shop
	return out, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// 登録系のtxエラーを種類つきにする
func registerError(err error) error {
	if errors.Is(err, repository.ErrEmailTaken) {
		return usecase.NewHTTPError(http.StatusConflict, "user with this email already exists")
	}
	if _, ok := usecase.AsHTTPError(err); ok {
		return err
	}
	return internalError(err)
}
