package repository

import (
	"context"
	"errors"

	"shoppos/internal/domain/model"
	repo "shoppos/internal/repository"

	"gorm.io/gorm"
)

// オーナー・従業員のアカウント
type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// emailのユニーク違反はErrEmailTaken（TranslateError前提）
func (r *UserGormRepository) Create(ctx context.Context, user *model.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repo.ErrEmailTaken
	}
	return err
}

func (r *UserGormRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserGormRepository) FindByID(ctx context.Context, userID string) (*model.User, error) {
	if !isUUID(userID) {
		return nil, repo.ErrUserNotFound
	}
	return r.findOne(ctx, "id = ?", userID)
}

func (r *UserGormRepository) findOne(ctx context.Context, cond string, arg any) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where(cond, arg).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) ListByShopID(ctx context.Context, shopID string, role model.Role) ([]model.User, error) {
	items := []model.User{}
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND role = ?", shopID, role).
		Order("created_at asc").Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// token_versionとpassword_hashはここでは触らない
func (r *UserGormRepository) Update(ctx context.Context, user *model.User) error {
	res := r.db.WithContext(ctx).Model(user).
		Select("name", "email", "role", "shop_id", "is_active", "last_login_at",
			"salary_amount", "salary_status", "next_payment_date", "updated_at").
		Updates(user)
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		return repo.ErrEmailTaken
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrUserNotFound
	}
	return nil
}

func (r *UserGormRepository) Delete(ctx context.Context, shopID string, userID string) error {
	if !isUUID(userID, shopID) {
		return repo.ErrUserNotFound
	}
	res := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", userID, shopID).
		Delete(&model.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrUserNotFound
	}
	return nil
}

// 発行済みトークンを全部失効させる
func (r *UserGormRepository) IncrementTokenVersion(ctx context.Context, userID string) error {
	if !isUUID(userID) {
		return repo.ErrUserNotFound
	}
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		UpdateColumn("token_version", gorm.Expr("token_version + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrUserNotFound
	}
	return nil
}
