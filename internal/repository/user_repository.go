package repository

import (
	"context"
	"errors"

	"shoppos/internal/domain/model"
)

// ユーザーが見つかりませんを統一
var ErrUserNotFound = errors.New("user not found")

// メール重複
var ErrEmailTaken = errors.New("email already exists")

type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// 店舗のユーザーをroleで絞って古い順
	ListByShopID(ctx context.Context, shopID string, role model.Role) ([]model.User, error)

	// 最後のログイン・給与など（パスワードとtoken_versionは対象外）
	Update(ctx context.Context, user *model.User) error

	// 店舗に属するユーザーを物理削除
	Delete(ctx context.Context, shopID string, userID string) error

	//トークンのバージョンを＋１
	IncrementTokenVersion(ctx context.Context, userID string) error
}
