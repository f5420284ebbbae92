package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"shoppos/internal/domain/model"
	"shoppos/internal/repository"
	"shoppos/internal/usecase"
)

// handlerからusecaseに渡す入力
type LoginInput struct {
	Email    string
	Password string
}

type AccessToken struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenVersion int    `json:"token_version"`
}

// handlerがJSONにして返す
type LoginOutput struct {
	User  model.User  `json:"user"`
	Token AccessToken `json:"token"`
}

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(user model.User, now time.Time) (token string, expiresAt time.Time, err error)
}

type LoginUsecase struct {
	userRepo  repository.UserRepository
	validator InputValidator
	verifier  PasswordVerifier
	issuer    AccessTokenIssuer
	clock     usecase.Clock
}

func NewLoginUsecase(
	userRepo repository.UserRepository,
	validator InputValidator,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	clock usecase.Clock,
) *LoginUsecase {
	return &LoginUsecase{
		userRepo:  userRepo,
		validator: validator,
		verifier:  verifier,
		issuer:    issuer,
		clock:     clock,
	}
}

// ログイン処理を実行する
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	if err := u.validator.ValidateLogin(in.Email, in.Password); err != nil {
		return out, invalidInput(err.Error())
	}

	//emailでユーザー取得（存在しない場合もパスワード違いと同じ応答）
	user, err := u.userRepo.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return out, invalidCredentials()
		}
		return out, internalError(err)
	}

	if !u.verifier.Verify(in.Password, user.PasswordHash) {
		return out, invalidCredentials()
	}

	//停止ユーザーはログイン不可
	if !user.IsActive {
		return out, usecase.NewHTTPError(http.StatusForbidden, "user is inactive")
	}

	now := u.clock.Now()
	token, exp, err := u.issuer.Issue(*user, now)
	if err != nil {
		return out, internalError(err)
	}

	//最終ログイン時刻更新
	user.LastLoginAt = &now
	if err := u.userRepo.Update(ctx, user); err != nil {
		return out, internalError(err)
	}

	out.User = *user
	out.Token = AccessToken{
		AccessToken:  token,
		ExpiresIn:    int(exp.Sub(now).Seconds()),
		TokenVersion: user.TokenVersion,
	}
	return out, nil
}

func invalidCredentials() error {
	return usecase.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
}
