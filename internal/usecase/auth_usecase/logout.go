package auth

import (
	"context"
	"errors"

	"shoppos/internal/domain/model"
	"shoppos/internal/repository"
)

type LogoutOutput struct {
	Message string `json:"message"`
}

// token_versionを進めて、発行済みのaccess tokenを全部無効にする
type LogoutUsecase struct {
	userRepo repository.UserRepository
}

func NewLogoutUsecase(userRepo repository.UserRepository) *LogoutUsecase {
	return &LogoutUsecase{userRepo: userRepo}
}

func (u *LogoutUsecase) Execute(ctx context.Context, p model.Principal) (LogoutOutput, error) {
	if p.UserID == "" {
		return LogoutOutput{}, unauthorized()
	}
	if err := u.userRepo.IncrementTokenVersion(ctx, p.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return LogoutOutput{}, unauthorized()
		}
		return LogoutOutput{}, internalError(err)
	}
	return LogoutOutput{Message: "logged out"}, nil
}
