package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptは72バイトより長い入力を扱えない
const maxPasswordBytes = 72

var ErrPasswordTooLong = fmt.Errorf("password must be at most %d bytes", maxPasswordBytes)

type PasswordHasher interface {
	Hash(plain string) (string, error)
}

type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// BcryptPasswordHasher はオーナー・従業員登録で使う
type BcryptPasswordHasher struct {
	cost int
}

// costが範囲外ならbcrypt.DefaultCost
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	if len(plain) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	return string(b), err
}

type BcryptPasswordVerifier struct{}

func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

// 壊れたハッシュも不一致扱い
func (BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// ハッシュ失敗を400/500に振り分ける
func hashError(err error) error {
	if errors.Is(err, ErrPasswordTooLong) {
		return invalidInput(err.Error())
	}
	return internalError(err)
}
