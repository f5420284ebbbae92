package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// 入力が不正
var ErrInvalidInput = errors.New("invalid input")

// パスワード最低文字数
const MinPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// よくある弱いパスワード
var weakPasswords = map[string]struct{}{
	"password":    {},
	"password123": {},
	"12345678":    {},
	"123456789":   {},
	"1234567890":  {},
	"qwertyuiop":  {},
	"letmein123":  {},
	"admin123":    {},
}

type AuthValidator struct{}

func NewAuthValidator() *AuthValidator {
	return &AuthValidator{}
}

// 会員登録（オーナー・従業員共通）の入力を検証
func (v *AuthValidator) ValidateRegister(name string, email string, password string) error {
	if strings.TrimSpace(name) == "" {
		return invalid("name is required")
	}
	if err := v.validateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return invalid("password is required")
	}
	if len(password) < MinPasswordLength {
		return invalid(fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}
	if _, ok := weakPasswords[strings.ToLower(strings.TrimSpace(password))]; ok {
		return invalid("password is too weak")
	}
	return nil
}

// ログインの入力を検証
func (v *AuthValidator) ValidateLogin(email string, password string) error {
	if err := v.validateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return invalid("password is required")
	}
	return nil
}

func (v *AuthValidator) validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return invalid("email is required")
	}
	if !emailPattern.MatchString(email) {
		return invalid("invalid email format")
	}
	return nil
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
