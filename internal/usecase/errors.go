package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

// エラーの種類。handlerはStatusを見て、テストはerrors.Isで種類を見る
var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrArtifactPersist   = errors.New("invoice artifact persist failure")
	ErrConflict          = errors.New("conflict")
	ErrInternal          = errors.New("internal error")
)

type HTTPError struct {
	Status  int
	Message string
	Kind    error
	cause   error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// 種類と元のエラー（DBエラーなど）の両方をたどれるようにする
func (e *HTTPError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
		Kind:    kindForStatus(status),
	}
}

func newKindError(kind error, status int, message string) error {
	return &HTTPError{Status: status, Message: message, Kind: kind}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

func forbidden() error {
	return newKindError(ErrForbidden, http.StatusForbidden, "access denied")
}

func ownerOnly(message string) error {
	return newKindError(ErrForbidden, http.StatusForbidden, message)
}

func invalidInput(message string) error {
	return newKindError(ErrInvalidInput, http.StatusBadRequest, message)
}

func notFound(message string) error {
	return newKindError(ErrNotFound, http.StatusNotFound, message)
}

// DBエラーは中身を出さずに500
func dbError(err error) error {
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Message: "db error",
		Kind:    ErrInternal,
		cause:   err,
	}
}

func kindForStatus(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusBadRequest:
		return ErrInvalidInput
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	default:
		return ErrInternal
	}
}

// InternalError はサブパッケージ（auth）からDBエラーを500に寄せるため
func InternalError(err error) error {
	return dbError(err)
}
