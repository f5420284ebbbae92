package auth

import (
	"net/http"

	"shoppos/internal/usecase"
)

func invalidInput(message string) error {
	return usecase.NewHTTPError(http.StatusBadRequest, message)
}

func unauthorized() error {
	return usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized")
}

func internalError(err error) error {
	return usecase.InternalError(err)
}
