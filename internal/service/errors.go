package service

import (
	"errors"
	"fmt"

	"deepsky/internal/clients"

	"github.com/go-playground/validator/v10"
)

// validate - общий валидатор пакета
var validate = validator.New()

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnavailable - данные фидов получить не удалось и подставить нечего
	ErrUnavailable = errors.New("ephemeris data unavailable")
)

// isRequestError отделяет ошибки запроса (координаты, дата) от сбоев фида:
// для них устаревший отчёт не подставляется.
func isRequestError(err error) bool {
	return errors.Is(err, clients.ErrUnaddressable) ||
		errors.Is(err, clients.ErrOutOfRange) ||
		errors.Is(err, ErrInvalidInput)
}

// feedError помечает сбой фида как ErrUnavailable, ошибки запроса не трогает
func feedError(err error) error {
	if isRequestError(err) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
