package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation базовая ошибка валидации входных данных калькуляторов
	ErrValidation = errors.New("domain: validation error")

	// ErrInvalidDateRange возвращается, когда дата окончания не позже даты начала
	ErrInvalidDateRange = errors.New("domain: end date must be after start date")

	// ErrAlreadyStarted возвращается, когда отмена запрошена после начала пребывания
	ErrAlreadyStarted = errors.New("domain: stay has already started")

	// ErrUnknownTier возвращается для неизвестного тарифа
	ErrUnknownTier = errors.New("domain: unknown service tier")
)

// ValidationError ошибка валидации конкретного поля
type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

// NewValidationError создает ошибку валидации поля
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Is позволяет проверять ошибку через errors.Is(err, ErrValidation)
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
