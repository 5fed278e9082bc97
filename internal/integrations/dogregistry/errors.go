package dogregistry

import "errors"

var (
	// ErrDogNotFound возвращается, когда собака не зарегистрирована в реестре
	ErrDogNotFound = errors.New("dog not found in registry")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("dogregistry client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("dogregistry client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Рост собаки неизвестен, цена считается для средней собаки
	ErrServiceDegraded = errors.New("dogregistry unavailable: graceful degradation applied")
)
