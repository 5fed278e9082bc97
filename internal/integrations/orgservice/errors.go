package orgservice

import "errors"

var (
	// ErrOrgNotFound возвращается, когда организация не найдена
	ErrOrgNotFound = errors.New("organisation not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("orgservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("orgservice client: invalid response")
)
