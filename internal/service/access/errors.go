package access

import "errors"

var (
	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrOrgNotFound возвращается, когда организация не найдена
	ErrOrgNotFound = errors.New("organisation not found")

	// ErrInternal возвращается при ошибке обращения к сервису организаций
	ErrInternal = errors.New("access: internal error")
)
