package occupancy_report

import "errors"

var (
	// ErrAccessDenied возвращается, когда пользователь не сотрудник организации
	ErrAccessDenied = errors.New("occupancy_report: access denied")

	// ErrOrgNotFound возвращается, когда организация не найдена
	ErrOrgNotFound = errors.New("occupancy_report: organisation not found")

	// ErrInvalidInput возвращается при некорректном окне отчёта
	ErrInvalidInput = errors.New("occupancy_report: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("occupancy_report: internal error")
)
