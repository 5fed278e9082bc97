package export_report

import "errors"

var (
	// ErrAccessDenied возвращается, когда пользователь не сотрудник организации
	ErrAccessDenied = errors.New("export_report: access denied")

	// ErrOrgNotFound возвращается, когда организация не найдена
	ErrOrgNotFound = errors.New("export_report: organisation not found")

	// ErrInvalidInput возвращается при некорректном окне отчёта
	ErrInvalidInput = errors.New("export_report: invalid input data")

	// ErrWorkbook возвращается при ошибке формирования xlsx
	ErrWorkbook = errors.New("export_report: failed to build workbook")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("export_report: internal error")
)
