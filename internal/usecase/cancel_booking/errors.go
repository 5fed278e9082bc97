package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец и не сотрудник
	ErrAccessDenied = errors.New("cancel_booking: access denied")

	// ErrCannotCancel возвращается, когда статус бронирования не допускает отмену
	ErrCannotCancel = errors.New("cancel_booking: booking cannot be cancelled in its current status")

	// ErrAlreadyStarted возвращается, когда пребывание уже началось
	ErrAlreadyStarted = errors.New("cancel_booking: stay has already started")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
