package create_booking

import "errors"

var (
	// ErrDogNotFound возвращается, когда собака не найдена в реестре
	ErrDogNotFound = errors.New("create_booking: dog not found")

	// ErrNotDogOwner возвращается, когда пользователь бронирует чужую собаку
	ErrNotDogOwner = errors.New("create_booking: user is not the owner of the dog")

	// ErrDogRegistryUnavailable возвращается, когда реестр не ответил и владельца собаки не проверить
	ErrDogRegistryUnavailable = errors.New("create_booking: dog registry unavailable, ownership cannot be verified")

	// ErrRoomNotFound возвращается, когда комната не найдена в организации
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomInactive возвращается, когда комната выведена из эксплуатации
	ErrRoomInactive = errors.New("create_booking: room is not active")

	// ErrRoomNotAvailable возвращается, когда комната занята хотя бы одну ночь периода
	ErrRoomNotAvailable = errors.New("create_booking: room is not available for the selected period")

	// ErrStartInPast возвращается, когда дата заезда в прошлом
	ErrStartInPast = errors.New("create_booking: start date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
