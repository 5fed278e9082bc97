package create_booking

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.OrgID <= 0 {
		return fmt.Errorf("%w: orgId must be positive", ErrInvalidInput)
	}

	if req.DogID <= 0 {
		return fmt.Errorf("%w: dogId must be positive", ErrInvalidInput)
	}

	if req.RoomID != nil && *req.RoomID <= 0 {
		return fmt.Errorf("%w: roomId must be positive", ErrInvalidInput)
	}

	if !domain.ServiceTier(req.Tier).IsValid() {
		return fmt.Errorf("%w: unknown tier %q", ErrInvalidInput, req.Tier)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if !req.StartDate.Before(req.EndDate) {
		return fmt.Errorf("%w: endDate must be after startDate", ErrInvalidInput)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes cannot exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateStartDate проверяет, что заезд не раньше сегодняшнего дня
func validateStartDate(start, today types.Date) error {
	if start.Before(today) {
		return ErrStartInPast
	}
	return nil
}

// validateRoom проверяет, что комната принадлежит организации и активна
func validateRoom(room *domain.Room, orgID int64) error {
	if room.OrgID != orgID {
		return ErrRoomNotFound
	}
	if !room.IsActive {
		return ErrRoomInactive
	}
	return nil
}

// countConflicts подсчитывает активные бронирования комнаты, пересекающиеся с [start, end)
func countConflicts(bookings []*domain.Booking, start, end types.Date) int {
	count := 0
	for _, b := range bookings {
		if b.IsActive() && b.Overlaps(start, end) {
			count++
		}
	}
	return count
}
