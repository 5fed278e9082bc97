package cancel_booking

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Reason != nil && utf8.RuneCountInString(*req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason cannot exceed %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	return nil
}

// checkEligibility проверяет, что бронирование ещё можно отменить
func checkEligibility(booking *domain.Booking, today types.Date) error {
	if domain.CanCustomerCancel(booking.Status, booking.StartDate, today) {
		return nil
	}
	if !booking.CanBeCancelled() {
		return ErrCannotCancel
	}
	return ErrAlreadyStarted
}
