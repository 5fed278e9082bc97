package cancel_booking

import (
	cancelBooking "github.com/m04kA/DogPlanner-PricingService/internal/usecase/cancel_booking"
)

// CancelBookingRequest HTTP request model (тело опционально)
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelBookingRequest) ToUseCaseRequest(bookingID, userID int64) *cancelBooking.Request {
	return &cancelBooking.Request{
		BookingID: bookingID,
		UserID:    userID,
		Reason:    r.Reason,
	}
}
