package cancel_booking

import (
	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	"github.com/m04kA/DogPlanner-PricingService/internal/service/bookings/models"
)

// Request модель запроса на отмену бронирования
type Request struct {
	BookingID int64   // ID бронирования
	UserID    int64   // ID пользователя (владелец или сотрудник)
	Reason    *string // Причина отмены (опционально)
}

// CalculationResponse расчёт штрафа за отмену
type CalculationResponse struct {
	DaysUntilStart    int     `json:"daysUntilStart"`
	FeeRate           float64 `json:"feeRate"`
	Fee               float64 `json:"fee"`
	Refund            float64 `json:"refund"`
	PolicyApplied     string  `json:"policyApplied"`
	PolicyDescription string  `json:"policyDescription"`
	CanCancel         bool    `json:"canCancel"`
	Message           string  `json:"message"`
}

// Response модель ответа на отмену
type Response struct {
	Booking      *models.BookingResponse `json:"booking"`
	Cancellation CalculationResponse     `json:"cancellation"`
}

func fromCalculation(c *domain.CancellationCalculation) CalculationResponse {
	return CalculationResponse{
		DaysUntilStart:    c.DaysUntilStart,
		FeeRate:           c.FeeRate,
		Fee:               c.Fee,
		Refund:            c.Refund,
		PolicyApplied:     c.PolicyApplied,
		PolicyDescription: c.PolicyDescription,
		CanCancel:         c.CanCancel,
		Message:           c.Message(),
	}
}
