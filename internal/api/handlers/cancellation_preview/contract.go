package cancellation_preview

import (
	"context"

	cancelBooking "github.com/m04kA/DogPlanner-PricingService/internal/usecase/cancel_booking"
)

type CancellationPreviewer interface {
	Preview(ctx context.Context, bookingID int64, userID int64) (*cancelBooking.CalculationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
