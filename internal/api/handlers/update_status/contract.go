package update_status

import (
	"context"

	"github.com/m04kA/DogPlanner-PricingService/internal/service/bookings/models"
	updateStatus "github.com/m04kA/DogPlanner-PricingService/internal/usecase/update_status"
)

type UpdateStatusUseCase interface {
	Execute(ctx context.Context, req *updateStatus.Request) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
