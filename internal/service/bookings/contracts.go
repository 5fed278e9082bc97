package bookings

import (
	"context"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByOwner(ctx context.Context, ownerUserID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByOrgWithFilter(ctx context.Context, filter domain.OrgBookingsFilter) ([]*domain.Booking, error)
}

// AccessChecker интерфейс проверки прав доступа
type AccessChecker interface {
	RequireStaff(ctx context.Context, orgID int64, userID int64) error
	RequireOwnerOrStaff(ctx context.Context, booking *domain.Booking, userID int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
