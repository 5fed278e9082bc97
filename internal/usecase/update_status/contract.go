package update_status

import (
	"context"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// AccessChecker интерфейс проверки прав доступа
type AccessChecker interface {
	RequireStaff(ctx context.Context, orgID int64, userID int64) error
}

// ReportCache интерфейс кэша отчётов
type ReportCache interface {
	InvalidateOrg(ctx context.Context, orgID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
