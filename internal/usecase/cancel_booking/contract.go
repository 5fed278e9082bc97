package cancel_booking

import (
	"context"
	"time"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	bookingRepo "github.com/m04kA/DogPlanner-PricingService/internal/infra/storage/booking"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64, params bookingRepo.CancelParams) (*domain.Booking, error)
}

// PolicyProvider интерфейс получения действующей политики организации
type PolicyProvider interface {
	GetEffective(ctx context.Context, orgID int64) (*domain.OrgPolicy, error)
}

// AccessChecker интерфейс проверки прав доступа
type AccessChecker interface {
	RequireOwnerOrStaff(ctx context.Context, booking *domain.Booking, userID int64) (bool, error)
}

// ReportCache интерфейс кэша отчётов (сбрасывается при изменении бронирований)
type ReportCache interface {
	InvalidateOrg(ctx context.Context, orgID int64) error
}

// Metrics интерфейс метрик отмен
type Metrics interface {
	ObserveCancellation(feeRate float64)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
