package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	"github.com/m04kA/DogPlanner-PricingService/internal/integrations/dogregistry"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetActiveByRoom(ctx context.Context, roomID int64, start, end types.Date) ([]*domain.Booking, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, roomID int64) (*domain.Room, error)
}

// DogRegistryClient интерфейс клиента реестра собак
type DogRegistryClient interface {
	GetDogWithGracefulDegradation(ctx context.Context, dogID int64) (*dogregistry.Dog, error)
}

// PolicyProvider интерфейс получения действующей политики организации
type PolicyProvider interface {
	GetEffective(ctx context.Context, orgID int64) (*domain.OrgPolicy, error)
}

// ReportCache интерфейс кэша отчётов (сбрасывается при изменении бронирований)
type ReportCache interface {
	InvalidateOrg(ctx context.Context, orgID int64) error
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
