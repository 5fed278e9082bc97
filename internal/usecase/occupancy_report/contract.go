package occupancy_report

import (
	"context"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByOrgWithFilter(ctx context.Context, filter domain.OrgBookingsFilter) ([]*domain.Booking, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	CountActiveByOrg(ctx context.Context, orgID int64) (int, error)
}

// AccessChecker интерфейс проверки прав доступа
type AccessChecker interface {
	RequireStaff(ctx context.Context, orgID int64, userID int64) error
}

// ReportCache интерфейс кэша отчётов
type ReportCache interface {
	Get(ctx context.Context, orgID int64, start, end types.Date) (*domain.ReportStats, error)
	Set(ctx context.Context, start, end types.Date, stats *domain.ReportStats) error
}

// Metrics интерфейс метрик кэша
type Metrics interface {
	ObserveCache(hit bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
