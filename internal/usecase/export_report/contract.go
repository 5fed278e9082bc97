package export_report

import (
	"context"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

// ReportBuilder считает статистику отчёта вместе с бронированиями окна
type ReportBuilder interface {
	Compute(ctx context.Context, orgID int64, start, end types.Date) (*domain.ReportStats, []*domain.Booking, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	ListActiveByOrg(ctx context.Context, orgID int64) ([]*domain.Room, error)
}

// AccessChecker интерфейс проверки прав доступа
type AccessChecker interface {
	RequireStaff(ctx context.Context, orgID int64, userID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
