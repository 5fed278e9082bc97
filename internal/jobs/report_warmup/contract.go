package report_warmup

import (
	"context"
	"time"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

// OrgLister возвращает организации, у которых есть бронирования в окне
type OrgLister interface {
	GetOrgIDsWithBookings(ctx context.Context, from, to types.Date) ([]int64, error)
}

// ReportRefresher пересчитывает отчёт и кладёт его в кэш
type ReportRefresher interface {
	Refresh(ctx context.Context, orgID int64, start, end types.Date) (*domain.ReportStats, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
