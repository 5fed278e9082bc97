package occupancy_report

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	reportCache "github.com/m04kA/DogPlanner-PricingService/internal/infra/cache/report"
	"github.com/m04kA/DogPlanner-PricingService/internal/service/access"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

// UseCase строит отчёт по бронированиям и занятости комнат за период.
// Результат кэшируется в Redis, ошибки кэша не прерывают расчёт.
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	access      AccessChecker
	cache       ReportCache
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// cache может быть nil, если Redis выключен
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	access AccessChecker,
	cache ReportCache,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		access:      access,
		cache:       cache,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute возвращает отчёт за период [StartDate, EndDate] для сотрудника организации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("OccupancyReport: org=%d, user=%d, window=%s..%s", req.OrgID, req.UserID, req.StartDate, req.EndDate)

	// 1. Валидация окна
	if err := validateWindow(req.OrgID, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	// 2. Только сотрудники организации
	if err := uc.access.RequireStaff(ctx, req.OrgID, req.UserID); err != nil {
		switch {
		case errors.Is(err, access.ErrAccessDenied):
			return nil, ErrAccessDenied
		case errors.Is(err, access.ErrOrgNotFound):
			return nil, ErrOrgNotFound
		default:
			return nil, fmt.Errorf("%w: access check failed: %v", ErrInternal, err)
		}
	}

	// 3. Пробуем кэш
	if uc.cache != nil {
		stats, err := uc.cache.Get(ctx, req.OrgID, req.StartDate, req.EndDate)
		switch {
		case err == nil:
			uc.metrics.ObserveCache(true)
			return FromDomainStats(req.StartDate, req.EndDate, stats, true), nil
		case errors.Is(err, reportCache.ErrCacheMiss):
			uc.metrics.ObserveCache(false)
		default:
			uc.metrics.ObserveCache(false)
			uc.logger.Warn("OccupancyReport: cache read failed for org=%d: %v", req.OrgID, err)
		}
	}

	// 4. Считаем и сохраняем в кэш
	stats, err := uc.Refresh(ctx, req.OrgID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	return FromDomainStats(req.StartDate, req.EndDate, stats, false), nil
}

// Refresh пересчитывает статистику без проверки доступа и кладёт её в кэш.
// Используется фоновым прогревом отчётов.
func (uc *UseCase) Refresh(ctx context.Context, orgID int64, start, end types.Date) (*domain.ReportStats, error) {
	if err := validateWindow(orgID, start, end); err != nil {
		return nil, err
	}

	stats, _, err := uc.Compute(ctx, orgID, start, end)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, start, end, stats); err != nil {
			uc.logger.Warn("OccupancyReport: cache write failed for org=%d: %v", orgID, err)
		}
	}

	return stats, nil
}

// Compute считает статистику за период напрямую из БД, минуя кэш.
// Возвращает также бронирования, попавшие в окно.
func (uc *UseCase) Compute(ctx context.Context, orgID int64, start, end types.Date) (*domain.ReportStats, []*domain.Booking, error) {
	bookings, err := uc.bookingRepo.GetByOrgWithFilter(ctx, domain.OrgBookingsFilter{
		OrgID:           orgID,
		From:            &start,
		To:              &end,
		IncludeInactive: true,
	})
	if err != nil {
		uc.logger.Error("OccupancyReport: failed to get bookings for org=%d: %v", orgID, err)
		return nil, nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	totalRooms, err := uc.roomRepo.CountActiveByOrg(ctx, orgID)
	if err != nil {
		uc.logger.Error("OccupancyReport: failed to count rooms for org=%d: %v", orgID, err)
		return nil, nil, fmt.Errorf("%w: failed to count rooms: %v", ErrInternal, err)
	}

	stats := domain.CollectReportStats(orgID, bookings)

	occupancy, err := domain.AggregateOccupancy(domain.RealisedSpans(bookings), totalRooms, start, end)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	stats.Occupancy = occupancy

	return stats, bookings, nil
}

func validateWindow(orgID int64, start, end types.Date) error {
	if orgID <= 0 {
		return fmt.Errorf("%w: orgId must be positive", ErrInvalidInput)
	}
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end must not be before start", ErrInvalidInput)
	}
	if start.DaysUntil(end)+1 > domain.MaxReportWindowDays {
		return fmt.Errorf("%w: window cannot exceed %d days", ErrInvalidInput, domain.MaxReportWindowDays)
	}
	return nil
}
