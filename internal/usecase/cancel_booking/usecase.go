package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	bookingRepo "github.com/m04kA/DogPlanner-PricingService/internal/infra/storage/booking"
	"github.com/m04kA/DogPlanner-PricingService/internal/service/access"
	"github.com/m04kA/DogPlanner-PricingService/internal/service/bookings/models"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

// UseCase use case для отмены бронирования со штрафом по политике организации
type UseCase struct {
	bookingRepo  BookingRepository
	policies     PolicyProvider
	access       AccessChecker
	reportCache  ReportCache
	metrics      Metrics
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// reportCache может быть nil, если кэш отчётов выключен
func NewUseCase(
	bookingRepo BookingRepository,
	policies PolicyProvider,
	access AccessChecker,
	reportCache ReportCache,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		policies:     policies,
		access:       access,
		reportCache:  reportCache,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Preview рассчитывает штраф за отмену без изменения бронирования
func (uc *UseCase) Preview(ctx context.Context, bookingID int64, userID int64) (*CalculationResponse, error) {
	uc.logger.Info("CancellationPreview: booking=%d, user=%d", bookingID, userID)

	if err := validateRequest(&Request{BookingID: bookingID, UserID: userID}); err != nil {
		return nil, err
	}

	booking, err := uc.loadWithAccess(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	today := types.NewDate(uc.timeProvider.Now())

	if !booking.CanBeCancelled() {
		return &CalculationResponse{
			DaysUntilStart: today.DaysUntil(booking.StartDate),
			CanCancel:      false,
			Message:        fmt.Sprintf("Bokningen har status %q och kan inte avbokas.", booking.Status.Label()),
		}, nil
	}

	calc, err := uc.calculate(ctx, booking, today)
	if err != nil && !errors.Is(err, domain.ErrAlreadyStarted) {
		return nil, err
	}

	resp := fromCalculation(calc)
	return &resp, nil
}

// Execute отменяет бронирование
// Расчёт штрафа и изменение статуса выполняются в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%d, user=%d", req.BookingID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем права доступа до открытия транзакции
	if _, err := uc.loadWithAccess(ctx, req.BookingID, req.UserID); err != nil {
		return nil, err
	}

	today := types.NewDate(uc.timeProvider.Now())

	var (
		cancelled *domain.Booking
		calc      *domain.CancellationCalculation
	)

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Перечитываем бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.getBooking(txCtx, req.BookingID)
		if err != nil {
			return err
		}

		// 3.2. Проверяем, что отмена допустима
		if err := checkEligibility(booking, today); err != nil {
			uc.logger.Warn("CancelBooking: booking id=%d not eligible (status=%s, start=%s): %v",
				booking.ID, booking.Status, booking.StartDate, err)
			return err
		}

		// 3.3. Считаем штраф по политике организации
		calc, err = uc.calculate(txCtx, booking, today)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyStarted) {
				return ErrAlreadyStarted
			}
			return err
		}

		// 3.4. Сохраняем отмену
		cancelled, err = uc.bookingRepo.Cancel(txCtx, booking.ID, bookingRepo.CancelParams{
			Fee:         calc.Fee,
			Refund:      calc.Refund,
			Reason:      req.Reason,
			CancelledBy: req.UserID,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.ObserveCancellation(calc.FeeRate)

	// 4. Сбрасываем кэш отчётов организации
	if uc.reportCache != nil {
		if err := uc.reportCache.InvalidateOrg(ctx, cancelled.OrgID); err != nil {
			uc.logger.Warn("CancelBooking: failed to invalidate report cache for org=%d: %v", cancelled.OrgID, err)
		}
	}

	uc.logger.Info("CancelBooking: booking id=%d cancelled, fee=%.2f, refund=%.2f",
		cancelled.ID, calc.Fee, calc.Refund)

	return &Response{
		Booking:      models.FromDomainBooking(cancelled),
		Cancellation: fromCalculation(calc),
	}, nil
}

func (uc *UseCase) getBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

func (uc *UseCase) loadWithAccess(ctx context.Context, bookingID int64, userID int64) (*domain.Booking, error) {
	booking, err := uc.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.access.RequireOwnerOrStaff(ctx, booking, userID); err != nil {
		if errors.Is(err, access.ErrAccessDenied) {
			uc.logger.Warn("CancelBooking: access denied for user=%d to booking id=%d", userID, bookingID)
			return nil, ErrAccessDenied
		}
		return nil, fmt.Errorf("%w: access check failed: %v", ErrInternal, err)
	}

	return booking, nil
}

// calculate считает штраф по действующей политике организации.
// Для начавшегося пребывания возвращает расчёт вместе с domain.ErrAlreadyStarted.
func (uc *UseCase) calculate(ctx context.Context, booking *domain.Booking, today types.Date) (*domain.CancellationCalculation, error) {
	policy, err := uc.policies.GetEffective(ctx, booking.OrgID)
	if err != nil {
		uc.logger.Error("CancelBooking: failed to get policy for org=%d: %v", booking.OrgID, err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}

	calc, err := domain.CalculateCancellationFee(today, booking.StartDate, booking.TotalPrice, policy.Cancellation)
	if err != nil && !errors.Is(err, domain.ErrAlreadyStarted) {
		uc.logger.Error("CancelBooking: calculation failed for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: calculation failed: %v", ErrInternal, err)
	}

	return calc, err
}
