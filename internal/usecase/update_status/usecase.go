package update_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	bookingRepo "github.com/m04kA/DogPlanner-PricingService/internal/infra/storage/booking"
	"github.com/m04kA/DogPlanner-PricingService/internal/service/access"
	"github.com/m04kA/DogPlanner-PricingService/internal/service/bookings/models"
)

// UseCase переводит бронирование по жизненному циклу:
// pending → confirmed → checked_in → checked_out.
// Отмена выполняется отдельным use case.
type UseCase struct {
	bookingRepo BookingRepository
	access      AccessChecker
	reportCache ReportCache
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	access AccessChecker,
	reportCache ReportCache,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		access:      access,
		reportCache: reportCache,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute меняет статус бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.BookingResponse, error) {
	uc.logger.Info("UpdateStatus: booking=%d, user=%d, status=%s", req.BookingID, req.UserID, req.Status)

	// 1. Валидация входных данных
	if req.BookingID <= 0 || req.UserID <= 0 {
		return nil, fmt.Errorf("%w: bookingId and userID must be positive", ErrInvalidInput)
	}
	next := domain.BookingStatus(req.Status)
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}
	if next == domain.StatusCancelled {
		return nil, fmt.Errorf("%w: use the cancellation endpoint to cancel", ErrInvalidTransition)
	}

	var updated *domain.Booking

	// 2. Проверка доступа и смена статуса в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.getBooking(txCtx, req.BookingID)
		if err != nil {
			return err
		}

		if err := uc.access.RequireStaff(txCtx, booking.OrgID, req.UserID); err != nil {
			if errors.Is(err, access.ErrAccessDenied) || errors.Is(err, access.ErrOrgNotFound) {
				return ErrAccessDenied
			}
			return fmt.Errorf("%w: access check failed: %v", ErrInternal, err)
		}

		if !booking.Status.CanTransitionTo(next) {
			uc.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%d",
				booking.Status, next, booking.ID)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, next)
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, next); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateStatus: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		updated, err = uc.getBooking(txCtx, booking.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	// 3. Статус влияет на отчёты, сбрасываем кэш
	if uc.reportCache != nil {
		if err := uc.reportCache.InvalidateOrg(ctx, updated.OrgID); err != nil {
			uc.logger.Warn("UpdateStatus: failed to invalidate report cache for org=%d: %v", updated.OrgID, err)
		}
	}

	uc.logger.Info("UpdateStatus: booking id=%d is now %s", updated.ID, updated.Status)

	return models.FromDomainBooking(updated), nil
}

func (uc *UseCase) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateStatus: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}
