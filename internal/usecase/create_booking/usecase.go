package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	roomRepo "github.com/m04kA/DogPlanner-PricingService/internal/infra/storage/room"
	dogClient "github.com/m04kA/DogPlanner-PricingService/internal/integrations/dogregistry"
	"github.com/m04kA/DogPlanner-PricingService/internal/service/bookings/models"
	"github.com/m04kA/DogPlanner-PricingService/pkg/txmanager"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	dogClient    DogRegistryClient
	policies     PolicyProvider
	reportCache  ReportCache
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// reportCache может быть nil, если кэш отчётов выключен
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	dogClient DogRegistryClient,
	policies PolicyProvider,
	reportCache ReportCache,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		dogClient:    dogClient,
		policies:     policies,
		reportCache:  reportCache,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка занятости комнаты и вставка выполняются в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.BookingResponse, error) {
	uc.logger.Info("CreateBooking: user=%d, org=%d, dog=%d, room=%v, tier=%s, period=%s..%s",
		req.UserID, req.OrgID, req.DogID, req.RoomID, req.Tier, req.StartDate, req.EndDate)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата заезда не в прошлом
	today := types.NewDate(uc.timeProvider.Now())
	if err := validateStartDate(req.StartDate, today); err != nil {
		uc.logger.Warn("CreateBooking: start date %s is before today %s", req.StartDate, today)
		return nil, err
	}

	// 3. Получаем собаку из реестра, без ответа реестра бронирование не создаётся
	var (
		dogName  *string
		heightCm *float64
	)
	dog, err := uc.dogClient.GetDogWithGracefulDegradation(ctx, req.DogID)
	switch {
	case err == nil:
		if dog.OwnerUserID != req.UserID {
			uc.logger.Warn("CreateBooking: user=%d is not the owner of dog=%d", req.UserID, req.DogID)
			return nil, ErrNotDogOwner
		}
		dogName = &dog.Name
		heightCm = dog.HeightCm
	case errors.Is(err, dogClient.ErrDogNotFound):
		uc.logger.Warn("CreateBooking: dog id=%d not found", req.DogID)
		return nil, ErrDogNotFound
	default:
		uc.logger.Warn("CreateBooking: dog registry unavailable for dog id=%d: %v", req.DogID, err)
		return nil, fmt.Errorf("%w: %v", ErrDogRegistryUnavailable, err)
	}

	// 4. Получаем действующую политику организации
	policy, err := uc.policies.GetEffective(ctx, req.OrgID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get policy for org=%d: %v", req.OrgID, err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}

	// 5. Считаем цену
	size := domain.ClassifySize(heightCm)
	breakdown, err := domain.CalculatePrice(size, domain.ServiceTier(req.Tier), req.StartDate, req.EndDate, policy.Pricing)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			uc.logger.Warn("CreateBooking: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("CreateBooking: calculation failed: %v", err)
		return nil, fmt.Errorf("%w: calculation failed: %v", ErrInternal, err)
	}

	booking := &domain.Booking{
		OrgID:       req.OrgID,
		DogID:       req.DogID,
		OwnerUserID: req.UserID,
		RoomID:      req.RoomID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      domain.StatusPending,
		DogName:     dogName,
		DogHeightCm: heightCm,
		Notes:       req.Notes,
	}
	booking.ApplyPrice(breakdown)

	// С назначенной комнатой бронирование сразу подтверждено
	if req.RoomID != nil {
		booking.Status = domain.StatusConfirmed
	}

	var result *domain.Booking

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if req.RoomID != nil {
			// 6.1. Проверяем комнату
			room, err := uc.roomRepo.GetByID(txCtx, *req.RoomID)
			if err != nil {
				if errors.Is(err, roomRepo.ErrRoomNotFound) {
					uc.logger.Warn("CreateBooking: room id=%d not found", *req.RoomID)
					return ErrRoomNotFound
				}
				uc.logger.Error("CreateBooking: failed to get room id=%d: %v", *req.RoomID, err)
				return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
			}

			if err := validateRoom(room, req.OrgID); err != nil {
				uc.logger.Warn("CreateBooking: room id=%d rejected for org=%d: %v", room.ID, req.OrgID, err)
				return err
			}

			// 6.2. Получаем пересекающиеся бронирования комнаты с блокировкой (FOR UPDATE)
			existing, err := uc.bookingRepo.GetActiveByRoom(txCtx, room.ID, req.StartDate, req.EndDate)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get bookings of room id=%d: %v", room.ID, err)
				return fmt.Errorf("%w: failed to get room bookings: %v", ErrInternal, err)
			}

			// 6.3. Комната должна быть свободна каждую ночь
			if conflicts := countConflicts(existing, req.StartDate, req.EndDate); conflicts > 0 {
				uc.logger.Warn("CreateBooking: room id=%d has %d conflicting bookings", room.ID, conflicts)
				return ErrRoomNotAvailable
			}
		}

		// 6.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Параллельная транзакция заняла комнату раньше нас
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateBooking: serialization conflict for room=%v: %v", req.RoomID, err)
			return nil, fmt.Errorf("%w: %v", ErrRoomNotAvailable, err)
		}
		return nil, err
	}

	// 7. Сбрасываем кэш отчётов организации
	if uc.reportCache != nil {
		if err := uc.reportCache.InvalidateOrg(ctx, req.OrgID); err != nil {
			uc.logger.Warn("CreateBooking: failed to invalidate report cache for org=%d: %v", req.OrgID, err)
		}
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, status=%s, total=%.0f",
		result.ID, result.Status, result.TotalPrice)

	return models.FromDomainBooking(result), nil
}
