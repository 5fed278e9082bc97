package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	bookingRepo "github.com/m04kA/DogPlanner-PricingService/internal/infra/storage/booking"
	"github.com/m04kA/DogPlanner-PricingService/internal/service/access"
	"github.com/m04kA/DogPlanner-PricingService/internal/service/bookings/models"
)

// Service сервис чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	access      AccessChecker
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	access AccessChecker,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		access:      access,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Доступно владельцу собаки и сотрудникам организации
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if _, err := s.access.RequireOwnerOrStaff(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, s.mapAccessError(err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetMyBookings получает бронирования владельца
// Опционально фильтрует по статусу
func (s *Service) GetMyBookings(ctx context.Context, req *models.GetMyBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetMyBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetMyBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByOwner(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetMyBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetMyBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetMyBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetOrgBookings получает бронирования организации с фильтрацией
// Доступно только сотрудникам организации
//
// Примеры использования:
// - Все активные бронирования: GetOrgBookings(ctx, &GetOrgBookingsRequest{OrgID: 12, UserID: 3})
// - Занятость комнаты: указать RoomID
// - Пребывания, пересекающиеся с периодом: From и To
// - Включая отменённые и завершённые: IncludeInactive = true
func (s *Service) GetOrgBookings(ctx context.Context, req *models.GetOrgBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetOrgBookings: fetching bookings for org=%d, user=%d", req.OrgID, req.UserID)
	if req.RoomID != nil {
		logMsg += fmt.Sprintf(", room=%d", *req.RoomID)
	}
	if req.From != nil || req.To != nil {
		logMsg += fmt.Sprintf(", period=%v to %v", req.From, req.To)
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	s.logger.Info("%s", logMsg)

	if err := s.access.RequireStaff(ctx, req.OrgID, req.UserID); err != nil {
		return nil, s.mapAccessError(err)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetOrgBookings: invalid filter for org=%d: %v", req.OrgID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.GetByOrgWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetOrgBookings: repository error for org=%d: %v", req.OrgID, err)
		return nil, fmt.Errorf("%w: GetOrgBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOrgBookings: fetched %d bookings for org=%d", len(bookings), req.OrgID)
	return models.FromDomainBookingList(bookings), nil
}

// mapAccessError переводит ошибки проверки доступа в ошибки сервиса
func (s *Service) mapAccessError(err error) error {
	switch {
	case errors.Is(err, access.ErrAccessDenied):
		return ErrAccessDenied
	case errors.Is(err, access.ErrOrgNotFound):
		return ErrOrgNotFound
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
