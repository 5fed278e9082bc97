package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidPeriod возвращается, когда конец периода раньше начала
	ErrInvalidPeriod = errors.New("invalid period")
)

// Request модели

// GetMyBookingsRequest запрос на получение бронирований владельца
type GetMyBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetOrgBookingsRequest запрос на получение бронирований организации
type GetOrgBookingsRequest struct {
	UserID          int64       `json:"userId"`
	OrgID           int64       `json:"orgId"`
	RoomID          *int64      `json:"roomId,omitempty"`          // Фильтр по комнате (опционально)
	From            *types.Date `json:"from,omitempty"`            // Начало периода (опционально)
	To              *types.Date `json:"to,omitempty"`              // Конец периода (опционально)
	Status          *string     `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool        `json:"includeInactive,omitempty"` // Включить отменённые и завершённые
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetOrgBookingsRequest) ToDomainFilter() (domain.OrgBookingsFilter, error) {
	filter := domain.OrgBookingsFilter{
		OrgID:           r.OrgID,
		RoomID:          r.RoomID,
		From:            r.From,
		To:              r.To,
		IncludeInactive: r.IncludeInactive,
	}

	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return filter, ErrInvalidPeriod
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// PriceResponse снимок цены на момент бронирования
type PriceResponse struct {
	BasePrice      float64 `json:"basePrice"`
	SizeMultiplier float64 `json:"sizeMultiplier"`
	DateMultiplier float64 `json:"dateMultiplier"`
	PricePerNight  float64 `json:"pricePerNight"`
	Nights         int     `json:"nights"`
	TotalPrice     float64 `json:"totalPrice"`
}

// CancellationResponse данные отмены
type CancellationResponse struct {
	Fee         float64 `json:"fee"`
	Refund      float64 `json:"refund"`
	Reason      *string `json:"reason,omitempty"`
	CancelledBy *int64  `json:"cancelledBy,omitempty"`
	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64      `json:"id"`
	OrgID       int64      `json:"orgId"`
	DogID       int64      `json:"dogId"`
	OwnerUserID int64      `json:"ownerUserId"`
	RoomID      *int64     `json:"roomId,omitempty"`
	StartDate   types.Date `json:"startDate"` // "2025-09-01"
	EndDate     types.Date `json:"endDate"`
	Status      string     `json:"status"`
	StatusLabel string     `json:"statusLabel"`

	Tier        string   `json:"tier"`
	SizeBand    string   `json:"sizeBand"`
	DogName     *string  `json:"dogName,omitempty"`
	DogHeightCm *float64 `json:"dogHeightCm,omitempty"`

	Price        PriceResponse         `json:"price"`
	Cancellation *CancellationResponse `json:"cancellation,omitempty"`
	Notes        *string               `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:          b.ID,
		OrgID:       b.OrgID,
		DogID:       b.DogID,
		OwnerUserID: b.OwnerUserID,
		RoomID:      b.RoomID,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Status:      string(b.Status),
		StatusLabel: b.Status.Label(),
		Tier:        string(b.Tier),
		SizeBand:    string(b.SizeBand),
		DogName:     b.DogName,
		DogHeightCm: b.DogHeightCm,
		Price: PriceResponse{
			BasePrice:      b.BasePrice,
			SizeMultiplier: b.SizeMultiplier,
			DateMultiplier: b.DateMultiplier,
			PricePerNight:  b.PricePerNight,
			Nights:         b.Nights,
			TotalPrice:     b.TotalPrice,
		},
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	if b.IsCancelled() {
		cancellation := &CancellationResponse{
			Reason:      b.CancellationReason,
			CancelledBy: b.CancelledBy,
		}
		if b.CancellationFee != nil {
			cancellation.Fee = *b.CancellationFee
		}
		if b.RefundAmount != nil {
			cancellation.Refund = *b.RefundAmount
		}
		if b.CancelledAt != nil {
			cancelledStr := b.CancelledAt.Format(time.RFC3339)
			cancellation.CancelledAt = &cancelledStr
		}
		resp.Cancellation = cancellation
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в статус бронирования
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s, nil
}
