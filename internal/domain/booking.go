package domain

import (
	"time"

	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

// BookingStatus represents the status of a boarding booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
)

// IsValid returns true if the status is known
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	}
	return false
}

// statusTransitions позволенные переходы статусов (кроме отмены)
var statusTransitions = map[BookingStatus]BookingStatus{
	StatusPending:   StatusConfirmed,
	StatusConfirmed: StatusCheckedIn,
	StatusCheckedIn: StatusCheckedOut,
}

// CanTransitionTo reports whether the status may move to next.
// Cancellation has its own flow and is not a transition here.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	allowed, ok := statusTransitions[s]
	return ok && allowed == next
}

// Label returns the Swedish display label of the status
func (s BookingStatus) Label() string {
	switch s {
	case StatusPending:
		return "Väntande"
	case StatusConfirmed:
		return "Bekräftad"
	case StatusCheckedIn:
		return "Incheckad"
	case StatusCheckedOut:
		return "Utcheckad"
	case StatusCancelled:
		return "Avbokad"
	}
	return string(s)
}

// Booking represents a boarding stay of one dog
type Booking struct {
	ID          int64
	OrgID       int64
	DogID       int64
	OwnerUserID int64
	RoomID      *int64 // nil = room not assigned yet
	StartDate   types.Date
	EndDate     types.Date // check-out day
	Status      BookingStatus

	Tier        ServiceTier
	SizeBand    SizeBand
	DogName     *string
	DogHeightCm *float64 // nil = unknown at booking time

	// Price snapshot at booking time
	BasePrice      float64
	SizeMultiplier float64
	DateMultiplier float64
	PricePerNight  float64
	Nights         int
	TotalPrice     float64

	CancellationFee    *float64
	RefundAmount       *float64
	CancellationReason *string
	CancelledBy        *int64
	CancelledAt        *time.Time

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApplyPrice copies a price breakdown into the booking snapshot
func (b *Booking) ApplyPrice(p *PriceBreakdown) {
	b.Tier = p.Tier
	b.SizeBand = p.SizeBand
	b.BasePrice = p.BasePrice
	b.SizeMultiplier = p.SizeMultiplier
	b.DateMultiplier = p.DateMultiplier
	b.PricePerNight = p.TotalPerNight
	b.Nights = p.Nights
	b.TotalPrice = p.TotalCost
}

// IsActive returns true if the booking still holds its room
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending ||
		b.Status == StatusConfirmed ||
		b.Status == StatusCheckedIn
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the status still allows a cancellation
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Overlaps reports whether the stay shares at least one night with [start, end).
// Check-out day of one stay may equal check-in day of another.
func (b *Booking) Overlaps(start, end types.Date) bool {
	return b.StartDate.Before(end) && start.Before(b.EndDate)
}

// OccupancySpan returns the booking as input for AggregateOccupancy
func (b *Booking) OccupancySpan() OccupancySpan {
	return OccupancySpan{Start: b.StartDate, End: b.EndDate, RoomID: b.RoomID}
}

// OrgBookingsFilter фильтр для получения бронирований организации
type OrgBookingsFilter struct {
	OrgID           int64          // Обязательный параметр
	RoomID          *int64         // Фильтр по комнате (опционально)
	From            *types.Date    // Пребывание заканчивается не раньше From (опционально)
	To              *types.Date    // Пребывание начинается не позже To (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать отмененные и завершённые
}
