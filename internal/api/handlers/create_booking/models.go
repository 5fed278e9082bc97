package create_booking

import (
	createBooking "github.com/m04kA/DogPlanner-PricingService/internal/usecase/create_booking"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	OrgID     int64      `json:"orgId" validate:"required,gt=0"`
	DogID     int64      `json:"dogId" validate:"required,gt=0"`
	RoomID    *int64     `json:"roomId,omitempty" validate:"omitempty,gt=0"`
	Tier      string     `json:"tier" validate:"required,oneof=budget standard premium"`
	StartDate types.Date `json:"startDate"` // "2025-09-01"
	EndDate   types.Date `json:"endDate"`   // дата выезда
	Notes     *string    `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:    userID,
		OrgID:     r.OrgID,
		DogID:     r.DogID,
		RoomID:    r.RoomID,
		Tier:      r.Tier,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Notes:     r.Notes,
	}
}
