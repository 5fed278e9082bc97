package get_org_bookings

import (
	"github.com/m04kA/DogPlanner-PricingService/internal/service/bookings/models"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

// OrgBookingsQuery query-параметры списка бронирований организации
type OrgBookingsQuery struct {
	RoomID          *int64      `query:"roomId"`
	From            *types.Date `query:"from"`
	To              *types.Date `query:"to"`
	Status          *string     `query:"status"`
	IncludeInactive bool        `query:"includeInactive"`
}

// ToServiceRequest конвертирует query в модель сервиса
func (q *OrgBookingsQuery) ToServiceRequest(orgID, userID int64) *models.GetOrgBookingsRequest {
	return &models.GetOrgBookingsRequest{
		UserID:          userID,
		OrgID:           orgID,
		RoomID:          q.RoomID,
		From:            q.From,
		To:              q.To,
		Status:          q.Status,
		IncludeInactive: q.IncludeInactive,
	}
}
