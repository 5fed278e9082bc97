package quote

import (
	quotePrice "github.com/m04kA/DogPlanner-PricingService/internal/usecase/quote_price"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	OrgID     int64      `json:"orgId" validate:"gte=0"`
	DogID     *int64     `json:"dogId,omitempty" validate:"omitempty,gt=0"`
	HeightCm  *float64   `json:"heightCm,omitempty" validate:"omitempty,gt=0"`
	Tier      string     `json:"tier" validate:"required,oneof=budget standard premium"`
	StartDate types.Date `json:"startDate"` // "2025-09-01"
	EndDate   types.Date `json:"endDate"`   // дата выезда
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() *quotePrice.Request {
	return &quotePrice.Request{
		OrgID:     r.OrgID,
		DogID:     r.DogID,
		HeightCm:  r.HeightCm,
		Tier:      r.Tier,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}
