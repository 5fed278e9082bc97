package update_policy

import "github.com/m04kA/DogPlanner-PricingService/internal/service/policy/models"

// UpdatePolicyRequest HTTP request model
// Значения, которые не переданы, остаются прежними
type UpdatePolicyRequest struct {
	Pricing      *PricingInput      `json:"pricing,omitempty"`
	Cancellation *CancellationInput `json:"cancellation,omitempty"`
}

type PricingInput struct {
	TierBaseRates   map[string]float64 `json:"tierBaseRates,omitempty" validate:"omitempty,dive,gt=0"`
	SizeMultipliers map[string]float64 `json:"sizeMultipliers,omitempty" validate:"omitempty,dive,gt=0"`
	DateMultipliers map[string]float64 `json:"dateMultipliers,omitempty" validate:"omitempty,dive,gt=0"`
	VATRatePct      *float64           `json:"vatRatePct,omitempty" validate:"omitempty,gte=0,lte=100"`
	VATIncluded     *bool              `json:"vatIncluded,omitempty"`
}

type CancellationInput struct {
	Tiers       []CancellationTierInput `json:"tiers,omitempty" validate:"omitempty,max=10,dive"`
	Description *string                 `json:"description,omitempty" validate:"omitempty,max=500"`
}

type CancellationTierInput struct {
	MinDaysBefore int     `json:"minDaysBefore" validate:"gte=0"`
	FeeRate       float64 `json:"feeRate" validate:"gte=0,lte=1"`
}

// ToServiceRequest конвертирует HTTP модель в запрос сервиса
func (r *UpdatePolicyRequest) ToServiceRequest(orgID, userID int64) *models.UpdatePolicyRequest {
	req := &models.UpdatePolicyRequest{
		UserID: userID,
		OrgID:  orgID,
	}

	if r.Pricing != nil {
		req.Pricing = &models.PricingPolicyInput{
			TierBaseRates:   r.Pricing.TierBaseRates,
			SizeMultipliers: r.Pricing.SizeMultipliers,
			DateMultipliers: r.Pricing.DateMultipliers,
			VATRatePct:      r.Pricing.VATRatePct,
			VATIncluded:     r.Pricing.VATIncluded,
		}
	}

	if r.Cancellation != nil {
		req.Cancellation = &models.CancellationPolicyInput{
			Description: r.Cancellation.Description,
		}
		for _, t := range r.Cancellation.Tiers {
			req.Cancellation.Tiers = append(req.Cancellation.Tiers, models.CancellationTierDTO{
				MinDaysBefore: t.MinDaysBefore,
				FeeRate:       t.FeeRate,
			})
		}
	}

	return req
}
