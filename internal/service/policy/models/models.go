package models

import (
	"time"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
)

// Request модели

// UpdatePolicyRequest запрос на изменение политики организации.
// Переданные значения накладываются на текущую действующую политику.
type UpdatePolicyRequest struct {
	UserID       int64                    `json:"userId"`
	OrgID        int64                    `json:"orgId"`
	Pricing      *PricingPolicyInput      `json:"pricing,omitempty"`
	Cancellation *CancellationPolicyInput `json:"cancellation,omitempty"`
}

// PricingPolicyInput изменяемая часть тарифной политики
type PricingPolicyInput struct {
	TierBaseRates   map[string]float64 `json:"tierBaseRates,omitempty"`
	SizeMultipliers map[string]float64 `json:"sizeMultipliers,omitempty"`
	DateMultipliers map[string]float64 `json:"dateMultipliers,omitempty"`
	VATRatePct      *float64           `json:"vatRatePct,omitempty"`
	VATIncluded     *bool              `json:"vatIncluded,omitempty"`
}

// CancellationPolicyInput новая таблица ступеней отмены
type CancellationPolicyInput struct {
	Tiers       []CancellationTierDTO `json:"tiers,omitempty"`
	Description *string               `json:"description,omitempty"`
}

// ApplyTo накладывает запрос на политику (изменяет переданную политику)
// Неизвестные тарифы, размеры и категории дат отклоняются
func (r *UpdatePolicyRequest) ApplyTo(p *domain.OrgPolicy) error {
	if r.Pricing != nil {
		for k, v := range r.Pricing.TierBaseRates {
			tier := domain.ServiceTier(k)
			if !tier.IsValid() {
				return domain.NewValidationError("tierBaseRates."+k, "unknown service tier")
			}
			p.Pricing.TierBaseRates[tier] = v
		}
		for k, v := range r.Pricing.SizeMultipliers {
			size := domain.SizeBand(k)
			if !size.IsValid() {
				return domain.NewValidationError("sizeMultipliers."+k, "unknown size band")
			}
			p.Pricing.SizeMultipliers[size] = v
		}
		for k, v := range r.Pricing.DateMultipliers {
			cat := domain.DateCategory(k)
			if !cat.IsValid() {
				return domain.NewValidationError("dateMultipliers."+k, "unknown date category")
			}
			p.Pricing.DateMultipliers[cat] = v
		}
		if r.Pricing.VATRatePct != nil {
			p.Pricing.VATRatePct = *r.Pricing.VATRatePct
		}
		if r.Pricing.VATIncluded != nil {
			p.Pricing.VATIncluded = *r.Pricing.VATIncluded
		}
	}

	if r.Cancellation != nil {
		if len(r.Cancellation.Tiers) > 0 {
			p.Cancellation.Tiers = make([]domain.CancellationTier, 0, len(r.Cancellation.Tiers))
			for _, t := range r.Cancellation.Tiers {
				p.Cancellation.Tiers = append(p.Cancellation.Tiers, domain.CancellationTier{
					MinDaysBefore: t.MinDaysBefore,
					FeeRate:       t.FeeRate,
				})
			}
			p.Cancellation.Normalize()
			// Старое описание относится к прежним ступеням
			if r.Cancellation.Description == nil {
				p.Cancellation.Description = ""
			}
		}
		if r.Cancellation.Description != nil {
			p.Cancellation.Description = *r.Cancellation.Description
		}
	}

	return nil
}

// Response модели

// CancellationTierDTO ступень политики отмены
type CancellationTierDTO struct {
	MinDaysBefore int     `json:"minDaysBefore"`
	FeeRate       float64 `json:"feeRate"`
}

// PricingPolicyResponse тарифная политика
type PricingPolicyResponse struct {
	TierBaseRates   map[string]float64 `json:"tierBaseRates"`
	SizeMultipliers map[string]float64 `json:"sizeMultipliers"`
	DateMultipliers map[string]float64 `json:"dateMultipliers"`
	VATRatePct      float64            `json:"vatRatePct"`
	VATIncluded     bool               `json:"vatIncluded"`
}

// CancellationPolicyResponse политика отмены
type CancellationPolicyResponse struct {
	Tiers       []CancellationTierDTO `json:"tiers"`
	Description string                `json:"description"`
	Summary     string                `json:"summary"`
}

// PolicyResponse действующая политика организации
type PolicyResponse struct {
	OrgID        int64                      `json:"orgId"`
	IsDefault    bool                       `json:"isDefault"`
	Pricing      PricingPolicyResponse      `json:"pricing"`
	Cancellation CancellationPolicyResponse `json:"cancellation"`
	UpdatedAt    *time.Time                 `json:"updatedAt,omitempty"`
}

// FromDomainPolicy конвертирует domain модель в DTO
func FromDomainPolicy(p *domain.OrgPolicy) *PolicyResponse {
	resp := &PolicyResponse{
		OrgID:     p.OrgID,
		IsDefault: p.IsDefault,
		Pricing: PricingPolicyResponse{
			TierBaseRates:   make(map[string]float64, len(p.Pricing.TierBaseRates)),
			SizeMultipliers: make(map[string]float64, len(p.Pricing.SizeMultipliers)),
			DateMultipliers: make(map[string]float64, len(p.Pricing.DateMultipliers)),
			VATRatePct:      p.Pricing.VATRatePct,
			VATIncluded:     p.Pricing.VATIncluded,
		},
		Cancellation: CancellationPolicyResponse{
			Tiers:       make([]CancellationTierDTO, 0, len(p.Cancellation.Tiers)),
			Description: p.Cancellation.Description,
			Summary:     p.Cancellation.Summary(),
		},
	}

	for k, v := range p.Pricing.TierBaseRates {
		resp.Pricing.TierBaseRates[string(k)] = v
	}
	for k, v := range p.Pricing.SizeMultipliers {
		resp.Pricing.SizeMultipliers[string(k)] = v
	}
	for k, v := range p.Pricing.DateMultipliers {
		resp.Pricing.DateMultipliers[string(k)] = v
	}
	for _, t := range p.Cancellation.Tiers {
		resp.Cancellation.Tiers = append(resp.Cancellation.Tiers, CancellationTierDTO{
			MinDaysBefore: t.MinDaysBefore,
			FeeRate:       t.FeeRate,
		})
	}

	if !p.IsDefault && !p.UpdatedAt.IsZero() {
		updatedAt := p.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}
