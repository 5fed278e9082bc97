package policy

import (
	"encoding/json"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
)

// pricingDocument jsonb представление тарифной политики.
// Отсутствующие ключи означают "как в политике по умолчанию".
type pricingDocument struct {
	TierBaseRates   map[string]float64 `json:"tierBaseRates,omitempty"`
	SizeMultipliers map[string]float64 `json:"sizeMultipliers,omitempty"`
	DateMultipliers map[string]float64 `json:"dateMultipliers,omitempty"`
	VATRatePct      *float64           `json:"vatRatePct,omitempty"`
	VATIncluded     *bool              `json:"vatIncluded,omitempty"`
}

// cancellationDocument jsonb представление политики отмены
type cancellationDocument struct {
	Tiers       []cancellationTierDocument `json:"tiers,omitempty"`
	Description string                     `json:"description,omitempty"`
}

type cancellationTierDocument struct {
	MinDaysBefore int     `json:"minDaysBefore"`
	FeeRate       float64 `json:"feeRate"`
}

func encodePricing(p *domain.PricingPolicy) ([]byte, error) {
	doc := pricingDocument{
		TierBaseRates:   make(map[string]float64, len(p.TierBaseRates)),
		SizeMultipliers: make(map[string]float64, len(p.SizeMultipliers)),
		DateMultipliers: make(map[string]float64, len(p.DateMultipliers)),
		VATRatePct:      &p.VATRatePct,
		VATIncluded:     &p.VATIncluded,
	}
	for k, v := range p.TierBaseRates {
		doc.TierBaseRates[string(k)] = v
	}
	for k, v := range p.SizeMultipliers {
		doc.SizeMultipliers[string(k)] = v
	}
	for k, v := range p.DateMultipliers {
		doc.DateMultipliers[string(k)] = v
	}
	return json.Marshal(doc)
}

// decodePricing накладывает сохранённые значения на политику по умолчанию
func decodePricing(data []byte, defaults *domain.PricingPolicy) (*domain.PricingPolicy, error) {
	var doc pricingDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	p := defaults.Clone()
	for k, v := range doc.TierBaseRates {
		p.TierBaseRates[domain.ServiceTier(k)] = v
	}
	for k, v := range doc.SizeMultipliers {
		p.SizeMultipliers[domain.SizeBand(k)] = v
	}
	for k, v := range doc.DateMultipliers {
		p.DateMultipliers[domain.DateCategory(k)] = v
	}
	if doc.VATRatePct != nil {
		p.VATRatePct = *doc.VATRatePct
	}
	if doc.VATIncluded != nil {
		p.VATIncluded = *doc.VATIncluded
	}
	return p, nil
}

func encodeCancellation(p *domain.CancellationPolicy) ([]byte, error) {
	doc := cancellationDocument{
		Tiers:       make([]cancellationTierDocument, 0, len(p.Tiers)),
		Description: p.Description,
	}
	for _, t := range p.Tiers {
		doc.Tiers = append(doc.Tiers, cancellationTierDocument{MinDaysBefore: t.MinDaysBefore, FeeRate: t.FeeRate})
	}
	return json.Marshal(doc)
}

// decodeCancellation без сохранённых ступеней использует ступени по умолчанию
func decodeCancellation(data []byte, defaults *domain.CancellationPolicy) (*domain.CancellationPolicy, error) {
	var doc cancellationDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	p := defaults.Clone()
	if len(doc.Tiers) > 0 {
		p.Tiers = make([]domain.CancellationTier, 0, len(doc.Tiers))
		for _, t := range doc.Tiers {
			p.Tiers = append(p.Tiers, domain.CancellationTier{MinDaysBefore: t.MinDaysBefore, FeeRate: t.FeeRate})
		}
		p.Normalize()
	}
	if doc.Description != "" {
		p.Description = doc.Description
	}
	return p, nil
}
