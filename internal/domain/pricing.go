package domain

import (
	"fmt"
	"math"

	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

// ServiceTier boarding service category
type ServiceTier string

const (
	TierBudget   ServiceTier = "budget"
	TierStandard ServiceTier = "standard"
	TierPremium  ServiceTier = "premium"
)

// ServiceTiers all service tiers
var ServiceTiers = []ServiceTier{TierBudget, TierStandard, TierPremium}

// IsValid returns true if the tier is known
func (t ServiceTier) IsValid() bool {
	switch t {
	case TierBudget, TierStandard, TierPremium:
		return true
	}
	return false
}

// PricingPolicy immutable price tables used by CalculatePrice.
// Loaded once from configuration and optionally overridden per organisation.
type PricingPolicy struct {
	TierBaseRates   map[ServiceTier]float64
	SizeMultipliers map[SizeBand]float64
	DateMultipliers map[DateCategory]float64
	VATRatePct      float64 // e.g. 25 for 25%
	VATIncluded     bool    // prices already include VAT
}

// DefaultPricingPolicy returns the standard boarding price tables
func DefaultPricingPolicy() *PricingPolicy {
	return &PricingPolicy{
		TierBaseRates: map[ServiceTier]float64{
			TierBudget:   200,
			TierStandard: 350,
			TierPremium:  500,
		},
		SizeMultipliers: map[SizeBand]float64{
			SizeSmall:  1.0,
			SizeMedium: 1.3,
			SizeLarge:  1.6,
		},
		DateMultipliers: map[DateCategory]float64{
			DateVardag: 1.0,
			DateHelg:   1.2,
			DateSasong: 1.4,
			DateHogtid: 1.6,
		},
		VATRatePct:  25,
		VATIncluded: true,
	}
}

// Validate checks that every tier, size band and date category has a positive value
func (p *PricingPolicy) Validate() error {
	if p == nil {
		return NewValidationError("pricing", "policy is required")
	}

	for _, tier := range ServiceTiers {
		if rate, ok := p.TierBaseRates[tier]; !ok || rate <= 0 {
			return NewValidationError("tierBaseRates."+string(tier), "must be positive")
		}
	}
	for _, size := range SizeBands {
		if m, ok := p.SizeMultipliers[size]; !ok || m <= 0 {
			return NewValidationError("sizeMultipliers."+string(size), "must be positive")
		}
	}
	for _, cat := range DateCategories {
		if m, ok := p.DateMultipliers[cat]; !ok || m <= 0 {
			return NewValidationError("dateMultipliers."+string(cat), "must be positive")
		}
	}
	if p.VATRatePct < 0 || p.VATRatePct >= 100 {
		return NewValidationError("vatRatePct", "must be in [0, 100)")
	}

	return nil
}

// Clone returns a deep copy of the policy
func (p *PricingPolicy) Clone() *PricingPolicy {
	c := &PricingPolicy{
		TierBaseRates:   make(map[ServiceTier]float64, len(p.TierBaseRates)),
		SizeMultipliers: make(map[SizeBand]float64, len(p.SizeMultipliers)),
		DateMultipliers: make(map[DateCategory]float64, len(p.DateMultipliers)),
		VATRatePct:      p.VATRatePct,
		VATIncluded:     p.VATIncluded,
	}
	for k, v := range p.TierBaseRates {
		c.TierBaseRates[k] = v
	}
	for k, v := range p.SizeMultipliers {
		c.SizeMultipliers[k] = v
	}
	for k, v := range p.DateMultipliers {
		c.DateMultipliers[k] = v
	}
	return c
}

// NightlyCharge category and multiplier applied to one night of a stay
type NightlyCharge struct {
	Date       types.Date
	Category   DateCategory
	Multiplier float64
}

// PriceBreakdown result of a price calculation
type PriceBreakdown struct {
	Tier           ServiceTier
	SizeBand       SizeBand
	BasePrice      float64
	SizeMultiplier float64
	DateMultiplier float64 // averaged over all nights
	TotalPerNight  float64 // rounded to whole kronor
	Nights         int
	TotalCost      float64
	Nightly        []NightlyCharge
}

// CalculatePrice prices a stay from start (check-in) to end (check-out).
// Each night in [start, end) is classified separately and the multipliers are
// averaged. The per-night price is rounded before being multiplied by nights.
func CalculatePrice(size SizeBand, tier ServiceTier, start, end types.Date, policy *PricingPolicy) (*PriceBreakdown, error) {
	if policy == nil {
		policy = DefaultPricingPolicy()
	}
	if start.IsZero() || end.IsZero() {
		return nil, &ValidationError{Field: "dates", Message: "start and end dates are required", Cause: ErrInvalidDateRange}
	}

	nights := start.DaysUntil(end)
	if nights < 1 {
		return nil, &ValidationError{Field: "endDate", Message: "must be after startDate", Cause: ErrInvalidDateRange}
	}
	if nights > MaxStayNights {
		return nil, NewValidationError("endDate", fmt.Sprintf("stay cannot exceed %d nights", MaxStayNights))
	}

	basePrice, ok := policy.TierBaseRates[tier]
	if !ok {
		return nil, &ValidationError{Field: "tier", Message: fmt.Sprintf("unknown tier %q", tier), Cause: ErrUnknownTier}
	}
	sizeMultiplier, ok := policy.SizeMultipliers[size]
	if !ok {
		return nil, NewValidationError("sizeBand", fmt.Sprintf("unknown size band %q", size))
	}

	nightly := make([]NightlyCharge, 0, nights)
	sum := 0.0
	for d := start; d.Before(end); d = d.AddDays(1) {
		category := ClassifyDate(d)
		multiplier := policy.DateMultipliers[category]
		sum += multiplier
		nightly = append(nightly, NightlyCharge{Date: d, Category: category, Multiplier: multiplier})
	}

	avgDateMultiplier := sum / float64(nights)
	perNight := math.Round(basePrice * sizeMultiplier * avgDateMultiplier)

	return &PriceBreakdown{
		Tier:           tier,
		SizeBand:       size,
		BasePrice:      basePrice,
		SizeMultiplier: sizeMultiplier,
		DateMultiplier: avgDateMultiplier,
		TotalPerNight:  perNight,
		Nights:         nights,
		TotalCost:      perNight * float64(nights),
		Nightly:        nightly,
	}, nil
}

// VATSplit amount split into net and VAT parts
type VATSplit struct {
	RatePct  float64
	Net      float64
	VAT      float64
	Gross    float64
	Included bool
}

// SplitVAT splits an amount according to the policy VAT settings.
// When VAT is included the amount is the gross, otherwise VAT is added on top.
func (p *PricingPolicy) SplitVAT(amount float64) VATSplit {
	rate := p.VATRatePct
	if p.VATIncluded {
		vat := RoundToOre(amount * rate / (100 + rate))
		return VATSplit{RatePct: rate, Net: RoundToOre(amount - vat), VAT: vat, Gross: RoundToOre(amount), Included: true}
	}

	vat := RoundToOre(amount * rate / 100)
	return VATSplit{RatePct: rate, Net: RoundToOre(amount), VAT: vat, Gross: RoundToOre(amount + vat)}
}

// RoundToOre rounds an amount to two decimals
func RoundToOre(amount float64) float64 {
	return math.Round(amount*100) / 100
}
