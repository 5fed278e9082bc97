package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

// CancellationTier fee rate applied when the cancellation happens at least
// MinDaysBefore days before the stay starts
type CancellationTier struct {
	MinDaysBefore int
	FeeRate       float64 // 0 = no fee, 1 = full price
}

// CancellationPolicy ordered fee tiers of an organisation.
// Tiers are sorted by MinDaysBefore descending and the last tier starts at 0.
type CancellationPolicy struct {
	Tiers       []CancellationTier
	Description string
}

// DefaultCancellationPolicy 7+ days: no fee, 3-7 days: 50%, under 3 days: 100%
func DefaultCancellationPolicy() *CancellationPolicy {
	return &CancellationPolicy{
		Tiers: []CancellationTier{
			{MinDaysBefore: 7, FeeRate: 0},
			{MinDaysBefore: 3, FeeRate: 0.5},
			{MinDaysBefore: 0, FeeRate: 1.0},
		},
		Description: "7+ dagar: Ingen avgift, 3-7 dagar: 50% avgift, Under 3 dagar: 100% avgift",
	}
}

// Normalize sorts tiers by MinDaysBefore descending
func (p *CancellationPolicy) Normalize() {
	sort.SliceStable(p.Tiers, func(i, j int) bool {
		return p.Tiers[i].MinDaysBefore > p.Tiers[j].MinDaysBefore
	})
}

// Validate checks tier ordering and fee rate bounds.
// Call Normalize first when the tiers come from user input.
func (p *CancellationPolicy) Validate() error {
	if p == nil || len(p.Tiers) == 0 {
		return NewValidationError("tiers", "at least one tier is required")
	}
	if len(p.Tiers) > MaxCancellationTiers {
		return NewValidationError("tiers", fmt.Sprintf("at most %d tiers allowed", MaxCancellationTiers))
	}
	if len(p.Description) > MaxPolicyDescriptionLength {
		return NewValidationError("description", "too long")
	}

	for i, tier := range p.Tiers {
		if tier.MinDaysBefore < 0 {
			return NewValidationError(fmt.Sprintf("tiers[%d].minDaysBefore", i), "must not be negative")
		}
		if tier.FeeRate < 0 || tier.FeeRate > 1 || math.IsNaN(tier.FeeRate) {
			return NewValidationError(fmt.Sprintf("tiers[%d].feeRate", i), "must be between 0 and 1")
		}
		if i > 0 && tier.MinDaysBefore >= p.Tiers[i-1].MinDaysBefore {
			return NewValidationError(fmt.Sprintf("tiers[%d].minDaysBefore", i), "tiers must be strictly descending")
		}
	}

	if p.Tiers[len(p.Tiers)-1].MinDaysBefore != 0 {
		return NewValidationError("tiers", "lowest tier must start at 0 days")
	}

	return nil
}

// Clone returns a deep copy of the policy
func (p *CancellationPolicy) Clone() *CancellationPolicy {
	tiers := make([]CancellationTier, len(p.Tiers))
	copy(tiers, p.Tiers)
	return &CancellationPolicy{Tiers: tiers, Description: p.Description}
}

// Summary describes the tiers in customer-facing text
func (p *CancellationPolicy) Summary() string {
	if p.Description != "" {
		return p.Description
	}

	parts := make([]string, 0, len(p.Tiers))
	for _, tier := range p.Tiers {
		parts = append(parts, tierLabel(tier))
	}
	return strings.Join(parts, ", ")
}

// tierFor returns the first tier whose threshold is reached
func (p *CancellationPolicy) tierFor(daysUntilStart int) CancellationTier {
	for _, tier := range p.Tiers {
		if daysUntilStart >= tier.MinDaysBefore {
			return tier
		}
	}
	return p.Tiers[len(p.Tiers)-1]
}

func tierLabel(tier CancellationTier) string {
	return fmt.Sprintf("%d+ dagar kvar: %g%% avgift", tier.MinDaysBefore, tier.FeeRate*100)
}

// CancellationCalculation result of a cancellation fee calculation
type CancellationCalculation struct {
	DaysUntilStart    int
	FeeRate           float64
	Fee               float64
	Refund            float64
	PolicyApplied     string
	PolicyDescription string
	CanCancel         bool
	Reason            string
}

// CalculateCancellationFee computes the fee and refund for cancelling a stay
// priced at totalPrice on the given day.
//
// A cancellation on or after the start date is not allowed: the result carries
// CanCancel=false, the full price as fee and no refund, and ErrAlreadyStarted is returned.
// The start day itself (0 days left) falls into the lowest tier.
func CalculateCancellationFee(today, startDate types.Date, totalPrice float64, policy *CancellationPolicy) (*CancellationCalculation, error) {
	if policy == nil {
		policy = DefaultCancellationPolicy()
	}
	if totalPrice < 0 || math.IsNaN(totalPrice) || math.IsInf(totalPrice, 0) {
		return nil, NewValidationError("totalPrice", "must be a non-negative amount")
	}
	if today.IsZero() || startDate.IsZero() {
		return nil, NewValidationError("dates", "today and start date are required")
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	daysUntilStart := today.DaysUntil(startDate)
	if daysUntilStart < 0 {
		return &CancellationCalculation{
			DaysUntilStart:    daysUntilStart,
			FeeRate:           1,
			Fee:               totalPrice,
			Refund:            0,
			PolicyApplied:     "Bokningen har redan startat",
			PolicyDescription: policy.Summary(),
			CanCancel:         false,
			Reason:            "Bokningen har redan startat och kan inte avbokas. Kontakta pensionatet för hjälp.",
		}, ErrAlreadyStarted
	}

	tier := policy.tierFor(daysUntilStart)

	fee := RoundToOre(totalPrice * tier.FeeRate)
	fee = math.Min(math.Max(fee, 0), totalPrice)
	refund := RoundToOre(totalPrice - fee)

	return &CancellationCalculation{
		DaysUntilStart:    daysUntilStart,
		FeeRate:           tier.FeeRate,
		Fee:               fee,
		Refund:            refund,
		PolicyApplied:     tierLabel(tier),
		PolicyDescription: policy.Summary(),
		CanCancel:         true,
	}, nil
}

// Message customer-facing text for the calculation
func (c *CancellationCalculation) Message() string {
	if !c.CanCancel {
		if c.Reason != "" {
			return c.Reason
		}
		return "Bokningen kan inte avbokas."
	}
	if c.Fee == 0 {
		return fmt.Sprintf("Du kan avboka utan kostnad (%d dagar kvar). Full återbetalning: %g kr", c.DaysUntilStart, c.Refund)
	}
	return fmt.Sprintf("Avbokningsavgift: %g kr (%s). Återbetalning: %g kr. Dagar kvar till incheckning: %d",
		c.Fee, c.PolicyApplied, c.Refund, c.DaysUntilStart)
}

// CanCustomerCancel reports whether a booking in the given status can still be
// cancelled. Only pending and confirmed stays that have not started qualify.
func CanCustomerCancel(status BookingStatus, startDate, today types.Date) bool {
	if status != StatusPending && status != StatusConfirmed {
		return false
	}
	return today.DaysUntil(startDate) >= 0
}
