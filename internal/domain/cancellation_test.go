package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

func TestCalculateCancellationFee_DefaultPolicy(t *testing.T) {
	today := types.MustParseDate("2025-09-01")

	tests := []struct {
		name       string
		daysBefore int
		wantRate   float64
		wantFee    float64
		wantRefund float64
	}{
		{"thirty days", 30, 0, 0, 1000},
		{"exactly seven days", 7, 0, 0, 1000},
		{"six days", 6, 0.5, 500, 500},
		{"exactly three days", 3, 0.5, 500, 500},
		{"two days", 2, 1, 1000, 0},
		{"start day", 0, 1, 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateCancellationFee(today, today.AddDays(tt.daysBefore), 1000, nil)
			require.NoError(t, err)
			assert.True(t, got.CanCancel)
			assert.Equal(t, tt.daysBefore, got.DaysUntilStart)
			assert.Equal(t, tt.wantRate, got.FeeRate)
			assert.Equal(t, tt.wantFee, got.Fee)
			assert.Equal(t, tt.wantRefund, got.Refund)
			assert.NotEmpty(t, got.PolicyApplied)
		})
	}
}

func TestCalculateCancellationFee_CustomTiers(t *testing.T) {
	// 15+ days free, 8-14 days 50%, under 8 days full price
	policy := &CancellationPolicy{
		Tiers: []CancellationTier{
			{MinDaysBefore: 15, FeeRate: 0},
			{MinDaysBefore: 8, FeeRate: 0.5},
			{MinDaysBefore: 0, FeeRate: 1},
		},
	}
	today := types.MustParseDate("2025-09-01")

	got, err := CalculateCancellationFee(today, today.AddDays(10), 1000, policy)

	require.NoError(t, err)
	assert.Equal(t, 10, got.DaysUntilStart)
	assert.Equal(t, 500.0, got.Fee)
	assert.Equal(t, 500.0, got.Refund)
	assert.Equal(t, "8+ dagar kvar: 50% avgift", got.PolicyApplied)
	assert.Equal(t, "15+ dagar kvar: 0% avgift, 8+ dagar kvar: 50% avgift, 0+ dagar kvar: 100% avgift", got.PolicyDescription)
}

func TestCalculateCancellationFee_AlreadyStarted(t *testing.T) {
	today := types.MustParseDate("2025-09-10")

	got, err := CalculateCancellationFee(today, today.AddDays(-1), 1200, nil)

	assert.ErrorIs(t, err, ErrAlreadyStarted)
	require.NotNil(t, got)
	assert.False(t, got.CanCancel)
	assert.Equal(t, -1, got.DaysUntilStart)
	assert.Equal(t, 1200.0, got.Fee)
	assert.Equal(t, 0.0, got.Refund)
	assert.NotEmpty(t, got.Reason)
	assert.Equal(t, got.Reason, got.Message())
}

func TestCalculateCancellationFee_RoundsToOre(t *testing.T) {
	today := types.MustParseDate("2025-09-01")

	got, err := CalculateCancellationFee(today, today.AddDays(4), 999, nil)

	require.NoError(t, err)
	assert.Equal(t, 499.5, got.Fee)
	assert.Equal(t, 499.5, got.Refund)
}

func TestCalculateCancellationFee_FeeWithinBounds(t *testing.T) {
	today := types.MustParseDate("2025-09-01")
	totals := []float64{0, 1, 99.99, 455, 910, 1234.56, 25000}

	for _, total := range totals {
		for days := 0; days <= 20; days++ {
			got, err := CalculateCancellationFee(today, today.AddDays(days), total, nil)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got.Fee, 0.0)
			assert.LessOrEqual(t, got.Fee, total)
			assert.InDelta(t, total-got.Fee, got.Refund, 0.005)
		}
	}
}

func TestCalculateCancellationFee_InvalidInput(t *testing.T) {
	today := types.MustParseDate("2025-09-01")

	_, err := CalculateCancellationFee(today, today.AddDays(5), -1, nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = CalculateCancellationFee(types.Date{}, today, 100, nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = CalculateCancellationFee(today, today.AddDays(5), 100, &CancellationPolicy{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCancellationPolicy_Validate(t *testing.T) {
	assert.NoError(t, DefaultCancellationPolicy().Validate())

	tests := []struct {
		name  string
		tiers []CancellationTier
	}{
		{"empty", nil},
		{"rate above one", []CancellationTier{{MinDaysBefore: 0, FeeRate: 1.5}}},
		{"negative rate", []CancellationTier{{MinDaysBefore: 0, FeeRate: -0.1}}},
		{"negative days", []CancellationTier{{MinDaysBefore: -1, FeeRate: 1}}},
		{"lowest tier not zero", []CancellationTier{{MinDaysBefore: 7, FeeRate: 0}, {MinDaysBefore: 2, FeeRate: 1}}},
		{"ascending", []CancellationTier{{MinDaysBefore: 0, FeeRate: 1}, {MinDaysBefore: 7, FeeRate: 0}}},
		{"duplicate threshold", []CancellationTier{{MinDaysBefore: 3, FeeRate: 0}, {MinDaysBefore: 3, FeeRate: 1}, {MinDaysBefore: 0, FeeRate: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &CancellationPolicy{Tiers: tt.tiers}
			assert.ErrorIs(t, p.Validate(), ErrValidation)
		})
	}
}

func TestCancellationPolicy_Normalize(t *testing.T) {
	p := &CancellationPolicy{Tiers: []CancellationTier{
		{MinDaysBefore: 0, FeeRate: 1},
		{MinDaysBefore: 14, FeeRate: 0},
		{MinDaysBefore: 5, FeeRate: 0.25},
	}}

	p.Normalize()

	require.NoError(t, p.Validate())
	assert.Equal(t, 14, p.Tiers[0].MinDaysBefore)
	assert.Equal(t, 5, p.Tiers[1].MinDaysBefore)
	assert.Equal(t, 0, p.Tiers[2].MinDaysBefore)
}

func TestCanCustomerCancel(t *testing.T) {
	today := types.MustParseDate("2025-09-10")

	tests := []struct {
		name   string
		status BookingStatus
		start  types.Date
		want   bool
	}{
		{"pending in future", StatusPending, today.AddDays(3), true},
		{"confirmed today", StatusConfirmed, today, true},
		{"confirmed started", StatusConfirmed, today.AddDays(-1), false},
		{"checked in", StatusCheckedIn, today.AddDays(3), false},
		{"checked out", StatusCheckedOut, today.AddDays(3), false},
		{"cancelled", StatusCancelled, today.AddDays(3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanCustomerCancel(tt.status, tt.start, today))
		})
	}
}

func TestCancellationCalculation_Message(t *testing.T) {
	free := &CancellationCalculation{CanCancel: true, DaysUntilStart: 10, Refund: 910}
	assert.Contains(t, free.Message(), "utan kostnad")

	withFee := &CancellationCalculation{CanCancel: true, DaysUntilStart: 4, Fee: 455, Refund: 455, PolicyApplied: "3+ dagar kvar: 50% avgift"}
	assert.Contains(t, withFee.Message(), "Avbokningsavgift: 455 kr")
}
