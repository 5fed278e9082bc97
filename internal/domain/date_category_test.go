package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

func TestClassifyDate(t *testing.T) {
	tests := []struct {
		date string
		want DateCategory
	}{
		{"2025-03-12", DateVardag}, // Wednesday in March
		{"2025-03-15", DateHelg},   // Saturday
		{"2025-03-16", DateHelg},   // Sunday
		{"2025-06-02", DateSasong}, // Monday in June
		{"2025-07-05", DateHelg},   // Saturday in July
		{"2025-08-29", DateSasong}, // Friday in August
		{"2025-12-22", DateHogtid}, // Monday in December
		{"2026-01-02", DateHogtid}, // Friday in January
		{"2025-12-27", DateHelg},   // Saturday in December
		{"2025-09-01", DateVardag}, // Monday in September
		{"2025-05-30", DateVardag}, // Friday in May
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDate(types.MustParseDate(tt.date)))
		})
	}
}

func TestClassifyDate_WeekendAlwaysHelg(t *testing.T) {
	d := types.MustParseDate("2025-01-01")
	end := types.MustParseDate("2027-01-01")

	for ; d.Before(end); d = d.AddDays(1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			assert.Equal(t, DateHelg, ClassifyDate(d), d.String())
		} else {
			assert.NotEqual(t, DateHelg, ClassifyDate(d), d.String())
		}
	}
}
