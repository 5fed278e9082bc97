package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusConfirmed, StatusCheckedIn, true},
		{StatusCheckedIn, StatusCheckedOut, true},
		{StatusPending, StatusCheckedIn, false},
		{StatusConfirmed, StatusPending, false},
		{StatusCheckedOut, StatusCheckedIn, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusConfirmed, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatus_Label(t *testing.T) {
	assert.Equal(t, "Bekräftad", StatusConfirmed.Label())
	assert.Equal(t, "Avbokad", StatusCancelled.Label())
	assert.Equal(t, "unknown", BookingStatus("unknown").Label())
}

func TestBooking_Overlaps(t *testing.T) {
	b := &Booking{
		StartDate: types.MustParseDate("2025-09-10"),
		EndDate:   types.MustParseDate("2025-09-13"),
	}

	d := types.MustParseDate

	assert.True(t, b.Overlaps(d("2025-09-12"), d("2025-09-15")))
	assert.True(t, b.Overlaps(d("2025-09-08"), d("2025-09-11")))
	assert.True(t, b.Overlaps(d("2025-09-11"), d("2025-09-12")))
	// Выезд одного гостя в день заезда другого допустим
	assert.False(t, b.Overlaps(d("2025-09-13"), d("2025-09-15")))
	assert.False(t, b.Overlaps(d("2025-09-05"), d("2025-09-10")))
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCheckedIn}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}
