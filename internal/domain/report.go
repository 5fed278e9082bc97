package domain

import "github.com/m04kA/DogPlanner-PricingService/pkg/types"

// ReportStats summary of bookings over a reporting window
type ReportStats struct {
	OrgID              int64
	TotalBookings      int
	ConfirmedBookings  int
	PendingBookings    int
	CancelledBookings  int
	CheckedInBookings  int
	CheckedOutBookings int
	TotalRevenue       float64 // sum of confirmed bookings
	Occupancy          *OccupancySummary
}

// IsRealisedStay reports whether the booking holds a room and earns revenue:
// confirmed stays and stays that staff already checked in or out
func IsRealisedStay(status BookingStatus) bool {
	return status == StatusConfirmed || status == StatusCheckedIn || status == StatusCheckedOut
}

// CollectReportStats counts bookings per status and sums revenue of realised
// stays. Occupancy is left to the caller.
func CollectReportStats(orgID int64, bookings []*Booking) *ReportStats {
	stats := &ReportStats{OrgID: orgID, TotalBookings: len(bookings)}

	for _, b := range bookings {
		if IsRealisedStay(b.Status) {
			stats.TotalRevenue += b.TotalPrice
		}

		switch b.Status {
		case StatusConfirmed:
			stats.ConfirmedBookings++
		case StatusPending:
			stats.PendingBookings++
		case StatusCancelled:
			stats.CancelledBookings++
		case StatusCheckedIn:
			stats.CheckedInBookings++
		case StatusCheckedOut:
			stats.CheckedOutBookings++
		}
	}

	stats.TotalRevenue = RoundToOre(stats.TotalRevenue)
	return stats
}

// RealisedSpans returns occupancy spans of realised stays
func RealisedSpans(bookings []*Booking) []OccupancySpan {
	spans := make([]OccupancySpan, 0, len(bookings))
	for _, b := range bookings {
		if IsRealisedStay(b.Status) {
			spans = append(spans, b.OccupancySpan())
		}
	}
	return spans
}

// DefaultReportWindow the window shown when no period is chosen:
// from the first day of the current month up to today
func DefaultReportWindow(today types.Date) (start, end types.Date) {
	t := today.Time()
	return types.DateOf(t.Year(), t.Month(), 1), today
}
