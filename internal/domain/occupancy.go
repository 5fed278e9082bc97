package domain

import (
	"fmt"
	"math"
	"sort"

	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

// OccupancySpan a confirmed stay as seen by the occupancy aggregator.
// Start and End are both counted as occupied days.
type OccupancySpan struct {
	Start  types.Date
	End    types.Date
	RoomID *int64 // nil = no room assigned, not counted
}

// OccupancySample distinct rooms occupied on one day
type OccupancySample struct {
	Date            types.Date
	OccupiedRoomIDs []int64
	OccupancyPct    float64
}

// OccupiedRooms returns the number of distinct occupied rooms
func (s *OccupancySample) OccupiedRooms() int {
	return len(s.OccupiedRoomIDs)
}

// OccupancySummary room utilisation over a reporting window
type OccupancySummary struct {
	WindowStart types.Date
	WindowEnd   types.Date
	TotalRooms  int
	Days        []OccupancySample
	AveragePct  float64
	PeakPct     float64
}

// AggregateOccupancy computes per-day room utilisation for every day of the
// window [windowStart, windowEnd] (both inclusive) and reduces it to average
// and peak percentages. A room counts once per day regardless of how many
// bookings use it. With totalRooms <= 0 every day reports 0%.
func AggregateOccupancy(spans []OccupancySpan, totalRooms int, windowStart, windowEnd types.Date) (*OccupancySummary, error) {
	if windowStart.IsZero() || windowEnd.IsZero() {
		return nil, &ValidationError{Field: "window", Message: "start and end are required", Cause: ErrInvalidDateRange}
	}
	if windowEnd.Before(windowStart) {
		return nil, &ValidationError{Field: "window", Message: "end must not be before start", Cause: ErrInvalidDateRange}
	}

	windowDays := windowStart.DaysUntil(windowEnd) + 1
	if windowDays > MaxReportWindowDays {
		return nil, NewValidationError("window", fmt.Sprintf("window cannot exceed %d days", MaxReportWindowDays))
	}

	// Индекс дня → множество занятых комнат
	occupied := make([]map[int64]struct{}, windowDays)

	for _, span := range spans {
		if span.RoomID == nil || span.End.Before(span.Start) {
			continue
		}

		from := span.Start
		if from.Before(windowStart) {
			from = windowStart
		}
		to := span.End
		if to.After(windowEnd) {
			to = windowEnd
		}

		for d := from; !d.After(to); d = d.AddDays(1) {
			idx := windowStart.DaysUntil(d)
			if occupied[idx] == nil {
				occupied[idx] = make(map[int64]struct{})
			}
			occupied[idx][*span.RoomID] = struct{}{}
		}
	}

	summary := &OccupancySummary{
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		TotalRooms:  totalRooms,
		Days:        make([]OccupancySample, 0, windowDays),
	}

	sum := 0.0
	for i := 0; i < windowDays; i++ {
		roomIDs := make([]int64, 0, len(occupied[i]))
		for id := range occupied[i] {
			roomIDs = append(roomIDs, id)
		}
		sort.Slice(roomIDs, func(a, b int) bool { return roomIDs[a] < roomIDs[b] })

		pct := occupancyPct(len(roomIDs), totalRooms)
		sum += pct
		if pct > summary.PeakPct {
			summary.PeakPct = pct
		}

		summary.Days = append(summary.Days, OccupancySample{
			Date:            windowStart.AddDays(i),
			OccupiedRoomIDs: roomIDs,
			OccupancyPct:    pct,
		})
	}

	summary.AveragePct = sum / float64(windowDays)

	return summary, nil
}

func occupancyPct(occupiedRooms, totalRooms int) float64 {
	if totalRooms <= 0 {
		return 0
	}
	pct := float64(occupiedRooms) / float64(totalRooms) * 100
	return math.Min(pct, 100)
}
