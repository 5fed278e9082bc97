package report

import (
	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

type cachedReport struct {
	OrgID              int64            `json:"orgId"`
	TotalBookings      int              `json:"totalBookings"`
	ConfirmedBookings  int              `json:"confirmedBookings"`
	PendingBookings    int              `json:"pendingBookings"`
	CancelledBookings  int              `json:"cancelledBookings"`
	CheckedInBookings  int              `json:"checkedInBookings"`
	CheckedOutBookings int              `json:"checkedOutBookings"`
	TotalRevenue       float64          `json:"totalRevenue"`
	Occupancy          *cachedOccupancy `json:"occupancy,omitempty"`
}

type cachedOccupancy struct {
	WindowStart types.Date     `json:"windowStart"`
	WindowEnd   types.Date     `json:"windowEnd"`
	TotalRooms  int            `json:"totalRooms"`
	AveragePct  float64        `json:"averagePct"`
	PeakPct     float64        `json:"peakPct"`
	Days        []cachedSample `json:"days"`
}

type cachedSample struct {
	Date         types.Date `json:"date"`
	RoomIDs      []int64    `json:"roomIds"`
	OccupancyPct float64    `json:"occupancyPct"`
}

func fromDomainReport(s *domain.ReportStats) cachedReport {
	c := cachedReport{
		OrgID:              s.OrgID,
		TotalBookings:      s.TotalBookings,
		ConfirmedBookings:  s.ConfirmedBookings,
		PendingBookings:    s.PendingBookings,
		CancelledBookings:  s.CancelledBookings,
		CheckedInBookings:  s.CheckedInBookings,
		CheckedOutBookings: s.CheckedOutBookings,
		TotalRevenue:       s.TotalRevenue,
	}

	if s.Occupancy != nil {
		occ := &cachedOccupancy{
			WindowStart: s.Occupancy.WindowStart,
			WindowEnd:   s.Occupancy.WindowEnd,
			TotalRooms:  s.Occupancy.TotalRooms,
			AveragePct:  s.Occupancy.AveragePct,
			PeakPct:     s.Occupancy.PeakPct,
			Days:        make([]cachedSample, 0, len(s.Occupancy.Days)),
		}
		for _, d := range s.Occupancy.Days {
			occ.Days = append(occ.Days, cachedSample{Date: d.Date, RoomIDs: d.OccupiedRoomIDs, OccupancyPct: d.OccupancyPct})
		}
		c.Occupancy = occ
	}

	return c
}

func (c cachedReport) toDomain() *domain.ReportStats {
	s := &domain.ReportStats{
		OrgID:              c.OrgID,
		TotalBookings:      c.TotalBookings,
		ConfirmedBookings:  c.ConfirmedBookings,
		PendingBookings:    c.PendingBookings,
		CancelledBookings:  c.CancelledBookings,
		CheckedInBookings:  c.CheckedInBookings,
		CheckedOutBookings: c.CheckedOutBookings,
		TotalRevenue:       c.TotalRevenue,
	}

	if c.Occupancy != nil {
		occ := &domain.OccupancySummary{
			WindowStart: c.Occupancy.WindowStart,
			WindowEnd:   c.Occupancy.WindowEnd,
			TotalRooms:  c.Occupancy.TotalRooms,
			AveragePct:  c.Occupancy.AveragePct,
			PeakPct:     c.Occupancy.PeakPct,
			Days:        make([]domain.OccupancySample, 0, len(c.Occupancy.Days)),
		}
		for _, d := range c.Occupancy.Days {
			ids := d.RoomIDs
			if ids == nil {
				ids = []int64{}
			}
			occ.Days = append(occ.Days, domain.OccupancySample{Date: d.Date, OccupiedRoomIDs: ids, OccupancyPct: d.OccupancyPct})
		}
		s.Occupancy = occ
	}

	return s
}
