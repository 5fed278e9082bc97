package occupancy_report

import (
	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

// Request модель запроса отчёта
type Request struct {
	OrgID     int64
	UserID    int64
	StartDate types.Date
	EndDate   types.Date
}

// DaySample занятость комнат за один день
type DaySample struct {
	Date          types.Date `json:"date"`
	OccupiedRooms int        `json:"occupiedRooms"`
	OccupancyPct  float64    `json:"occupancyPct"`
}

// OccupancyResponse сводка занятости
type OccupancyResponse struct {
	TotalRooms int         `json:"totalRooms"`
	AveragePct float64     `json:"averagePct"`
	PeakPct    float64     `json:"peakPct"`
	Days       []DaySample `json:"days"`
}

// Response модель ответа отчёта
type Response struct {
	OrgID              int64             `json:"orgId"`
	StartDate          types.Date        `json:"startDate"`
	EndDate            types.Date        `json:"endDate"`
	TotalBookings      int               `json:"totalBookings"`
	ConfirmedBookings  int               `json:"confirmedBookings"`
	PendingBookings    int               `json:"pendingBookings"`
	CancelledBookings  int               `json:"cancelledBookings"`
	CheckedInBookings  int               `json:"checkedInBookings"`
	CheckedOutBookings int               `json:"checkedOutBookings"`
	TotalRevenue       float64           `json:"totalRevenue"`
	Occupancy          OccupancyResponse `json:"occupancy"`
	Cached             bool              `json:"cached"`
}

// FromDomainStats конвертирует статистику в ответ API
func FromDomainStats(start, end types.Date, stats *domain.ReportStats, cached bool) *Response {
	resp := &Response{
		OrgID:              stats.OrgID,
		StartDate:          start,
		EndDate:            end,
		TotalBookings:      stats.TotalBookings,
		ConfirmedBookings:  stats.ConfirmedBookings,
		PendingBookings:    stats.PendingBookings,
		CancelledBookings:  stats.CancelledBookings,
		CheckedInBookings:  stats.CheckedInBookings,
		CheckedOutBookings: stats.CheckedOutBookings,
		TotalRevenue:       stats.TotalRevenue,
		Cached:             cached,
		Occupancy:          OccupancyResponse{Days: []DaySample{}},
	}

	if occ := stats.Occupancy; occ != nil {
		resp.Occupancy.TotalRooms = occ.TotalRooms
		resp.Occupancy.AveragePct = occ.AveragePct
		resp.Occupancy.PeakPct = occ.PeakPct
		resp.Occupancy.Days = make([]DaySample, 0, len(occ.Days))
		for _, day := range occ.Days {
			resp.Occupancy.Days = append(resp.Occupancy.Days, DaySample{
				Date:          day.Date,
				OccupiedRooms: day.OccupiedRooms(),
				OccupancyPct:  day.OccupancyPct,
			})
		}
	}

	return resp
}
