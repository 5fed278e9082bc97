package export_report

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	"github.com/m04kA/DogPlanner-PricingService/internal/service/access"
)

// UseCase выгружает отчёт за период в Excel
type UseCase struct {
	reports  ReportBuilder
	roomRepo RoomRepository
	access   AccessChecker
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reports ReportBuilder, roomRepo RoomRepository, access AccessChecker, logger Logger) *UseCase {
	return &UseCase{
		reports:  reports,
		roomRepo: roomRepo,
		access:   access,
		logger:   logger,
	}
}

// Execute формирует xlsx с листами Sammanfattning и Bokningar
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExportReport: org=%d, user=%d, window=%s..%s", req.OrgID, req.UserID, req.StartDate, req.EndDate)

	// 1. Валидация окна
	if req.OrgID <= 0 || req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: orgId, start and end are required", ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: end must not be before start", ErrInvalidInput)
	}
	if req.StartDate.DaysUntil(req.EndDate)+1 > domain.MaxReportWindowDays {
		return nil, fmt.Errorf("%w: window cannot exceed %d days", ErrInvalidInput, domain.MaxReportWindowDays)
	}

	// 2. Только сотрудники организации
	if err := uc.access.RequireStaff(ctx, req.OrgID, req.UserID); err != nil {
		switch {
		case errors.Is(err, access.ErrAccessDenied):
			return nil, ErrAccessDenied
		case errors.Is(err, access.ErrOrgNotFound):
			return nil, ErrOrgNotFound
		default:
			return nil, fmt.Errorf("%w: access check failed: %v", ErrInternal, err)
		}
	}

	// 3. Данные отчёта
	stats, bookings, err := uc.reports.Compute(ctx, req.OrgID, req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Error("ExportReport: failed to compute report for org=%d: %v", req.OrgID, err)
		return nil, fmt.Errorf("%w: failed to compute report: %v", ErrInternal, err)
	}

	roomNames := uc.roomNames(ctx, req.OrgID)

	// 4. Формируем книгу
	content, err := buildWorkbook(stats, bookings, roomNames)
	if err != nil {
		uc.logger.Error("ExportReport: failed to build workbook for org=%d: %v", req.OrgID, err)
		return nil, fmt.Errorf("%w: %v", ErrWorkbook, err)
	}

	uc.logger.Info("ExportReport: org=%d exported %d bookings", req.OrgID, len(bookings))

	return &Response{
		Filename: Filename(req.StartDate, req.EndDate),
		Content:  content,
	}, nil
}

// roomNames имена активных комнат; при ошибке в файле остаются номера
func (uc *UseCase) roomNames(ctx context.Context, orgID int64) map[int64]string {
	names := make(map[int64]string)

	rooms, err := uc.roomRepo.ListActiveByOrg(ctx, orgID)
	if err != nil {
		uc.logger.Warn("ExportReport: failed to list rooms for org=%d: %v", orgID, err)
		return names
	}

	for _, room := range rooms {
		names[room.ID] = room.Name
	}
	return names
}

func buildWorkbook(stats *domain.ReportStats, bookings []*domain.Booking, roomNames map[int64]string) ([]byte, error) {
	wb := newWorkbook()
	defer wb.close()

	if err := wb.addSheet(summarySheet); err != nil {
		return nil, err
	}
	if err := writeSummary(wb, stats); err != nil {
		return nil, err
	}

	if err := wb.addSheet(bookingsSheet); err != nil {
		return nil, err
	}
	if err := wb.writeHeader(bookingColumns); err != nil {
		return nil, err
	}
	for _, b := range bookings {
		if err := wb.writeRow(bookingRow(b, roomNames)...); err != nil {
			return nil, err
		}
	}
	if err := wb.setColumnWidth("A", "J", 16); err != nil {
		return nil, err
	}

	return wb.bytes()
}

func writeSummary(wb *workbook, stats *domain.ReportStats) error {
	avg, peak := 0.0, 0.0
	if stats.Occupancy != nil {
		avg = domain.RoundToOre(stats.Occupancy.AveragePct)
		peak = domain.RoundToOre(stats.Occupancy.PeakPct)
	}

	rows := [][]interface{}{
		{"Totalt antal bokningar", stats.TotalBookings},
		{"Bekräftade bokningar", stats.ConfirmedBookings},
		{"Väntande bokningar", stats.PendingBookings},
		{"Incheckade bokningar", stats.CheckedInBookings},
		{"Utcheckade bokningar", stats.CheckedOutBookings},
		{"Avbokade bokningar", stats.CancelledBookings},
		{"Totala intäkter (kr)", stats.TotalRevenue},
		{"Genomsnittlig beläggning (%)", avg},
		{"Max beläggning (%)", peak},
	}

	if err := wb.writeHeader([]string{"Nyckeltal", "Värde"}); err != nil {
		return err
	}
	for _, row := range rows {
		if err := wb.writeRow(row...); err != nil {
			return err
		}
	}
	return wb.setColumnWidth("A", "A", 32)
}

func bookingRow(b *domain.Booking, roomNames map[int64]string) []interface{} {
	dog := fmt.Sprintf("#%d", b.DogID)
	if b.DogName != nil && *b.DogName != "" {
		dog = *b.DogName
	}

	room := "-"
	if b.RoomID != nil {
		room = fmt.Sprintf("Rum #%d", *b.RoomID)
		if name, ok := roomNames[*b.RoomID]; ok {
			room = name
		}
	}

	return []interface{}{
		b.ID,
		b.StartDate.String(),
		b.EndDate.String(),
		b.Status.Label(),
		dog,
		room,
		string(b.Tier),
		string(b.SizeBand),
		b.Nights,
		b.TotalPrice,
	}
}
