package occupancy_report

import (
	"time"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

// ReportQuery query-параметры отчёта
// Без параметров отчёт строится с 1-го числа текущего месяца по сегодня
type ReportQuery struct {
	Start *types.Date `query:"start"`
	End   *types.Date `query:"end"`
}

// Window возвращает окно отчёта с подставленными значениями по умолчанию
func (q ReportQuery) Window(now time.Time) (types.Date, types.Date) {
	start, end := domain.DefaultReportWindow(types.NewDate(now))
	if q.Start != nil && !q.Start.IsZero() {
		start = *q.Start
	}
	if q.End != nil && !q.End.IsZero() {
		end = *q.End
	}
	return start, end
}
