package export_report

import (
	"fmt"

	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

// ContentType MIME-тип xlsx
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	summarySheet  = "Sammanfattning"
	bookingsSheet = "Bokningar"
)

var bookingColumns = []string{
	"Boknings-ID", "Incheckning", "Utcheckning", "Status", "Hund", "Rum", "Nivå", "Storlek", "Nätter", "Pris (kr)",
}

// Request модель запроса на экспорт
type Request struct {
	OrgID     int64
	UserID    int64
	StartDate types.Date
	EndDate   types.Date
}

// Response готовый файл отчёта
type Response struct {
	Filename string
	Content  []byte
}

// Filename имя файла отчёта за период
func Filename(start, end types.Date) string {
	return fmt.Sprintf("DogPlanner_Rapport_%s_till_%s.xlsx", start, end)
}
