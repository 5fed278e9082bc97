package export_report

import (
	"context"

	exportReport "github.com/m04kA/DogPlanner-PricingService/internal/usecase/export_report"
)

type ExportReportUseCase interface {
	Execute(ctx context.Context, req *exportReport.Request) (*exportReport.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
