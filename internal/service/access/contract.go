package access

import (
	"context"

	"github.com/m04kA/DogPlanner-PricingService/internal/integrations/orgservice"
)

// OrgServiceClient интерфейс клиента сервиса организаций
type OrgServiceClient interface {
	GetOrganization(ctx context.Context, orgID int64) (*orgservice.Organization, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
