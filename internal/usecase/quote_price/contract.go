package quote_price

import (
	"context"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	"github.com/m04kA/DogPlanner-PricingService/internal/integrations/dogregistry"
)

// DogRegistryClient интерфейс клиента реестра собак
type DogRegistryClient interface {
	GetDogWithGracefulDegradation(ctx context.Context, dogID int64) (*dogregistry.Dog, error)
}

// PolicyProvider интерфейс получения действующей политики организации
type PolicyProvider interface {
	GetEffective(ctx context.Context, orgID int64) (*domain.OrgPolicy, error)
}

// Metrics интерфейс метрик расчёта цен
type Metrics interface {
	ObserveQuote(tier, size string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
