package policy

import (
	"context"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
)

// PolicyRepository интерфейс репозитория политик организаций
type PolicyRepository interface {
	GetByOrgID(ctx context.Context, orgID int64) (*domain.OrgPolicy, error)
	Upsert(ctx context.Context, policy *domain.OrgPolicy) (*domain.OrgPolicy, error)
	Delete(ctx context.Context, orgID int64) error
}

// AccessChecker интерфейс проверки прав доступа
type AccessChecker interface {
	RequireStaff(ctx context.Context, orgID int64, userID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
