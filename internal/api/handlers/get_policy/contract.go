package get_policy

import (
	"context"

	"github.com/m04kA/DogPlanner-PricingService/internal/service/policy/models"
)

type PolicyService interface {
	GetPolicy(ctx context.Context, orgID int64) (*models.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
