package reset_policy

import (
	"context"

	"github.com/m04kA/DogPlanner-PricingService/internal/service/policy/models"
)

type PolicyService interface {
	ResetPolicy(ctx context.Context, orgID int64, userID int64) (*models.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
