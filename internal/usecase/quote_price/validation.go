package quote_price

import (
	"fmt"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.OrgID < 0 {
		return fmt.Errorf("%w: orgId must not be negative", ErrInvalidInput)
	}

	if req.DogID != nil && *req.DogID <= 0 {
		return fmt.Errorf("%w: dogId must be positive", ErrInvalidInput)
	}

	if req.HeightCm != nil && (*req.HeightCm <= 0 || *req.HeightCm > 150) {
		return fmt.Errorf("%w: heightCm must be in (0, 150]", ErrInvalidInput)
	}

	if !domain.ServiceTier(req.Tier).IsValid() {
		return fmt.Errorf("%w: unknown tier %q", ErrInvalidInput, req.Tier)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if nights := req.StartDate.DaysUntil(req.EndDate); nights > domain.MaxStayNights {
		return fmt.Errorf("%w: stay cannot exceed %d nights", ErrInvalidInput, domain.MaxStayNights)
	}

	return nil
}
