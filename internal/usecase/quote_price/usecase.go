package quote_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	dogClient "github.com/m04kA/DogPlanner-PricingService/internal/integrations/dogregistry"
)

// UseCase use case для расчёта стоимости пребывания
type UseCase struct {
	dogClient DogRegistryClient
	policies  PolicyProvider
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	dogClient DogRegistryClient,
	policies PolicyProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		dogClient: dogClient,
		policies:  policies,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute рассчитывает стоимость пребывания собаки
// Ничего не сохраняет, поэтому доступен без авторизации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuotePrice: org=%d, dog=%v, tier=%s, period=%s..%s",
		req.OrgID, req.DogID, req.Tier, req.StartDate, req.EndDate)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем рост собаки
	heightCm, heightSource, err := uc.resolveHeight(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Получаем действующую политику
	policy, err := uc.policies.GetEffective(ctx, req.OrgID)
	if err != nil {
		uc.logger.Error("QuotePrice: failed to get policy for org=%d: %v", req.OrgID, err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}

	// 4. Считаем цену
	size := domain.ClassifySize(heightCm)
	breakdown, err := domain.CalculatePrice(size, domain.ServiceTier(req.Tier), req.StartDate, req.EndDate, policy.Pricing)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			uc.logger.Warn("QuotePrice: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("QuotePrice: calculation failed: %v", err)
		return nil, fmt.Errorf("%w: calculation failed: %v", ErrInternal, err)
	}

	uc.metrics.ObserveQuote(string(breakdown.Tier), string(breakdown.SizeBand))

	uc.logger.Info("QuotePrice: %d nights, %s/%s, %.0f per night, total %.0f",
		breakdown.Nights, breakdown.Tier, breakdown.SizeBand, breakdown.TotalPerNight, breakdown.TotalCost)

	return toResponse(req, heightCm, heightSource, breakdown, policy), nil
}

// resolveHeight определяет рост: из запроса, из реестра или неизвестен.
// Недоступность реестра не ошибка, цена считается для средней собаки.
func (uc *UseCase) resolveHeight(ctx context.Context, req *Request) (*float64, string, error) {
	if req.HeightCm != nil {
		return req.HeightCm, HeightSourceRequest, nil
	}

	if req.DogID == nil {
		return nil, HeightSourceUnknown, nil
	}

	dog, err := uc.dogClient.GetDogWithGracefulDegradation(ctx, *req.DogID)
	if err != nil {
		if errors.Is(err, dogClient.ErrDogNotFound) {
			uc.logger.Warn("QuotePrice: dog id=%d not found", *req.DogID)
			return nil, "", ErrDogNotFound
		}
		uc.logger.Warn("QuotePrice: pricing dog id=%d with unknown height: %v", *req.DogID, err)
		return nil, HeightSourceUnknown, nil
	}

	if dog.HeightCm == nil {
		return nil, HeightSourceUnknown, nil
	}

	return dog.HeightCm, HeightSourceRegistry, nil
}
