package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	policyRepo "github.com/m04kA/DogPlanner-PricingService/internal/infra/storage/policy"
	"github.com/m04kA/DogPlanner-PricingService/internal/service/access"
	"github.com/m04kA/DogPlanner-PricingService/internal/service/policy/models"
)

// Service сервис политик ценообразования и отмены.
// Если у организации нет собственной политики, действует политика из конфигурации.
type Service struct {
	policyRepo          PolicyRepository
	access              AccessChecker
	defaultPricing      *domain.PricingPolicy
	defaultCancellation *domain.CancellationPolicy
	logger              Logger
}

// NewService создает новый экземпляр сервиса политик
func NewService(
	policyRepo PolicyRepository,
	access AccessChecker,
	defaultPricing *domain.PricingPolicy,
	defaultCancellation *domain.CancellationPolicy,
	logger Logger,
) *Service {
	return &Service{
		policyRepo:          policyRepo,
		access:              access,
		defaultPricing:      defaultPricing,
		defaultCancellation: defaultCancellation,
		logger:              logger,
	}
}

// GetEffective возвращает действующую политику организации.
// Используется use case'ами расчёта цены и отмены.
func (s *Service) GetEffective(ctx context.Context, orgID int64) (*domain.OrgPolicy, error) {
	policy, err := s.policyRepo.GetByOrgID(ctx, orgID)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			return s.defaultPolicy(orgID), nil
		}
		s.logger.Error("GetEffective: repository error for org=%d: %v", orgID, err)
		return nil, fmt.Errorf("%w: GetEffective - repository error: %v", ErrInternal, err)
	}

	// Сохранённая политика могла стать некорректной после изменения справочников
	if err := policy.Validate(); err != nil {
		s.logger.Warn("GetEffective: stored policy for org=%d is invalid, using defaults: %v", orgID, err)
		return s.defaultPolicy(orgID), nil
	}

	return policy, nil
}

// GetPolicy возвращает действующую политику организации
// Публичный метод - доступен всем
func (s *Service) GetPolicy(ctx context.Context, orgID int64) (*models.PolicyResponse, error) {
	s.logger.Info("GetPolicy: fetching policy for org=%d", orgID)

	policy, err := s.GetEffective(ctx, orgID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainPolicy(policy), nil
}

// UpdatePolicy изменяет политику организации
// Доступно только сотрудникам организации
func (s *Service) UpdatePolicy(ctx context.Context, req *models.UpdatePolicyRequest) (*models.PolicyResponse, error) {
	s.logger.Info("UpdatePolicy: updating policy for org=%d by user=%d", req.OrgID, req.UserID)

	// 1. Проверяем права доступа
	if err := s.access.RequireStaff(ctx, req.OrgID, req.UserID); err != nil {
		return nil, mapAccessError(err)
	}

	// 2. Получаем текущую политику
	current, err := s.GetEffective(ctx, req.OrgID)
	if err != nil {
		return nil, err
	}

	// 3. Накладываем изменения на копию
	updated := &domain.OrgPolicy{
		OrgID:        req.OrgID,
		Pricing:      current.Pricing.Clone(),
		Cancellation: current.Cancellation.Clone(),
	}
	if err := req.ApplyTo(updated); err != nil {
		s.logger.Warn("UpdatePolicy: invalid request for org=%d: %v", req.OrgID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 4. Валидируем
	if err := updated.Validate(); err != nil {
		s.logger.Warn("UpdatePolicy: validation failed for org=%d: %v", req.OrgID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 5. Сохраняем
	saved, err := s.policyRepo.Upsert(ctx, updated)
	if err != nil {
		s.logger.Error("UpdatePolicy: repository error for org=%d: %v", req.OrgID, err)
		return nil, fmt.Errorf("%w: UpdatePolicy - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePolicy: policy for org=%d saved", req.OrgID)
	return models.FromDomainPolicy(saved), nil
}

// ResetPolicy удаляет собственную политику организации
// Доступно только сотрудникам организации
func (s *Service) ResetPolicy(ctx context.Context, orgID int64, userID int64) (*models.PolicyResponse, error) {
	s.logger.Info("ResetPolicy: resetting policy for org=%d by user=%d", orgID, userID)

	if err := s.access.RequireStaff(ctx, orgID, userID); err != nil {
		return nil, mapAccessError(err)
	}

	if err := s.policyRepo.Delete(ctx, orgID); err != nil && !errors.Is(err, policyRepo.ErrPolicyNotFound) {
		s.logger.Error("ResetPolicy: repository error for org=%d: %v", orgID, err)
		return nil, fmt.Errorf("%w: ResetPolicy - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPolicy(s.defaultPolicy(orgID)), nil
}

func (s *Service) defaultPolicy(orgID int64) *domain.OrgPolicy {
	return &domain.OrgPolicy{
		OrgID:        orgID,
		Pricing:      s.defaultPricing.Clone(),
		Cancellation: s.defaultCancellation.Clone(),
		IsDefault:    true,
	}
}

func mapAccessError(err error) error {
	switch {
	case errors.Is(err, access.ErrAccessDenied):
		return ErrAccessDenied
	case errors.Is(err, access.ErrOrgNotFound):
		return ErrOrgNotFound
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
