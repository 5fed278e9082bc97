package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	orgClient "github.com/m04kA/DogPlanner-PricingService/internal/integrations/orgservice"
)

// Checker проверяет права пользователя на данные организации
type Checker struct {
	orgClient OrgServiceClient
	logger    Logger
}

// NewChecker создает новый экземпляр проверки доступа
func NewChecker(orgClient OrgServiceClient, logger Logger) *Checker {
	return &Checker{
		orgClient: orgClient,
		logger:    logger,
	}
}

// RequireStaff проверяет, что пользователь является сотрудником организации
func (c *Checker) RequireStaff(ctx context.Context, orgID int64, userID int64) error {
	org, err := c.orgClient.GetOrganization(ctx, orgID)
	if err != nil {
		if errors.Is(err, orgClient.ErrOrgNotFound) {
			c.logger.Warn("RequireStaff: org id=%d not found", orgID)
			return ErrOrgNotFound
		}
		c.logger.Error("RequireStaff: failed to get org id=%d: %v", orgID, err)
		return fmt.Errorf("%w: RequireStaff - failed to get organisation: %v", ErrInternal, err)
	}

	if !org.IsStaff(userID) {
		c.logger.Warn("RequireStaff: user=%d is not staff of org=%d", userID, orgID)
		return ErrAccessDenied
	}

	return nil
}

// RequireOwnerOrStaff проверяет, что пользователь владелец бронирования
// или сотрудник организации. Возвращает true, если доступ получен как сотрудник.
func (c *Checker) RequireOwnerOrStaff(ctx context.Context, booking *domain.Booking, userID int64) (bool, error) {
	if booking.OwnerUserID == userID {
		return false, nil
	}

	if err := c.RequireStaff(ctx, booking.OrgID, userID); err != nil {
		if errors.Is(err, ErrInternal) {
			return false, err
		}
		return false, ErrAccessDenied
	}

	return true, nil
}
