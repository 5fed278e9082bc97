package policy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	"github.com/m04kA/DogPlanner-PricingService/pkg/dbmetrics"
	"github.com/m04kA/DogPlanner-PricingService/pkg/psqlbuilder"
)

// Repository репозиторий политик организаций (таблица org_policies)
type Repository struct {
	db                  DBExecutor
	defaultPricing      *domain.PricingPolicy
	defaultCancellation *domain.CancellationPolicy
}

// NewRepository создает репозиторий политик.
// Значения по умолчанию подставляются в ключи, отсутствующие в сохранённом jsonb.
func NewRepository(db DBExecutor, defaultPricing *domain.PricingPolicy, defaultCancellation *domain.CancellationPolicy) *Repository {
	return &Repository{
		db:                  db,
		defaultPricing:      defaultPricing,
		defaultCancellation: defaultCancellation,
	}
}

// GetByOrgID получает политику организации
// Возвращает ErrPolicyNotFound, если организация использует политику по умолчанию
func (r *Repository) GetByOrgID(ctx context.Context, orgID int64) (*domain.OrgPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"org_id",
		"pricing",
		"cancellation",
		"created_at",
		"updated_at",
	).
		From("org_policies").
		Where(squirrel.Eq{"org_id": orgID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrgID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		policy                      domain.OrgPolicy
		pricingRaw, cancellationRaw []byte
		createdAt, updatedAt        sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&policy.OrgID,
		&pricingRaw,
		&cancellationRaw,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrgID - scan policy: %v", ErrScanRow, err)
	}

	policy.Pricing, err = decodePricing(pricingRaw, r.defaultPricing)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrgID - decode pricing: %v", ErrEncode, err)
	}
	policy.Cancellation, err = decodeCancellation(cancellationRaw, r.defaultCancellation)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrgID - decode cancellation: %v", ErrEncode, err)
	}

	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return &policy, nil
}

// Upsert создает или заменяет политику организации
func (r *Repository) Upsert(ctx context.Context, policy *domain.OrgPolicy) (*domain.OrgPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	pricingRaw, err := encodePricing(policy.Pricing)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - encode pricing: %v", ErrEncode, err)
	}
	cancellationRaw, err := encodeCancellation(policy.Cancellation)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - encode cancellation: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("org_policies").
		Columns("org_id", "pricing", "cancellation").
		Values(policy.OrgID, pricingRaw, cancellationRaw).
		Suffix("ON CONFLICT (org_id) DO UPDATE SET " +
			"pricing = EXCLUDED.pricing, " +
			"cancellation = EXCLUDED.cancellation, " +
			"updated_at = NOW() " +
			"RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	policy.IsDefault = false
	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return policy, nil
}

// Delete удаляет политику организации, после чего действует политика по умолчанию
func (r *Repository) Delete(ctx context.Context, orgID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("org_policies").
		Where(squirrel.Eq{"org_id": orgID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPolicyNotFound
	}

	return nil
}
