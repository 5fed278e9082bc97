package room

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

// Repository репозиторий комнат пансионата
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает комнату по ID
func (r *Repository) GetByID(ctx context.Context, roomID int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "org_id", "name", "is_active", "created_at", "updated_at").
		From("rooms").
		Where(squirrel.Eq{"id": roomID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - room_id=%d: %v", ErrScanRow, roomID, err)
	}

	return room, nil
}

// ListActiveByOrg возвращает активные комнаты организации
func (r *Repository) ListActiveByOrg(ctx context.Context, orgID int64) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "org_id", "name", "is_active", "created_at", "updated_at").
		From("rooms").
		Where(squirrel.Eq{"org_id": orgID, "is_active": true}).
		OrderBy("id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByOrg - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByOrg - org_id=%d: %v", ErrExecQuery, orgID, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveByOrg - scan room: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveByOrg - rows iteration: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// CountActiveByOrg возвращает количество активных комнат организации
func (r *Repository) CountActiveByOrg(ctx context.Context, orgID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("rooms").
		Where(squirrel.Eq{"org_id": orgID, "is_active": true}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveByOrg - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveByOrg - org_id=%d: %v", ErrScanRow, orgID, err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var (
		room                 domain.Room
		createdAt, updatedAt sql.NullTime
	)

	if err := row.Scan(&room.ID, &room.OrgID, &room.Name, &room.IsActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time
	return &room, nil
}
