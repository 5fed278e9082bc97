package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	"github.com/m04kA/DogPlanner-PricingService/pkg/dbmetrics"
	"github.com/m04kA/DogPlanner-PricingService/pkg/psqlbuilder"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

var bookingColumns = []string{
	"id",
	"org_id",
	"dog_id",
	"owner_user_id",
	"room_id",
	"start_date",
	"end_date",
	"status",
	"tier",
	"size_band",
	"dog_name",
	"dog_height_cm",
	"base_price",
	"size_multiplier",
	"date_multiplier",
	"price_per_night",
	"nights",
	"total_price",
	"cancellation_fee",
	"refund_amount",
	"cancellation_reason",
	"cancelled_by",
	"cancelled_at",
	"notes",
	"created_at",
	"updated_at",
}

// CancelParams данные отмены бронирования
type CancelParams struct {
	Fee         float64
	Refund      float64
	Reason      *string
	CancelledBy int64
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"org_id",
			"dog_id",
			"owner_user_id",
			"room_id",
			"start_date",
			"end_date",
			"status",
			"tier",
			"size_band",
			"dog_name",
			"dog_height_cm",
			"base_price",
			"size_multiplier",
			"date_multiplier",
			"price_per_night",
			"nights",
			"total_price",
			"notes",
		).
		Values(
			booking.OrgID,
			booking.DogID,
			booking.OwnerUserID,
			booking.RoomID,
			booking.StartDate,
			booking.EndDate,
			booking.Status,
			booking.Tier,
			booking.SizeBand,
			booking.DogName,
			booking.DogHeightCm,
			booking.BasePrice,
			booking.SizeMultiplier,
			booking.DateMultiplier,
			booking.PricePerNight,
			booking.Nights,
			booking.TotalPrice,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByOrgWithFilter получает бронирования организации с фильтрацией
// Период (From, To) отбирает пребывания, которые пересекаются с окном [From, To]
//
// Примеры использования:
//
// 1. Все активные бронирования организации:
//    filter := domain.OrgBookingsFilter{OrgID: 12}
//
// 2. Все бронирования за сентябрь, включая отменённые (для отчёта):
//    from, to := types.MustParseDate("2025-09-01"), types.MustParseDate("2025-09-30")
//    filter := domain.OrgBookingsFilter{OrgID: 12, From: &from, To: &to, IncludeInactive: true}
func (r *Repository) GetByOrgWithFilter(ctx context.Context, filter domain.OrgBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"org_id": filter.OrgID})

	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"end_date": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"start_date": *filter.To})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	query, args, err := selectBuilder.OrderBy("start_date ASC, id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrgWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrgWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByOwner получает бронирования владельца собаки, новые сверху
// Опционально фильтрует по статусу
func (r *Repository) GetByOwner(ctx context.Context, ownerUserID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"owner_user_id": ownerUserID})

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.OrderBy("start_date DESC, id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetActiveByRoom получает активные бронирования комнаты, пересекающиеся с [start, end)
// Внутри транзакции строки блокируются (FOR UPDATE) для проверки занятости комнаты
func (r *Repository) GetActiveByRoom(ctx context.Context, roomID int64, start, end types.Date) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Lt{"start_date": end}).
		Where(squirrel.Gt{"end_date": start}).
		Where(squirrel.Expr("status = ANY(?)", pq.Array(activeStatusStrings))).
		OrderBy("start_date ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByRoom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByRoom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetOrgIDsWithBookings получает организации, у которых есть бронирования, пересекающиеся с [from, to]
// Используется для прогрева кэша отчётов
func (r *Repository) GetOrgIDsWithBookings(ctx context.Context, from, to types.Date) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT org_id").
		From("bookings").
		Where(squirrel.GtOrEq{"end_date": from}).
		Where(squirrel.LtOrEq{"start_date": to}).
		OrderBy("org_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOrgIDsWithBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrgIDsWithBookings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	orgIDs := make([]int64, 0)
	for rows.Next() {
		var orgID int64
		if err := rows.Scan(&orgID); err != nil {
			return nil, fmt.Errorf("%w: GetOrgIDsWithBookings - scan org_id: %v", ErrScanRow, err)
		}
		orgIDs = append(orgIDs, orgID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOrgIDsWithBookings - rows error: %v", ErrScanRow, err)
	}

	return orgIDs, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateStatus", query, args)
}

// Cancel отменяет бронирование и сохраняет рассчитанные комиссию и возврат
func (r *Repository) Cancel(ctx context.Context, id int64, params CancelParams) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_fee", params.Fee).
		Set("refund_amount", params.Refund).
		Set("cancellation_reason", params.Reason).
		Set("cancelled_by", params.CancelledBy).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	if err := r.execAffectingOne(ctx, executor, "Cancel", query, args); err != nil {
		return nil, err
	}

	// Возвращаем актуальное состояние
	return r.GetByID(ctx, id)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var cancelledAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.OrgID,
		&booking.DogID,
		&booking.OwnerUserID,
		&booking.RoomID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.Status,
		&booking.Tier,
		&booking.SizeBand,
		&booking.DogName,
		&booking.DogHeightCm,
		&booking.BasePrice,
		&booking.SizeMultiplier,
		&booking.DateMultiplier,
		&booking.PricePerNight,
		&booking.Nights,
		&booking.TotalPrice,
		&booking.CancellationFee,
		&booking.RefundAmount,
		&booking.CancellationReason,
		&booking.CancelledBy,
		&cancelledAt,
		&booking.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cancelledAt.Valid {
		t := cancelledAt.Time
		booking.CancelledAt = &t
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
