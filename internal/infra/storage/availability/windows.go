package availability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/evenderechit/evenderechit/internal/domain"
	"github.com/evenderechit/evenderechit/pkg/dbmetrics"
	"github.com/evenderechit/evenderechit/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

var windowColumns = []string{
	"id",
	"business_id",
	"staff_id",
	"day_of_week",
	"start_time",
	"end_time",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий окон доступности и блокировок дат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateWindow создает окно доступности
func (r *Repository) CreateWindow(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_windows").
		Columns("business_id", "staff_id", "day_of_week", "start_time", "end_time", "active").
		Values(window.BusinessID, window.StaffID, window.DayOfWeek, window.StartTime, window.EndTime, window.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateWindow - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&window.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateWindow - execute insert: %v", ErrExecQuery, err)
	}

	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return window, nil
}

// GetWindows получает все окна доступности бизнеса
func (r *Repository) GetWindows(ctx context.Context, businessID int64) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("availability_windows").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWindows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWindows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows, "GetWindows")
}

// GetActiveWindowsForDay получает активные окна на день недели в рамках сотрудника
// staffID == nil выбирает окна бизнеса без привязки к сотруднику
// Окна возвращаются в порядке времени начала
func (r *Repository) GetActiveWindowsForDay(ctx context.Context, businessID int64, staffID *int64, dayOfWeek int) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(windowColumns...).
		From("availability_windows").
		Where(squirrel.Eq{"business_id": businessID, "day_of_week": dayOfWeek, "active": true}).
		OrderBy("start_time ASC")

	if staffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *staffID})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": nil})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveWindowsForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveWindowsForDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows, "GetActiveWindowsForDay")
}

// UpdateWindow обновляет окно доступности
func (r *Repository) UpdateWindow(ctx context.Context, window *domain.AvailabilityWindow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_windows").
		Set("day_of_week", window.DayOfWeek).
		Set("start_time", window.StartTime).
		Set("end_time", window.EndTime).
		Set("active", window.Active).
		Set("staff_id", window.StaffID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": window.ID, "business_id": window.BusinessID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateWindow - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateWindow - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateWindow - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrWindowNotFound
	}
	return nil
}

// DeleteWindow удаляет окно доступности
func (r *Repository) DeleteWindow(ctx context.Context, businessID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_windows").
		Where(squirrel.Eq{"id": id, "business_id": businessID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteWindow - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteWindow - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteWindow - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrWindowNotFound
	}
	return nil
}

func (r *Repository) scanWindows(rows *sql.Rows, op string) ([]*domain.AvailabilityWindow, error) {
	windows := make([]*domain.AvailabilityWindow, 0)

	for rows.Next() {
		var w domain.AvailabilityWindow
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&w.ID,
			&w.BusinessID,
			&w.StaffID,
			&w.DayOfWeek,
			&w.StartTime,
			&w.EndTime,
			&w.Active,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan window: %v", ErrScanRow, op, err)
		}

		w.CreatedAt = createdAt.Time
		w.UpdatedAt = updatedAt.Time
		windows = append(windows, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, op, err)
	}

	return windows, nil
}
