package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/evenderechit/evenderechit/internal/domain"
	"github.com/evenderechit/evenderechit/pkg/dbmetrics"
	"github.com/evenderechit/evenderechit/pkg/psqlbuilder"
)

// AddBlockedDate добавляет блокировку даты
func (r *Repository) AddBlockedDate(ctx context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_dates").
		Columns("business_id", "staff_id", "date", "reason").
		Values(blocked.BusinessID, blocked.StaffID, blocked.Date, blocked.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AddBlockedDate - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&blocked.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: AddBlockedDate - execute insert: %v", ErrExecQuery, err)
	}

	blocked.CreatedAt = createdAt.Time
	return blocked, nil
}

// GetBlockedDates получает блокировки бизнеса начиная с указанной даты
func (r *Repository) GetBlockedDates(ctx context.Context, businessID int64, from time.Time) ([]*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "business_id", "staff_id", "date", "reason", "created_at").
		From("blocked_dates").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.GtOrEq{"date": from}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blockedDates := make([]*domain.BlockedDate, 0)
	for rows.Next() {
		var b domain.BlockedDate
		var createdAt sql.NullTime

		if err := rows.Scan(&b.ID, &b.BusinessID, &b.StaffID, &b.Date, &b.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: GetBlockedDates - scan blocked date: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		blockedDates = append(blockedDates, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBlockedDates - iterate rows: %v", ErrScanRow, err)
	}

	return blockedDates, nil
}

// IsDateBlocked проверяет, заблокирована ли дата в рамках сотрудника
// Блокировка бизнеса целиком (staff_id IS NULL) действует на всех сотрудников,
// блокировка сотрудника - только на него
func (r *Repository) IsDateBlocked(ctx context.Context, businessID int64, staffID *int64, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").
		From("blocked_dates").
		Where(squirrel.Eq{"business_id": businessID, "date": date})

	if staffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"staff_id": nil},
			squirrel.Eq{"staff_id": *staffID},
		})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": nil})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsDateBlocked - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: IsDateBlocked - scan: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// RemoveBlockedDate удаляет блокировку даты
func (r *Repository) RemoveBlockedDate(ctx context.Context, businessID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_dates").
		Where(squirrel.Eq{"id": id, "business_id": businessID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: RemoveBlockedDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RemoveBlockedDate - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemoveBlockedDate - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBlockedDateNotFound
	}
	return nil
}
