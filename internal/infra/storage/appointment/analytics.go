package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/evenderechit/evenderechit/internal/domain"
	"github.com/evenderechit/evenderechit/pkg/dbmetrics"
	"github.com/evenderechit/evenderechit/pkg/psqlbuilder"
)

// Агрегации по записям для аналитики бизнеса

// CountForPeriod считает записи бизнеса за период
func (r *Repository) CountForPeriod(ctx context.Context, businessID int64, from, to time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountForPeriod - build query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountForPeriod - scan: %v", ErrScanRow, err)
	}
	return count, nil
}

// CompletedRevenue суммирует цены услуг завершённых записей за период
func (r *Repository) CompletedRevenue(ctx context.Context, businessID int64, from, to time.Time) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(service_price), 0)").
		From("appointments").
		Where(squirrel.Eq{"business_id": businessID, "status": domain.StatusCompleted}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CompletedRevenue - build query: %v", ErrBuildQuery, err)
	}

	var revenue float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&revenue); err != nil {
		return 0, fmt.Errorf("%w: CompletedRevenue - scan: %v", ErrScanRow, err)
	}
	return revenue, nil
}

// StatusCounts считает записи за период в разрезе статуса
func (r *Repository) StatusCounts(ctx context.Context, businessID int64, from, to time.Time) ([]domain.StatusCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("status", "COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		GroupBy("status").
		OrderBy("COUNT(*) DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: StatusCounts - build query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: StatusCounts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make([]domain.StatusCount, 0)
	for rows.Next() {
		var sc domain.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("%w: StatusCounts - scan: %v", ErrScanRow, err)
		}
		counts = append(counts, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: StatusCounts - iterate rows: %v", ErrScanRow, err)
	}

	return counts, nil
}

// TopServices возвращает услуги, отсортированные по количеству записей за период
// Записи без услуги не учитываются
func (r *Repository) TopServices(ctx context.Context, businessID int64, from, to time.Time, limit int) ([]domain.TopService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"service_name",
		"COUNT(*)",
		"COALESCE(SUM(service_price) FILTER (WHERE status = 'completed'), 0)",
	).
		From("appointments").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.NotEq{"service_name": nil}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		GroupBy("service_name").
		OrderBy("COUNT(*) DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: TopServices - build query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: TopServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]domain.TopService, 0)
	for rows.Next() {
		var ts domain.TopService
		if err := rows.Scan(&ts.ServiceName, &ts.Count, &ts.Revenue); err != nil {
			return nil, fmt.Errorf("%w: TopServices - scan: %v", ErrScanRow, err)
		}
		services = append(services, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: TopServices - iterate rows: %v", ErrScanRow, err)
	}

	return services, nil
}

// CountDistinctCustomers считает уникальных клиентов за период по номеру телефона
func (r *Repository) CountDistinctCustomers(ctx context.Context, businessID int64, from, to time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(DISTINCT customer_phone)").
		From("appointments").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountDistinctCustomers - build query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountDistinctCustomers - scan: %v", ErrScanRow, err)
	}
	return count, nil
}

// CountByStatusForPeriod считает записи с одним из статусов за период
func (r *Repository) CountByStatusForPeriod(ctx context.Context, businessID int64, statuses []domain.AppointmentStatus, from, to time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"business_id": businessID, "status": statusStrings}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByStatusForPeriod - build query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByStatusForPeriod - scan: %v", ErrScanRow, err)
	}
	return count, nil
}
