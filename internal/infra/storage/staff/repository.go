package staff

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/evenderechit/evenderechit/internal/domain"
	"github.com/evenderechit/evenderechit/pkg/dbmetrics"
	"github.com/evenderechit/evenderechit/pkg/psqlbuilder"
)

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("staff.repository: staff member not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("staff.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("staff.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("staff.repository: failed to scan row")
)

type DBExecutor = dbmetrics.DBExecutor

var staffColumns = []string{
	"id",
	"business_id",
	"name",
	"phone",
	"email",
	"role",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий сотрудников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает сотрудника
func (r *Repository) Create(ctx context.Context, member *domain.Staff) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff").
		Columns("business_id", "name", "phone", "email", "role", "active").
		Values(member.BusinessID, member.Name, member.Phone, member.Email, member.Role, member.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&member.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	member.CreatedAt = createdAt.Time
	member.UpdatedAt = updatedAt.Time
	return member, nil
}

// GetByID получает сотрудника по ID в рамках бизнеса
func (r *Repository) GetByID(ctx context.Context, businessID, id int64) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff").
		Where(squirrel.Eq{"id": id, "business_id": businessID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var member domain.Staff
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&member.ID,
		&member.BusinessID,
		&member.Name,
		&member.Phone,
		&member.Email,
		&member.Role,
		&member.Active,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan staff member: %v", ErrScanRow, err)
	}

	member.CreatedAt = createdAt.Time
	member.UpdatedAt = updatedAt.Time
	return &member, nil
}

// GetByBusinessID получает сотрудников бизнеса
func (r *Repository) GetByBusinessID(ctx context.Context, businessID int64, activeOnly bool) ([]*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(staffColumns...).
		From("staff").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("name ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	members := make([]*domain.Staff, 0)
	for rows.Next() {
		var member domain.Staff
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&member.ID,
			&member.BusinessID,
			&member.Name,
			&member.Phone,
			&member.Email,
			&member.Role,
			&member.Active,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByBusinessID - scan staff member: %v", ErrScanRow, err)
		}

		member.CreatedAt = createdAt.Time
		member.UpdatedAt = updatedAt.Time
		members = append(members, &member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - iterate rows: %v", ErrScanRow, err)
	}

	return members, nil
}

// Update обновляет сотрудника
func (r *Repository) Update(ctx context.Context, member *domain.Staff) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("staff").
		Set("name", member.Name).
		Set("phone", member.Phone).
		Set("email", member.Email).
		Set("role", member.Role).
		Set("active", member.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": member.ID, "business_id": member.BusinessID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrStaffNotFound
	}
	return nil
}

// Delete удаляет сотрудника
func (r *Repository) Delete(ctx context.Context, businessID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staff").
		Where(squirrel.Eq{"id": id, "business_id": businessID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrStaffNotFound
	}
	return nil
}
