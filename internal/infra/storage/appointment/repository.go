package appointment

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

var appointmentColumns = []string{
	"id",
	"business_id",
	"service_id",
	"staff_id",
	"customer_name",
	"customer_phone",
	"customer_email",
	"date",
	"start_time",
	"end_time",
	"status",
	"notes",
	"service_name",
	"service_price",
	"manage_token",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"business_id",
			"service_id",
			"staff_id",
			"customer_name",
			"customer_phone",
			"customer_email",
			"date",
			"start_time",
			"end_time",
			"status",
			"notes",
			"service_name",
			"service_price",
			"manage_token",
		).
		Values(
			appt.BusinessID,
			appt.ServiceID,
			appt.StaffID,
			appt.CustomerName,
			appt.CustomerPhone,
			appt.CustomerEmail,
			appt.Date,
			appt.StartTime,
			appt.EndTime,
			appt.Status,
			appt.Notes,
			appt.ServiceName,
			appt.ServicePrice,
			appt.ManageToken,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID в рамках бизнеса
func (r *Repository) GetByID(ctx context.Context, businessID, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id, "business_id": businessID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanAppointment(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByManageToken получает запись по токену самообслуживания клиента
func (r *Repository) GetByManageToken(ctx context.Context, token string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"manage_token": token}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByManageToken - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanAppointment(executor.QueryRowContext(ctx, query, args...), "GetByManageToken")
}

// GetWithFilter получает записи бизнеса с гибкой фильтрацией
// Для конкретной даты записи сортируются по времени начала,
// для периода - по дате и времени, сначала новые
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"business_id": filter.BusinessID})

	if filter.StaffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *filter.StaffID})
	}
	if filter.ServiceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"service_id": *filter.ServiceID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": *filter.EndDate})
	}
	if len(filter.Statuses) > 0 {
		statusStrings := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings})
	}

	singleDate := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)
	if singleDate {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("date DESC, start_time DESC")
	}

	if filter.Limit != nil {
		selectBuilder = selectBuilder.Limit(uint64(*filter.Limit))
	}
	if filter.Offset != nil {
		selectBuilder = selectBuilder.Offset(uint64(*filter.Offset))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows, "GetWithFilter")
}

// GetForDateAndStaffScope получает занимающие слот записи бизнеса на дату
// в рамках сотрудника. staffID == nil выбирает записи без привязки к сотруднику.
//
// Внутри транзакции строки блокируются через FOR UPDATE: используется при
// создании записи для защиты от гонки на один слот.
func (r *Repository) GetForDateAndStaffScope(ctx context.Context, businessID int64, staffID *int64, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactiveStatusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"business_id": businessID, "date": date}).
		Where(squirrel.NotEq{"status": inactiveStatusStrings}).
		OrderBy("start_time ASC")

	if staffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *staffID})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": nil})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDateAndStaffScope - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDateAndStaffScope - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows, "GetForDateAndStaffScope")
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, businessID, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "business_id": businessID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return r.checkAffected(result, "UpdateStatus")
}

// UpdateNotes обновляет заметки записи
func (r *Repository) UpdateNotes(ctx context.Context, businessID, id int64, notes *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("notes", notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "business_id": businessID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateNotes - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateNotes - execute update: %v", ErrExecQuery, err)
	}

	return r.checkAffected(result, "UpdateNotes")
}

// Delete удаляет запись
func (r *Repository) Delete(ctx context.Context, businessID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id, "business_id": businessID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return r.checkAffected(result, "Delete")
}

// BeginTx начинает новую транзакцию и возвращает контекст с ней
func (r *Repository) BeginTx(ctx context.Context, opts *sql.TxOptions) (context.Context, TxExecutor, error) {
	if txBeginner, ok := r.db.(TxBeginner); ok {
		tx, err := txBeginner.BeginTx(ctx, opts)
		if err != nil {
			return ctx, nil, fmt.Errorf("%w: BeginTx: %v", ErrTransaction, err)
		}
		return dbmetrics.WithTx(ctx, tx), tx, nil
	}

	// Fallback для обычного *sql.DB
	if db, ok := r.db.(*sql.DB); ok {
		tx, err := db.BeginTx(ctx, opts)
		if err != nil {
			return ctx, nil, fmt.Errorf("%w: BeginTx: %v", ErrTransaction, err)
		}
		wrappedTx := &dbmetrics.SqlTxWrapper{Tx: tx}
		return dbmetrics.WithTx(ctx, wrappedTx), wrappedTx, nil
	}

	return ctx, nil, fmt.Errorf("%w: db type not supported", ErrTransaction)
}

func (r *Repository) checkAffected(result sql.Result, op string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanAppointment(row rowScanner, op string) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.BusinessID,
		&appt.ServiceID,
		&appt.StaffID,
		&appt.CustomerName,
		&appt.CustomerPhone,
		&appt.CustomerEmail,
		&appt.Date,
		&appt.StartTime,
		&appt.EndTime,
		&appt.Status,
		&appt.Notes,
		&appt.ServiceName,
		&appt.ServicePrice,
		&appt.ManageToken,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan appointment: %v", ErrScanRow, op, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

func (r *Repository) scanAppointments(rows *sql.Rows, op string) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := r.scanAppointment(rows, op)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, op, err)
	}

	return appointments, nil
}
