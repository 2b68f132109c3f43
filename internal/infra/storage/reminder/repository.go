package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/evenderechit/evenderechit/internal/domain"
	"github.com/evenderechit/evenderechit/pkg/dbmetrics"
	"github.com/evenderechit/evenderechit/pkg/psqlbuilder"
)

var (
	// ErrReminderNotFound возвращается, когда напоминание не найдено
	ErrReminderNotFound = errors.New("reminder.repository: reminder not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reminder.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reminder.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reminder.repository: failed to scan row")
)

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий запланированных напоминаний
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория напоминаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch создает напоминания для записи одним запросом
func (r *Repository) CreateBatch(ctx context.Context, reminders []*domain.ScheduledReminder) error {
	if len(reminders) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("scheduled_reminders").
		Columns("appointment_id", "type", "send_at", "status")
	for _, rem := range reminders {
		insertBuilder = insertBuilder.Values(rem.AppointmentID, rem.Type, rem.SendAt, rem.Status)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// GetDue получает ожидающие напоминания, срок которых наступил,
// вместе с данными записи и настройками бизнеса для отправки.
// Напоминания по отменённым записям тоже возвращаются: обработчик
// помечает их отменёнными, иначе строки навсегда останутся pending.
func (r *Repository) GetDue(ctx context.Context, now time.Time, limit int) ([]*domain.DueReminder, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"r.id", "r.appointment_id", "r.type", "r.send_at", "r.status",
		"a.id", "a.business_id", "a.service_id", "a.staff_id",
		"a.customer_name", "a.customer_phone", "a.customer_email",
		"a.date", "a.start_time", "a.end_time", "a.status", "a.service_name", "a.manage_token",
		"s.business_id", "s.business_name", "s.link_slug", "s.timezone",
		"s.whatsapp_enabled", "s.whatsapp_phone_number_id", "s.whatsapp_access_token",
	).
		From("scheduled_reminders r").
		Join("appointments a ON a.id = r.appointment_id").
		Join("business_settings s ON s.business_id = a.business_id").
		Where(squirrel.Eq{"r.status": domain.ReminderPending}).
		Where(squirrel.LtOrEq{"r.send_at": now}).
		OrderBy("r.send_at ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	due := make([]*domain.DueReminder, 0)
	for rows.Next() {
		var d domain.DueReminder

		err := rows.Scan(
			&d.Reminder.ID,
			&d.Reminder.AppointmentID,
			&d.Reminder.Type,
			&d.Reminder.SendAt,
			&d.Reminder.Status,
			&d.Appointment.ID,
			&d.Appointment.BusinessID,
			&d.Appointment.ServiceID,
			&d.Appointment.StaffID,
			&d.Appointment.CustomerName,
			&d.Appointment.CustomerPhone,
			&d.Appointment.CustomerEmail,
			&d.Appointment.Date,
			&d.Appointment.StartTime,
			&d.Appointment.EndTime,
			&d.Appointment.Status,
			&d.Appointment.ServiceName,
			&d.Appointment.ManageToken,
			&d.Settings.BusinessID,
			&d.Settings.BusinessName,
			&d.Settings.LinkSlug,
			&d.Settings.Timezone,
			&d.Settings.WhatsappEnabled,
			&d.Settings.WhatsappPhoneNumberID,
			&d.Settings.WhatsappAccessToken,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetDue - scan due reminder: %v", ErrScanRow, err)
		}

		due = append(due, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDue - iterate rows: %v", ErrScanRow, err)
	}

	return due, nil
}

// UpdateStatus обновляет статус напоминания
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReminderStatus, sendErr *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("scheduled_reminders").
		Set("status", status).
		Set("error", sendErr).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrReminderNotFound
	}
	return nil
}

// CancelForAppointment отменяет все ожидающие напоминания записи
// Используется при отмене самой записи
func (r *Repository) CancelForAppointment(ctx context.Context, appointmentID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("scheduled_reminders").
		Set("status", domain.ReminderCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"appointment_id": appointmentID, "status": domain.ReminderPending}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: CancelForAppointment - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CancelForAppointment - execute update: %v", ErrExecQuery, err)
	}
	return nil
}
