package settings

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
	// ErrSettingsNotFound возвращается, когда настройки бизнеса не найдены
	ErrSettingsNotFound = errors.New("settings.repository: settings not found")

	// ErrSlugTaken возвращается при попытке занять уже используемый слаг
	ErrSlugTaken = errors.New("settings.repository: link slug already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("settings.repository: failed to scan row")
)

type DBExecutor = dbmetrics.DBExecutor

var settingsColumns = []string{
	"business_id",
	"business_name",
	"address",
	"phone",
	"link_slug",
	"timezone",
	"buffer_minutes",
	"advance_booking_days",
	"cancellation_notice_hours",
	"whatsapp_enabled",
	"auto_confirmation_enabled",
	"whatsapp_phone_number_id",
	"whatsapp_access_token",
	"reminders_enabled",
	"reminder_24h",
	"reminder_2h",
	"reminder_30m",
	"created_at",
	"updated_at",
}

// Repository репозиторий настроек бизнеса
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBusinessID получает настройки бизнеса
func (r *Repository) GetByBusinessID(ctx context.Context, businessID int64) (*domain.BusinessSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From("business_settings").
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSettings(executor.QueryRowContext(ctx, query, args...), "GetByBusinessID")
}

// GetBySlug получает настройки бизнеса по слагу публичной страницы записи
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.BusinessSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From("business_settings").
		Where(squirrel.Eq{"link_slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSettings(executor.QueryRowContext(ctx, query, args...), "GetBySlug")
}

// Create создает настройки бизнеса
func (r *Repository) Create(ctx context.Context, s *domain.BusinessSettings) (*domain.BusinessSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("business_settings").
		Columns(
			"business_id",
			"business_name",
			"address",
			"phone",
			"link_slug",
			"timezone",
			"buffer_minutes",
			"advance_booking_days",
			"cancellation_notice_hours",
			"whatsapp_enabled",
			"auto_confirmation_enabled",
			"whatsapp_phone_number_id",
			"whatsapp_access_token",
			"reminders_enabled",
			"reminder_24h",
			"reminder_2h",
			"reminder_30m",
		).
		Values(
			s.BusinessID,
			s.BusinessName,
			s.Address,
			s.Phone,
			s.LinkSlug,
			s.Timezone,
			s.BufferMinutes,
			s.AdvanceBookingDays,
			s.CancellationNoticeHours,
			s.WhatsappEnabled,
			s.AutoConfirmationEnabled,
			s.WhatsappPhoneNumberID,
			s.WhatsappAccessToken,
			s.RemindersEnabled,
			s.Reminder24h,
			s.Reminder2h,
			s.Reminder30m,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return s, nil
}

// Update обновляет настройки бизнеса
func (r *Repository) Update(ctx context.Context, s *domain.BusinessSettings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("business_settings").
		Set("business_name", s.BusinessName).
		Set("address", s.Address).
		Set("phone", s.Phone).
		Set("link_slug", s.LinkSlug).
		Set("timezone", s.Timezone).
		Set("buffer_minutes", s.BufferMinutes).
		Set("advance_booking_days", s.AdvanceBookingDays).
		Set("cancellation_notice_hours", s.CancellationNoticeHours).
		Set("whatsapp_enabled", s.WhatsappEnabled).
		Set("auto_confirmation_enabled", s.AutoConfirmationEnabled).
		Set("whatsapp_phone_number_id", s.WhatsappPhoneNumberID).
		Set("whatsapp_access_token", s.WhatsappAccessToken).
		Set("reminders_enabled", s.RemindersEnabled).
		Set("reminder_24h", s.Reminder24h).
		Set("reminder_2h", s.Reminder2h).
		Set("reminder_30m", s.Reminder30m).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"business_id": s.BusinessID}).
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
		return ErrSettingsNotFound
	}
	return nil
}

// SlugExists проверяет, занят ли слаг другим бизнесом
func (r *Repository) SlugExists(ctx context.Context, slug string, excludeBusinessID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("business_settings").
		Where(squirrel.Eq{"link_slug": slug}).
		Where(squirrel.NotEq{"business_id": excludeBusinessID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: SlugExists - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: SlugExists - scan: %v", ErrScanRow, err)
	}
	return count > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanSettings(row rowScanner, op string) (*domain.BusinessSettings, error) {
	var s domain.BusinessSettings
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.BusinessID,
		&s.BusinessName,
		&s.Address,
		&s.Phone,
		&s.LinkSlug,
		&s.Timezone,
		&s.BufferMinutes,
		&s.AdvanceBookingDays,
		&s.CancellationNoticeHours,
		&s.WhatsappEnabled,
		&s.AutoConfirmationEnabled,
		&s.WhatsappPhoneNumberID,
		&s.WhatsappAccessToken,
		&s.RemindersEnabled,
		&s.Reminder24h,
		&s.Reminder2h,
		&s.Reminder30m,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan settings: %v", ErrScanRow, op, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return &s, nil
}
