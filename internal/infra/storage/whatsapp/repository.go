package whatsapp

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
	// ErrTemplateNotFound возвращается, когда шаблон не найден
	ErrTemplateNotFound = errors.New("whatsapp.repository: template not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("whatsapp.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("whatsapp.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("whatsapp.repository: failed to scan row")
)

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий шаблонов и журнала сообщений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория whatsapp
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpsertTemplate создает или обновляет шаблон типа для бизнеса
// На пару (бизнес, тип) существует не больше одного шаблона
func (r *Repository) UpsertTemplate(ctx context.Context, tpl *domain.WhatsappTemplate) (*domain.WhatsappTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("whatsapp_templates").
		Columns("business_id", "type", "body", "active").
		Values(tpl.BusinessID, tpl.Type, tpl.Body, tpl.Active).
		Suffix(`ON CONFLICT (business_id, type) DO UPDATE
			SET body = EXCLUDED.body, active = EXCLUDED.active, updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertTemplate - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&tpl.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: UpsertTemplate - execute insert: %v", ErrExecQuery, err)
	}

	tpl.CreatedAt = createdAt.Time
	tpl.UpdatedAt = updatedAt.Time
	return tpl, nil
}

// GetTemplate получает активный шаблон типа для бизнеса
func (r *Repository) GetTemplate(ctx context.Context, businessID int64, tplType domain.TemplateType) (*domain.WhatsappTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "business_id", "type", "body", "active", "created_at", "updated_at").
		From("whatsapp_templates").
		Where(squirrel.Eq{"business_id": businessID, "type": tplType, "active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTemplate - build select query: %v", ErrBuildQuery, err)
	}

	var tpl domain.WhatsappTemplate
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tpl.ID,
		&tpl.BusinessID,
		&tpl.Type,
		&tpl.Body,
		&tpl.Active,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTemplate - scan template: %v", ErrScanRow, err)
	}

	tpl.CreatedAt = createdAt.Time
	tpl.UpdatedAt = updatedAt.Time
	return &tpl, nil
}

// GetTemplates получает все шаблоны бизнеса
func (r *Repository) GetTemplates(ctx context.Context, businessID int64) ([]*domain.WhatsappTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "business_id", "type", "body", "active", "created_at", "updated_at").
		From("whatsapp_templates").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("type ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTemplates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTemplates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	templates := make([]*domain.WhatsappTemplate, 0)
	for rows.Next() {
		var tpl domain.WhatsappTemplate
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&tpl.ID, &tpl.BusinessID, &tpl.Type, &tpl.Body, &tpl.Active, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetTemplates - scan template: %v", ErrScanRow, err)
		}

		tpl.CreatedAt = createdAt.Time
		tpl.UpdatedAt = updatedAt.Time
		templates = append(templates, &tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTemplates - iterate rows: %v", ErrScanRow, err)
	}

	return templates, nil
}

// LogMessage записывает отправленное сообщение в журнал
func (r *Repository) LogMessage(ctx context.Context, msg *domain.WhatsappMessage) (*domain.WhatsappMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("whatsapp_messages").
		Columns("business_id", "appointment_id", "phone", "body", "status", "error").
		Values(msg.BusinessID, msg.AppointmentID, msg.Phone, msg.Body, msg.Status, msg.Error).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LogMessage - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&msg.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: LogMessage - execute insert: %v", ErrExecQuery, err)
	}

	msg.CreatedAt = createdAt.Time
	return msg, nil
}

// GetMessages получает журнал сообщений бизнеса, сначала новые
func (r *Repository) GetMessages(ctx context.Context, businessID int64, limit, offset int) ([]*domain.WhatsappMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "business_id", "appointment_id", "phone", "body", "status", "error", "created_at").
		From("whatsapp_messages").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetMessages - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetMessages - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	messages := make([]*domain.WhatsappMessage, 0)
	for rows.Next() {
		var msg domain.WhatsappMessage
		var createdAt sql.NullTime

		if err := rows.Scan(&msg.ID, &msg.BusinessID, &msg.AppointmentID, &msg.Phone, &msg.Body, &msg.Status, &msg.Error, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: GetMessages - scan message: %v", ErrScanRow, err)
		}

		msg.CreatedAt = createdAt.Time
		messages = append(messages, &msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetMessages - iterate rows: %v", ErrScanRow, err)
	}

	return messages, nil
}
