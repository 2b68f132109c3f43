package whatsapp

import (
	"context"

	"github.com/evenderechit/evenderechit/internal/domain"
	whatsappClient "github.com/evenderechit/evenderechit/internal/integrations/whatsapp"
)

// TemplateRepository интерфейс репозитория шаблонов и журнала сообщений
type TemplateRepository interface {
	UpsertTemplate(ctx context.Context, tpl *domain.WhatsappTemplate) (*domain.WhatsappTemplate, error)
	GetTemplate(ctx context.Context, businessID int64, tplType domain.TemplateType) (*domain.WhatsappTemplate, error)
	GetTemplates(ctx context.Context, businessID int64) ([]*domain.WhatsappTemplate, error)
	LogMessage(ctx context.Context, msg *domain.WhatsappMessage) (*domain.WhatsappMessage, error)
	GetMessages(ctx context.Context, businessID int64, limit, offset int) ([]*domain.WhatsappMessage, error)
}

// SettingsRepository интерфейс репозитория настроек бизнеса
type SettingsRepository interface {
	GetByBusinessID(ctx context.Context, businessID int64) (*domain.BusinessSettings, error)
}

// Sender интерфейс клиента отправки WhatsApp сообщений
type Sender interface {
	SendWithFallback(ctx context.Context, creds whatsappClient.Credentials, phone, body string) (*whatsappClient.SendResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
