package process_reminders

import (
	"context"
	"time"

	"github.com/evenderechit/evenderechit/internal/domain"
	whatsappModels "github.com/evenderechit/evenderechit/internal/service/whatsapp/models"
)

// ReminderRepository интерфейс репозитория напоминаний
type ReminderRepository interface {
	// GetDue получает ожидающие напоминания, срок которых наступил
	GetDue(ctx context.Context, now time.Time, limit int) ([]*domain.DueReminder, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReminderStatus, sendErr *string) error
}

// Notifier интерфейс отправки сообщений клиенту
type Notifier interface {
	SendTemplated(
		ctx context.Context,
		settings *domain.BusinessSettings,
		appointmentID *int64,
		phone string,
		tplType domain.TemplateType,
		vars map[string]string,
	) (*whatsappModels.SendMessageResponse, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
