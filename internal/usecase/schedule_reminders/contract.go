package schedule_reminders

import (
	"context"
	"time"

	"github.com/evenderechit/evenderechit/internal/domain"
)

// ReminderRepository интерфейс репозитория напоминаний
type ReminderRepository interface {
	CreateBatch(ctx context.Context, reminders []*domain.ScheduledReminder) error
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
