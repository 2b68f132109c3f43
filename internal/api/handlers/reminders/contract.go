package reminders

import (
	"context"

	processReminders "github.com/evenderechit/evenderechit/internal/usecase/process_reminders"
)

// ProcessRemindersUseCase интерфейс use case обработки напоминаний
type ProcessRemindersUseCase interface {
	Execute(ctx context.Context) (*processReminders.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
