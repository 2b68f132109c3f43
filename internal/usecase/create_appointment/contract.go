package create_appointment

import (
	"context"
	"time"

	"github.com/evenderechit/evenderechit/internal/domain"
	whatsappModels "github.com/evenderechit/evenderechit/internal/service/whatsapp/models"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	// GetForDateAndStaffScope получает записи бизнеса на дату в рамках сотрудника
	GetForDateAndStaffScope(ctx context.Context, businessID int64, staffID *int64, date time.Time) ([]*domain.Appointment, error)
}

// AvailabilityRepository интерфейс репозитория рабочих окон и блокировок
type AvailabilityRepository interface {
	GetActiveWindowsForDay(ctx context.Context, businessID int64, staffID *int64, dayOfWeek int) ([]*domain.AvailabilityWindow, error)
	IsDateBlocked(ctx context.Context, businessID int64, staffID *int64, date time.Time) (bool, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, businessID, serviceID int64) (*domain.Service, error)
}

// SettingsRepository интерфейс репозитория настроек бизнеса
type SettingsRepository interface {
	GetByBusinessID(ctx context.Context, businessID int64) (*domain.BusinessSettings, error)
}

// ReminderScheduler интерфейс планировщика напоминаний
type ReminderScheduler interface {
	Schedule(ctx context.Context, appointment *domain.Appointment, settings *domain.BusinessSettings) error
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

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
