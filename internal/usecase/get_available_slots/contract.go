package get_available_slots

import (
	"context"
	"time"

	"github.com/evenderechit/evenderechit/internal/domain"
)

// AvailabilityRepository интерфейс репозитория рабочих окон и блокировок
type AvailabilityRepository interface {
	// GetActiveWindowsForDay получает активные окна доступности на день недели
	// staffID == nil означает окна бизнеса без привязки к сотруднику
	GetActiveWindowsForDay(ctx context.Context, businessID int64, staffID *int64, dayOfWeek int) ([]*domain.AvailabilityWindow, error)
	// IsDateBlocked проверяет, заблокирована ли дата
	// Блокировка бизнеса целиком действует на всех сотрудников
	IsDateBlocked(ctx context.Context, businessID int64, staffID *int64, date time.Time) (bool, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetForDateAndStaffScope получает записи бизнеса на дату в рамках сотрудника
	GetForDateAndStaffScope(ctx context.Context, businessID int64, staffID *int64, date time.Time) ([]*domain.Appointment, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, businessID, serviceID int64) (*domain.Service, error)
}

// SettingsRepository интерфейс репозитория настроек бизнеса
type SettingsRepository interface {
	GetByBusinessID(ctx context.Context, businessID int64) (*domain.BusinessSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
