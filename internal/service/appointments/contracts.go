package appointments

import (
	"context"
	"time"

	"github.com/evenderechit/evenderechit/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, businessID, id int64) (*domain.Appointment, error)
	GetByManageToken(ctx context.Context, token string) (*domain.Appointment, error)
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, businessID, id int64, status domain.AppointmentStatus) error
	UpdateNotes(ctx context.Context, businessID, id int64, notes *string) error
	Delete(ctx context.Context, businessID, id int64) error
}

// ReminderRepository интерфейс репозитория напоминаний
type ReminderRepository interface {
	CancelForAppointment(ctx context.Context, appointmentID int64) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
