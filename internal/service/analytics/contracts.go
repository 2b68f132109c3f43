package analytics

import (
	"context"
	"time"

	"github.com/evenderechit/evenderechit/internal/domain"
)

// AppointmentStats интерфейс агрегаций по записям
type AppointmentStats interface {
	CountForPeriod(ctx context.Context, businessID int64, from, to time.Time) (int64, error)
	CompletedRevenue(ctx context.Context, businessID int64, from, to time.Time) (float64, error)
	StatusCounts(ctx context.Context, businessID int64, from, to time.Time) ([]domain.StatusCount, error)
	TopServices(ctx context.Context, businessID int64, from, to time.Time, limit int) ([]domain.TopService, error)
	CountDistinctCustomers(ctx context.Context, businessID int64, from, to time.Time) (int64, error)
	CountByStatusForPeriod(ctx context.Context, businessID int64, statuses []domain.AppointmentStatus, from, to time.Time) (int64, error)
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
