package availability

import (
	"context"
	"time"

	"github.com/evenderechit/evenderechit/internal/domain"
)

// AvailabilityRepository интерфейс репозитория окон доступности и блокировок
type AvailabilityRepository interface {
	CreateWindow(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error)
	GetWindows(ctx context.Context, businessID int64) ([]*domain.AvailabilityWindow, error)
	UpdateWindow(ctx context.Context, window *domain.AvailabilityWindow) error
	DeleteWindow(ctx context.Context, businessID, id int64) error

	AddBlockedDate(ctx context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error)
	GetBlockedDates(ctx context.Context, businessID int64, from time.Time) ([]*domain.BlockedDate, error)
	RemoveBlockedDate(ctx context.Context, businessID, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
