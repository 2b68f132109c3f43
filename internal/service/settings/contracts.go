package settings

import (
	"context"

	"github.com/evenderechit/evenderechit/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек бизнеса
type SettingsRepository interface {
	GetByBusinessID(ctx context.Context, businessID int64) (*domain.BusinessSettings, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BusinessSettings, error)
	Create(ctx context.Context, s *domain.BusinessSettings) (*domain.BusinessSettings, error)
	Update(ctx context.Context, s *domain.BusinessSettings) error
	SlugExists(ctx context.Context, slug string, excludeBusinessID int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
