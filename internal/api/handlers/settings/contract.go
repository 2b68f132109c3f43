package settings

import (
	"context"

	"github.com/evenderechit/evenderechit/internal/service/settings/models"
)

type SettingsService interface {
	Get(ctx context.Context, businessID int64) (*models.SettingsResponse, error)
	GetBySlug(ctx context.Context, slug string) (*models.PublicBusinessResponse, error)
	Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
