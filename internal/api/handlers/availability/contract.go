package availability

import (
	"context"
	"time"

	"github.com/evenderechit/evenderechit/internal/service/availability/models"
)

type AvailabilityService interface {
	CreateWindow(ctx context.Context, req *models.CreateWindowRequest) (*models.WindowResponse, error)
	GetWindows(ctx context.Context, businessID int64) (*models.WindowListResponse, error)
	UpdateWindow(ctx context.Context, req *models.UpdateWindowRequest) (*models.WindowResponse, error)
	DeleteWindow(ctx context.Context, businessID, id int64) error
	AddBlockedDate(ctx context.Context, req *models.AddBlockedDateRequest) (*models.BlockedDateResponse, error)
	GetBlockedDates(ctx context.Context, businessID int64, from time.Time) (*models.BlockedDateListResponse, error)
	RemoveBlockedDate(ctx context.Context, businessID, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
