package services

import (
	"context"

	"github.com/evenderechit/evenderechit/internal/service/catalog/models"
)

type CatalogService interface {
	CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error)
	GetService(ctx context.Context, businessID, id int64) (*models.ServiceResponse, error)
	ListServices(ctx context.Context, businessID int64, activeOnly bool) (*models.ServiceListResponse, error)
	UpdateService(ctx context.Context, req *models.UpdateServiceRequest) (*models.ServiceResponse, error)
	DeleteService(ctx context.Context, businessID, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
