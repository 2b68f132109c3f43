package staff

import (
	"context"

	"github.com/evenderechit/evenderechit/internal/service/catalog/models"
)

type CatalogService interface {
	CreateStaff(ctx context.Context, req *models.CreateStaffRequest) (*models.StaffResponse, error)
	GetStaff(ctx context.Context, businessID, id int64) (*models.StaffResponse, error)
	ListStaff(ctx context.Context, businessID int64, activeOnly bool) (*models.StaffListResponse, error)
	UpdateStaff(ctx context.Context, req *models.UpdateStaffRequest) (*models.StaffResponse, error)
	DeleteStaff(ctx context.Context, businessID, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
