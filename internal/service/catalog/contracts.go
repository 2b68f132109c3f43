package catalog

import (
	"context"

	"github.com/evenderechit/evenderechit/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, businessID, id int64) (*domain.Service, error)
	GetByBusinessID(ctx context.Context, businessID int64, activeOnly bool) ([]*domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) error
	Delete(ctx context.Context, businessID, id int64) error
	AssignStaff(ctx context.Context, serviceID int64, staffIDs []int64) error
	GetStaffIDs(ctx context.Context, serviceID int64) ([]int64, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	Create(ctx context.Context, member *domain.Staff) (*domain.Staff, error)
	GetByID(ctx context.Context, businessID, id int64) (*domain.Staff, error)
	GetByBusinessID(ctx context.Context, businessID int64, activeOnly bool) ([]*domain.Staff, error)
	Update(ctx context.Context, member *domain.Staff) error
	Delete(ctx context.Context, businessID, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
