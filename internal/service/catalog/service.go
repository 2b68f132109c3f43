package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/evenderechit/evenderechit/internal/domain"
	serviceRepo "github.com/evenderechit/evenderechit/internal/infra/storage/service"
	staffRepo "github.com/evenderechit/evenderechit/internal/infra/storage/staff"
	"github.com/evenderechit/evenderechit/internal/service/catalog/models"
)

// Service сервис каталога услуг и сотрудников
type Service struct {
	serviceRepo ServiceRepository
	staffRepo   StaffRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		staffRepo:   staffRepo,
		logger:      logger,
	}
}

// CreateService создает услугу и назначает сотрудников
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: business=%d name=%s", req.BusinessID, req.Name)

	svc := req.ToDomain()
	if err := validateService(svc); err != nil {
		s.logger.Warn("CreateService: validation failed for business=%d: %v", req.BusinessID, err)
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, svc)
	if err != nil {
		s.logger.Error("CreateService: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	if len(req.StaffIDs) > 0 {
		if err := s.serviceRepo.AssignStaff(ctx, created.ID, req.StaffIDs); err != nil {
			s.logger.Error("CreateService: failed to assign staff to service id=%d: %v", created.ID, err)
			return nil, fmt.Errorf("%w: CreateService - assign staff: %v", ErrInternal, err)
		}
	}

	s.logger.Info("CreateService: created service id=%d for business=%d", created.ID, req.BusinessID)
	return models.FromDomainService(created, req.StaffIDs), nil
}

// GetService получает услугу вместе с назначенными сотрудниками
func (s *Service) GetService(ctx context.Context, businessID, id int64) (*models.ServiceResponse, error) {
	svc, err := s.serviceRepo.GetByID(ctx, businessID, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}

	staffIDs, err := s.serviceRepo.GetStaffIDs(ctx, id)
	if err != nil {
		s.logger.Error("GetService: failed to get staff for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetService - get staff: %v", ErrInternal, err)
	}

	return models.FromDomainService(svc, staffIDs), nil
}

// ListServices получает услуги бизнеса
func (s *Service) ListServices(ctx context.Context, businessID int64, activeOnly bool) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.GetByBusinessID(ctx, businessID, activeOnly)
	if err != nil {
		s.logger.Error("ListServices: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.ServiceResponse, len(services))
	for i, svc := range services {
		staffIDs, err := s.serviceRepo.GetStaffIDs(ctx, svc.ID)
		if err != nil {
			s.logger.Error("ListServices: failed to get staff for service id=%d: %v", svc.ID, err)
			return nil, fmt.Errorf("%w: ListServices - get staff: %v", ErrInternal, err)
		}
		result[i] = models.FromDomainService(svc, staffIDs)
	}

	return &models.ServiceListResponse{Services: result}, nil
}

// UpdateService обновляет услугу и назначения сотрудников
func (s *Service) UpdateService(ctx context.Context, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: service id=%d business=%d", req.ID, req.BusinessID)

	svc := req.ToDomain()
	if err := validateService(svc); err != nil {
		s.logger.Warn("UpdateService: validation failed for service id=%d: %v", req.ID, err)
		return nil, err
	}

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for service id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	if req.StaffIDs != nil {
		if err := s.serviceRepo.AssignStaff(ctx, req.ID, req.StaffIDs); err != nil {
			s.logger.Error("UpdateService: failed to assign staff to service id=%d: %v", req.ID, err)
			return nil, fmt.Errorf("%w: UpdateService - assign staff: %v", ErrInternal, err)
		}
	}

	return models.FromDomainService(svc, req.StaffIDs), nil
}

// DeleteService удаляет услугу
func (s *Service) DeleteService(ctx context.Context, businessID, id int64) error {
	s.logger.Info("DeleteService: service id=%d business=%d", id, businessID)

	if err := s.serviceRepo.Delete(ctx, businessID, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return ErrServiceNotFound
		}
		s.logger.Error("DeleteService: repository error for service id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteService - repository error: %v", ErrInternal, err)
	}
	return nil
}

// CreateStaff создает сотрудника
func (s *Service) CreateStaff(ctx context.Context, req *models.CreateStaffRequest) (*models.StaffResponse, error) {
	s.logger.Info("CreateStaff: business=%d name=%s", req.BusinessID, req.Name)

	member := req.ToDomain()
	if member.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	created, err := s.staffRepo.Create(ctx, member)
	if err != nil {
		s.logger.Error("CreateStaff: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: CreateStaff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateStaff: created staff member id=%d for business=%d", created.ID, req.BusinessID)
	return models.FromDomainStaff(created), nil
}

// GetStaff получает сотрудника
func (s *Service) GetStaff(ctx context.Context, businessID, id int64) (*models.StaffResponse, error) {
	member, err := s.staffRepo.GetByID(ctx, businessID, id)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetStaff: repository error for staff id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetStaff - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainStaff(member), nil
}

// ListStaff получает сотрудников бизнеса
func (s *Service) ListStaff(ctx context.Context, businessID int64, activeOnly bool) (*models.StaffListResponse, error) {
	members, err := s.staffRepo.GetByBusinessID(ctx, businessID, activeOnly)
	if err != nil {
		s.logger.Error("ListStaff: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListStaff - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainStaffList(members), nil
}

// UpdateStaff обновляет сотрудника
func (s *Service) UpdateStaff(ctx context.Context, req *models.UpdateStaffRequest) (*models.StaffResponse, error) {
	s.logger.Info("UpdateStaff: staff id=%d business=%d", req.ID, req.BusinessID)

	member := req.ToDomain()
	if member.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if err := s.staffRepo.Update(ctx, member); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("UpdateStaff: repository error for staff id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: UpdateStaff - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStaff(member), nil
}

// DeleteStaff удаляет сотрудника
func (s *Service) DeleteStaff(ctx context.Context, businessID, id int64) error {
	s.logger.Info("DeleteStaff: staff id=%d business=%d", id, businessID)

	if err := s.staffRepo.Delete(ctx, businessID, id); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return ErrStaffNotFound
		}
		s.logger.Error("DeleteStaff: repository error for staff id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteStaff - repository error: %v", ErrInternal, err)
	}
	return nil
}

// validateService проверяет корректность услуги
func validateService(svc *domain.Service) error {
	if svc.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}
	if svc.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if svc.DurationMinutes < domain.MinServiceDurationMinutes || svc.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	if svc.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}
