package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evenderechit/evenderechit/internal/domain"
	availabilityRepo "github.com/evenderechit/evenderechit/internal/infra/storage/availability"
	"github.com/evenderechit/evenderechit/internal/service/availability/models"
)

// Service сервис для работы с доступностью бизнеса
type Service struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(availabilityRepo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// CreateWindow создает окно доступности
func (s *Service) CreateWindow(ctx context.Context, req *models.CreateWindowRequest) (*models.WindowResponse, error) {
	s.logger.Info("CreateWindow: business=%d day=%d %s-%s", req.BusinessID, req.DayOfWeek, req.StartTime, req.EndTime)

	window := req.ToDomain()
	if err := validateWindow(window); err != nil {
		s.logger.Warn("CreateWindow: validation failed for business=%d: %v", req.BusinessID, err)
		return nil, err
	}

	created, err := s.availabilityRepo.CreateWindow(ctx, window)
	if err != nil {
		s.logger.Error("CreateWindow: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: CreateWindow - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateWindow: created window id=%d for business=%d", created.ID, req.BusinessID)
	return models.FromDomainWindow(created), nil
}

// GetWindows получает все окна доступности бизнеса
func (s *Service) GetWindows(ctx context.Context, businessID int64) (*models.WindowListResponse, error) {
	windows, err := s.availabilityRepo.GetWindows(ctx, businessID)
	if err != nil {
		s.logger.Error("GetWindows: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetWindows - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainWindows(windows), nil
}

// UpdateWindow обновляет окно доступности
func (s *Service) UpdateWindow(ctx context.Context, req *models.UpdateWindowRequest) (*models.WindowResponse, error) {
	s.logger.Info("UpdateWindow: window id=%d business=%d", req.ID, req.BusinessID)

	window := req.ToDomain()
	if err := validateWindow(window); err != nil {
		s.logger.Warn("UpdateWindow: validation failed for window id=%d: %v", req.ID, err)
		return nil, err
	}

	if err := s.availabilityRepo.UpdateWindow(ctx, window); err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			s.logger.Warn("UpdateWindow: window id=%d not found", req.ID)
			return nil, ErrWindowNotFound
		}
		s.logger.Error("UpdateWindow: repository error for window id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: UpdateWindow - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWindow(window), nil
}

// DeleteWindow удаляет окно доступности
func (s *Service) DeleteWindow(ctx context.Context, businessID, id int64) error {
	s.logger.Info("DeleteWindow: window id=%d business=%d", id, businessID)

	if err := s.availabilityRepo.DeleteWindow(ctx, businessID, id); err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			return ErrWindowNotFound
		}
		s.logger.Error("DeleteWindow: repository error for window id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteWindow - repository error: %v", ErrInternal, err)
	}
	return nil
}

// AddBlockedDate блокирует дату для записи
func (s *Service) AddBlockedDate(ctx context.Context, req *models.AddBlockedDateRequest) (*models.BlockedDateResponse, error) {
	s.logger.Info("AddBlockedDate: business=%d date=%s", req.BusinessID, req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	blocked, err := s.availabilityRepo.AddBlockedDate(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("AddBlockedDate: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: AddBlockedDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedDate(blocked), nil
}

// GetBlockedDates получает блокировки бизнеса начиная с даты
func (s *Service) GetBlockedDates(ctx context.Context, businessID int64, from time.Time) (*models.BlockedDateListResponse, error) {
	blockedDates, err := s.availabilityRepo.GetBlockedDates(ctx, businessID, from)
	if err != nil {
		s.logger.Error("GetBlockedDates: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetBlockedDates - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBlockedDates(blockedDates), nil
}

// RemoveBlockedDate удаляет блокировку даты
func (s *Service) RemoveBlockedDate(ctx context.Context, businessID, id int64) error {
	s.logger.Info("RemoveBlockedDate: blocked date id=%d business=%d", id, businessID)

	if err := s.availabilityRepo.RemoveBlockedDate(ctx, businessID, id); err != nil {
		if errors.Is(err, availabilityRepo.ErrBlockedDateNotFound) {
			return ErrBlockedDateNotFound
		}
		s.logger.Error("RemoveBlockedDate: repository error for blocked date id=%d: %v", id, err)
		return fmt.Errorf("%w: RemoveBlockedDate - repository error: %v", ErrInternal, err)
	}
	return nil
}

// validateWindow проверяет корректность окна доступности
func validateWindow(w *domain.AvailabilityWindow) error {
	if w.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}
	if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
		return fmt.Errorf("%w: dayOfWeek must be between 0 and 6", ErrInvalidInput)
	}

	startM, err := w.StartTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	endM, err := w.EndTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}
	if startM >= endM {
		return ErrInvalidTimeRange
	}
	return nil
}
