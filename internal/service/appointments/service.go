package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/evenderechit/evenderechit/internal/domain"
	appointmentRepo "github.com/evenderechit/evenderechit/internal/infra/storage/appointment"
	"github.com/evenderechit/evenderechit/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	reminderRepo    ReminderRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	reminderRepo ReminderRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		reminderRepo:    reminderRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID в рамках бизнеса
func (s *Service) GetByID(ctx context.Context, businessID, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for business=%d", id, businessID)

	appt, err := s.appointmentRepo.GetByID(ctx, businessID, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List получает записи бизнеса с фильтрацией
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for business=%d", req.BusinessID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments for business=%d", len(appointments), req.BusinessID)
	return models.FromDomainAppointments(appointments), nil
}

// UpdateStatus обновляет статус записи
// При отмене все ожидающие напоминания записи отменяются
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%d business=%d status=%s", req.ID, req.BusinessID, req.Status)

	status, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, req.ID)
		return nil, ErrInvalidStatus
	}

	appt, err := s.appointmentRepo.GetByID(ctx, req.BusinessID, req.ID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if status == domain.StatusCanceled && !appt.CanBeCancelled() {
		s.logger.Warn("UpdateStatus: appointment id=%d in status=%s cannot be cancelled", req.ID, appt.Status)
		return nil, ErrCannotCancel
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, req.BusinessID, req.ID, status); err != nil {
		s.logger.Error("UpdateStatus: failed to update appointment id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if status == domain.StatusCanceled {
		// Отменяем напоминания по отменённой записи, ошибка не критична
		if err := s.reminderRepo.CancelForAppointment(ctx, req.ID); err != nil {
			s.logger.Error("UpdateStatus: failed to cancel reminders for appointment id=%d: %v", req.ID, err)
		}
	}

	appt.Status = status
	s.logger.Info("UpdateStatus: appointment id=%d updated to status=%s", req.ID, status)
	return models.FromDomainAppointment(appt), nil
}

// UpdateNotes обновляет заметки записи
func (s *Service) UpdateNotes(ctx context.Context, req *models.UpdateNotesRequest) error {
	s.logger.Info("UpdateNotes: appointment id=%d business=%d", req.ID, req.BusinessID)

	if err := s.appointmentRepo.UpdateNotes(ctx, req.BusinessID, req.ID, req.Notes); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateNotes: failed to update appointment id=%d: %v", req.ID, err)
		return fmt.Errorf("%w: UpdateNotes - repository error: %v", ErrInternal, err)
	}
	return nil
}

// Delete удаляет запись вместе с её напоминаниями
func (s *Service) Delete(ctx context.Context, businessID, id int64) error {
	s.logger.Info("Delete: appointment id=%d business=%d", id, businessID)

	if err := s.reminderRepo.CancelForAppointment(ctx, id); err != nil {
		s.logger.Error("Delete: failed to cancel reminders for appointment id=%d: %v", id, err)
	}

	if err := s.appointmentRepo.Delete(ctx, businessID, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: failed to delete appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: appointment id=%d deleted", id)
	return nil
}

// CancelByManageToken отменяет запись по токену самообслуживания клиента
func (s *Service) CancelByManageToken(ctx context.Context, token string) (*models.AppointmentResponse, error) {
	s.logger.Info("CancelByManageToken: cancelling appointment by token")

	appt, err := s.appointmentRepo.GetByManageToken(ctx, token)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: CancelByManageToken - repository error: %v", ErrInternal, err)
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("CancelByManageToken: appointment id=%d in status=%s cannot be cancelled", appt.ID, appt.Status)
		return nil, ErrCannotCancel
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appt.BusinessID, appt.ID, domain.StatusCanceled); err != nil {
		s.logger.Error("CancelByManageToken: failed to cancel appointment id=%d: %v", appt.ID, err)
		return nil, fmt.Errorf("%w: CancelByManageToken - repository error: %v", ErrInternal, err)
	}

	if err := s.reminderRepo.CancelForAppointment(ctx, appt.ID); err != nil {
		s.logger.Error("CancelByManageToken: failed to cancel reminders for appointment id=%d: %v", appt.ID, err)
	}

	appt.Status = domain.StatusCanceled
	s.logger.Info("CancelByManageToken: appointment id=%d cancelled", appt.ID)
	return models.FromDomainAppointment(appt), nil
}

// ConfirmByManageToken подтверждает запись по токену самообслуживания клиента
func (s *Service) ConfirmByManageToken(ctx context.Context, token string) (*models.AppointmentResponse, error) {
	s.logger.Info("ConfirmByManageToken: confirming appointment by token")

	appt, err := s.appointmentRepo.GetByManageToken(ctx, token)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: ConfirmByManageToken - repository error: %v", ErrInternal, err)
	}

	if appt.Status != domain.StatusScheduled {
		s.logger.Warn("ConfirmByManageToken: appointment id=%d in status=%s cannot be confirmed", appt.ID, appt.Status)
		return nil, ErrInvalidStatus
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appt.BusinessID, appt.ID, domain.StatusConfirmed); err != nil {
		s.logger.Error("ConfirmByManageToken: failed to confirm appointment id=%d: %v", appt.ID, err)
		return nil, fmt.Errorf("%w: ConfirmByManageToken - repository error: %v", ErrInternal, err)
	}

	appt.Status = domain.StatusConfirmed
	s.logger.Info("ConfirmByManageToken: appointment id=%d confirmed", appt.ID)
	return models.FromDomainAppointment(appt), nil
}
