package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/evenderechit/evenderechit/internal/domain"
	serviceRepo "github.com/evenderechit/evenderechit/internal/infra/storage/service"
	settingsRepo "github.com/evenderechit/evenderechit/internal/infra/storage/settings"
	"github.com/evenderechit/evenderechit/pkg/types"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	availabilityRepo AvailabilityRepository
	appointmentRepo  AppointmentRepository
	serviceRepo      ServiceRepository
	settingsRepo     SettingsRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		appointmentRepo:  appointmentRepo,
		serviceRepo:      serviceRepo,
		settingsRepo:     settingsRepo,
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%d, service=%v, staff=%v, date=%s",
		req.BusinessID, ptrVal(req.ServiceID), ptrVal(req.StaffID), req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем длительность услуги
	durationMinutes := domain.DefaultServiceDurationMinutes
	if req.ServiceID != nil {
		service, err := uc.serviceRepo.GetByID(ctx, req.BusinessID, *req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("GetAvailableSlots: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		durationMinutes = service.DurationMinutes
	}

	// 3. Получаем настройки бизнеса
	// Буфер между записями читается из настроек, но в расчёт слотов не входит:
	// шаг перебора фиксированный
	bufferMinutes := domain.DefaultBufferMinutes
	settings, err := uc.settingsRepo.GetByBusinessID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Warn("GetAvailableSlots: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get settings for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	if settings.BufferMinutes > 0 {
		bufferMinutes = settings.BufferMinutes
	}
	uc.logger.Info("GetAvailableSlots: business=%d duration=%d buffer=%d step=%d",
		req.BusinessID, durationMinutes, bufferMinutes, domain.SlotStepMinutes)

	// 4. Получаем окна доступности на день недели (0 = воскресенье)
	dayOfWeek := int(req.Date.Weekday())
	windows, err := uc.availabilityRepo.GetActiveWindowsForDay(ctx, req.BusinessID, req.StaffID, dayOfWeek)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability windows: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
	}
	if len(windows) == 0 {
		uc.logger.Info("GetAvailableSlots: no availability windows for business=%d day=%d", req.BusinessID, dayOfWeek)
		return uc.emptyResponse(req, durationMinutes), nil
	}

	// 5. Проверяем блокировку даты
	blocked, err := uc.availabilityRepo.IsDateBlocked(ctx, req.BusinessID, req.StaffID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to check blocked date: %v", err)
		return nil, fmt.Errorf("%w: failed to check blocked date: %v", ErrInternal, err)
	}

	// 6. Получаем записи на дату (при блокировке они не нужны)
	var appointments []*domain.Appointment
	if !blocked {
		appointments, err = uc.appointmentRepo.GetForDateAndStaffScope(ctx, req.BusinessID, req.StaffID, req.Date)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
			return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}
	}

	// 7. Вычисляем доступные слоты
	slots, err := computeAvailableSlots(windows, appointments, durationMinutes, domain.SlotStepMinutes, blocked)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: computed %d slots for business=%d, date=%s",
		len(slots), req.BusinessID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		BusinessID:      req.BusinessID,
		ServiceID:       req.ServiceID,
		StaffID:         req.StaffID,
		DurationMinutes: durationMinutes,
		Slots:           slots,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request, durationMinutes int) *Response {
	return &Response{
		Date:            req.Date,
		BusinessID:      req.BusinessID,
		ServiceID:       req.ServiceID,
		StaffID:         req.StaffID,
		DurationMinutes: durationMinutes,
		Slots:           []types.TimeString{},
	}
}

func ptrVal(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
