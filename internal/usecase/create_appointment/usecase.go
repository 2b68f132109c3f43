package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/evenderechit/evenderechit/internal/domain"
	serviceRepo "github.com/evenderechit/evenderechit/internal/infra/storage/service"
	settingsRepo "github.com/evenderechit/evenderechit/internal/infra/storage/settings"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	appointmentRepo   AppointmentRepository
	availabilityRepo  AvailabilityRepository
	serviceRepo       ServiceRepository
	settingsRepo      SettingsRepository
	reminderScheduler ReminderScheduler
	notifier          Notifier
	txManager         TransactionManager
	timeProvider      TimeProvider
	logger            Logger
	publicBaseURL     string
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	serviceRepo ServiceRepository,
	settingsRepo SettingsRepository,
	reminderScheduler ReminderScheduler,
	notifier Notifier,
	txManager TransactionManager,
	publicBaseURL string,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:   appointmentRepo,
		availabilityRepo:  availabilityRepo,
		serviceRepo:       serviceRepo,
		settingsRepo:      settingsRepo,
		reminderScheduler: reminderScheduler,
		notifier:          notifier,
		txManager:         txManager,
		timeProvider:      &RealTimeProvider{},
		logger:            logger,
		publicBaseURL:     strings.TrimRight(publicBaseURL, "/"),
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: business=%d, service=%v, staff=%v, date=%s, time=%s",
		req.BusinessID, req.ServiceID, req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Получаем настройки бизнеса
	settings, err := uc.settingsRepo.GetByBusinessID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Warn("CreateAppointment: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get settings for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 4. Определяем длительность и денормализуемые данные услуги
	durationMinutes := domain.DefaultServiceDurationMinutes
	var serviceName *string
	var servicePrice *float64
	if req.ServiceID != nil {
		service, err := uc.serviceRepo.GetByID(ctx, req.BusinessID, *req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateAppointment: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		durationMinutes = service.DurationMinutes
		serviceName = &service.Name
		servicePrice = &service.Price
	}

	startM, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: startTime must be in HH:MM format", ErrInvalidInput)
	}
	endTime, err := req.StartTime.AddMinutes(durationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime must be in HH:MM format", ErrInvalidInput)
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Проверяем блокировку даты
		blocked, err := uc.availabilityRepo.IsDateBlocked(txCtx, req.BusinessID, req.StaffID, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check blocked date: %v", err)
			return fmt.Errorf("%w: failed to check blocked date: %v", ErrInternal, err)
		}
		if blocked {
			uc.logger.Warn("CreateAppointment: date %s is blocked for business=%d",
				req.Date.Format(domain.DateFormat), req.BusinessID)
			return ErrDateBlocked
		}

		// 5.2. Время начала должно попадать в окно доступности
		dayOfWeek := int(req.Date.Weekday())
		windows, err := uc.availabilityRepo.GetActiveWindowsForDay(txCtx, req.BusinessID, req.StaffID, dayOfWeek)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get availability windows: %v", err)
			return fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
		}

		fits, err := fitsWindows(startM, durationMinutes, domain.SlotStepMinutes, windows)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if !fits {
			uc.logger.Warn("CreateAppointment: time %s does not fit availability windows", req.StartTime)
			return ErrSlotNotAvailable
		}

		// 5.3. Получаем записи на дату с блокировкой (FOR UPDATE)
		appointments, err := uc.appointmentRepo.GetForDateAndStaffScope(txCtx, req.BusinessID, req.StaffID, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 5.4. Проверяем пересечение с существующими записями
		conflict, err := hasConflict(startM, startM+durationMinutes, appointments)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if conflict {
			uc.logger.Warn("CreateAppointment: time %s conflicts with existing appointment", req.StartTime)
			return ErrSlotNotAvailable
		}

		// 5.5. Создаем запись с токеном самообслуживания
		appointment := &domain.Appointment{
			BusinessID:    req.BusinessID,
			ServiceID:     req.ServiceID,
			StaffID:       req.StaffID,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
			Date:          req.Date,
			StartTime:     req.StartTime,
			EndTime:       endTime,
			Status:        domain.StatusScheduled,
			Notes:         req.Notes,
			ServiceName:   serviceName,
			ServicePrice:  servicePrice,
			ManageToken:   uuid.NewString(),
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 6. Планируем напоминания (не блокирует создание записи)
	if uc.reminderScheduler != nil {
		if err := uc.reminderScheduler.Schedule(ctx, result, settings); err != nil {
			uc.logger.Error("CreateAppointment: failed to schedule reminders for appointment id=%d: %v",
				result.ID, err)
		}
	}

	// 7. Отправляем подтверждение клиенту (не блокирует создание записи)
	uc.sendConfirmation(ctx, settings, result)

	return &Response{
		ID:            result.ID,
		BusinessID:    result.BusinessID,
		ServiceID:     result.ServiceID,
		StaffID:       result.StaffID,
		CustomerName:  result.CustomerName,
		CustomerPhone: result.CustomerPhone,
		CustomerEmail: result.CustomerEmail,
		Date:          result.Date,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		Status:        string(result.Status),
		Notes:         result.Notes,
		ServiceName:   result.ServiceName,
		ServicePrice:  result.ServicePrice,
		ManageToken:   result.ManageToken,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// sendConfirmation отправляет клиенту подтверждение записи
// Отправка выполняется только при включённых whatsapp и автоподтверждении
func (uc *UseCase) sendConfirmation(ctx context.Context, settings *domain.BusinessSettings, appt *domain.Appointment) {
	if uc.notifier == nil {
		return
	}
	if !settings.WhatsappEnabled || !settings.AutoConfirmationEnabled {
		uc.logger.Info("CreateAppointment: auto confirmation disabled for business=%d, skipping", settings.BusinessID)
		return
	}
	if appt.CustomerPhone == "" {
		return
	}

	vars := map[string]string{
		"customerName": appt.CustomerName,
		"businessName": settings.BusinessName,
		"date":         appt.Date.Format(domain.DateFormat),
		"time":         string(appt.StartTime),
		"manageLink":   fmt.Sprintf("%s/manage/%s", uc.publicBaseURL, appt.ManageToken),
	}
	if appt.ServiceName != nil {
		vars["serviceName"] = *appt.ServiceName
	}
	if settings.Address != nil {
		vars["businessAddress"] = *settings.Address
	}

	if _, err := uc.notifier.SendTemplated(ctx, settings, &appt.ID, appt.CustomerPhone, domain.TemplateConfirmation, vars); err != nil {
		uc.logger.Error("CreateAppointment: failed to send confirmation for appointment id=%d: %v", appt.ID, err)
	}
}
