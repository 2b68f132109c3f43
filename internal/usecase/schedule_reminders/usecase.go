package schedule_reminders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evenderechit/evenderechit/internal/domain"
)

var (
	// ErrInternal внутренняя ошибка use case
	ErrInternal = errors.New("internal error")
)

// UseCase use case планирования напоминаний для записи
type UseCase struct {
	reminderRepo ReminderRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reminderRepo ReminderRepository, logger Logger) *UseCase {
	return &UseCase{
		reminderRepo: reminderRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Schedule создает ожидающие напоминания для записи согласно настройкам
// бизнеса. Напоминания, время отправки которых уже прошло, не создаются.
func (uc *UseCase) Schedule(ctx context.Context, appointment *domain.Appointment, settings *domain.BusinessSettings) error {
	types := settings.EnabledReminderTypes()
	if len(types) == 0 {
		uc.logger.Info("ScheduleReminders: reminders disabled for business=%d", settings.BusinessID)
		return nil
	}

	startAt, err := appointmentStart(appointment, settings.Timezone)
	if err != nil {
		uc.logger.Error("ScheduleReminders: failed to resolve start of appointment id=%d: %v", appointment.ID, err)
		return fmt.Errorf("%w: failed to resolve appointment start: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	reminders := make([]*domain.ScheduledReminder, 0, len(types))
	for _, t := range types {
		sendAt := startAt.Add(-t.Offset())
		if !sendAt.After(now) {
			uc.logger.Info("ScheduleReminders: skipping %s reminder for appointment id=%d, send time already passed",
				t, appointment.ID)
			continue
		}
		reminders = append(reminders, &domain.ScheduledReminder{
			AppointmentID: appointment.ID,
			Type:          t,
			SendAt:        sendAt,
			Status:        domain.ReminderPending,
		})
	}

	if len(reminders) == 0 {
		return nil
	}

	if err := uc.reminderRepo.CreateBatch(ctx, reminders); err != nil {
		uc.logger.Error("ScheduleReminders: failed to create reminders for appointment id=%d: %v", appointment.ID, err)
		return fmt.Errorf("%w: failed to create reminders: %v", ErrInternal, err)
	}

	uc.logger.Info("ScheduleReminders: scheduled %d reminders for appointment id=%d", len(reminders), appointment.ID)
	return nil
}

// appointmentStart собирает момент начала записи в часовом поясе бизнеса
func appointmentStart(appointment *domain.Appointment, timezone string) (time.Time, error) {
	loc := time.Local
	if timezone != "" {
		parsed, err := time.LoadLocation(timezone)
		if err == nil {
			loc = parsed
		}
	}

	minutes, err := appointment.StartTime.Minutes()
	if err != nil {
		return time.Time{}, fmt.Errorf("appointment start time: %w", err)
	}

	d := appointment.Date
	return time.Date(d.Year(), d.Month(), d.Day(), minutes/60, minutes%60, 0, 0, loc), nil
}
