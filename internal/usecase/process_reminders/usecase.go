package process_reminders

import (
	"context"
	"errors"
	"fmt"

	"github.com/evenderechit/evenderechit/internal/domain"
)

var (
	// ErrInternal внутренняя ошибка use case
	ErrInternal = errors.New("internal error")
)

// Response итог одного цикла обработки напоминаний
type Response struct {
	Processed int
	Sent      int
	Failed    int
	Cancelled int
}

// UseCase use case обработки очереди напоминаний
type UseCase struct {
	reminderRepo ReminderRepository
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reminderRepo ReminderRepository, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		reminderRepo: reminderRepo,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute обрабатывает пачку ожидающих напоминаний: рендерит шаблон,
// отправляет сообщение и обновляет статус напоминания.
// Ошибка отправки одного напоминания не прерывает обработку остальных.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()

	due, err := uc.reminderRepo.GetDue(ctx, now, domain.MaxReminderBatchSize)
	if err != nil {
		uc.logger.Error("ProcessReminders: failed to get due reminders: %v", err)
		return nil, fmt.Errorf("%w: failed to get due reminders: %v", ErrInternal, err)
	}

	if len(due) == 0 {
		return &Response{}, nil
	}

	uc.logger.Info("ProcessReminders: processing %d due reminders", len(due))

	resp := &Response{Processed: len(due)}
	for _, d := range due {
		// Отменённая запись или запись без телефона: напоминание отменяется
		if d.Appointment.Status == domain.StatusCanceled || d.Appointment.CustomerPhone == "" {
			resp.Cancelled++
			if err := uc.reminderRepo.UpdateStatus(ctx, d.Reminder.ID, domain.ReminderCancelled, nil); err != nil {
				uc.logger.Error("ProcessReminders: failed to mark reminder id=%d as cancelled: %v", d.Reminder.ID, err)
			}
			continue
		}

		if err := uc.processOne(ctx, d); err != nil {
			resp.Failed++
			errText := err.Error()
			if updErr := uc.reminderRepo.UpdateStatus(ctx, d.Reminder.ID, domain.ReminderFailed, &errText); updErr != nil {
				uc.logger.Error("ProcessReminders: failed to mark reminder id=%d as failed: %v", d.Reminder.ID, updErr)
			}
			continue
		}

		resp.Sent++
		if err := uc.reminderRepo.UpdateStatus(ctx, d.Reminder.ID, domain.ReminderSent, nil); err != nil {
			uc.logger.Error("ProcessReminders: failed to mark reminder id=%d as sent: %v", d.Reminder.ID, err)
		}
	}

	uc.logger.Info("ProcessReminders: done, sent=%d failed=%d cancelled=%d", resp.Sent, resp.Failed, resp.Cancelled)
	return resp, nil
}

// processOne отправляет одно напоминание
func (uc *UseCase) processOne(ctx context.Context, d *domain.DueReminder) error {
	appt := &d.Appointment

	vars := map[string]string{
		"customerName": appt.CustomerName,
		"businessName": d.Settings.BusinessName,
		"date":         appt.Date.Format(domain.DateFormat),
		"time":         string(appt.StartTime),
	}
	if appt.ServiceName != nil {
		vars["serviceName"] = *appt.ServiceName
	}

	_, err := uc.notifier.SendTemplated(ctx, &d.Settings, &appt.ID, appt.CustomerPhone, domain.TemplateReminder, vars)
	if err != nil {
		uc.logger.Error("ProcessReminders: failed to send reminder id=%d for appointment id=%d: %v",
			d.Reminder.ID, appt.ID, err)
		return err
	}
	return nil
}
