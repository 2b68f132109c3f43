package cron

import (
	"context"

	"github.com/robfig/cron/v3"

	processReminders "github.com/evenderechit/evenderechit/internal/usecase/process_reminders"
)

// ProcessRemindersUseCase интерфейс use case обработки напоминаний
type ProcessRemindersUseCase interface {
	Execute(ctx context.Context) (*processReminders.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler запускает фоновую обработку напоминаний по cron расписанию
type Scheduler struct {
	cron    *cron.Cron
	useCase ProcessRemindersUseCase
	logger  Logger
}

// NewScheduler создает новый планировщик
func NewScheduler(useCase ProcessRemindersUseCase, logger Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		useCase: useCase,
		logger:  logger,
	}
}

// Start регистрирует задачу с переданным расписанием и запускает цикл
func (s *Scheduler) Start(schedule string) error {
	_, err := s.cron.AddFunc(schedule, s.run)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("Reminder scheduler started with schedule %q", schedule)
	return nil
}

// Stop останавливает цикл и дожидается завершения текущей задачи
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Reminder scheduler stopped")
}

func (s *Scheduler) run() {
	resp, err := s.useCase.Execute(context.Background())
	if err != nil {
		s.logger.Error("Reminder processing cycle failed: %v", err)
		return
	}
	if resp.Processed > 0 {
		s.logger.Info("Reminder processing cycle done: processed=%d sent=%d failed=%d cancelled=%d",
			resp.Processed, resp.Sent, resp.Failed, resp.Cancelled)
	}
}
