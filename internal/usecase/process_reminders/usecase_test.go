package process_reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evenderechit/evenderechit/internal/domain"
	whatsappModels "github.com/evenderechit/evenderechit/internal/service/whatsapp/models"
	"github.com/evenderechit/evenderechit/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type statusUpdate struct {
	id     int64
	status domain.ReminderStatus
	err    *string
}

type stubReminderRepo struct {
	due     []*domain.DueReminder
	dueErr  error
	updates []statusUpdate
	limit   int
}

func (s *stubReminderRepo) GetDue(ctx context.Context, now time.Time, limit int) ([]*domain.DueReminder, error) {
	s.limit = limit
	return s.due, s.dueErr
}

func (s *stubReminderRepo) UpdateStatus(ctx context.Context, id int64, status domain.ReminderStatus, sendErr *string) error {
	s.updates = append(s.updates, statusUpdate{id: id, status: status, err: sendErr})
	return nil
}

type stubNotifier struct {
	sent    []int64
	failFor map[int64]error
}

func (s *stubNotifier) SendTemplated(
	ctx context.Context,
	settings *domain.BusinessSettings,
	appointmentID *int64,
	phone string,
	tplType domain.TemplateType,
	vars map[string]string,
) (*whatsappModels.SendMessageResponse, error) {
	if err, ok := s.failFor[*appointmentID]; ok {
		return nil, err
	}
	s.sent = append(s.sent, *appointmentID)
	return &whatsappModels.SendMessageResponse{Status: string(domain.MessageSent)}, nil
}

func dueReminder(reminderID, appointmentID int64) *domain.DueReminder {
	return &domain.DueReminder{
		Reminder: domain.ScheduledReminder{
			ID:            reminderID,
			AppointmentID: appointmentID,
			Type:          domain.Reminder24Hours,
			Status:        domain.ReminderPending,
		},
		Appointment: domain.Appointment{
			ID:            appointmentID,
			BusinessID:    1,
			CustomerName:  "Dana",
			CustomerPhone: "972501234567",
			Date:          time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
			StartTime:     types.TimeString("14:00"),
			Status:        domain.StatusScheduled,
		},
		Settings: domain.BusinessSettings{BusinessID: 1, BusinessName: "Dana's"},
	}
}

func TestProcessReminders_SendsAndMarksSent(t *testing.T) {
	repo := &stubReminderRepo{due: []*domain.DueReminder{dueReminder(1, 10), dueReminder(2, 20)}}
	notifier := &stubNotifier{}
	uc := NewUseCase(repo, notifier, nopLogger{})

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Processed)
	assert.Equal(t, 2, resp.Sent)
	assert.Equal(t, 0, resp.Failed)
	assert.Equal(t, []int64{10, 20}, notifier.sent)

	require.Len(t, repo.updates, 2)
	assert.Equal(t, domain.ReminderSent, repo.updates[0].status)
	assert.Nil(t, repo.updates[0].err)
}

func TestProcessReminders_FailureDoesNotStopBatch(t *testing.T) {
	repo := &stubReminderRepo{due: []*domain.DueReminder{dueReminder(1, 10), dueReminder(2, 20)}}
	notifier := &stubNotifier{failFor: map[int64]error{10: errors.New("network down")}}
	uc := NewUseCase(repo, notifier, nopLogger{})

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Processed)
	assert.Equal(t, 1, resp.Sent)
	assert.Equal(t, 1, resp.Failed)

	require.Len(t, repo.updates, 2)
	assert.Equal(t, domain.ReminderFailed, repo.updates[0].status)
	require.NotNil(t, repo.updates[0].err)
	assert.Contains(t, *repo.updates[0].err, "network down")
	assert.Equal(t, domain.ReminderSent, repo.updates[1].status)
}

func TestProcessReminders_CanceledAppointmentMarksCancelled(t *testing.T) {
	canceled := dueReminder(1, 10)
	canceled.Appointment.Status = domain.StatusCanceled
	repo := &stubReminderRepo{due: []*domain.DueReminder{canceled, dueReminder(2, 20)}}
	notifier := &stubNotifier{}
	uc := NewUseCase(repo, notifier, nopLogger{})

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Processed)
	assert.Equal(t, 1, resp.Sent)
	assert.Equal(t, 1, resp.Cancelled)
	assert.Equal(t, []int64{20}, notifier.sent)

	require.Len(t, repo.updates, 2)
	assert.Equal(t, domain.ReminderCancelled, repo.updates[0].status)
	assert.Nil(t, repo.updates[0].err)
	assert.Equal(t, domain.ReminderSent, repo.updates[1].status)
}

func TestProcessReminders_NoPhoneMarksCancelled(t *testing.T) {
	noPhone := dueReminder(1, 10)
	noPhone.Appointment.CustomerPhone = ""
	repo := &stubReminderRepo{due: []*domain.DueReminder{noPhone}}
	notifier := &stubNotifier{}
	uc := NewUseCase(repo, notifier, nopLogger{})

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Cancelled)
	assert.Equal(t, 0, resp.Failed)
	assert.Empty(t, notifier.sent)

	require.Len(t, repo.updates, 1)
	assert.Equal(t, domain.ReminderCancelled, repo.updates[0].status)
}

func TestProcessReminders_EmptyQueue(t *testing.T) {
	repo := &stubReminderRepo{}
	uc := NewUseCase(repo, &stubNotifier{}, nopLogger{})

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Processed)
}

func TestProcessReminders_UsesBatchLimit(t *testing.T) {
	repo := &stubReminderRepo{}
	uc := NewUseCase(repo, &stubNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.MaxReminderBatchSize, repo.limit)
}

func TestProcessReminders_RepositoryError(t *testing.T) {
	repo := &stubReminderRepo{dueErr: errors.New("connection refused")}
	uc := NewUseCase(repo, &stubNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
