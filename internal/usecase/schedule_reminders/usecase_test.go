package schedule_reminders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evenderechit/evenderechit/internal/domain"
	"github.com/evenderechit/evenderechit/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type stubReminderRepo struct {
	created []*domain.ScheduledReminder
	called  bool
}

func (s *stubReminderRepo) CreateBatch(ctx context.Context, reminders []*domain.ScheduledReminder) error {
	s.called = true
	s.created = reminders
	return nil
}

func newAppointment(date time.Time, start string) *domain.Appointment {
	return &domain.Appointment{
		ID:        42,
		Date:      date,
		StartTime: types.TimeString(start),
	}
}

func allRemindersSettings() *domain.BusinessSettings {
	return &domain.BusinessSettings{
		BusinessID:       1,
		RemindersEnabled: true,
		Reminder24h:      true,
		Reminder2h:       true,
		Reminder30m:      true,
	}
}

func TestSchedule_AllTypes(t *testing.T) {
	repo := &stubReminderRepo{}
	uc := NewUseCase(repo, nopLogger{})

	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	uc.timeProvider = &fixedTimeProvider{now: now}

	appt := newAppointment(time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), "14:00")

	err := uc.Schedule(context.Background(), appt, allRemindersSettings())

	require.NoError(t, err)
	require.Len(t, repo.created, 3)
	assert.Equal(t, domain.Reminder24Hours, repo.created[0].Type)
	assert.Equal(t, domain.Reminder2Hours, repo.created[1].Type)
	assert.Equal(t, domain.Reminder30Minutes, repo.created[2].Type)
	for _, r := range repo.created {
		assert.Equal(t, int64(42), r.AppointmentID)
		assert.Equal(t, domain.ReminderPending, r.Status)
	}

	// 24 часа до 2025-06-03 14:00
	assert.Equal(t, time.Date(2025, 6, 2, 14, 0, 0, 0, time.Local), repo.created[0].SendAt)
}

func TestSchedule_SkipsPastSendTimes(t *testing.T) {
	repo := &stubReminderRepo{}
	uc := NewUseCase(repo, nopLogger{})

	// Запись сегодня через час: только 30-минутное напоминание в будущем
	now := time.Date(2025, 6, 3, 13, 0, 0, 0, time.Local)
	uc.timeProvider = &fixedTimeProvider{now: now}

	appt := newAppointment(time.Date(2025, 6, 3, 0, 0, 0, 0, time.Local), "14:00")

	err := uc.Schedule(context.Background(), appt, allRemindersSettings())

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, domain.Reminder30Minutes, repo.created[0].Type)
}

func TestSchedule_RemindersDisabled(t *testing.T) {
	repo := &stubReminderRepo{}
	uc := NewUseCase(repo, nopLogger{})

	settings := allRemindersSettings()
	settings.RemindersEnabled = false

	appt := newAppointment(time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), "14:00")

	err := uc.Schedule(context.Background(), appt, settings)

	require.NoError(t, err)
	assert.False(t, repo.called)
}

func TestSchedule_SubsetOfTypes(t *testing.T) {
	repo := &stubReminderRepo{}
	uc := NewUseCase(repo, nopLogger{})

	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	uc.timeProvider = &fixedTimeProvider{now: now}

	settings := allRemindersSettings()
	settings.Reminder24h = false
	settings.Reminder30m = false

	appt := newAppointment(time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), "14:00")

	err := uc.Schedule(context.Background(), appt, settings)

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, domain.Reminder2Hours, repo.created[0].Type)
}
