package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evenderechit/evenderechit/internal/domain"
	whatsappModels "github.com/evenderechit/evenderechit/internal/service/whatsapp/models"
	"github.com/evenderechit/evenderechit/pkg/ptr"
	"github.com/evenderechit/evenderechit/pkg/types"
)

// Понедельник
var testDate = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
	created      *domain.Appointment
	nextID       int64
}

func (s *stubAppointmentRepo) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	out := *a
	out.ID = s.nextID
	s.created = &out
	return &out, nil
}

func (s *stubAppointmentRepo) GetForDateAndStaffScope(ctx context.Context, businessID int64, staffID *int64, date time.Time) ([]*domain.Appointment, error) {
	return s.appointments, nil
}

type stubAvailabilityRepo struct {
	windows []*domain.AvailabilityWindow
	blocked bool
}

func (s *stubAvailabilityRepo) GetActiveWindowsForDay(ctx context.Context, businessID int64, staffID *int64, dayOfWeek int) ([]*domain.AvailabilityWindow, error) {
	return s.windows, nil
}

func (s *stubAvailabilityRepo) IsDateBlocked(ctx context.Context, businessID int64, staffID *int64, date time.Time) (bool, error) {
	return s.blocked, nil
}

type stubServiceRepo struct {
	service *domain.Service
	err     error
}

func (s *stubServiceRepo) GetByID(ctx context.Context, businessID, serviceID int64) (*domain.Service, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.service, nil
}

type stubSettingsRepo struct {
	settings *domain.BusinessSettings
	err      error
}

func (s *stubSettingsRepo) GetByBusinessID(ctx context.Context, businessID int64) (*domain.BusinessSettings, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.settings, nil
}

type stubScheduler struct {
	scheduled *domain.Appointment
}

func (s *stubScheduler) Schedule(ctx context.Context, a *domain.Appointment, settings *domain.BusinessSettings) error {
	s.scheduled = a
	return nil
}

type stubNotifier struct {
	sentPhone string
	sentType  domain.TemplateType
	sentVars  map[string]string
}

func (s *stubNotifier) SendTemplated(
	ctx context.Context,
	settings *domain.BusinessSettings,
	appointmentID *int64,
	phone string,
	tplType domain.TemplateType,
	vars map[string]string,
) (*whatsappModels.SendMessageResponse, error) {
	s.sentPhone = phone
	s.sentType = tplType
	s.sentVars = vars
	return &whatsappModels.SendMessageResponse{Status: string(domain.MessageSent)}, nil
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type testEnv struct {
	uc           *UseCase
	appointments *stubAppointmentRepo
	availability *stubAvailabilityRepo
	settings     *domain.BusinessSettings
	scheduler    *stubScheduler
	notifier     *stubNotifier
}

func newTestEnv() *testEnv {
	env := &testEnv{
		appointments: &stubAppointmentRepo{nextID: 101},
		availability: &stubAvailabilityRepo{
			windows: []*domain.AvailabilityWindow{
				{ID: 1, BusinessID: 1, DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", Active: true},
			},
		},
		settings: &domain.BusinessSettings{
			BusinessID:              1,
			BusinessName:            "Dana's",
			WhatsappEnabled:         true,
			AutoConfirmationEnabled: true,
		},
		scheduler: &stubScheduler{},
		notifier:  &stubNotifier{},
	}

	env.uc = NewUseCase(
		env.appointments,
		env.availability,
		&stubServiceRepo{service: &domain.Service{ID: 5, Name: "Haircut", DurationMinutes: 30, Price: 120}},
		&stubSettingsRepo{settings: env.settings},
		env.scheduler,
		env.notifier,
		stubTxManager{},
		"https://book.example.com",
		nopLogger{},
	)
	env.uc.timeProvider = &fixedTimeProvider{now: testDate.Add(-24 * time.Hour)}
	return env
}

func validRequest() *Request {
	return &Request{
		BusinessID:    1,
		ServiceID:     ptr.Ptr(int64(5)),
		CustomerName:  "Dana",
		CustomerPhone: "0501234567",
		Date:          testDate,
		StartTime:     "10:00",
	}
}

func TestCreateAppointment_Success(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("10:30"), resp.EndTime)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.NotEmpty(t, resp.ManageToken)
	require.NotNil(t, resp.ServiceName)
	assert.Equal(t, "Haircut", *resp.ServiceName)
}

func TestCreateAppointment_SendsConfirmation(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "0501234567", env.notifier.sentPhone)
	assert.Equal(t, domain.TemplateConfirmation, env.notifier.sentType)
	assert.Contains(t, env.notifier.sentVars["manageLink"], "https://book.example.com/manage/")
}

func TestCreateAppointment_AutoConfirmationDisabled(t *testing.T) {
	env := newTestEnv()
	env.settings.AutoConfirmationEnabled = false

	_, err := env.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Empty(t, env.notifier.sentPhone)
}

func TestCreateAppointment_WhatsappDisabled(t *testing.T) {
	env := newTestEnv()
	env.settings.WhatsappEnabled = false

	_, err := env.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Empty(t, env.notifier.sentPhone)
}

func TestCreateAppointment_SchedulesReminders(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, env.scheduler.scheduled)
	assert.Equal(t, resp.ID, env.scheduler.scheduled.ID)
}

func TestCreateAppointment_ConflictingAppointment(t *testing.T) {
	env := newTestEnv()
	env.appointments.appointments = []*domain.Appointment{
		{ID: 7, StartTime: "10:00", EndTime: "10:30", Status: domain.StatusConfirmed},
	}

	_, err := env.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, env.appointments.created)
}

func TestCreateAppointment_TouchingAppointmentAllowed(t *testing.T) {
	env := newTestEnv()
	env.appointments.appointments = []*domain.Appointment{
		{ID: 7, StartTime: "09:30", EndTime: "10:00", Status: domain.StatusConfirmed},
		{ID: 8, StartTime: "10:30", EndTime: "11:00", Status: domain.StatusConfirmed},
	}

	_, err := env.uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
}

func TestCreateAppointment_CanceledAppointmentIgnored(t *testing.T) {
	env := newTestEnv()
	env.appointments.appointments = []*domain.Appointment{
		{ID: 7, StartTime: "10:00", EndTime: "10:30", Status: domain.StatusCanceled},
	}

	_, err := env.uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
}

func TestCreateAppointment_BlockedDate(t *testing.T) {
	env := newTestEnv()
	env.availability.blocked = true

	_, err := env.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDateBlocked)
}

func TestCreateAppointment_OutsideWindow(t *testing.T) {
	env := newTestEnv()

	req := validRequest()
	req.StartTime = "18:00"

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestCreateAppointment_NotFittingWindowEnd(t *testing.T) {
	env := newTestEnv()

	// Окно кончается в 17:00, услуга 30 минут
	req := validRequest()
	req.StartTime = "16:45"

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestCreateAppointment_UnalignedStartTime(t *testing.T) {
	env := newTestEnv()

	req := validRequest()
	req.StartTime = "10:10"

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestCreateAppointment_DateInPast(t *testing.T) {
	env := newTestEnv()
	env.uc.timeProvider = &fixedTimeProvider{now: testDate.Add(48 * time.Hour)}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestCreateAppointment_Validation(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"missing customer name", func(r *Request) { r.CustomerName = "" }},
		{"missing phone", func(r *Request) { r.CustomerPhone = "" }},
		{"bad start time", func(r *Request) { r.StartTime = "9:00" }},
		{"non-positive business", func(r *Request) { r.BusinessID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
