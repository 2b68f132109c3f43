package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evenderechit/evenderechit/internal/domain"
	serviceRepo "github.com/evenderechit/evenderechit/internal/infra/storage/service"
	settingsRepo "github.com/evenderechit/evenderechit/internal/infra/storage/settings"
	"github.com/evenderechit/evenderechit/pkg/ptr"
	"github.com/evenderechit/evenderechit/pkg/types"
)

type stubAvailabilityRepo struct {
	windows []*domain.AvailabilityWindow
	blocked bool
	err     error

	gotStaffID *int64
	gotDay     int
}

func (s *stubAvailabilityRepo) GetActiveWindowsForDay(_ context.Context, _ int64, staffID *int64, dayOfWeek int) ([]*domain.AvailabilityWindow, error) {
	s.gotStaffID = staffID
	s.gotDay = dayOfWeek
	return s.windows, s.err
}

func (s *stubAvailabilityRepo) IsDateBlocked(_ context.Context, _ int64, _ *int64, _ time.Time) (bool, error) {
	return s.blocked, nil
}

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
	called       bool
}

func (s *stubAppointmentRepo) GetForDateAndStaffScope(_ context.Context, _ int64, _ *int64, _ time.Time) ([]*domain.Appointment, error) {
	s.called = true
	return s.appointments, nil
}

type stubServiceRepo struct {
	service *domain.Service
	err     error
}

func (s *stubServiceRepo) GetByID(_ context.Context, _, _ int64) (*domain.Service, error) {
	return s.service, s.err
}

type stubSettingsRepo struct {
	settings *domain.BusinessSettings
	err      error
}

func (s *stubSettingsRepo) GetByBusinessID(_ context.Context, _ int64) (*domain.BusinessSettings, error) {
	return s.settings, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(av *stubAvailabilityRepo, ap *stubAppointmentRepo, sv *stubServiceRepo, st *stubSettingsRepo) *UseCase {
	if sv == nil {
		sv = &stubServiceRepo{}
	}
	if st == nil {
		st = &stubSettingsRepo{settings: &domain.BusinessSettings{BusinessID: 1, BufferMinutes: 15}}
	}
	return NewUseCase(av, ap, sv, st, nopLogger{})
}

// Понедельник
var testDate = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func TestUseCase_Execute_DefaultDuration(t *testing.T) {
	av := &stubAvailabilityRepo{windows: []*domain.AvailabilityWindow{window(1, "09:00", "12:00")}}
	ap := &stubAppointmentRepo{}

	uc := newTestUseCase(av, ap, nil, nil)
	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 1, Date: testDate})
	require.NoError(t, err)

	// Без услуги длительность по умолчанию 60 минут
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, types.TimeString("11:00"), resp.Slots[len(resp.Slots)-1])
	assert.Equal(t, 1, av.gotDay) // понедельник
}

func TestUseCase_Execute_ServiceDuration(t *testing.T) {
	av := &stubAvailabilityRepo{windows: []*domain.AvailabilityWindow{window(1, "09:00", "10:00")}}
	sv := &stubServiceRepo{service: &domain.Service{ID: 7, DurationMinutes: 30}}

	uc := newTestUseCase(av, &stubAppointmentRepo{}, sv, nil)
	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 1, ServiceID: ptr.Ptr(int64(7)), Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, []types.TimeString{"09:00", "09:15", "09:30"}, resp.Slots)
}

func TestUseCase_Execute_ServiceNotFound(t *testing.T) {
	av := &stubAvailabilityRepo{windows: []*domain.AvailabilityWindow{window(1, "09:00", "10:00")}}
	sv := &stubServiceRepo{err: serviceRepo.ErrServiceNotFound}

	uc := newTestUseCase(av, &stubAppointmentRepo{}, sv, nil)
	_, err := uc.Execute(context.Background(), &Request{BusinessID: 1, ServiceID: ptr.Ptr(int64(99)), Date: testDate})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_BusinessNotFound(t *testing.T) {
	av := &stubAvailabilityRepo{windows: []*domain.AvailabilityWindow{window(1, "09:00", "10:00")}}
	st := &stubSettingsRepo{err: settingsRepo.ErrSettingsNotFound}

	uc := newTestUseCase(av, &stubAppointmentRepo{}, nil, st)
	_, err := uc.Execute(context.Background(), &Request{BusinessID: 42, Date: testDate})
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestUseCase_Execute_NoWindows(t *testing.T) {
	av := &stubAvailabilityRepo{}
	ap := &stubAppointmentRepo{}

	uc := newTestUseCase(av, ap, nil, nil)
	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 1, Date: testDate})
	require.NoError(t, err)

	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
	assert.False(t, ap.called)
}

func TestUseCase_Execute_BlockedDateSkipsAppointments(t *testing.T) {
	av := &stubAvailabilityRepo{
		windows: []*domain.AvailabilityWindow{window(1, "09:00", "12:00")},
		blocked: true,
	}
	ap := &stubAppointmentRepo{}

	uc := newTestUseCase(av, ap, nil, nil)
	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 1, Date: testDate})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	// При заблокированной дате записи не загружаются
	assert.False(t, ap.called)
}

func TestUseCase_Execute_StaffScopePassedToRepo(t *testing.T) {
	av := &stubAvailabilityRepo{windows: []*domain.AvailabilityWindow{window(1, "09:00", "12:00")}}

	uc := newTestUseCase(av, &stubAppointmentRepo{}, nil, nil)
	staffID := ptr.Ptr(int64(5))
	_, err := uc.Execute(context.Background(), &Request{BusinessID: 1, StaffID: staffID, Date: testDate})
	require.NoError(t, err)

	require.NotNil(t, av.gotStaffID)
	assert.Equal(t, int64(5), *av.gotStaffID)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := newTestUseCase(&stubAvailabilityRepo{}, &stubAppointmentRepo{}, nil, nil)

	_, err := uc.Execute(context.Background(), &Request{BusinessID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BusinessID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BusinessID: 1, StaffID: ptr.Ptr(int64(-1)), Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
