package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evenderechit/evenderechit/internal/domain"
	"github.com/evenderechit/evenderechit/pkg/types"
)

func window(id int64, start, end string) *domain.AvailabilityWindow {
	return &domain.AvailabilityWindow{
		ID:        id,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Active:    true,
	}
}

func appointment(start, end string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Status:    status,
	}
}

func slotTimes(slots []types.TimeString) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = string(s)
	}
	return out
}

func TestComputeAvailableSlots_EmptyDay(t *testing.T) {
	windows := []*domain.AvailabilityWindow{window(1, "09:00", "12:00")}

	slots, err := computeAvailableSlots(windows, nil, 30, 15, false)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"09:00", "09:15", "09:30", "09:45",
		"10:00", "10:15", "10:30", "10:45",
		"11:00", "11:15", "11:30",
	}, slotTimes(slots))
}

func TestComputeAvailableSlots_ExistingAppointment(t *testing.T) {
	windows := []*domain.AvailabilityWindow{window(1, "09:00", "12:00")}
	appointments := []*domain.Appointment{
		appointment("10:00", "10:30", domain.StatusScheduled),
	}

	slots, err := computeAvailableSlots(windows, appointments, 30, 15, false)
	require.NoError(t, err)

	times := slotTimes(slots)
	// 09:45 и 10:00 и 10:15 пересекаются с записью 10:00-10:30
	assert.NotContains(t, times, "09:45")
	assert.NotContains(t, times, "10:00")
	assert.NotContains(t, times, "10:15")
	// 09:30-10:00 граничит с записью, но не пересекается
	assert.Contains(t, times, "09:30")
	// 10:30 начинается ровно на конце записи
	assert.Contains(t, times, "10:30")
}

func TestComputeAvailableSlots_BlockedDate(t *testing.T) {
	windows := []*domain.AvailabilityWindow{window(1, "09:00", "12:00")}

	slots, err := computeAvailableSlots(windows, nil, 30, 15, true)
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestComputeAvailableSlots_TwoWindows(t *testing.T) {
	windows := []*domain.AvailabilityWindow{
		window(1, "09:00", "11:00"),
		window(2, "14:00", "17:00"),
	}

	slots, err := computeAvailableSlots(windows, nil, 60, 15, false)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"09:00", "09:15", "09:30", "09:45", "10:00",
		"14:00", "14:15", "14:30", "14:45",
		"15:00", "15:15", "15:30", "15:45", "16:00",
	}, slotTimes(slots))
}

func TestComputeAvailableSlots_NoWindows(t *testing.T) {
	slots, err := computeAvailableSlots(nil, nil, 30, 15, false)
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestComputeAvailableSlots_CanceledAppointmentFreesSlot(t *testing.T) {
	windows := []*domain.AvailabilityWindow{window(1, "09:00", "12:00")}
	appointments := []*domain.Appointment{
		appointment("10:00", "10:30", domain.StatusCanceled),
	}

	slots, err := computeAvailableSlots(windows, appointments, 30, 15, false)
	require.NoError(t, err)
	assert.Contains(t, slotTimes(slots), "10:00")
}

func TestComputeAvailableSlots_NoShowStillOccupies(t *testing.T) {
	windows := []*domain.AvailabilityWindow{window(1, "09:00", "12:00")}
	appointments := []*domain.Appointment{
		appointment("10:00", "10:30", domain.StatusNoShow),
	}

	slots, err := computeAvailableSlots(windows, appointments, 30, 15, false)
	require.NoError(t, err)
	assert.NotContains(t, slotTimes(slots), "10:00")
}

func TestComputeAvailableSlots_DurationExceedsWindow(t *testing.T) {
	windows := []*domain.AvailabilityWindow{window(1, "09:00", "09:30")}

	slots, err := computeAvailableSlots(windows, nil, 60, 15, false)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_OverlappingWindowsNotDeduplicated(t *testing.T) {
	windows := []*domain.AvailabilityWindow{
		window(1, "09:00", "10:00"),
		window(2, "09:00", "10:00"),
	}

	slots, err := computeAvailableSlots(windows, nil, 30, 15, false)
	require.NoError(t, err)

	// Одинаковые окна дают повторяющиеся времена в порядке окон
	assert.Equal(t, []string{
		"09:00", "09:15", "09:30",
		"09:00", "09:15", "09:30",
	}, slotTimes(slots))
}

func TestComputeAvailableSlots_AppointmentSpanningWholeWindow(t *testing.T) {
	windows := []*domain.AvailabilityWindow{window(1, "09:00", "12:00")}
	appointments := []*domain.Appointment{
		appointment("08:00", "13:00", domain.StatusConfirmed),
	}

	slots, err := computeAvailableSlots(windows, appointments, 30, 15, false)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_InvalidInput(t *testing.T) {
	windows := []*domain.AvailabilityWindow{window(1, "09:00", "12:00")}

	_, err := computeAvailableSlots(windows, nil, 0, 15, false)
	require.Error(t, err)

	_, err = computeAvailableSlots(windows, nil, 30, 0, false)
	require.Error(t, err)

	_, err = computeAvailableSlots([]*domain.AvailabilityWindow{window(1, "9:00", "12:00")}, nil, 30, 15, false)
	require.Error(t, err)

	appointments := []*domain.Appointment{appointment("bad", "10:30", domain.StatusScheduled)}
	_, err = computeAvailableSlots(windows, appointments, 30, 15, false)
	require.Error(t, err)
}

func TestComputeAvailableSlots_SlotsAreOrderedWithinWindow(t *testing.T) {
	windows := []*domain.AvailabilityWindow{window(1, "09:00", "18:00")}
	appointments := []*domain.Appointment{
		appointment("11:00", "12:00", domain.StatusScheduled),
		appointment("15:30", "16:30", domain.StatusConfirmed),
	}

	slots, err := computeAvailableSlots(windows, appointments, 45, 15, false)
	require.NoError(t, err)

	for i := 1; i < len(slots); i++ {
		prev, err := slots[i-1].Minutes()
		require.NoError(t, err)
		cur, err := slots[i].Minutes()
		require.NoError(t, err)
		assert.Greater(t, cur, prev)
	}
}
