package get_available_slots

import (
	"fmt"

	"github.com/evenderechit/evenderechit/internal/domain"
	"github.com/evenderechit/evenderechit/pkg/types"
)

// busyInterval занятый интервал в минутах от полуночи
type busyInterval struct {
	start int
	end   int
}

// computeAvailableSlots вычисляет доступные времена начала записи на день.
//
// Для каждого окна доступности кандидаты перебираются от начала окна с шагом
// stepMinutes. Кандидат попадает в результат, если запись длительностью
// durationMinutes целиком помещается в окно и не пересекается ни с одной
// занимающей слот записью.
//
// Пересечение проверяется строго: записи, граничащие с кандидатом
// (конец одной равен началу другой), пересечением не считаются.
//
// Результаты окон конкатенируются в порядке окон, без дедупликации:
// перекрывающиеся окна дают повторяющиеся времена.
func computeAvailableSlots(
	windows []*domain.AvailabilityWindow,
	appointments []*domain.Appointment,
	durationMinutes int,
	stepMinutes int,
	blocked bool,
) ([]types.TimeString, error) {
	if blocked {
		return []types.TimeString{}, nil
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %d", durationMinutes)
	}
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("step must be positive, got %d", stepMinutes)
	}

	busy, err := collectBusyIntervals(appointments)
	if err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0)

	for _, window := range windows {
		startM, err := window.StartTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("window %d start time: %w", window.ID, err)
		}
		endM, err := window.EndTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("window %d end time: %w", window.ID, err)
		}

		for cand := startM; cand < endM; cand += stepMinutes {
			// Запись должна целиком помещаться в окно
			if cand+durationMinutes > endM {
				continue
			}
			if overlapsAny(cand, cand+durationMinutes, busy) {
				continue
			}
			slots = append(slots, types.FromMinutes(cand))
		}
	}

	return slots, nil
}

// collectBusyIntervals собирает интервалы занимающих слот записей
func collectBusyIntervals(appointments []*domain.Appointment) ([]busyInterval, error) {
	busy := make([]busyInterval, 0, len(appointments))

	for _, appt := range appointments {
		if !appt.OccupiesSlot() {
			continue
		}

		start, err := appt.StartTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("appointment %d start time: %w", appt.ID, err)
		}
		end, err := appt.EndTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("appointment %d end time: %w", appt.ID, err)
		}

		busy = append(busy, busyInterval{start: start, end: end})
	}

	return busy, nil
}

// overlapsAny проверяет пересечение кандидата с занятыми интервалами
// Интервалы пересекаются, только если начало одного СТРОГО раньше конца другого
// с обеих сторон: граничные случаи пересечением не считаются
func overlapsAny(candStart, candEnd int, busy []busyInterval) bool {
	for _, b := range busy {
		if candStart < b.end && candEnd > b.start {
			return true
		}
	}
	return false
}
