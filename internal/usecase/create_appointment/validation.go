package create_appointment

import (
	"fmt"
	"time"

	"github.com/evenderechit/evenderechit/internal/domain"
)

// validateRequest проверяет входные данные запроса
func validateRequest(req *Request) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessId must be positive", ErrInvalidInput)
	}
	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}
	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}
	if req.CustomerPhone == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := req.StartTime.Minutes(); err != nil {
		return fmt.Errorf("%w: startTime must be in HH:MM format", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}

// validateDate проверяет, что дата записи не в прошлом
func validateDate(date, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	requested := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	if requested.Before(today) {
		return ErrDateInPast
	}
	return nil
}

// fitsWindows проверяет, что время начала выровнено по сетке слотов окна
// и запись целиком помещается хотя бы в одно окно
func fitsWindows(startM, durationMinutes, stepMinutes int, windows []*domain.AvailabilityWindow) (bool, error) {
	for _, window := range windows {
		winStart, err := window.StartTime.Minutes()
		if err != nil {
			return false, fmt.Errorf("window %d start time: %w", window.ID, err)
		}
		winEnd, err := window.EndTime.Minutes()
		if err != nil {
			return false, fmt.Errorf("window %d end time: %w", window.ID, err)
		}

		if startM < winStart || startM+durationMinutes > winEnd {
			continue
		}
		if (startM-winStart)%stepMinutes != 0 {
			continue
		}
		return true, nil
	}
	return false, nil
}

// hasConflict проверяет пересечение с занимающими слот записями
// Граничащие записи (конец одной равен началу другой) конфликтом не считаются
func hasConflict(startM, endM int, appointments []*domain.Appointment) (bool, error) {
	for _, appt := range appointments {
		if !appt.OccupiesSlot() {
			continue
		}

		apptStart, err := appt.StartTime.Minutes()
		if err != nil {
			return false, fmt.Errorf("appointment %d start time: %w", appt.ID, err)
		}
		apptEnd, err := appt.EndTime.Minutes()
		if err != nil {
			return false, fmt.Errorf("appointment %d end time: %w", appt.ID, err)
		}

		if startM < apptEnd && endM > apptStart {
			return true, nil
		}
	}
	return false, nil
}
