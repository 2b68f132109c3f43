package domain

import (
	"time"

	"github.com/evenderechit/evenderechit/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCanceled  AppointmentStatus = "canceled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment represents a booked appointment in the system
type Appointment struct {
	ID         int64
	BusinessID int64
	ServiceID  *int64
	StaffID    *int64 // nil = запись без привязки к конкретному сотруднику

	CustomerName  string
	CustomerPhone string
	CustomerEmail *string

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    AppointmentStatus
	Notes     *string

	// Denormalized data for history
	ServiceName  *string
	ServicePrice *float64

	// Token for customer self-service (cancel/confirm by link)
	ManageToken string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot returns true if the appointment blocks its time range
// for new bookings
func (a *Appointment) OccupiesSlot() bool {
	return a.Status != StatusCanceled
}

// IsCanceled returns true if the appointment has been canceled
func (a *Appointment) IsCanceled() bool {
	return a.Status == StatusCanceled
}

// CanBeCancelled returns true if the appointment can still be canceled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// CanBeUpdated returns true if the appointment can be modified
func (a *Appointment) CanBeUpdated() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// AppointmentsFilter фильтр для выборки записей бизнеса
type AppointmentsFilter struct {
	BusinessID int64 // Обязательный параметр
	StaffID    *int64
	ServiceID  *int64
	StartDate  *time.Time
	EndDate    *time.Time
	Statuses   []AppointmentStatus
	Limit      *int
	Offset     *int
}
