package models

import (
	"errors"
	"time"

	"github.com/evenderechit/evenderechit/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// ListAppointmentsRequest запрос на получение записей бизнеса
type ListAppointmentsRequest struct {
	BusinessID int64      `json:"businessId"`
	StaffID    *int64     `json:"staffId,omitempty"`
	ServiceID  *int64     `json:"serviceId,omitempty"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	Status     *string    `json:"status,omitempty"`
	Limit      *int       `json:"limit,omitempty"`
	Offset     *int       `json:"offset,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		BusinessID: r.BusinessID,
		StaffID:    r.StaffID,
		ServiceID:  r.ServiceID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Limit:      r.Limit,
		Offset:     r.Offset,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Statuses = []domain.AppointmentStatus{status}
	}

	return filter, nil
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	BusinessID int64  `json:"businessId"`
	ID         int64  `json:"id"`
	Status     string `json:"status"`
}

// UpdateNotesRequest запрос на обновление заметок записи
type UpdateNotesRequest struct {
	BusinessID int64   `json:"businessId"`
	ID         int64   `json:"id"`
	Notes      *string `json:"notes"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID            int64    `json:"id"`
	BusinessID    int64    `json:"businessId"`
	ServiceID     *int64   `json:"serviceId,omitempty"`
	StaffID       *int64   `json:"staffId,omitempty"`
	CustomerName  string   `json:"customerName"`
	CustomerPhone string   `json:"customerPhone"`
	CustomerEmail *string  `json:"customerEmail,omitempty"`
	Date          string   `json:"date"`      // "2025-10-15"
	StartTime     string   `json:"startTime"` // "10:00"
	EndTime       string   `json:"endTime"`   // "11:00"
	Status        string   `json:"status"`
	Notes         *string  `json:"notes,omitempty"`
	ServiceName   *string  `json:"serviceName,omitempty"`
	ServicePrice  *float64 `json:"servicePrice,omitempty"`
	CreatedAt     string   `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            a.ID,
		BusinessID:    a.BusinessID,
		ServiceID:     a.ServiceID,
		StaffID:       a.StaffID,
		CustomerName:  a.CustomerName,
		CustomerPhone: a.CustomerPhone,
		CustomerEmail: a.CustomerEmail,
		Date:          a.Date.Format(domain.DateFormat),
		StartTime:     string(a.StartTime),
		EndTime:       string(a.EndTime),
		Status:        string(a.Status),
		Notes:         a.Notes,
		ServiceName:   a.ServiceName,
		ServicePrice:  a.ServicePrice,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainAppointments конвертирует список domain моделей в response
func FromDomainAppointments(appointments []*domain.Appointment) *AppointmentListResponse {
	result := make([]*AppointmentResponse, len(appointments))
	for i, a := range appointments {
		result[i] = FromDomainAppointment(a)
	}
	return &AppointmentListResponse{
		Appointments: result,
		Total:        len(result),
	}
}

// ToDomainStatus конвертирует строку в domain статус
func ToDomainStatus(s string) (domain.AppointmentStatus, error) {
	switch domain.AppointmentStatus(s) {
	case domain.StatusScheduled, domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCanceled, domain.StatusNoShow:
		return domain.AppointmentStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
