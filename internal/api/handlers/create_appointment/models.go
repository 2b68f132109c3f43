package create_appointment

import (
	"time"

	"github.com/evenderechit/evenderechit/internal/domain"
	createAppointment "github.com/evenderechit/evenderechit/internal/usecase/create_appointment"
	"github.com/evenderechit/evenderechit/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceID     *int64  `json:"serviceId,omitempty"`
	StaffID       *int64  `json:"staffId,omitempty"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	Date          string  `json:"date"`      // "2025-10-15"
	StartTime     string  `json:"startTime"` // "10:00"
	Notes         *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            int64    `json:"id"`
	BusinessID    int64    `json:"businessId"`
	ServiceID     *int64   `json:"serviceId,omitempty"`
	StaffID       *int64   `json:"staffId,omitempty"`
	CustomerName  string   `json:"customerName"`
	CustomerPhone string   `json:"customerPhone"`
	CustomerEmail *string  `json:"customerEmail,omitempty"`
	Date          string   `json:"date"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	Status        string   `json:"status"`
	Notes         *string  `json:"notes,omitempty"`
	ServiceName   *string  `json:"serviceName,omitempty"`
	ServicePrice  *float64 `json:"servicePrice,omitempty"`
	ManageToken   string   `json:"manageToken"`
	CreatedAt     string   `json:"createdAt"`
}

// ToUseCaseRequest создает запрос use case из HTTP запроса
func (r *CreateAppointmentRequest) ToUseCaseRequest(businessID int64) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		BusinessID:    businessID,
		ServiceID:     r.ServiceID,
		StaffID:       r.StaffID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		Date:          date,
		StartTime:     types.TimeString(r.StartTime),
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            resp.ID,
		BusinessID:    resp.BusinessID,
		ServiceID:     resp.ServiceID,
		StaffID:       resp.StaffID,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		CustomerEmail: resp.CustomerEmail,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     string(resp.StartTime),
		EndTime:       string(resp.EndTime),
		Status:        resp.Status,
		Notes:         resp.Notes,
		ServiceName:   resp.ServiceName,
		ServicePrice:  resp.ServicePrice,
		ManageToken:   resp.ManageToken,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
