package appointments

import (
	"context"

	"github.com/evenderechit/evenderechit/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetByID(ctx context.Context, businessID, id int64) (*models.AppointmentResponse, error)
	List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error)
	UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error)
	UpdateNotes(ctx context.Context, req *models.UpdateNotesRequest) error
	Delete(ctx context.Context, businessID, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
