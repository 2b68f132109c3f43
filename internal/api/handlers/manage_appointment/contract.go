package manage_appointment

import (
	"context"

	"github.com/evenderechit/evenderechit/internal/service/appointments/models"
)

type AppointmentsService interface {
	CancelByManageToken(ctx context.Context, token string) (*models.AppointmentResponse, error)
	ConfirmByManageToken(ctx context.Context, token string) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
