package manage_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/evenderechit/evenderechit/internal/api/handlers"
	appointmentsService "github.com/evenderechit/evenderechit/internal/service/appointments"
)

const (
	msgMissingToken        = "manage token is required"
	msgAppointmentNotFound = "appointment not found"
	msgCannotCancel        = "appointment can no longer be cancelled"
	msgCannotConfirm       = "appointment cannot be confirmed"
)

// Handler обрабатывает самообслуживание клиента по токену из ссылки
type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCancel POST /api/v1/manage/{token}/cancel
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if token == "" {
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	result, err := h.service.CancelByManageToken(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("POST /manage/{token}/cancel - Appointment not found")
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrCannotCancel):
			h.logger.Warn("POST /manage/{token}/cancel - Appointment cannot be cancelled")
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("POST /manage/{token}/cancel - Failed to cancel appointment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /manage/{token}/cancel - Appointment cancelled: appointment_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleConfirm POST /api/v1/manage/{token}/confirm
func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if token == "" {
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	result, err := h.service.ConfirmByManageToken(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("POST /manage/{token}/confirm - Appointment not found")
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrInvalidStatus):
			h.logger.Warn("POST /manage/{token}/confirm - Appointment cannot be confirmed")
			handlers.RespondConflict(w, msgCannotConfirm)

		default:
			h.logger.Error("POST /manage/{token}/confirm - Failed to confirm appointment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /manage/{token}/confirm - Appointment confirmed: appointment_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
