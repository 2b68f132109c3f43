package appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/evenderechit/evenderechit/internal/api/handlers"
	"github.com/evenderechit/evenderechit/internal/api/middleware"
	appointmentsService "github.com/evenderechit/evenderechit/internal/service/appointments"
	"github.com/evenderechit/evenderechit/internal/service/appointments/models"
)

const (
	msgUnauthorized        = "authentication required"
	msgInvalidID           = "invalid appointment ID"
	msgInvalidQuery        = "invalid query parameters"
	msgInvalidBody         = "invalid request body"
	msgInvalidStatus       = "invalid appointment status"
	msgAppointmentNotFound = "appointment not found"
	msgCannotCancel        = "appointment can no longer be cancelled"
)

// Handler обрабатывает операции владельца над записями
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

// HandleList GET /api/v1/appointments
// Query params: staffId, serviceId, startDate, endDate, status, limit, offset
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	req, err := ToListRequest(businessID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid query parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidStatus):
			h.logger.Warn("GET /appointments - Invalid status filter: business_id=%d", businessID)
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			h.logger.Error("GET /appointments - Failed to list appointments: business_id=%d, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments listed: business_id=%d, count=%d", businessID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/appointments/{appointmentId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetByID(r.Context(), businessID, id)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{id} - Appointment not found: business_id=%d, appointment_id=%d",
				businessID, id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)
		default:
			h.logger.Error("GET /appointments/{id} - Failed to get appointment: business_id=%d, appointment_id=%d, error=%v",
				businessID, id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdateStatus PATCH /api/v1/appointments/{appointmentId}/status
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var body UpdateStatusBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), &models.UpdateStatusRequest{
		BusinessID: businessID,
		ID:         id,
		Status:     body.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Appointment not found: business_id=%d, appointment_id=%d",
				businessID, id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrInvalidStatus):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid status %q: business_id=%d, appointment_id=%d",
				body.Status, businessID, id)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointmentsService.ErrCannotCancel):
			h.logger.Warn("PATCH /appointments/{id}/status - Cannot cancel: business_id=%d, appointment_id=%d",
				businessID, id)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /appointments/{id}/status - Failed to update status: business_id=%d, appointment_id=%d, error=%v",
				businessID, id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - Status updated: business_id=%d, appointment_id=%d, status=%s",
		businessID, id, body.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdateNotes PATCH /api/v1/appointments/{appointmentId}/notes
func (h *Handler) HandleUpdateNotes(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var body UpdateNotesBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/notes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	err = h.service.UpdateNotes(r.Context(), &models.UpdateNotesRequest{
		BusinessID: businessID,
		ID:         id,
		Notes:      body.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/notes - Appointment not found: business_id=%d, appointment_id=%d",
				businessID, id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/notes - Invalid input: business_id=%d, appointment_id=%d",
				businessID, id)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /appointments/{id}/notes - Failed to update notes: business_id=%d, appointment_id=%d, error=%v",
				businessID, id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/notes - Notes updated: business_id=%d, appointment_id=%d", businessID, id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleDelete DELETE /api/v1/appointments/{appointmentId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), businessID, id); err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{id} - Appointment not found: business_id=%d, appointment_id=%d",
				businessID, id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)
		default:
			h.logger.Error("DELETE /appointments/{id} - Failed to delete appointment: business_id=%d, appointment_id=%d, error=%v",
				businessID, id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment deleted: business_id=%d, appointment_id=%d", businessID, id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
