package create_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/evenderechit/evenderechit/internal/api/handlers"
	createAppointment "github.com/evenderechit/evenderechit/internal/usecase/create_appointment"
)

const (
	msgInvalidBusinessID = "invalid business ID"
	msgInvalidBody       = "invalid request body"
	msgInvalidDate       = "invalid date format, expected YYYY-MM-DD"
	msgBusinessNotFound  = "business not found"
	msgServiceNotFound   = "service not found"
	msgDateInPast        = "date is in the past"
	msgDateBlocked       = "date is not available for booking"
	msgSlotNotAvailable  = "selected time is not available"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/businesses/{businessId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/appointments - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(businessID)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/appointments - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /businesses/{id}/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createAppointment.ErrBusinessNotFound):
			h.logger.Warn("POST /businesses/{id}/appointments - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /businesses/{id}/appointments - Service not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrDateInPast):
			h.logger.Warn("POST /businesses/{id}/appointments - Date in past: business_id=%d, date=%s",
				businessID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createAppointment.ErrDateBlocked):
			h.logger.Warn("POST /businesses/{id}/appointments - Date blocked: business_id=%d, date=%s",
				businessID, req.Date)
			handlers.RespondConflict(w, msgDateBlocked)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /businesses/{id}/appointments - Slot not available: business_id=%d, date=%s, time=%s",
				businessID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /businesses/{id}/appointments - Failed to create appointment: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{id}/appointments - Appointment created: business_id=%d, appointment_id=%d",
		businessID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
