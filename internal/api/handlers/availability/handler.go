package availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/evenderechit/evenderechit/internal/api/handlers"
	"github.com/evenderechit/evenderechit/internal/api/middleware"
	"github.com/evenderechit/evenderechit/internal/domain"
	availabilityService "github.com/evenderechit/evenderechit/internal/service/availability"
	"github.com/evenderechit/evenderechit/internal/service/availability/models"
)

const (
	msgUnauthorized        = "authentication required"
	msgInvalidID           = "invalid ID"
	msgInvalidBody         = "invalid request body"
	msgInvalidDate         = "invalid date format, expected YYYY-MM-DD"
	msgInvalidTimeRange    = "start time must be before end time"
	msgWindowNotFound      = "availability window not found"
	msgBlockedDateNotFound = "blocked date not found"
)

// Handler обрабатывает управление окнами доступности и блокировками дат
type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreateWindow POST /api/v1/availability/windows
func (h *Handler) HandleCreateWindow(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var body CreateWindowBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /availability/windows - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.CreateWindow(r.Context(), &models.CreateWindowRequest{
		BusinessID: businessID,
		StaffID:    body.StaffID,
		DayOfWeek:  body.DayOfWeek,
		StartTime:  body.StartTime,
		EndTime:    body.EndTime,
		Active:     body.Active,
	})
	if err != nil {
		h.respondWindowError(w, "POST /availability/windows", businessID, err)
		return
	}

	h.logger.Info("POST /availability/windows - Window created: business_id=%d, window_id=%d", businessID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleGetWindows GET /api/v1/availability/windows
func (h *Handler) HandleGetWindows(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetWindows(r.Context(), businessID)
	if err != nil {
		h.logger.Error("GET /availability/windows - Failed to get windows: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdateWindow PUT /api/v1/availability/windows/{windowId}
func (h *Handler) HandleUpdateWindow(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["windowId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var body UpdateWindowBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PUT /availability/windows/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.UpdateWindow(r.Context(), &models.UpdateWindowRequest{
		BusinessID: businessID,
		ID:         id,
		StaffID:    body.StaffID,
		DayOfWeek:  body.DayOfWeek,
		StartTime:  body.StartTime,
		EndTime:    body.EndTime,
		Active:     body.Active,
	})
	if err != nil {
		h.respondWindowError(w, "PUT /availability/windows/{id}", businessID, err)
		return
	}

	h.logger.Info("PUT /availability/windows/{id} - Window updated: business_id=%d, window_id=%d", businessID, id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDeleteWindow DELETE /api/v1/availability/windows/{windowId}
func (h *Handler) HandleDeleteWindow(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["windowId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteWindow(r.Context(), businessID, id); err != nil {
		h.respondWindowError(w, "DELETE /availability/windows/{id}", businessID, err)
		return
	}

	h.logger.Info("DELETE /availability/windows/{id} - Window deleted: business_id=%d, window_id=%d", businessID, id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleAddBlockedDate POST /api/v1/availability/blocked-dates
func (h *Handler) HandleAddBlockedDate(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var body AddBlockedDateBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /availability/blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, body.Date)
	if err != nil {
		h.logger.Warn("POST /availability/blocked-dates - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.AddBlockedDate(r.Context(), &models.AddBlockedDateRequest{
		BusinessID: businessID,
		StaffID:    body.StaffID,
		Date:       date,
		Reason:     body.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("POST /availability/blocked-dates - Invalid input: business_id=%d: %v", businessID, err)
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("POST /availability/blocked-dates - Failed to add blocked date: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/blocked-dates - Date blocked: business_id=%d, date=%s", businessID, body.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleGetBlockedDates GET /api/v1/availability/blocked-dates
// Query params: from (optional, YYYY-MM-DD, по умолчанию сегодня)
func (h *Handler) HandleGetBlockedDates(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	from := time.Now()
	if v := r.URL.Query().Get("from"); v != "" {
		parsed, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			h.logger.Warn("GET /availability/blocked-dates - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		from = parsed
	}

	result, err := h.service.GetBlockedDates(r.Context(), businessID, from)
	if err != nil {
		h.logger.Error("GET /availability/blocked-dates - Failed to get blocked dates: business_id=%d, error=%v",
			businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleRemoveBlockedDate DELETE /api/v1/availability/blocked-dates/{blockedDateId}
func (h *Handler) HandleRemoveBlockedDate(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["blockedDateId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.RemoveBlockedDate(r.Context(), businessID, id); err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrBlockedDateNotFound):
			h.logger.Warn("DELETE /availability/blocked-dates/{id} - Not found: business_id=%d, id=%d", businessID, id)
			handlers.RespondNotFound(w, msgBlockedDateNotFound)
		default:
			h.logger.Error("DELETE /availability/blocked-dates/{id} - Failed to remove: business_id=%d, id=%d, error=%v",
				businessID, id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /availability/blocked-dates/{id} - Blocked date removed: business_id=%d, id=%d", businessID, id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// respondWindowError маппит ошибки сервиса окон на HTTP ответы
func (h *Handler) respondWindowError(w http.ResponseWriter, route string, businessID int64, err error) {
	switch {
	case errors.Is(err, availabilityService.ErrWindowNotFound):
		h.logger.Warn("%s - Window not found: business_id=%d", route, businessID)
		handlers.RespondNotFound(w, msgWindowNotFound)

	case errors.Is(err, availabilityService.ErrInvalidTimeRange):
		h.logger.Warn("%s - Invalid time range: business_id=%d", route, businessID)
		handlers.RespondBadRequest(w, msgInvalidTimeRange)

	case errors.Is(err, availabilityService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: business_id=%d: %v", route, businessID, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Internal error: business_id=%d, error=%v", route, businessID, err)
		handlers.RespondInternalError(w)
	}
}
