package services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/evenderechit/evenderechit/internal/api/handlers"
	"github.com/evenderechit/evenderechit/internal/api/middleware"
	catalogService "github.com/evenderechit/evenderechit/internal/service/catalog"
	"github.com/evenderechit/evenderechit/internal/service/catalog/models"
)

const (
	msgUnauthorized    = "authentication required"
	msgInvalidID       = "invalid service ID"
	msgInvalidBody     = "invalid request body"
	msgServiceNotFound = "service not found"
)

// ServiceBody тело запроса на создание/обновление услуги
type ServiceBody struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Active          bool    `json:"active"`
	StaffIDs        []int64 `json:"staffIds,omitempty"`
}

// Handler обрабатывает управление услугами бизнеса
type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/services
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var body ServiceBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.CreateService(r.Context(), &models.CreateServiceRequest{
		BusinessID:      businessID,
		Name:            body.Name,
		Description:     body.Description,
		DurationMinutes: body.DurationMinutes,
		Price:           body.Price,
		Active:          body.Active,
		StaffIDs:        body.StaffIDs,
	})
	if err != nil {
		h.respondError(w, "POST /services", businessID, err)
		return
	}

	h.logger.Info("POST /services - Service created: business_id=%d, service_id=%d", businessID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleGet GET /api/v1/services/{serviceId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetService(r.Context(), businessID, id)
	if err != nil {
		h.respondError(w, "GET /services/{id}", businessID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleList GET /api/v1/services
// Query params: activeOnly (optional, true/false)
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	activeOnly := r.URL.Query().Get("activeOnly") == "true"

	result, err := h.service.ListServices(r.Context(), businessID, activeOnly)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/services/{serviceId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var body ServiceBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.UpdateService(r.Context(), &models.UpdateServiceRequest{
		BusinessID:      businessID,
		ID:              id,
		Name:            body.Name,
		Description:     body.Description,
		DurationMinutes: body.DurationMinutes,
		Price:           body.Price,
		Active:          body.Active,
		StaffIDs:        body.StaffIDs,
	})
	if err != nil {
		h.respondError(w, "PUT /services/{id}", businessID, err)
		return
	}

	h.logger.Info("PUT /services/{id} - Service updated: business_id=%d, service_id=%d", businessID, id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/services/{serviceId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteService(r.Context(), businessID, id); err != nil {
		h.respondError(w, "DELETE /services/{id}", businessID, err)
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deleted: business_id=%d, service_id=%d", businessID, id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// respondError маппит ошибки каталога на HTTP ответы
func (h *Handler) respondError(w http.ResponseWriter, route string, businessID int64, err error) {
	switch {
	case errors.Is(err, catalogService.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: business_id=%d", route, businessID)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, catalogService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: business_id=%d: %v", route, businessID, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Internal error: business_id=%d, error=%v", route, businessID, err)
		handlers.RespondInternalError(w)
	}
}
