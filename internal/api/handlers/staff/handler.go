package staff

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
	msgUnauthorized  = "authentication required"
	msgInvalidID     = "invalid staff ID"
	msgInvalidBody   = "invalid request body"
	msgStaffNotFound = "staff member not found"
)

// StaffBody тело запроса на создание/обновление сотрудника
type StaffBody struct {
	Name   string  `json:"name"`
	Phone  *string `json:"phone,omitempty"`
	Email  *string `json:"email,omitempty"`
	Role   *string `json:"role,omitempty"`
	Active bool    `json:"active"`
}

// Handler обрабатывает управление сотрудниками бизнеса
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

// HandleCreate POST /api/v1/staff
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var body StaffBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.CreateStaff(r.Context(), &models.CreateStaffRequest{
		BusinessID: businessID,
		Name:       body.Name,
		Phone:      body.Phone,
		Email:      body.Email,
		Role:       body.Role,
		Active:     body.Active,
	})
	if err != nil {
		h.respondError(w, "POST /staff", businessID, err)
		return
	}

	h.logger.Info("POST /staff - Staff member created: business_id=%d, staff_id=%d", businessID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleGet GET /api/v1/staff/{staffId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["staffId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetStaff(r.Context(), businessID, id)
	if err != nil {
		h.respondError(w, "GET /staff/{id}", businessID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleList GET /api/v1/staff
// Query params: activeOnly (optional, true/false)
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	activeOnly := r.URL.Query().Get("activeOnly") == "true"

	result, err := h.service.ListStaff(r.Context(), businessID, activeOnly)
	if err != nil {
		h.logger.Error("GET /staff - Failed to list staff: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/staff/{staffId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["staffId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var body StaffBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PUT /staff/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.UpdateStaff(r.Context(), &models.UpdateStaffRequest{
		BusinessID: businessID,
		ID:         id,
		Name:       body.Name,
		Phone:      body.Phone,
		Email:      body.Email,
		Role:       body.Role,
		Active:     body.Active,
	})
	if err != nil {
		h.respondError(w, "PUT /staff/{id}", businessID, err)
		return
	}

	h.logger.Info("PUT /staff/{id} - Staff member updated: business_id=%d, staff_id=%d", businessID, id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/staff/{staffId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["staffId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteStaff(r.Context(), businessID, id); err != nil {
		h.respondError(w, "DELETE /staff/{id}", businessID, err)
		return
	}

	h.logger.Info("DELETE /staff/{id} - Staff member deleted: business_id=%d, staff_id=%d", businessID, id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// respondError маппит ошибки каталога на HTTP ответы
func (h *Handler) respondError(w http.ResponseWriter, route string, businessID int64, err error) {
	switch {
	case errors.Is(err, catalogService.ErrStaffNotFound):
		h.logger.Warn("%s - Staff member not found: business_id=%d", route, businessID)
		handlers.RespondNotFound(w, msgStaffNotFound)

	case errors.Is(err, catalogService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: business_id=%d: %v", route, businessID, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Internal error: business_id=%d, error=%v", route, businessID, err)
		handlers.RespondInternalError(w)
	}
}
