package messaging

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/evenderechit/evenderechit/internal/api/handlers"
	"github.com/evenderechit/evenderechit/internal/api/middleware"
	whatsappService "github.com/evenderechit/evenderechit/internal/service/whatsapp"
	"github.com/evenderechit/evenderechit/internal/service/whatsapp/models"
)

const (
	msgUnauthorized       = "authentication required"
	msgInvalidBody        = "invalid request body"
	msgInvalidTemplateTyp = "invalid template type, expected confirmation, reminder or cancellation"
	msgInvalidQuery       = "invalid query parameters"
)

// UpsertTemplateBody тело запроса на сохранение шаблона
type UpsertTemplateBody struct {
	Type   string `json:"type"`
	Body   string `json:"body"`
	Active bool   `json:"active"`
}

// SendMessageBody тело запроса на отправку сообщения
type SendMessageBody struct {
	AppointmentID *int64 `json:"appointmentId,omitempty"`
	Phone         string `json:"phone"`
	Body          string `json:"body"`
}

// Handler обрабатывает шаблоны и журнал WhatsApp сообщений
type Handler struct {
	service WhatsappService
	logger  Logger
}

func NewHandler(service WhatsappService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleUpsertTemplate PUT /api/v1/whatsapp/templates
func (h *Handler) HandleUpsertTemplate(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var body UpsertTemplateBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PUT /whatsapp/templates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.UpsertTemplate(r.Context(), &models.UpsertTemplateRequest{
		BusinessID: businessID,
		Type:       body.Type,
		Body:       body.Body,
		Active:     body.Active,
	})
	if err != nil {
		switch {
		case errors.Is(err, whatsappService.ErrInvalidTemplateType):
			h.logger.Warn("PUT /whatsapp/templates - Invalid template type %q: business_id=%d", body.Type, businessID)
			handlers.RespondBadRequest(w, msgInvalidTemplateTyp)

		case errors.Is(err, whatsappService.ErrInvalidInput):
			h.logger.Warn("PUT /whatsapp/templates - Invalid input: business_id=%d: %v", businessID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /whatsapp/templates - Failed to upsert template: business_id=%d, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /whatsapp/templates - Template saved: business_id=%d, type=%s", businessID, body.Type)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleListTemplates GET /api/v1/whatsapp/templates
func (h *Handler) HandleListTemplates(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.ListTemplates(r.Context(), businessID)
	if err != nil {
		h.logger.Error("GET /whatsapp/templates - Failed to list templates: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleSend POST /api/v1/whatsapp/messages
func (h *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var body SendMessageBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /whatsapp/messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Send(r.Context(), &models.SendMessageRequest{
		BusinessID:    businessID,
		AppointmentID: body.AppointmentID,
		Phone:         body.Phone,
		Body:          body.Body,
	})
	if err != nil {
		switch {
		case errors.Is(err, whatsappService.ErrInvalidInput):
			h.logger.Warn("POST /whatsapp/messages - Invalid input: business_id=%d: %v", businessID, err)
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("POST /whatsapp/messages - Failed to send message: business_id=%d, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /whatsapp/messages - Message processed: business_id=%d, status=%s", businessID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleListMessages GET /api/v1/whatsapp/messages
// Query params: limit, offset (optional)
func (h *Handler) HandleListMessages(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var limit, offset int
	var err error
	if v := r.URL.Query().Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil {
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if offset, err = strconv.Atoi(v); err != nil {
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
	}

	result, err := h.service.GetMessages(r.Context(), businessID, limit, offset)
	if err != nil {
		h.logger.Error("GET /whatsapp/messages - Failed to list messages: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
