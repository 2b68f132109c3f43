package settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/evenderechit/evenderechit/internal/api/handlers"
	"github.com/evenderechit/evenderechit/internal/api/middleware"
	settingsService "github.com/evenderechit/evenderechit/internal/service/settings"
	"github.com/evenderechit/evenderechit/internal/service/settings/models"
)

const (
	msgUnauthorized     = "authentication required"
	msgInvalidBody      = "invalid request body"
	msgMissingSlug      = "slug is required"
	msgSettingsNotFound = "business settings not found"
	msgBusinessNotFound = "business not found"
)

// UpdateSettingsBody тело запроса на обновление настроек
type UpdateSettingsBody struct {
	BusinessName            string  `json:"businessName"`
	Address                 *string `json:"address,omitempty"`
	Phone                   *string `json:"phone,omitempty"`
	Timezone                string  `json:"timezone"`
	BufferMinutes           int     `json:"bufferMinutes"`
	AdvanceBookingDays      int     `json:"advanceBookingDays"`
	CancellationNoticeHours int     `json:"cancellationNoticeHours"`
	WhatsappEnabled         bool    `json:"whatsappEnabled"`
	AutoConfirmationEnabled bool    `json:"autoConfirmationEnabled"`
	WhatsappPhoneNumberID   *string `json:"whatsappPhoneNumberId,omitempty"`
	WhatsappAccessToken     *string `json:"whatsappAccessToken,omitempty"`
	RemindersEnabled        bool    `json:"remindersEnabled"`
	Reminder24h             bool    `json:"reminder24h"`
	Reminder2h              bool    `json:"reminder2h"`
	Reminder30m             bool    `json:"reminder30m"`
}

// Handler обрабатывает настройки бизнеса и публичную страницу по слагу
type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGet GET /api/v1/settings
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.Get(r.Context(), businessID)
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrSettingsNotFound):
			h.logger.Warn("GET /settings - Settings not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgSettingsNotFound)
		default:
			h.logger.Error("GET /settings - Failed to get settings: business_id=%d, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/settings
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var body UpdateSettingsBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Update(r.Context(), &models.UpdateSettingsRequest{
		BusinessID:              businessID,
		BusinessName:            body.BusinessName,
		Address:                 body.Address,
		Phone:                   body.Phone,
		Timezone:                body.Timezone,
		BufferMinutes:           body.BufferMinutes,
		AdvanceBookingDays:      body.AdvanceBookingDays,
		CancellationNoticeHours: body.CancellationNoticeHours,
		WhatsappEnabled:         body.WhatsappEnabled,
		AutoConfirmationEnabled: body.AutoConfirmationEnabled,
		WhatsappPhoneNumberID:   body.WhatsappPhoneNumberID,
		WhatsappAccessToken:     body.WhatsappAccessToken,
		RemindersEnabled:        body.RemindersEnabled,
		Reminder24h:             body.Reminder24h,
		Reminder2h:              body.Reminder2h,
		Reminder30m:             body.Reminder30m,
	})
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrInvalidInput):
			h.logger.Warn("PUT /settings - Invalid input: business_id=%d: %v", businessID, err)
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("PUT /settings - Failed to update settings: business_id=%d, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings - Settings updated: business_id=%d, slug=%s", businessID, result.LinkSlug)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGetBySlug GET /api/v1/public/{slug}
// Публичная страница бизнеса для клиентской записи
func (h *Handler) HandleGetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if slug == "" {
		handlers.RespondBadRequest(w, msgMissingSlug)
		return
	}

	result, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrBusinessNotFound):
			h.logger.Warn("GET /public/{slug} - Business not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgBusinessNotFound)
		default:
			h.logger.Error("GET /public/{slug} - Failed to get business: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
