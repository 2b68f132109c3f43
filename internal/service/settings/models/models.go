package models

import "github.com/evenderechit/evenderechit/internal/domain"

// Request модели

// UpdateSettingsRequest запрос на обновление настроек бизнеса
type UpdateSettingsRequest struct {
	BusinessID              int64   `json:"businessId"`
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

// Response модели

// SettingsResponse ответ с настройками бизнеса
// Токен доступа WhatsApp наружу не отдаётся
type SettingsResponse struct {
	BusinessID              int64   `json:"businessId"`
	BusinessName            string  `json:"businessName"`
	Address                 *string `json:"address,omitempty"`
	Phone                   *string `json:"phone,omitempty"`
	LinkSlug                string  `json:"linkSlug"`
	Timezone                string  `json:"timezone"`
	BufferMinutes           int     `json:"bufferMinutes"`
	AdvanceBookingDays      int     `json:"advanceBookingDays"`
	CancellationNoticeHours int     `json:"cancellationNoticeHours"`
	WhatsappEnabled         bool    `json:"whatsappEnabled"`
	AutoConfirmationEnabled bool    `json:"autoConfirmationEnabled"`
	WhatsappPhoneNumberID   *string `json:"whatsappPhoneNumberId,omitempty"`
	WhatsappConfigured      bool    `json:"whatsappConfigured"`
	RemindersEnabled        bool    `json:"remindersEnabled"`
	Reminder24h             bool    `json:"reminder24h"`
	Reminder2h              bool    `json:"reminder2h"`
	Reminder30m             bool    `json:"reminder30m"`
}

// FromDomainSettings конвертирует domain модель в response
func FromDomainSettings(s *domain.BusinessSettings) *SettingsResponse {
	return &SettingsResponse{
		BusinessID:              s.BusinessID,
		BusinessName:            s.BusinessName,
		Address:                 s.Address,
		Phone:                   s.Phone,
		LinkSlug:                s.LinkSlug,
		Timezone:                s.Timezone,
		BufferMinutes:           s.BufferMinutes,
		AdvanceBookingDays:      s.AdvanceBookingDays,
		CancellationNoticeHours: s.CancellationNoticeHours,
		WhatsappEnabled:         s.WhatsappEnabled,
		AutoConfirmationEnabled: s.AutoConfirmationEnabled,
		WhatsappPhoneNumberID:   s.WhatsappPhoneNumberID,
		WhatsappConfigured:      s.HasWhatsappAPI(),
		RemindersEnabled:        s.RemindersEnabled,
		Reminder24h:             s.Reminder24h,
		Reminder2h:              s.Reminder2h,
		Reminder30m:             s.Reminder30m,
	}
}

// PublicBusinessResponse публичные данные бизнеса для страницы записи
type PublicBusinessResponse struct {
	BusinessID         int64   `json:"businessId"`
	BusinessName       string  `json:"businessName"`
	Address            *string `json:"address,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	LinkSlug           string  `json:"linkSlug"`
	Timezone           string  `json:"timezone"`
	AdvanceBookingDays int     `json:"advanceBookingDays"`
}

// FromDomainSettingsPublic конвертирует domain модель в публичный response
func FromDomainSettingsPublic(s *domain.BusinessSettings) *PublicBusinessResponse {
	return &PublicBusinessResponse{
		BusinessID:         s.BusinessID,
		BusinessName:       s.BusinessName,
		Address:            s.Address,
		Phone:              s.Phone,
		LinkSlug:           s.LinkSlug,
		Timezone:           s.Timezone,
		AdvanceBookingDays: s.AdvanceBookingDays,
	}
}
