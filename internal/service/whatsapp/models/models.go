package models

import (
	"time"

	"github.com/evenderechit/evenderechit/internal/domain"
)

// Request модели

// UpsertTemplateRequest запрос на создание или обновление шаблона
type UpsertTemplateRequest struct {
	BusinessID int64  `json:"businessId"`
	Type       string `json:"type"` // confirmation | reminder | cancellation
	Body       string `json:"body"`
	Active     bool   `json:"active"`
}

// SendMessageRequest запрос на отправку сообщения клиенту
type SendMessageRequest struct {
	BusinessID    int64  `json:"businessId"`
	AppointmentID *int64 `json:"appointmentId,omitempty"`
	Phone         string `json:"phone"`
	Body          string `json:"body"`
}

// Response модели

// TemplateResponse ответ с данными шаблона
type TemplateResponse struct {
	ID     int64  `json:"id"`
	Type   string `json:"type"`
	Body   string `json:"body"`
	Active bool   `json:"active"`
}

// TemplateListResponse ответ со списком шаблонов
type TemplateListResponse struct {
	Templates []*TemplateResponse `json:"templates"`
}

// FromDomainTemplate конвертирует domain модель в response
func FromDomainTemplate(tpl *domain.WhatsappTemplate) *TemplateResponse {
	return &TemplateResponse{
		ID:     tpl.ID,
		Type:   string(tpl.Type),
		Body:   tpl.Body,
		Active: tpl.Active,
	}
}

// FromDomainTemplates конвертирует список domain моделей в response
func FromDomainTemplates(templates []*domain.WhatsappTemplate) *TemplateListResponse {
	result := make([]*TemplateResponse, len(templates))
	for i, tpl := range templates {
		result[i] = FromDomainTemplate(tpl)
	}
	return &TemplateListResponse{Templates: result}
}

// SendMessageResponse ответ отправки сообщения
type SendMessageResponse struct {
	Status string `json:"status"` // sent | link
	// WaLink заполняется, когда API недоступен и сообщение отправляется вручную
	WaLink string `json:"waLink,omitempty"`
}

// MessageResponse запись журнала сообщений
type MessageResponse struct {
	ID            int64   `json:"id"`
	AppointmentID *int64  `json:"appointmentId,omitempty"`
	Phone         string  `json:"phone"`
	Body          string  `json:"body"`
	Status        string  `json:"status"`
	Error         *string `json:"error,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// MessageListResponse ответ со списком сообщений
type MessageListResponse struct {
	Messages []*MessageResponse `json:"messages"`
}

// FromDomainMessages конвертирует список domain моделей в response
func FromDomainMessages(messages []*domain.WhatsappMessage) *MessageListResponse {
	result := make([]*MessageResponse, len(messages))
	for i, m := range messages {
		result[i] = &MessageResponse{
			ID:            m.ID,
			AppointmentID: m.AppointmentID,
			Phone:         m.Phone,
			Body:          m.Body,
			Status:        string(m.Status),
			Error:         m.Error,
			CreatedAt:     m.CreatedAt.Format(time.RFC3339),
		}
	}
	return &MessageListResponse{Messages: result}
}

// ToDomainTemplateType конвертирует строку в domain тип шаблона
func ToDomainTemplateType(s string) (domain.TemplateType, bool) {
	switch domain.TemplateType(s) {
	case domain.TemplateConfirmation, domain.TemplateReminder, domain.TemplateCancellation:
		return domain.TemplateType(s), true
	default:
		return "", false
	}
}
