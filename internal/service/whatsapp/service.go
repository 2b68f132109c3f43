package whatsapp

import (
	"context"
	"errors"
	"fmt"

	"github.com/evenderechit/evenderechit/internal/domain"
	whatsappRepo "github.com/evenderechit/evenderechit/internal/infra/storage/whatsapp"
	whatsappClient "github.com/evenderechit/evenderechit/internal/integrations/whatsapp"
	"github.com/evenderechit/evenderechit/internal/service/whatsapp/models"
)

// Дефолтные тексты сообщений, когда бизнес не настроил шаблоны
var defaultTemplates = map[domain.TemplateType]string{
	domain.TemplateConfirmation: "Hi {{customerName}}! Your appointment{{#serviceName}} for {{serviceName}}{{/serviceName}} on {{date}} at {{time}} is booked.{{#manageLink}}\nManage your appointment: {{manageLink}}{{/manageLink}}",
	domain.TemplateReminder:     "Hi {{customerName}}! Reminder: your appointment{{#serviceName}} for {{serviceName}}{{/serviceName}} is on {{date}} at {{time}}.",
	domain.TemplateCancellation: "Hi {{customerName}}, your appointment on {{date}} at {{time}} has been cancelled.",
}

// Service сервис отправки WhatsApp сообщений и управления шаблонами
type Service struct {
	templateRepo TemplateRepository
	settingsRepo SettingsRepository
	sender       Sender
	logger       Logger
}

// NewService создает новый экземпляр сервиса whatsapp
func NewService(
	templateRepo TemplateRepository,
	settingsRepo SettingsRepository,
	sender Sender,
	logger Logger,
) *Service {
	return &Service{
		templateRepo: templateRepo,
		settingsRepo: settingsRepo,
		sender:       sender,
		logger:       logger,
	}
}

// UpsertTemplate создает или обновляет шаблон бизнеса
func (s *Service) UpsertTemplate(ctx context.Context, req *models.UpsertTemplateRequest) (*models.TemplateResponse, error) {
	s.logger.Info("UpsertTemplate: business=%d type=%s", req.BusinessID, req.Type)

	tplType, ok := models.ToDomainTemplateType(req.Type)
	if !ok {
		return nil, ErrInvalidTemplateType
	}
	if req.Body == "" {
		return nil, fmt.Errorf("%w: body is required", ErrInvalidInput)
	}
	if len(req.Body) > domain.MaxTemplateBodyLength {
		return nil, fmt.Errorf("%w: body exceeds %d characters", ErrInvalidInput, domain.MaxTemplateBodyLength)
	}

	tpl, err := s.templateRepo.UpsertTemplate(ctx, &domain.WhatsappTemplate{
		BusinessID: req.BusinessID,
		Type:       tplType,
		Body:       req.Body,
		Active:     req.Active,
	})
	if err != nil {
		s.logger.Error("UpsertTemplate: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: UpsertTemplate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTemplate(tpl), nil
}

// ListTemplates получает шаблоны бизнеса
func (s *Service) ListTemplates(ctx context.Context, businessID int64) (*models.TemplateListResponse, error) {
	templates, err := s.templateRepo.GetTemplates(ctx, businessID)
	if err != nil {
		s.logger.Error("ListTemplates: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListTemplates - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainTemplates(templates), nil
}

// RenderTemplate рендерит шаблон типа для бизнеса с переданными переменными
// При отсутствии настроенного шаблона используется дефолтный текст
func (s *Service) RenderTemplate(ctx context.Context, businessID int64, tplType domain.TemplateType, vars map[string]string) (string, error) {
	tpl, err := s.templateRepo.GetTemplate(ctx, businessID, tplType)
	if err != nil {
		if !errors.Is(err, whatsappRepo.ErrTemplateNotFound) {
			s.logger.Error("RenderTemplate: repository error for business=%d type=%s: %v", businessID, tplType, err)
			return "", fmt.Errorf("%w: RenderTemplate - repository error: %v", ErrInternal, err)
		}
		return ProcessTemplate(defaultTemplates[tplType], vars), nil
	}
	return ProcessTemplate(tpl.Body, vars), nil
}

// Send отправляет произвольное сообщение клиенту и пишет его в журнал
func (s *Service) Send(ctx context.Context, req *models.SendMessageRequest) (*models.SendMessageResponse, error) {
	s.logger.Info("Send: business=%d appointment=%v", req.BusinessID, req.AppointmentID)

	if req.Phone == "" || req.Body == "" {
		return nil, fmt.Errorf("%w: phone and body are required", ErrInvalidInput)
	}

	settings, err := s.settingsRepo.GetByBusinessID(ctx, req.BusinessID)
	if err != nil {
		s.logger.Error("Send: failed to get settings for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: Send - get settings: %v", ErrInternal, err)
	}

	return s.deliver(ctx, settings, req.AppointmentID, req.Phone, req.Body)
}

// SendTemplated рендерит шаблон и отправляет сообщение клиенту
func (s *Service) SendTemplated(
	ctx context.Context,
	settings *domain.BusinessSettings,
	appointmentID *int64,
	phone string,
	tplType domain.TemplateType,
	vars map[string]string,
) (*models.SendMessageResponse, error) {
	body, err := s.RenderTemplate(ctx, settings.BusinessID, tplType, vars)
	if err != nil {
		return nil, err
	}
	return s.deliver(ctx, settings, appointmentID, phone, body)
}

// GetMessages получает журнал сообщений бизнеса
func (s *Service) GetMessages(ctx context.Context, businessID int64, limit, offset int) (*models.MessageListResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	messages, err := s.templateRepo.GetMessages(ctx, businessID, limit, offset)
	if err != nil {
		s.logger.Error("GetMessages: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetMessages - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainMessages(messages), nil
}

// deliver отправляет сообщение через API или формирует wa.me ссылку,
// результат в обоих случаях попадает в журнал
func (s *Service) deliver(
	ctx context.Context,
	settings *domain.BusinessSettings,
	appointmentID *int64,
	phone, body string,
) (*models.SendMessageResponse, error) {
	var creds whatsappClient.Credentials
	if settings.HasWhatsappAPI() {
		creds = whatsappClient.Credentials{
			PhoneNumberID: *settings.WhatsappPhoneNumberID,
			AccessToken:   *settings.WhatsappAccessToken,
		}
	}

	result, sendErr := s.sender.SendWithFallback(ctx, creds, phone, body)

	logEntry := &domain.WhatsappMessage{
		BusinessID:    settings.BusinessID,
		AppointmentID: appointmentID,
		Phone:         phone,
		Body:          body,
	}

	resp := &models.SendMessageResponse{}
	if result != nil && result.Sent() {
		logEntry.Status = domain.MessageSent
		resp.Status = string(domain.MessageSent)
	} else {
		logEntry.Status = domain.MessageLink
		resp.Status = string(domain.MessageLink)
		if result != nil {
			resp.WaLink = result.WaLink
		}
		if sendErr != nil {
			errText := sendErr.Error()
			logEntry.Error = &errText
		}
	}

	if _, err := s.templateRepo.LogMessage(ctx, logEntry); err != nil {
		// Журнал не должен блокировать отправку
		s.logger.Error("deliver: failed to log message for business=%d: %v", settings.BusinessID, err)
	}

	return resp, nil
}
