package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/evenderechit/evenderechit/internal/domain"
	settingsRepo "github.com/evenderechit/evenderechit/internal/infra/storage/settings"
	"github.com/evenderechit/evenderechit/internal/service/settings/models"
)

// Service сервис настроек бизнеса и публичной ссылки записи
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get получает настройки бизнеса
func (s *Service) Get(ctx context.Context, businessID int64) (*models.SettingsResponse, error) {
	settings, err := s.settingsRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("Get: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSettings(settings), nil
}

// GetBySlug получает публичные данные бизнеса по слагу страницы записи
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.PublicBusinessResponse, error) {
	settings, err := s.settingsRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("GetBySlug: business with slug=%s not found", slug)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetBySlug: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetBySlug - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSettingsPublic(settings), nil
}

// Update обновляет настройки бизнеса
// При смене названия бизнеса слаг перегенерируется
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: settings for business=%d", req.BusinessID)

	if req.BusinessName == "" {
		return nil, fmt.Errorf("%w: businessName is required", ErrInvalidInput)
	}
	if req.BufferMinutes < 0 {
		return nil, fmt.Errorf("%w: bufferMinutes must not be negative", ErrInvalidInput)
	}
	if req.AdvanceBookingDays < 0 {
		return nil, fmt.Errorf("%w: advanceBookingDays must not be negative", ErrInvalidInput)
	}
	if req.CancellationNoticeHours < 0 {
		return nil, fmt.Errorf("%w: cancellationNoticeHours must not be negative", ErrInvalidInput)
	}

	current, err := s.settingsRepo.GetByBusinessID(ctx, req.BusinessID)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		s.logger.Error("Update: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	advanceBookingDays := req.AdvanceBookingDays
	if advanceBookingDays == 0 {
		advanceBookingDays = domain.DefaultAdvanceBookingDays
	}
	cancellationNoticeHours := req.CancellationNoticeHours
	if cancellationNoticeHours == 0 {
		cancellationNoticeHours = domain.DefaultCancellationNoticeHours
	}

	settings := &domain.BusinessSettings{
		BusinessID:              req.BusinessID,
		BusinessName:            req.BusinessName,
		Address:                 req.Address,
		Phone:                   req.Phone,
		Timezone:                req.Timezone,
		BufferMinutes:           req.BufferMinutes,
		AdvanceBookingDays:      advanceBookingDays,
		CancellationNoticeHours: cancellationNoticeHours,
		WhatsappEnabled:         req.WhatsappEnabled,
		AutoConfirmationEnabled: req.AutoConfirmationEnabled,
		WhatsappPhoneNumberID:   req.WhatsappPhoneNumberID,
		WhatsappAccessToken:     req.WhatsappAccessToken,
		RemindersEnabled:        req.RemindersEnabled,
		Reminder24h:             req.Reminder24h,
		Reminder2h:              req.Reminder2h,
		Reminder30m:             req.Reminder30m,
	}

	if current == nil {
		// Первая настройка бизнеса: генерируем слаг и создаём строку
		slug, err := s.generateUniqueSlug(ctx, req.BusinessName, req.BusinessID)
		if err != nil {
			return nil, err
		}
		settings.LinkSlug = slug

		created, err := s.settingsRepo.Create(ctx, settings)
		if err != nil {
			s.logger.Error("Update: failed to create settings for business=%d: %v", req.BusinessID, err)
			return nil, fmt.Errorf("%w: Update - create settings: %v", ErrInternal, err)
		}
		s.logger.Info("Update: created settings for business=%d slug=%s", req.BusinessID, slug)
		return models.FromDomainSettings(created), nil
	}

	settings.LinkSlug = current.LinkSlug
	if current.BusinessName != req.BusinessName {
		slug, err := s.generateUniqueSlug(ctx, req.BusinessName, req.BusinessID)
		if err != nil {
			return nil, err
		}
		settings.LinkSlug = slug
		s.logger.Info("Update: business=%d renamed, new slug=%s", req.BusinessID, slug)
	}

	// Пустой токен в запросе означает "не менять"
	if settings.WhatsappAccessToken == nil {
		settings.WhatsappAccessToken = current.WhatsappAccessToken
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		s.logger.Error("Update: failed to update settings for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: Update - update settings: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings), nil
}

// generateUniqueSlug генерирует слаг из названия, добавляя числовой
// суффикс при коллизии с другим бизнесом
func (s *Service) generateUniqueSlug(ctx context.Context, businessName string, businessID int64) (string, error) {
	base := slugify(businessName)
	slug := base

	for n := 2; ; n++ {
		taken, err := s.settingsRepo.SlugExists(ctx, slug, businessID)
		if err != nil {
			s.logger.Error("generateUniqueSlug: repository error for slug=%s: %v", slug, err)
			return "", fmt.Errorf("%w: generateUniqueSlug - repository error: %v", ErrInternal, err)
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
}
