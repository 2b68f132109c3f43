package messaging

import (
	"context"

	"github.com/evenderechit/evenderechit/internal/service/whatsapp/models"
)

type WhatsappService interface {
	UpsertTemplate(ctx context.Context, req *models.UpsertTemplateRequest) (*models.TemplateResponse, error)
	ListTemplates(ctx context.Context, businessID int64) (*models.TemplateListResponse, error)
	Send(ctx context.Context, req *models.SendMessageRequest) (*models.SendMessageResponse, error)
	GetMessages(ctx context.Context, businessID int64, limit, offset int) (*models.MessageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
