package contracts

import (
	"context"
	"sefasevim-service/internal/app/models"
	"sefasevim-service/internal/pkg/dto/requests"
	"sefasevim-service/internal/pkg/dto/responses"
)

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) (string, error)
	FindAll(ctx context.Context) ([]models.Message, error)
	MarkRead(ctx context.Context, messageID string) error
	Delete(ctx context.Context, messageID string) error
	CountUnread(ctx context.Context) (int64, error)
}

type MessageUsecase interface {
	CreateMessage(ctx context.Context, request *requests.CreateMessage) (*responses.CreateMessage, error)
	FindAll(ctx context.Context) ([]responses.Message, error)
	MarkRead(ctx context.Context, messageID string) error
	Delete(ctx context.Context, messageID string) error
}
