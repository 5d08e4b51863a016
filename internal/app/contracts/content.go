package contracts

import (
	"context"
	"sefasevim-service/internal/app/models"
	"sefasevim-service/internal/pkg/dto/requests"
	"sefasevim-service/internal/pkg/dto/responses"
)

type ContentRepository interface {
	FindBySection(ctx context.Context, section string) (*models.ContentSection, error)
	Upsert(ctx context.Context, content *models.ContentSection) error
}

type ContentUsecase interface {
	FindBySection(ctx context.Context, section string) (*responses.Content, error)
	UpdateSection(ctx context.Context, section string, request *requests.UpdateContent) error
}

type FaqRepository interface {
	Find(ctx context.Context) (*models.FaqDocument, error)
	Replace(ctx context.Context, document *models.FaqDocument) error
}

type FaqUsecase interface {
	FindAll(ctx context.Context) ([]responses.FaqItem, error)
	ReplaceAll(ctx context.Context, request *requests.UpdateFaqs) error
}
