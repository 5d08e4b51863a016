package content

import (
	"context"
	"errors"
	"sefasevim-service/internal/app/contracts"
	"sefasevim-service/internal/app/models"
	"sefasevim-service/internal/pkg/constvars"
	"sefasevim-service/internal/pkg/dto/requests"
	"sefasevim-service/internal/pkg/dto/responses"
	"sefasevim-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type contentUsecase struct {
	ContentRepository contracts.ContentRepository
	Log               *zap.Logger
}

var (
	contentUsecaseInstance contracts.ContentUsecase
	onceContentUsecase     sync.Once
)

func NewContentUsecase(contentRepository contracts.ContentRepository, logger *zap.Logger) contracts.ContentUsecase {
	onceContentUsecase.Do(func() {
		contentUsecaseInstance = &contentUsecase{
			ContentRepository: contentRepository,
			Log:               logger,
		}
	})
	return contentUsecaseInstance
}

func (uc *contentUsecase) FindBySection(ctx context.Context, section string) (*responses.Content, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("contentUsecase.FindBySection called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("section", section),
	)

	content, err := uc.ContentRepository.FindBySection(ctx, section)
	if err != nil {
		return nil, err
	}
	if content == nil {
		fields := defaultSection(section)
		if fields == nil {
			return nil, exceptions.ErrResourceNotFound(errors.New("unknown content section"))
		}
		return &responses.Content{Section: section, Fields: fields}, nil
	}

	return &responses.Content{Section: content.Section, Fields: content.Fields}, nil
}

func (uc *contentUsecase) UpdateSection(ctx context.Context, section string, request *requests.UpdateContent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("contentUsecase.UpdateSection called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("section", section),
	)

	if defaultSection(section) == nil {
		return exceptions.ErrResourceNotFound(errors.New("unknown content section"))
	}

	return uc.ContentRepository.Upsert(ctx, &models.ContentSection{
		Section:   section,
		Fields:    request.Fields,
		UpdatedAt: time.Now(),
	})
}
