package contracts

import (
	"context"
	"io"
	"mime/multipart"
	"sefasevim-service/internal/pkg/dto/responses"
)

type MediaUsecase interface {
	Upload(ctx context.Context, imageType string, file io.Reader, fileHeader *multipart.FileHeader) (*responses.UploadMedia, error)
	FindAll(ctx context.Context) ([]responses.MediaObject, error)
	Delete(ctx context.Context, objectName string) error
}
