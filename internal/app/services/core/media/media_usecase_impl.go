package media

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"path/filepath"
	"sefasevim-service/internal/app/config"
	"sefasevim-service/internal/app/contracts"
	"sefasevim-service/internal/pkg/constvars"
	"sefasevim-service/internal/pkg/dto/responses"
	"sefasevim-service/internal/pkg/exceptions"
	"sefasevim-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	imageObjectPrefix  = "images/"
	presignedURLExpiry = time.Hour
)

var allowedImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

type mediaUsecase struct {
	Storage        contracts.Storage
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	mediaUsecaseInstance contracts.MediaUsecase
	onceMediaUsecase     sync.Once
)

func NewMediaUsecase(storage contracts.Storage, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.MediaUsecase {
	onceMediaUsecase.Do(func() {
		mediaUsecaseInstance = &mediaUsecase{
			Storage:        storage,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return mediaUsecaseInstance
}

func (uc *mediaUsecase) Upload(ctx context.Context, imageType string, file io.Reader, fileHeader *multipart.FileHeader) (*responses.UploadMedia, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("mediaUsecase.Upload called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("image_type", imageType),
		zap.String("file_name", fileHeader.Filename),
	)

	maxSize := uc.InternalConfig.App.MediaMaxUploadSizeInMB * 1024 * 1024
	if fileHeader.Size > maxSize {
		return nil, exceptions.ErrImageValidation(errors.New("file exceeds the upload size limit"))
	}

	extension := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType, ok := allowedImageExtensions[extension]
	if !ok {
		return nil, exceptions.ErrImageValidation(errors.New("file extension is not an allowed image type"))
	}

	objectName := utils.GenerateImageObjectName(imageType, fileHeader.Filename)
	if _, err := uc.Storage.UploadObject(ctx, objectName, file, fileHeader.Size, contentType); err != nil {
		return nil, err
	}

	url, err := uc.Storage.PresignedURL(ctx, objectName, presignedURLExpiry)
	if err != nil {
		uc.Log.Error("cannot presign uploaded object", zap.Error(err))
		url = ""
	}

	return &responses.UploadMedia{
		ObjectName: objectName,
		URL:        url,
	}, nil
}

func (uc *mediaUsecase) FindAll(ctx context.Context) ([]responses.MediaObject, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("mediaUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	objects, err := uc.Storage.ListObjects(ctx, imageObjectPrefix)
	if err != nil {
		return nil, err
	}

	response := make([]responses.MediaObject, 0, len(objects))
	for _, object := range objects {
		url, err := uc.Storage.PresignedURL(ctx, object.Name, presignedURLExpiry)
		if err != nil {
			uc.Log.Error("cannot presign object",
				zap.String(constvars.LoggingObjectNameKey, object.Name),
				zap.Error(err),
			)
			url = ""
		}
		response = append(response, responses.MediaObject{
			ObjectName:   object.Name,
			Size:         object.Size,
			ContentType:  object.ContentType,
			LastModified: object.LastModified.Format(time.RFC3339),
			URL:          url,
		})
	}
	return response, nil
}

func (uc *mediaUsecase) Delete(ctx context.Context, objectName string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("mediaUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	if !strings.HasPrefix(objectName, imageObjectPrefix) {
		return exceptions.ErrImageValidation(errors.New("object name is outside the images prefix"))
	}
	return uc.Storage.RemoveObject(ctx, objectName)
}
