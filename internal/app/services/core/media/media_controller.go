package media

import (
	"context"
	"errors"
	"net/http"
	"sefasevim-service/internal/app/contracts"
	"sefasevim-service/internal/pkg/constvars"
	"sefasevim-service/internal/pkg/exceptions"
	"sefasevim-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type MediaController struct {
	Log          *zap.Logger
	MediaUsecase contracts.MediaUsecase
}

func NewMediaController(logger *zap.Logger, mediaUsecase contracts.MediaUsecase) *MediaController {
	return &MediaController{
		Log:          logger,
		MediaUsecase: mediaUsecase,
	}
}

func (ctrl *MediaController) Upload(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	imageType := r.FormValue("type")
	if imageType == "" {
		imageType = "general"
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}
	defer file.Close()

	result, err := ctrl.MediaUsecase.Upload(ctx, imageType, file, fileHeader)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadMediaSuccessMessage, result)
}

func (ctrl *MediaController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.MediaUsecase.FindAll(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMediaSuccessMessage, result)
}

func (ctrl *MediaController) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	objectName := r.URL.Query().Get("object_name")
	if objectName == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(errors.New("missing query parameter"), "object_name"))
		return
	}

	if err := ctrl.MediaUsecase.Delete(ctx, objectName); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteMediaSuccessMessage, nil)
}
