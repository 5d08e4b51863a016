package content

import (
	"context"
	"errors"
	"net/http"
	"sefasevim-service/internal/app/contracts"
	"sefasevim-service/internal/pkg/constvars"
	"sefasevim-service/internal/pkg/dto/requests"
	"sefasevim-service/internal/pkg/exceptions"
	"sefasevim-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ContentController struct {
	Log            *zap.Logger
	ContentUsecase contracts.ContentUsecase
}

func NewContentController(logger *zap.Logger, contentUsecase contracts.ContentUsecase) *ContentController {
	return &ContentController{
		Log:            logger,
		ContentUsecase: contentUsecase,
	}
}

func (ctrl *ContentController) GetSection(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	section := chi.URLParam(r, "section")
	if section == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(errors.New("missing url parameter"), "section"))
		return
	}

	result, err := ctrl.ContentUsecase.FindBySection(ctx, section)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetContentSuccessMessage, result)
}

func (ctrl *ContentController) UpdateSection(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	section := chi.URLParam(r, "section")
	if section == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(errors.New("missing url parameter"), "section"))
		return
	}

	request := &requests.UpdateContent{}
	if err := utils.ParseRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := ctrl.ContentUsecase.UpdateSection(ctx, section, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateContentSuccessMessage, nil)
}
