package faqs

import (
	"context"
	"net/http"
	"sefasevim-service/internal/app/contracts"
	"sefasevim-service/internal/pkg/constvars"
	"sefasevim-service/internal/pkg/dto/requests"
	"sefasevim-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type FaqController struct {
	Log        *zap.Logger
	FaqUsecase contracts.FaqUsecase
}

func NewFaqController(logger *zap.Logger, faqUsecase contracts.FaqUsecase) *FaqController {
	return &FaqController{
		Log:        logger,
		FaqUsecase: faqUsecase,
	}
}

func (ctrl *FaqController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.FaqUsecase.FindAll(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFaqsSuccessMessage, result)
}

func (ctrl *FaqController) ReplaceAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.UpdateFaqs{}
	if err := utils.ParseRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := ctrl.FaqUsecase.ReplaceAll(ctx, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateFaqsSuccessMessage, nil)
}
