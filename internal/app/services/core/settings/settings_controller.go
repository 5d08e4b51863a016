package settings

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

type SettingsController struct {
	Log             *zap.Logger
	SettingsUsecase contracts.SettingsUsecase
}

func NewSettingsController(logger *zap.Logger, settingsUsecase contracts.SettingsUsecase) *SettingsController {
	return &SettingsController{
		Log:             logger,
		SettingsUsecase: settingsUsecase,
	}
}

func (ctrl *SettingsController) GetWorkingHours(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SettingsUsecase.GetWorkingHours(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetWorkingHoursSuccessMessage, result)
}

func (ctrl *SettingsController) SetWorkingHours(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.SetWorkingHours{}
	if err := utils.ParseRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := ctrl.SettingsUsecase.SetWorkingHours(ctx, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SetWorkingHoursSuccessMessage, nil)
}
