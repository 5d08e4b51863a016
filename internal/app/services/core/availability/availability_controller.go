package availability

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

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase contracts.AvailabilityUsecase
}

func NewAvailabilityController(logger *zap.Logger, availabilityUsecase contracts.AvailabilityUsecase) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		AvailabilityUsecase: availabilityUsecase,
	}
}

func (ctrl *AvailabilityController) GetForDate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidDateParam(errors.New("date query parameter is required")))
		return
	}

	date, err := time.ParseInLocation(constvars.DateLayoutYYYYMMDD, dateParam, time.Local)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidDateParam(err))
		return
	}

	result, err := ctrl.AvailabilityUsecase.ResolveForDate(ctx, date)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccessMessage, result)
}
