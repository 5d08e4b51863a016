package settings

import (
	"context"
	"sefasevim-service/internal/app/contracts"
	"sefasevim-service/internal/app/models"
	"sefasevim-service/internal/app/services/core/availability"
	"sefasevim-service/internal/pkg/constvars"
	"sefasevim-service/internal/pkg/dto/requests"
	"sefasevim-service/internal/pkg/dto/responses"
	"sync"
	"time"

	"go.uber.org/zap"
)

type settingsUsecase struct {
	SettingsRepository contracts.SettingsRepository
	RedisRepository    contracts.RedisRepository
	Log                *zap.Logger
}

var (
	settingsUsecaseInstance contracts.SettingsUsecase
	onceSettingsUsecase     sync.Once
)

func NewSettingsUsecase(
	settingsRepository contracts.SettingsRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.SettingsUsecase {
	onceSettingsUsecase.Do(func() {
		settingsUsecaseInstance = &settingsUsecase{
			SettingsRepository: settingsRepository,
			RedisRepository:    redisRepository,
			Log:                logger,
		}
	})
	return settingsUsecaseInstance
}

func (uc *settingsUsecase) GetWorkingHours(ctx context.Context) (*responses.WorkingHours, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("settingsUsecase.GetWorkingHours called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	document, err := uc.SettingsRepository.FindWorkingHours(ctx)
	if err != nil {
		return nil, err
	}

	rows := availability.DefaultWorkingHours
	if document != nil && len(document.Rows) > 0 {
		rows = document.Rows
	}

	response := &responses.WorkingHours{Rows: make([]responses.WorkingHoursRow, 0, len(rows))}
	for _, row := range rows {
		response.Rows = append(response.Rows, responses.WorkingHoursRow{
			Day:   row.Day,
			Hours: row.Hours,
		})
	}
	return response, nil
}

func (uc *settingsUsecase) SetWorkingHours(ctx context.Context, request *requests.SetWorkingHours) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("settingsUsecase.SetWorkingHours called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("row_count", len(request.Rows)),
	)

	rows := make([]models.WorkingHoursRow, 0, len(request.Rows))
	for _, row := range request.Rows {
		rows = append(rows, models.WorkingHoursRow{
			Day:   row.Day,
			Hours: row.Hours,
		})
	}

	// The rows are stored verbatim; compiling here surfaces tokens that
	// would silently resolve to closed days so the admin panel can warn.
	schedule := availability.Compile(rows)
	for index, row := range schedule.Warnings() {
		uc.Log.Warn("working-hours row compiled to closed or never matches",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int("row_index", index),
			zap.String("row", row),
		)
	}

	err := uc.SettingsRepository.ReplaceWorkingHours(ctx, &models.WorkingHoursDocument{
		Rows:      rows,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	// The availability cache holds the previous rows until it expires;
	// dropping it makes the new schedule visible immediately.
	if err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyWorkingHours); err != nil {
		uc.Log.Error("cannot invalidate working-hours cache", zap.Error(err))
	}
	return nil
}
