package availability

import (
	"context"
	"sefasevim-service/internal/app/config"
	"sefasevim-service/internal/app/contracts"
	"sefasevim-service/internal/app/models"
	"sefasevim-service/internal/pkg/constvars"
	"sefasevim-service/internal/pkg/dto/responses"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type availabilityUsecase struct {
	SettingsRepository contracts.SettingsRepository
	RedisRepository    contracts.RedisRepository
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

var (
	availabilityUsecaseInstance contracts.AvailabilityUsecase
	onceAvailabilityUsecase     sync.Once
)

func NewAvailabilityUsecase(
	settingsRepository contracts.SettingsRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	onceAvailabilityUsecase.Do(func() {
		availabilityUsecaseInstance = &availabilityUsecase{
			SettingsRepository: settingsRepository,
			RedisRepository:    redisRepository,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
	})
	return availabilityUsecaseInstance
}

func (uc *availabilityUsecase) ResolveForDate(ctx context.Context, date time.Time) (*responses.Availability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.ResolveForDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date.Format(constvars.DateLayoutYYYYMMDD)),
	)

	schedule := uc.loadSchedule(ctx, requestID)
	result := ResolveSlots(date, schedule)

	return &responses.Availability{
		Date:   date.Format(constvars.DateLayoutYYYYMMDD),
		Closed: result.Closed,
		Slots:  result.Slots,
	}, nil
}

func (uc *availabilityUsecase) OffersSlot(ctx context.Context, date time.Time, slot string) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	schedule := uc.loadSchedule(ctx, requestID)
	return Offers(date, schedule, slot), nil
}

// loadSchedule returns the current working-hours rows compiled into a
// Schedule. Every failure path degrades to the built-in default so the
// resolver always has data; a superseded request is handled by ctx
// cancellation rather than by comparing response tokens, since each snapshot
// stays private to its own resolution.
func (uc *availabilityUsecase) loadSchedule(ctx context.Context, requestID string) Schedule {
	if cached := uc.cachedRows(ctx); cached != nil {
		return Compile(cached)
	}

	document, err := uc.SettingsRepository.FindWorkingHours(ctx)
	if err != nil {
		uc.Log.Warn("availabilityUsecase.loadSchedule falling back to default working hours",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return Compile(DefaultWorkingHours)
	}
	if document == nil || len(document.Rows) == 0 {
		return Compile(DefaultWorkingHours)
	}

	uc.cacheRows(ctx, document.Rows)
	return Compile(document.Rows)
}

func (uc *availabilityUsecase) cachedRows(ctx context.Context) []models.WorkingHoursRow {
	data, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyWorkingHours)
	if err != nil || data == "" {
		return nil
	}

	var rows []models.WorkingHoursRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil
	}
	return rows
}

func (uc *availabilityUsecase) cacheRows(ctx context.Context, rows []models.WorkingHoursRow) {
	ttl := time.Duration(uc.InternalConfig.App.WorkingHoursCacheTTLInSecond) * time.Second
	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyWorkingHours, rows, ttl); err != nil {
		uc.Log.Warn("availabilityUsecase.cacheRows failed to cache working hours", zap.Error(err))
	}
}
