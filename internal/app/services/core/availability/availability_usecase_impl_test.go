package availability

import (
	"context"
	"errors"
	"sefasevim-service/internal/app/config"
	"sefasevim-service/internal/app/models"
	"sefasevim-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSettingsRepository struct {
	document  *models.WorkingHoursDocument
	err       error
	findCalls int
}

func (f *fakeSettingsRepository) FindWorkingHours(ctx context.Context) (*models.WorkingHoursDocument, error) {
	f.findCalls++
	return f.document, f.err
}

func (f *fakeSettingsRepository) ReplaceWorkingHours(ctx context.Context, document *models.WorkingHoursDocument) error {
	return nil
}

type fakeRedisRepository struct {
	store    map[string]string
	getErr   error
	setErr   error
	setCalls int
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{store: make(map[string]string)}
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = string(data)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.store[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.store, key)
	return nil
}

func newTestAvailabilityUsecase(settingsRepo *fakeSettingsRepository, redisRepo *fakeRedisRepository) *availabilityUsecase {
	return &availabilityUsecase{
		SettingsRepository: settingsRepo,
		RedisRepository:    redisRepo,
		InternalConfig: &config.InternalConfig{
			App: config.App{WorkingHoursCacheTTLInSecond: 300},
		},
		Log: zap.NewNop(),
	}
}

func TestAvailabilityUsecase_ResolveForDate_StoredRows(t *testing.T) {
	settingsRepo := &fakeSettingsRepository{
		document: &models.WorkingHoursDocument{
			Rows: []models.WorkingHoursRow{
				{Day: "Cuma", Hours: "13:00 - 16:00"},
			},
		},
	}
	redisRepo := newFakeRedisRepository()
	uc := newTestAvailabilityUsecase(settingsRepo, redisRepo)

	friday := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	result, err := uc.ResolveForDate(context.Background(), friday)
	require.NoError(t, err)

	assert.False(t, result.Closed)
	assert.Equal(t, []string{"13:00", "14:00", "15:00"}, result.Slots)
	assert.Equal(t, "2025-01-10", result.Date)

	// Fetched rows are cached for the next resolution.
	assert.Equal(t, 1, redisRepo.setCalls)
	assert.Contains(t, redisRepo.store, constvars.RedisKeyWorkingHours)
}

func TestAvailabilityUsecase_ResolveForDate_RepositoryErrorFallsBackToDefault(t *testing.T) {
	settingsRepo := &fakeSettingsRepository{err: errors.New("mongo down")}
	redisRepo := newFakeRedisRepository()
	uc := newTestAvailabilityUsecase(settingsRepo, redisRepo)

	saturday := time.Date(2025, time.January, 11, 0, 0, 0, 0, time.UTC)
	result, err := uc.ResolveForDate(context.Background(), saturday)
	require.NoError(t, err)

	assert.False(t, result.Closed)
	assert.Len(t, result.Slots, 6)
	assert.Equal(t, "10:00", result.Slots[0])
	assert.Equal(t, "15:00", result.Slots[5])
	assert.Zero(t, redisRepo.setCalls, "fallback schedule must not be cached")
}

func TestAvailabilityUsecase_ResolveForDate_MissingDocumentFallsBackToDefault(t *testing.T) {
	settingsRepo := &fakeSettingsRepository{}
	redisRepo := newFakeRedisRepository()
	uc := newTestAvailabilityUsecase(settingsRepo, redisRepo)

	sunday := time.Date(2025, time.January, 12, 0, 0, 0, 0, time.UTC)
	result, err := uc.ResolveForDate(context.Background(), sunday)
	require.NoError(t, err)

	assert.True(t, result.Closed)
	assert.Empty(t, result.Slots)
}

func TestAvailabilityUsecase_ResolveForDate_CacheHitSkipsRepository(t *testing.T) {
	settingsRepo := &fakeSettingsRepository{}
	redisRepo := newFakeRedisRepository()

	rows := []models.WorkingHoursRow{{Day: "Pazartesi", Hours: "08:00 - 10:00"}}
	data, err := json.Marshal(rows)
	require.NoError(t, err)
	redisRepo.store[constvars.RedisKeyWorkingHours] = string(data)

	uc := newTestAvailabilityUsecase(settingsRepo, redisRepo)

	monday := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
	result, err := uc.ResolveForDate(context.Background(), monday)
	require.NoError(t, err)

	assert.Equal(t, []string{"08:00", "09:00"}, result.Slots)
	assert.Zero(t, settingsRepo.findCalls)
}

func TestAvailabilityUsecase_OffersSlot(t *testing.T) {
	settingsRepo := &fakeSettingsRepository{
		document: &models.WorkingHoursDocument{
			Rows: []models.WorkingHoursRow{
				{Day: "Salı", Hours: "09:00 - 12:00"},
			},
		},
	}
	uc := newTestAvailabilityUsecase(settingsRepo, newFakeRedisRepository())

	tuesday := time.Date(2025, time.January, 7, 0, 0, 0, 0, time.UTC)

	offered, err := uc.OffersSlot(context.Background(), tuesday, "11:00")
	require.NoError(t, err)
	assert.True(t, offered)

	offered, err = uc.OffersSlot(context.Background(), tuesday, "12:00")
	require.NoError(t, err)
	assert.False(t, offered, "end boundary is exclusive")

	wednesday := tuesday.AddDate(0, 0, 1)
	offered, err = uc.OffersSlot(context.Background(), wednesday, "11:00")
	require.NoError(t, err)
	assert.False(t, offered)
}
