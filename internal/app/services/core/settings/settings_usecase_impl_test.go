package settings

import (
	"context"
	"sefasevim-service/internal/app/models"
	"sefasevim-service/internal/pkg/constvars"
	"sefasevim-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSettingsRepository struct {
	document *models.WorkingHoursDocument
	replaced *models.WorkingHoursDocument
}

func (f *fakeSettingsRepository) FindWorkingHours(ctx context.Context) (*models.WorkingHoursDocument, error) {
	return f.document, nil
}

func (f *fakeSettingsRepository) ReplaceWorkingHours(ctx context.Context, document *models.WorkingHoursDocument) error {
	f.replaced = document
	return nil
}

type fakeRedisRepository struct {
	deletedKeys []string
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	f.deletedKeys = append(f.deletedKeys, key)
	return nil
}

func newTestSettingsUsecase(repo *fakeSettingsRepository, redisRepo *fakeRedisRepository) *settingsUsecase {
	return &settingsUsecase{
		SettingsRepository: repo,
		RedisRepository:    redisRepo,
		Log:                zap.NewNop(),
	}
}

func TestSettingsUsecase_GetWorkingHours_DefaultsWhenUnset(t *testing.T) {
	uc := newTestSettingsUsecase(&fakeSettingsRepository{}, &fakeRedisRepository{})

	result, err := uc.GetWorkingHours(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Rows, 3)
	assert.Equal(t, "Pazartesi - Cuma", result.Rows[0].Day)
	assert.Equal(t, "09:00 - 19:00", result.Rows[0].Hours)
	assert.Equal(t, "Kapalı", result.Rows[2].Hours)
}

func TestSettingsUsecase_GetWorkingHours_StoredRows(t *testing.T) {
	repo := &fakeSettingsRepository{
		document: &models.WorkingHoursDocument{
			Rows: []models.WorkingHoursRow{
				{Day: "Çarşamba", Hours: "12:00 - 18:00"},
			},
		},
	}
	uc := newTestSettingsUsecase(repo, &fakeRedisRepository{})

	result, err := uc.GetWorkingHours(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, "Çarşamba", result.Rows[0].Day)
}

func TestSettingsUsecase_SetWorkingHours(t *testing.T) {
	repo := &fakeSettingsRepository{}
	redisRepo := &fakeRedisRepository{}
	uc := newTestSettingsUsecase(repo, redisRepo)

	err := uc.SetWorkingHours(context.Background(), &requests.SetWorkingHours{
		Rows: []requests.WorkingHoursRow{
			{Day: "Pazartesi - Perşembe", Hours: "10:00 - 17:00"},
			{Day: "Pazar", Hours: "Kapalı"},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, repo.replaced)
	require.Len(t, repo.replaced.Rows, 2)
	assert.Equal(t, "Pazartesi - Perşembe", repo.replaced.Rows[0].Day)
	assert.Equal(t, "10:00 - 17:00", repo.replaced.Rows[0].Hours)

	assert.Contains(t, redisRepo.deletedKeys, constvars.RedisKeyWorkingHours)
}

func TestSettingsUsecase_SetWorkingHours_KeepsRowsVerbatim(t *testing.T) {
	repo := &fakeSettingsRepository{}
	uc := newTestSettingsUsecase(repo, &fakeRedisRepository{})

	// Rows that compile to closed or never match are still stored as
	// written; the admin sees them echoed back and the resolver degrades.
	err := uc.SetWorkingHours(context.Background(), &requests.SetWorkingHours{
		Rows: []requests.WorkingHoursRow{
			{Day: "Monday", Hours: "09:00 - 17:00"},
			{Day: "Salı", Hours: "garbage"},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, repo.replaced)
	assert.Equal(t, "Monday", repo.replaced.Rows[0].Day)
	assert.Equal(t, "garbage", repo.replaced.Rows[1].Hours)
}
