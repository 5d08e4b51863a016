package auth

import (
	"context"
	"sefasevim-service/internal/app/config"
	"sefasevim-service/internal/app/models"
	"sefasevim-service/internal/pkg/constvars"
	"sefasevim-service/internal/pkg/dto/requests"
	"sefasevim-service/internal/pkg/exceptions"
	"sefasevim-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeAdminRepository struct {
	admin *models.Admin
}

func (f *fakeAdminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if f.admin != nil && f.admin.Email == email {
		return f.admin, nil
	}
	return nil, nil
}

type fakeRedisRepository struct {
	store map[string]string
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = string(data)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.store[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.store, key)
	return nil
}

func newTestAuthUsecase(t *testing.T, password string) (*authUsecase, *fakeRedisRepository) {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	redisRepo := &fakeRedisRepository{store: make(map[string]string)}
	uc := &authUsecase{
		AdminRepository: &fakeAdminRepository{
			admin: &models.Admin{
				ID:       primitive.NewObjectID(),
				Email:    "admin@example.com",
				Password: hash,
			},
		},
		RedisRepository: redisRepo,
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
		},
		Log: zap.NewNop(),
	}
	return uc, redisRepo
}

func TestAuthUsecase_Login(t *testing.T) {
	uc, redisRepo := newTestAuthUsecase(t, "gizli-parola")

	result, err := uc.Login(context.Background(), &requests.Login{
		Email:    "admin@example.com",
		Password: "gizli-parola",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	sessionID, err := utils.ParseSessionJWT(result.Token, "test-secret")
	require.NoError(t, err)

	// The token's session must be resolvable back to the stored session.
	data := redisRepo.store[sessionKey(sessionID)]
	require.NotEmpty(t, data)

	session := &models.Session{}
	require.NoError(t, json.Unmarshal([]byte(data), session))
	assert.Equal(t, "admin@example.com", session.Email)
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	uc, _ := newTestAuthUsecase(t, "gizli-parola")

	_, err := uc.Login(context.Background(), &requests.Login{
		Email:    "admin@example.com",
		Password: "yanlis-parola",
	})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
}

func TestAuthUsecase_Login_UnknownEmail(t *testing.T) {
	uc, _ := newTestAuthUsecase(t, "gizli-parola")

	_, err := uc.Login(context.Background(), &requests.Login{
		Email:    "kimse@example.com",
		Password: "gizli-parola",
	})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
}

func TestAuthUsecase_Logout(t *testing.T) {
	uc, redisRepo := newTestAuthUsecase(t, "gizli-parola")

	result, err := uc.Login(context.Background(), &requests.Login{
		Email:    "admin@example.com",
		Password: "gizli-parola",
	})
	require.NoError(t, err)

	sessionID, err := utils.ParseSessionJWT(result.Token, "test-secret")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), sessionID))
	assert.Empty(t, redisRepo.store[sessionKey(sessionID)])
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}
