package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sefasevim-service/internal/app/config"
	"sefasevim-service/internal/app/models"
	"sefasevim-service/internal/pkg/constvars"
	"sefasevim-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

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

const testJWTSecret = "test-secret"

func newTestMiddlewares(redisRepo *fakeRedisRepository) *Middlewares {
	return NewMiddlewares(zap.NewNop(), redisRepo, &config.InternalConfig{
		JWT: config.JWT{Secret: testJWTSecret, ExpTimeInHour: 1},
	})
}

func storedSession(t *testing.T, redisRepo *fakeRedisRepository, expiresAt time.Time) (sessionID, token string) {
	t.Helper()

	sessionID = utils.GenerateSessionID()
	session := &models.Session{
		SessionID: sessionID,
		AdminID:   "admin-1",
		Email:     "admin@example.com",
		ExpiresAt: expiresAt,
	}
	err := redisRepo.Set(context.Background(), fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID), session, time.Hour)
	require.NoError(t, err)

	token, err = utils.GenerateSessionJWT(sessionID, testJWTSecret, 1)
	require.NoError(t, err)
	return sessionID, token
}

func TestAuthenticate(t *testing.T) {
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
		assert.True(t, ok, "session should be attached to the request context")
		assert.Equal(t, "admin@example.com", session.Email)

		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid session", func(t *testing.T) {
		redisRepo := &fakeRedisRepository{store: make(map[string]string)}
		_, token := storedSession(t, redisRepo, time.Now().Add(time.Hour))

		req := httptest.NewRequest("GET", "/api/v1/dashboard/counts", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		newTestMiddlewares(redisRepo).Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		redisRepo := &fakeRedisRepository{store: make(map[string]string)}

		req := httptest.NewRequest("GET", "/api/v1/dashboard/counts", nil)

		rr := httptest.NewRecorder()
		newTestMiddlewares(redisRepo).Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		redisRepo := &fakeRedisRepository{store: make(map[string]string)}

		req := httptest.NewRequest("GET", "/api/v1/dashboard/counts", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")

		rr := httptest.NewRecorder()
		newTestMiddlewares(redisRepo).Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("session removed from redis", func(t *testing.T) {
		redisRepo := &fakeRedisRepository{store: make(map[string]string)}
		sessionID, token := storedSession(t, redisRepo, time.Now().Add(time.Hour))

		err := redisRepo.Delete(context.Background(), fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID))
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/dashboard/counts", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		newTestMiddlewares(redisRepo).Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("expired session", func(t *testing.T) {
		redisRepo := &fakeRedisRepository{store: make(map[string]string)}
		_, token := storedSession(t, redisRepo, time.Now().Add(-time.Minute))

		req := httptest.NewRequest("GET", "/api/v1/dashboard/counts", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		newTestMiddlewares(redisRepo).Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
