package middlewares

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sefasevim-service/internal/app/models"
	"sefasevim-service/internal/pkg/constvars"
	"sefasevim-service/internal/pkg/exceptions"
	"sefasevim-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const bearerPrefix = "Bearer "

// Authenticate guards the admin surface: the bearer token must parse to a
// session id whose session document is still present in redis.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constvars.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAuthTokenMissing(errors.New("missing bearer token")))
			return
		}

		sessionID, err := utils.ParseSessionJWT(strings.TrimPrefix(header, bearerPrefix), m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAuthTokenInvalid(err))
			return
		}

		sessionKey := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
		data, err := m.RedisRepository.Get(r.Context(), sessionKey)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if data == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAuthInvalidSession(errors.New("session not found")))
			return
		}

		session := &models.Session{}
		if err := json.Unmarshal([]byte(data), session); err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAuthInvalidSession(err))
			return
		}
		if time.Now().After(session.ExpiresAt) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAuthInvalidSession(errors.New("session expired")))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
