package auth

import (
	"context"
	"errors"
	"fmt"
	"sefasevim-service/internal/app/config"
	"sefasevim-service/internal/app/contracts"
	"sefasevim-service/internal/app/models"
	"sefasevim-service/internal/pkg/constvars"
	"sefasevim-service/internal/pkg/dto/requests"
	"sefasevim-service/internal/pkg/dto/responses"
	"sefasevim-service/internal/pkg/exceptions"
	"sefasevim-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	AdminRepository contracts.AdminRepository
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	adminRepository contracts.AdminRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			AdminRepository: adminRepository,
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("email", request.Email),
	)

	admin, err := uc.AdminRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if admin == nil || !utils.CheckPasswordHash(request.Password, admin.Password) {
		return nil, exceptions.ErrInvalidCredentials(errors.New("email or password mismatch"))
	}

	sessionTTL := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		AdminID:   admin.ID.Hex(),
		Email:     admin.Email,
		ExpiresAt: time.Now().Add(sessionTTL),
	}

	sessionKey := fmt.Sprintf(constvars.RedisKeySessionFormat, session.SessionID)
	if err := uc.RedisRepository.Set(ctx, sessionKey, session, sessionTTL); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrAuthGenerateToken(err)
	}

	return &responses.Login{Token: token}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionKey := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
	return uc.RedisRepository.Delete(ctx, sessionKey)
}
