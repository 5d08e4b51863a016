package messages

import (
	"context"
	"fmt"
	"sefasevim-service/internal/app/config"
	"sefasevim-service/internal/app/contracts"
	"sefasevim-service/internal/app/models"
	"sefasevim-service/internal/pkg/constvars"
	"sefasevim-service/internal/pkg/dto/requests"
	"sefasevim-service/internal/pkg/dto/responses"
	"sync"
	"time"

	"go.uber.org/zap"
)

type messageUsecase struct {
	MessageRepository contracts.MessageRepository
	MailerService     contracts.MailerService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	messageUsecaseInstance contracts.MessageUsecase
	onceMessageUsecase     sync.Once
)

func NewMessageUsecase(
	messageRepository contracts.MessageRepository,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.MessageUsecase {
	onceMessageUsecase.Do(func() {
		messageUsecaseInstance = &messageUsecase{
			MessageRepository: messageRepository,
			MailerService:     mailerService,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
	})
	return messageUsecaseInstance
}

func (uc *messageUsecase) CreateMessage(ctx context.Context, request *requests.CreateMessage) (*responses.CreateMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("messageUsecase.CreateMessage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	message := &models.Message{
		Name:      request.Name,
		Email:     request.Email,
		Phone:     request.Phone,
		Message:   request.Message,
		Read:      false,
		CreatedAt: time.Now(),
	}

	messageID, err := uc.MessageRepository.Create(ctx, message)
	if err != nil {
		return nil, err
	}

	payload := &contracts.EmailPayload{
		To:      uc.InternalConfig.App.OwnerNotificationEmail,
		Subject: constvars.EmailNewMessageSubject,
		Body: fmt.Sprintf(constvars.EmailBodyNewMessageFormat,
			message.Name,
			message.Email,
			message.Phone,
			message.Message,
		),
	}
	if err := uc.MailerService.EnqueueEmail(ctx, payload); err != nil {
		uc.Log.Error("cannot enqueue message notification", zap.Error(err))
	}

	return &responses.CreateMessage{MessageID: messageID}, nil
}

func (uc *messageUsecase) FindAll(ctx context.Context) ([]responses.Message, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("messageUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	messages, err := uc.MessageRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Message, 0, len(messages))
	for _, message := range messages {
		response = append(response, responses.Message{
			ID:        message.ID.Hex(),
			Name:      message.Name,
			Email:     message.Email,
			Phone:     message.Phone,
			Message:   message.Message,
			Read:      message.Read,
			CreatedAt: message.CreatedAt.Format(time.RFC3339),
		})
	}
	return response, nil
}

func (uc *messageUsecase) MarkRead(ctx context.Context, messageID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("messageUsecase.MarkRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("message_id", messageID),
	)
	return uc.MessageRepository.MarkRead(ctx, messageID)
}

func (uc *messageUsecase) Delete(ctx context.Context, messageID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("messageUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("message_id", messageID),
	)
	return uc.MessageRepository.Delete(ctx, messageID)
}
