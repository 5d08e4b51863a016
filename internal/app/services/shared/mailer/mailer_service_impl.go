package mailer

import (
	"context"
	"sefasevim-service/internal/app/contracts"
	"sefasevim-service/internal/pkg/constvars"
	"sefasevim-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type mailerService struct {
	Connection *amqp091.Connection
	QueueName  string
	Log        *zap.Logger
}

var (
	mailerServiceInstance contracts.MailerService
	onceMailerService     sync.Once
)

func NewMailerService(conn *amqp091.Connection, queueName string, logger *zap.Logger) contracts.MailerService {
	onceMailerService.Do(func() {
		mailerServiceInstance = &mailerService{
			Connection: conn,
			QueueName:  queueName,
			Log:        logger,
		}
	})
	return mailerServiceInstance
}

func (s *mailerService) EnqueueEmail(ctx context.Context, payload *contracts.EmailPayload) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("MailerService.EnqueueEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("to", payload.To),
	)

	channel, err := s.Connection.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err, s.QueueName)
	}
	defer channel.Close()

	queue, err := channel.QueueDeclare(s.QueueName, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err, s.QueueName)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = channel.PublishWithContext(ctx, "", queue.Name, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err, s.QueueName)
	}

	return nil
}
