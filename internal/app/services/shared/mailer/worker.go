package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"sefasevim-service/internal/app/contracts"
	"sefasevim-service/internal/app/drivers/mailer"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Worker drains the mailer queue and delivers each payload over SMTP.
// Failed deliveries are nacked without requeue so a poisoned message
// cannot block the queue.
type Worker struct {
	Connection *amqp091.Connection
	SMTPClient *mailer.SMTPClient
	QueueName  string
	Log        *zap.Logger
}

func NewWorker(conn *amqp091.Connection, smtpClient *mailer.SMTPClient, queueName string, logger *zap.Logger) *Worker {
	return &Worker{
		Connection: conn,
		SMTPClient: smtpClient,
		QueueName:  queueName,
		Log:        logger,
	}
}

func (w *Worker) Run(ctx context.Context) error {
	channel, err := w.Connection.Channel()
	if err != nil {
		return err
	}
	defer channel.Close()

	queue, err := channel.QueueDeclare(w.QueueName, true, false, false, false, nil)
	if err != nil {
		return err
	}

	deliveries, err := channel.Consume(queue.Name, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	w.Log.Info("mailer worker started", zap.String("queue", w.QueueName))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return amqp091.ErrClosed
			}
			w.handleDelivery(delivery)
		}
	}
}

func (w *Worker) handleDelivery(delivery amqp091.Delivery) {
	var payload contracts.EmailPayload
	if err := json.Unmarshal(delivery.Body, &payload); err != nil {
		w.Log.Error("cannot decode mailer payload", zap.Error(err))
		_ = delivery.Nack(false, false)
		return
	}

	if err := w.sendEmail(&payload); err != nil {
		w.Log.Error("cannot send email",
			zap.String("to", payload.To),
			zap.Error(err),
		)
		_ = delivery.Nack(false, false)
		return
	}

	w.Log.Info("email sent", zap.String("to", payload.To))
	_ = delivery.Ack(false)
}

func (w *Worker) sendEmail(payload *contracts.EmailPayload) error {
	address := fmt.Sprintf("%s:%d", w.SMTPClient.Host, w.SMTPClient.Port)

	var message strings.Builder
	message.WriteString(fmt.Sprintf("From: %s\r\n", w.SMTPClient.EmailSender))
	message.WriteString(fmt.Sprintf("To: %s\r\n", payload.To))
	message.WriteString(fmt.Sprintf("Subject: %s\r\n", payload.Subject))
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	message.WriteString("\r\n")
	message.WriteString(payload.Body)

	return smtp.SendMail(address, w.SMTPClient.Auth, w.SMTPClient.EmailSender, []string{payload.To}, []byte(message.String()))
}
