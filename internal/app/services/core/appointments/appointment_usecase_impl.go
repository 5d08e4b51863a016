package appointments

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
	"sync"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	AvailabilityUsecase   contracts.AvailabilityUsecase
	MailerService         contracts.MailerService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	availabilityUsecase contracts.AvailabilityUsecase,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			AvailabilityUsecase:   availabilityUsecase,
			MailerService:         mailerService,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.CreateAppointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.String("slot", request.Time),
	)

	location, err := time.LoadLocation(uc.InternalConfig.App.Timezone)
	if err != nil {
		location = time.UTC
	}
	date, err := time.ParseInLocation(constvars.DateLayoutYYYYMMDD, request.Date, location)
	if err != nil {
		return nil, exceptions.ErrInvalidDateParam(err)
	}

	// The submitted slot is re-checked against the current working hours;
	// the form client may hold a stale slot list.
	offered, err := uc.AvailabilityUsecase.OffersSlot(ctx, date, request.Time)
	if err != nil {
		return nil, err
	}
	if !offered {
		return nil, exceptions.ErrSlotNotAvailable(errors.New("slot is not offered for the requested date"))
	}

	slotTime, err := time.Parse("15:04", request.Time)
	if err != nil {
		return nil, exceptions.ErrSlotNotAvailable(err)
	}

	now := time.Now().In(location)
	appointmentDate := time.Date(date.Year(), date.Month(), date.Day(), slotTime.Hour(), 0, 0, 0, location)
	appointment := &models.Appointment{
		ClientName:      request.Name,
		ClientEmail:     request.Email,
		ClientPhone:     request.Phone,
		AppointmentDate: appointmentDate,
		Notes:           request.Notes,
		Status:          constvars.AppointmentStatusPending,
		CreatedAt:       now,
	}

	appointmentID, err := uc.AppointmentRepository.Create(ctx, appointment)
	if err != nil {
		return nil, err
	}

	uc.notifyOwner(ctx, appointment)

	return &responses.CreateAppointment{
		AppointmentID:   appointmentID,
		AppointmentDate: appointmentDate.Format(time.RFC3339),
		Status:          appointment.Status,
	}, nil
}

func (uc *appointmentUsecase) FindAll(ctx context.Context) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointments, err := uc.AppointmentRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		response = append(response, responses.Appointment{
			ID:              appointment.ID.Hex(),
			Name:            appointment.ClientName,
			Email:           appointment.ClientEmail,
			Phone:           appointment.ClientPhone,
			AppointmentDate: appointment.AppointmentDate.Format(time.RFC3339),
			Notes:           appointment.Notes,
			Status:          appointment.Status,
			CreatedAt:       appointment.CreatedAt.Format(time.RFC3339),
		})
	}
	return response, nil
}

func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("appointment_id", appointmentID),
		zap.String("status", request.Status),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrResourceNotFound(errors.New("appointment not found"))
	}

	return uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, request.Status)
}

// notifyOwner enqueues the owner notification; a mailer failure never fails
// the booking itself.
func (uc *appointmentUsecase) notifyOwner(ctx context.Context, appointment *models.Appointment) {
	payload := &contracts.EmailPayload{
		To:      uc.InternalConfig.App.OwnerNotificationEmail,
		Subject: constvars.EmailNewAppointmentSubject,
		Body: fmt.Sprintf(constvars.EmailBodyNewAppointmentFormat,
			appointment.ClientName,
			appointment.ClientEmail,
			appointment.ClientPhone,
			appointment.AppointmentDate.Format("2006-01-02 15:04"),
			appointment.Notes,
		),
	}
	if err := uc.MailerService.EnqueueEmail(ctx, payload); err != nil {
		uc.Log.Error("cannot enqueue appointment notification", zap.Error(err))
	}
}
