package dashboard

import (
	"context"
	"sefasevim-service/internal/app/contracts"
	"sefasevim-service/internal/pkg/constvars"
	"sefasevim-service/internal/pkg/dto/responses"
	"sync"

	"go.uber.org/zap"
)

type dashboardUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	MessageRepository     contracts.MessageRepository
	Log                   *zap.Logger
}

var (
	dashboardUsecaseInstance contracts.DashboardUsecase
	onceDashboardUsecase     sync.Once
)

func NewDashboardUsecase(
	appointmentRepository contracts.AppointmentRepository,
	messageRepository contracts.MessageRepository,
	logger *zap.Logger,
) contracts.DashboardUsecase {
	onceDashboardUsecase.Do(func() {
		dashboardUsecaseInstance = &dashboardUsecase{
			AppointmentRepository: appointmentRepository,
			MessageRepository:     messageRepository,
			Log:                   logger,
		}
	})
	return dashboardUsecaseInstance
}

func (uc *dashboardUsecase) GetCounts(ctx context.Context) (*responses.DashboardCounts, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.GetCounts called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	totalAppointments, err := uc.AppointmentRepository.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	pendingAppointments, err := uc.AppointmentRepository.CountByStatus(ctx, constvars.AppointmentStatusPending)
	if err != nil {
		return nil, err
	}

	unreadMessages, err := uc.MessageRepository.CountUnread(ctx)
	if err != nil {
		return nil, err
	}

	return &responses.DashboardCounts{
		TotalAppointments:   totalAppointments,
		PendingAppointments: pendingAppointments,
		UnreadMessages:      unreadMessages,
	}, nil
}
