package contracts

import (
	"context"
	"sefasevim-service/internal/app/models"
	"sefasevim-service/internal/pkg/dto/requests"
	"sefasevim-service/internal/pkg/dto/responses"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) (string, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID, status string) error
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.CreateAppointment, error)
	FindAll(ctx context.Context) ([]responses.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) error
}
