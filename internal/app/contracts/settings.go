package contracts

import (
	"context"
	"sefasevim-service/internal/app/models"
	"sefasevim-service/internal/pkg/dto/requests"
	"sefasevim-service/internal/pkg/dto/responses"
)

type SettingsRepository interface {
	// FindWorkingHours returns nil without error when no working-hours
	// document has been stored yet; callers substitute the default schedule.
	FindWorkingHours(ctx context.Context) (*models.WorkingHoursDocument, error)
	ReplaceWorkingHours(ctx context.Context, document *models.WorkingHoursDocument) error
}

type SettingsUsecase interface {
	GetWorkingHours(ctx context.Context) (*responses.WorkingHours, error)
	SetWorkingHours(ctx context.Context, request *requests.SetWorkingHours) error
}
