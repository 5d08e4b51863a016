package contracts

import (
	"context"
	"sefasevim-service/internal/app/models"
	"sefasevim-service/internal/pkg/dto/requests"
	"sefasevim-service/internal/pkg/dto/responses"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *models.Service) (string, error)
	FindAll(ctx context.Context) ([]models.Service, error)
	FindByID(ctx context.Context, serviceID string) (*models.Service, error)
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, serviceID string) error
}

type ServiceUsecase interface {
	Create(ctx context.Context, request *requests.CreateService) (*responses.Service, error)
	FindAll(ctx context.Context) ([]responses.Service, error)
	FindByID(ctx context.Context, serviceID string) (*responses.Service, error)
	Update(ctx context.Context, serviceID string, request *requests.UpdateService) error
	Delete(ctx context.Context, serviceID string) error
}
