package services

import (
	"context"
	"errors"
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

type serviceUsecase struct {
	ServiceRepository contracts.ServiceRepository
	Log               *zap.Logger
}

var (
	serviceUsecaseInstance contracts.ServiceUsecase
	onceServiceUsecase     sync.Once
)

func NewServiceUsecase(serviceRepository contracts.ServiceRepository, logger *zap.Logger) contracts.ServiceUsecase {
	onceServiceUsecase.Do(func() {
		serviceUsecaseInstance = &serviceUsecase{
			ServiceRepository: serviceRepository,
			Log:               logger,
		}
	})
	return serviceUsecaseInstance
}

func (uc *serviceUsecase) Create(ctx context.Context, request *requests.CreateService) (*responses.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("title", request.Title),
	)

	service := &models.Service{
		Title:       request.Title,
		Description: request.Description,
		Icon:        request.Icon,
		Order:       request.Order,
		CreatedAt:   time.Now(),
	}

	serviceID, err := uc.ServiceRepository.Create(ctx, service)
	if err != nil {
		return nil, err
	}

	return &responses.Service{
		ID:          serviceID,
		Title:       service.Title,
		Description: service.Description,
		Icon:        service.Icon,
		Order:       service.Order,
	}, nil
}

func (uc *serviceUsecase) FindAll(ctx context.Context) ([]responses.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	services, err := uc.ServiceRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Service, 0, len(services))
	for _, service := range services {
		response = append(response, responses.Service{
			ID:          service.ID.Hex(),
			Title:       service.Title,
			Description: service.Description,
			Icon:        service.Icon,
			Order:       service.Order,
		})
	}
	return response, nil
}

func (uc *serviceUsecase) FindByID(ctx context.Context, serviceID string) (*responses.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("service_id", serviceID),
	)

	service, err := uc.ServiceRepository.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, exceptions.ErrResourceNotFound(errors.New("service not found"))
	}

	return &responses.Service{
		ID:          service.ID.Hex(),
		Title:       service.Title,
		Description: service.Description,
		Icon:        service.Icon,
		Order:       service.Order,
	}, nil
}

func (uc *serviceUsecase) Update(ctx context.Context, serviceID string, request *requests.UpdateService) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("service_id", serviceID),
	)

	service, err := uc.ServiceRepository.FindByID(ctx, serviceID)
	if err != nil {
		return err
	}
	if service == nil {
		return exceptions.ErrResourceNotFound(errors.New("service not found"))
	}

	service.Title = request.Title
	service.Description = request.Description
	service.Icon = request.Icon
	service.Order = request.Order
	service.UpdatedAt = time.Now()

	return uc.ServiceRepository.Update(ctx, service)
}

func (uc *serviceUsecase) Delete(ctx context.Context, serviceID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("service_id", serviceID),
	)
	return uc.ServiceRepository.Delete(ctx, serviceID)
}
