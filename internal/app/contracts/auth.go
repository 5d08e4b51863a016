package contracts

import (
	"context"
	"sefasevim-service/internal/app/models"
	"sefasevim-service/internal/pkg/dto/requests"
	"sefasevim-service/internal/pkg/dto/responses"
)

type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
}

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
}

type DashboardUsecase interface {
	GetCounts(ctx context.Context) (*responses.DashboardCounts, error)
}
