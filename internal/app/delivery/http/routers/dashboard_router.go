package routers

import (
	"sefasevim-service/internal/app/delivery/http/middlewares"
	"sefasevim-service/internal/app/services/core/dashboard"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *dashboard.DashboardController) {
	router.With(middlewares.Authenticate).Get("/counts", dashboardController.GetCounts)
}
