package routers

import (
	"sefasevim-service/internal/app/delivery/http/middlewares"
	"sefasevim-service/internal/app/services/core/settings"

	"github.com/go-chi/chi/v5"
)

func attachWorkingHoursRoutes(router chi.Router, middlewares *middlewares.Middlewares, settingsController *settings.SettingsController) {
	router.Get("/", settingsController.GetWorkingHours)
	router.With(middlewares.Authenticate).Put("/", settingsController.SetWorkingHours)
}
