package routers

import (
	"sefasevim-service/internal/app/delivery/http/middlewares"
	"sefasevim-service/internal/app/services/core/services"

	"github.com/go-chi/chi/v5"
)

func attachServiceRoutes(router chi.Router, middlewares *middlewares.Middlewares, serviceController *services.ServiceController) {
	router.Get("/", serviceController.FindAll)
	router.Get("/{serviceID}", serviceController.FindByID)

	router.With(middlewares.Authenticate).Post("/", serviceController.Create)
	router.With(middlewares.Authenticate).Put("/{serviceID}", serviceController.Update)
	router.With(middlewares.Authenticate).Delete("/{serviceID}", serviceController.Delete)
}
