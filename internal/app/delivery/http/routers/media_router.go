package routers

import (
	"sefasevim-service/internal/app/delivery/http/middlewares"
	"sefasevim-service/internal/app/services/core/media"

	"github.com/go-chi/chi/v5"
)

func attachMediaRoutes(router chi.Router, middlewares *middlewares.Middlewares, mediaController *media.MediaController) {
	router.With(middlewares.Authenticate).Post("/", mediaController.Upload)
	router.With(middlewares.Authenticate).Get("/", mediaController.FindAll)
	router.With(middlewares.Authenticate).Delete("/", mediaController.Delete)
}
