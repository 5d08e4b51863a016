package routers

import (
	"sefasevim-service/internal/app/delivery/http/middlewares"
	"sefasevim-service/internal/app/services/core/content"

	"github.com/go-chi/chi/v5"
)

func attachContentRoutes(router chi.Router, middlewares *middlewares.Middlewares, contentController *content.ContentController) {
	router.Get("/{section}", contentController.GetSection)
	router.With(middlewares.Authenticate).Put("/{section}", contentController.UpdateSection)
}
