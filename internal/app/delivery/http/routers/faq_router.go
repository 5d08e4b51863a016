package routers

import (
	"sefasevim-service/internal/app/delivery/http/middlewares"
	"sefasevim-service/internal/app/services/core/faqs"

	"github.com/go-chi/chi/v5"
)

func attachFaqRoutes(router chi.Router, middlewares *middlewares.Middlewares, faqController *faqs.FaqController) {
	router.Get("/", faqController.FindAll)
	router.With(middlewares.Authenticate).Put("/", faqController.ReplaceAll)
}
