package routers

import (
	"sefasevim-service/internal/app/delivery/http/middlewares"
	"sefasevim-service/internal/app/services/core/messages"

	"github.com/go-chi/chi/v5"
)

func attachMessageRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	formLimiter *middlewares.RateLimiter,
	messageController *messages.MessageController,
) {
	router.With(formLimiter.Limit).Post("/", messageController.CreateMessage)

	router.With(middlewares.Authenticate).Get("/", messageController.FindAll)
	router.With(middlewares.Authenticate).Patch("/{messageID}/read", messageController.MarkRead)
	router.With(middlewares.Authenticate).Delete("/{messageID}", messageController.Delete)
}
