package routers

import (
	"sefasevim-service/internal/app/delivery/http/middlewares"
	"sefasevim-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	formLimiter *middlewares.RateLimiter,
	appointmentController *appointments.AppointmentController,
) {
	router.With(formLimiter.Limit).Post("/", appointmentController.CreateAppointment)

	router.With(middlewares.Authenticate).Get("/", appointmentController.FindAll)
	router.With(middlewares.Authenticate).Patch("/{appointmentID}/status", appointmentController.UpdateStatus)
}
