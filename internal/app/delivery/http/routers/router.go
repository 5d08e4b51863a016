package routers

import (
	"fmt"
	"sefasevim-service/internal/app/config"
	"sefasevim-service/internal/app/delivery/http/middlewares"
	"sefasevim-service/internal/app/services/core/appointments"
	"sefasevim-service/internal/app/services/core/auth"
	"sefasevim-service/internal/app/services/core/availability"
	"sefasevim-service/internal/app/services/core/content"
	"sefasevim-service/internal/app/services/core/dashboard"
	"sefasevim-service/internal/app/services/core/faqs"
	"sefasevim-service/internal/app/services/core/media"
	"sefasevim-service/internal/app/services/core/messages"
	"sefasevim-service/internal/app/services/core/services"
	"sefasevim-service/internal/app/services/core/settings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	availabilityController *availability.AvailabilityController,
	appointmentController *appointments.AppointmentController,
	messageController *messages.MessageController,
	contentController *content.ContentController,
	faqController *faqs.FaqController,
	serviceController *services.ServiceController,
	settingsController *settings.SettingsController,
	mediaController *media.MediaController,
	dashboardController *dashboard.DashboardController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	// The public booking and contact forms get a stricter, blocking limiter
	// on top of the global per-IP limit.
	formLimiter := middlewares.NewFormRateLimiter()

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/availability", func(r chi.Router) {
				attachAvailabilityRoutes(r, availabilityController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, formLimiter, appointmentController)
			})

			r.Route("/messages", func(r chi.Router) {
				attachMessageRoutes(r, middlewares, formLimiter, messageController)
			})

			r.Route("/content", func(r chi.Router) {
				attachContentRoutes(r, middlewares, contentController)
			})

			r.Route("/faqs", func(r chi.Router) {
				attachFaqRoutes(r, middlewares, faqController)
			})

			r.Route("/services", func(r chi.Router) {
				attachServiceRoutes(r, middlewares, serviceController)
			})

			r.Route("/working-hours", func(r chi.Router) {
				attachWorkingHoursRoutes(r, middlewares, settingsController)
			})

			r.Route("/media", func(r chi.Router) {
				attachMediaRoutes(r, middlewares, mediaController)
			})

			r.Route("/dashboard", func(r chi.Router) {
				attachDashboardRoutes(r, middlewares, dashboardController)
			})
		})
	})
}
