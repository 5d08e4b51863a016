package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sefasevim-service/internal/app/config"
	"sefasevim-service/internal/app/delivery/http/middlewares"
	"sefasevim-service/internal/app/delivery/http/routers"
	"sefasevim-service/internal/app/drivers/database"
	"sefasevim-service/internal/app/drivers/logger"
	smtpdriver "sefasevim-service/internal/app/drivers/mailer"
	"sefasevim-service/internal/app/drivers/messaging"
	"sefasevim-service/internal/app/drivers/storage"
	"sefasevim-service/internal/app/services/core/appointments"
	"sefasevim-service/internal/app/services/core/auth"
	"sefasevim-service/internal/app/services/core/availability"
	"sefasevim-service/internal/app/services/core/content"
	"sefasevim-service/internal/app/services/core/dashboard"
	"sefasevim-service/internal/app/services/core/faqs"
	"sefasevim-service/internal/app/services/core/media"
	"sefasevim-service/internal/app/services/core/messages"
	therapyservices "sefasevim-service/internal/app/services/core/services"
	"sefasevim-service/internal/app/services/core/settings"
	mailerworker "sefasevim-service/internal/app/services/shared/mailer"
	"sefasevim-service/internal/app/services/shared/redis"
	sharedstorage "sefasevim-service/internal/app/services/shared/storage"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	bootstrapingTheApp(workerCtx, config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	stopWorker()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(workerCtx context.Context, bootstrap config.Bootstrap) {
	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	mailerService := mailerworker.NewMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQMailerQueue, bootstrap.ZapLogger)

	smtpClient := smtpdriver.NewSMTPClient(bootstrap.DriverConfig)
	worker := mailerworker.NewWorker(bootstrap.RabbitMQ, smtpClient, bootstrap.InternalConfig.App.RabbitMQMailerQueue, bootstrap.ZapLogger)
	go func() {
		if err := worker.Run(workerCtx); err != nil && workerCtx.Err() == nil {
			bootstrap.ZapLogger.Error("mailer worker stopped", zap.Error(err))
		}
	}()

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, redisRepository, bootstrap.InternalConfig)

	// Settings and availability
	settingsMongoRepository := settings.NewSettingsMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	availabilityUsecase := availability.NewAvailabilityUsecase(settingsMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.ZapLogger)
	availabilityController := availability.NewAvailabilityController(bootstrap.ZapLogger, availabilityUsecase)
	settingsUsecase := settings.NewSettingsUsecase(settingsMongoRepository, redisRepository, bootstrap.ZapLogger)
	settingsController := settings.NewSettingsController(bootstrap.ZapLogger, settingsUsecase)

	// Appointments
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentMongoRepository, availabilityUsecase, mailerService, bootstrap.InternalConfig, bootstrap.ZapLogger)
	appointmentController := appointments.NewAppointmentController(bootstrap.ZapLogger, appointmentUsecase)

	// Messages
	messageMongoRepository := messages.NewMessageMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	messageUsecase := messages.NewMessageUsecase(messageMongoRepository, mailerService, bootstrap.InternalConfig, bootstrap.ZapLogger)
	messageController := messages.NewMessageController(bootstrap.ZapLogger, messageUsecase)

	// Site content
	contentMongoRepository := content.NewContentMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	contentUsecase := content.NewContentUsecase(contentMongoRepository, bootstrap.ZapLogger)
	contentController := content.NewContentController(bootstrap.ZapLogger, contentUsecase)

	faqMongoRepository := faqs.NewFaqMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	faqUsecase := faqs.NewFaqUsecase(faqMongoRepository, bootstrap.ZapLogger)
	faqController := faqs.NewFaqController(bootstrap.ZapLogger, faqUsecase)

	serviceMongoRepository := therapyservices.NewServiceMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	serviceUsecase := therapyservices.NewServiceUsecase(serviceMongoRepository, bootstrap.ZapLogger)
	serviceController := therapyservices.NewServiceController(bootstrap.ZapLogger, serviceUsecase)

	// Media
	mediaUsecase := media.NewMediaUsecase(minioStorage, bootstrap.InternalConfig, bootstrap.ZapLogger)
	mediaController := media.NewMediaController(bootstrap.ZapLogger, mediaUsecase)

	// Auth and dashboard
	adminMongoRepository := auth.NewAdminMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	authUsecase := auth.NewAuthUsecase(adminMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.ZapLogger)
	authController := auth.NewAuthController(bootstrap.ZapLogger, authUsecase)

	dashboardUsecase := dashboard.NewDashboardUsecase(appointmentMongoRepository, messageMongoRepository, bootstrap.ZapLogger)
	dashboardController := dashboard.NewDashboardController(bootstrap.ZapLogger, dashboardUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		availabilityController,
		appointmentController,
		messageController,
		contentController,
		faqController,
		serviceController,
		settingsController,
		mediaController,
		dashboardController,
	)
}
