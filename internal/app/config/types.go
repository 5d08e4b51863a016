package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		Minio          *minio.Client
		RabbitMQ       *amqp091.Connection
		Logger         *logrus.Logger
		ZapLogger      *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Minio    Minio
		RabbitMQ RabbitMQ
		SMTP     SMTP
		Logger   Logger
	}

	InternalConfig struct {
		App App
		JWT JWT
	}

	App struct {
		Env                          string
		Port                         string
		Version                      string
		Timezone                     string
		EndpointPrefix               string
		OwnerNotificationEmail       string
		RabbitMQMailerQueue          string
		MaxRequests                  int
		PublicFormMaxRequests        int
		PublicFormBlockTimeInMinute  int
		ShutdownTimeout              int
		WorkingHoursCacheTTLInSecond int
		MediaMaxUploadSizeInMB       int64
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	MongoDB struct {
		Host     string
		Port     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
