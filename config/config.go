package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	if os.Getenv("GO_ENV") == "local" {
		_ = godotenv.Load(".env")
	}

	if err := env.Parse(&Config); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Broker
	Redis
	Collaborators
	Partner
	Otel
}

type APP struct {
	PORT      string `env:"APP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

type DB struct {
	HOST     string `env:"DB_HOST" envDefault:"localhost"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT" envDefault:"5432"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`
	Seed     bool   `env:"DB_SEED" envDefault:"false"`
}

type Broker struct {
	Driver          string `env:"BROKER_DRIVER" envDefault:"amqp"`
	Host            string `env:"BROKER_HOST" envDefault:"rabbitmq"`
	Port            int    `env:"BROKER_PORT" envDefault:"5672"`
	User            string `env:"BROKER_USER" envDefault:"guest"`
	Password        string `env:"BROKER_PASSWORD" envDefault:"guest"`
	VHost           string `env:"BROKER_VHOST" envDefault:"/"`
	Exchange        string `env:"BROKER_EXCHANGE" envDefault:"grading_topic"`
	ExchangeType    string `env:"BROKER_EXCHANGE_TYPE" envDefault:"topic"`
	KafkaBrokers    string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	ConnectAttempts int    `env:"BROKER_CONNECT_ATTEMPTS" envDefault:"5"`
	DeadLetter      bool   `env:"DEAD_LETTER_ENABLED" envDefault:"true"`

	RetryMaxAttempts int           `env:"RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"RETRY_JITTER" envDefault:"true"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type Collaborators struct {
	CarrierURL      string `env:"DELIVERY_API_URL" envDefault:"https://personal-slqn7xxm.outsystemscloud.com/ESDProject_VanNova_/rest/JohnnyAPI/order"`
	CarrierAPIKey   string `env:"DELIVERY_API_KEY"`
	ToAddressLine1  string `env:"DELIVERY_TO_ADDRESS_LINE1" envDefault:"90 Stamford Rd"`
	ToAddressLine2  string `env:"DELIVERY_TO_ADDRESS_LINE2" envDefault:"#03-01"`
	ToZipCode       string `env:"DELIVERY_TO_ZIP_CODE" envDefault:"178903"`
	PaymentURL      string `env:"PAYMENT_URL" envDefault:"http://payment-service:5007/payment"`
	VerificationURL string `env:"CARD_VERIFICATION_URL" envDefault:"http://verification-service:5010/CardVerification"`
	NotificationURL string `env:"NOTIFICATION_URL" envDefault:"https://personal-gvra7qzz.outsystemscloud.com/Notification/rest/NotificationAPI/api/notification/receive"`
	PhoneNumber     string `env:"NOTIFICATION_PHONE_NUMBER"`

	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	HTTPRetryCount int           `env:"HTTP_RETRY_COUNT" envDefault:"2"`
}

type Partner struct {
	Enabled          bool          `env:"PARTNER_CALLBACK_ENABLED" envDefault:"true"`
	CallbackDelay    time.Duration `env:"PARTNER_CALLBACK_DELAY" envDefault:"0s"`
	AsynqConcurrency int           `env:"PARTNER_ASYNQ_CONCURRENCY" envDefault:"1"`
	AsynqQueue       string        `env:"PARTNER_ASYNQ_QUEUE" envDefault:"partner"`
}

type Otel struct {
	Endpoint   string `env:"OTEL_ENDPOINT"`
	AuthHeader string `env:"OTEL_AUTH_HEADER"`
	Insecure   bool   `env:"OTEL_INSECURE" envDefault:"true"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (b Broker) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: b.RetryMaxAttempts,
		BaseDelay:   b.RetryBaseDelay,
		MaxDelay:    b.RetryMaxDelay,
		Jitter:      b.RetryJitter,
	}
}

// AMQPURL builds the connection URL for the amqp driver.
func (b Broker) AMQPURL() string {
	vhost := b.VHost
	if vhost == "/" {
		vhost = ""
	}
	return fmt.Sprintf("amqp://%s:%s@%s:%d/%s", b.User, b.Password, b.Host, b.Port, vhost)
}

// SetupLogging configures the package level logrus logger.
func (a APP) SetupLogging() {
	if a.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(a.LogLevel)
	if err != nil {
		logrus.Warnf("unknown log level %q, falling back to info", a.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
