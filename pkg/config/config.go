package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv   string `envconfig:"APP_ENV" default:"dev"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	HTTPPort int    `envconfig:"HTTP_PORT" default:"8080"`

	AWSRegion        string `envconfig:"AWS_REGION" default:"us-east-1"`
	DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT" default:""`
	ProductTableName string `envconfig:"PRODUCT_TABLE_NAME" default:"products"`
	OrderTableName   string `envconfig:"ORDER_TABLE_NAME" default:"orders"`
	UserTableName    string `envconfig:"USER_TABLE_NAME" default:"users"`
	CartTableName    string `envconfig:"CART_TABLE_NAME" default:"carts"`

	RedisURL string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`

	KafkaBrokers  string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	OrderTopic    string `envconfig:"ORDER_EVENTS_TOPIC" default:"order-events"`
	PaymentTopic  string `envconfig:"PAYMENT_EVENTS_TOPIC" default:"payment-events"`
	EventsEnabled bool   `envconfig:"EVENTS_ENABLED" default:"true"`

	SeedConcurrency int `envconfig:"SEED_CONCURRENCY" default:"4"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
