package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/pricing"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort     string
	RequestTimeout time.Duration

	MongoURI    string
	MongoDBName string

	RedisAddr     string
	RedisPassword string

	KafkaBrokers    []string
	OrderTopic      string
	ConsumerGroupID string

	FreeShippingThreshold int64
	FlatShippingFee       int64
	CurrencyCode          string
}

// Load reads configuration from a .env file when present and from the
// environment otherwise. The pricing knobs must never be hardcoded; they are
// configuration like everything else.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("REQUEST_TIMEOUT_SECONDS", 30)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB_NAME", "storefront")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("ORDER_TOPIC", "order-placed")
	v.SetDefault("CONSUMER_GROUP_ID", "storefront-cart")
	v.SetDefault("FREE_SHIPPING_THRESHOLD", 2000)
	v.SetDefault("FLAT_SHIPPING_FEE", 150)
	v.SetDefault("CURRENCY_CODE", "INR")

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
		// No .env file; environment and defaults carry everything.
	}

	return &Config{
		ServerPort:            v.GetString("SERVER_PORT"),
		RequestTimeout:        time.Duration(v.GetInt("REQUEST_TIMEOUT_SECONDS")) * time.Second,
		MongoURI:              v.GetString("MONGO_URI"),
		MongoDBName:           v.GetString("MONGO_DB_NAME"),
		RedisAddr:             v.GetString("REDIS_ADDR"),
		RedisPassword:         v.GetString("REDIS_PASSWORD"),
		KafkaBrokers:          strings.Split(v.GetString("KAFKA_BROKERS"), ","),
		OrderTopic:            v.GetString("ORDER_TOPIC"),
		ConsumerGroupID:       v.GetString("CONSUMER_GROUP_ID"),
		FreeShippingThreshold: v.GetInt64("FREE_SHIPPING_THRESHOLD"),
		FlatShippingFee:       v.GetInt64("FLAT_SHIPPING_FEE"),
		CurrencyCode:          v.GetString("CURRENCY_CODE"),
	}, nil
}

func (c *Config) Pricing() pricing.Config {
	return pricing.Config{
		FreeShippingThreshold: c.FreeShippingThreshold,
		FlatShippingFee:       c.FlatShippingFee,
		CurrencyCode:          c.CurrencyCode,
	}
}
