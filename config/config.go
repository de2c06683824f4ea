package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/viper"
)

type Config struct {
	App        string `mapstructure:"app"`
	ListenAddr string `mapstructure:"listen_addr"`

	AuthSvcURL    string `mapstructure:"auth_svc_url"`
	CatalogSvcURL string `mapstructure:"catalog_svc_url"`
	OrderSvcURL   string `mapstructure:"order_svc_url"`
	StorefrontURL string `mapstructure:"storefront_url"`

	RedisAddr         string `mapstructure:"redis_addr"`
	KafkaBroker       string `mapstructure:"kafka_broker"`
	NotificationTopic string `mapstructure:"notification_topic"`

	NotificationDuration time.Duration `mapstructure:"notification_duration"`
	SearchDebounce       time.Duration `mapstructure:"search_debounce"`
	BadgePollInterval    time.Duration `mapstructure:"badge_poll_interval"`
	RemovalDelay         time.Duration `mapstructure:"removal_delay"`
	HTTPTimeout          time.Duration `mapstructure:"http_timeout"`
	SessionTTL           time.Duration `mapstructure:"session_ttl"`

	LogLevel       string   `mapstructure:"log_level"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

var defaults = map[string]interface{}{
	"app":                   "admin",
	"listen_addr":           ":8080",
	"auth_svc_url":          "http://localhost:8001",
	"catalog_svc_url":       "http://localhost:8002",
	"order_svc_url":         "http://localhost:8003",
	"storefront_url":        "http://localhost:5173",
	"redis_addr":            "",
	"kafka_broker":          "",
	"notification_topic":    "console-notifications",
	"notification_duration": "3s",
	"search_debounce":       "300ms",
	"badge_poll_interval":   "10s",
	"removal_delay":         "300ms",
	"http_timeout":          "10s",
	"session_ttl":           "24h",
	"log_level":             "info",
	"allowed_origins":       []string{"*"},
}

// Load reads .env (if present), then the optional config file, then
// environment variables, then v's bound flags. A nil v uses a fresh viper.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if v == nil {
		v = viper.New()
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	decoderConfigOption := viper.DecoderConfigOption(func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := v.Unmarshal(&cfg, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.App {
	case "admin", "storefront":
	default:
		return fmt.Errorf("unknown app %q (want admin or storefront)", c.App)
	}
	for name, value := range map[string]string{
		"auth_svc_url":    c.AuthSvcURL,
		"catalog_svc_url": c.CatalogSvcURL,
		"order_svc_url":   c.OrderSvcURL,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	return nil
}

// InitRedis connects and pings redis.
func InitRedis(addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

func NewKafkaReader(broker, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{broker},
		Topic:   topic,
		GroupID: groupID,
	})
}
