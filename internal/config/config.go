package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries every runtime setting, read from the environment with
// local-development defaults.
type Config struct {
	Port string

	MenuAPIBaseURL     string
	OrderAPIBaseURL    string
	AuthAPIBaseURL     string
	TelegramAPIBaseURL string

	RedisAddr  string
	CatalogDSN string
	// CatalogFallback selects the secondary catalog provider; "db"
	// enables the seeded MySQL snapshot, empty disables fallback.
	CatalogFallback string

	JWTSecret    string
	ServiceToken string

	TelegramBotUsername string
	WhatsAppNumber      string

	HTTPTimeout time.Duration
	PageSize    int

	KafkaBrokers     []string
	OrderEventsTopic string
	ConsumerGroup    string

	// DemoMode swaps the order service for an in-memory source driven
	// by the status simulator. Never enabled in production wiring.
	DemoMode bool
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getKafkaBrokerURLs() []string {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = "localhost:9092" // Default broker
	}
	return strings.Split(brokers, ",")
}

// Load reads the configuration from the environment.
func Load() *Config {
	timeout := 15 * time.Second
	if raw := os.Getenv("HTTP_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	pageSize := 6
	if raw := os.Getenv("ORDERS_PAGE_SIZE"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			pageSize = n
		}
	}

	return &Config{
		Port:                getEnv("PORT", "8090"),
		MenuAPIBaseURL:      getEnv("MENU_API_BASE_URL", "http://localhost:5270"),
		OrderAPIBaseURL:     getEnv("ORDER_API_BASE_URL", "http://localhost:5272"),
		AuthAPIBaseURL:      getEnv("AUTH_API_BASE_URL", "http://localhost:5271"),
		TelegramAPIBaseURL:  getEnv("TELEGRAM_API_BASE_URL", "http://localhost:5273"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		CatalogDSN:          getEnv("CATALOG_DSN", ""),
		CatalogFallback:     getEnv("CATALOG_FALLBACK", ""),
		JWTSecret:           getEnv("JWT_SECRET", "secret"),
		ServiceToken:        getEnv("SERVICE_TOKEN", ""),
		TelegramBotUsername: getEnv("TELEGRAM_BOT_USERNAME", "fasttechfoods_bot"),
		WhatsAppNumber:      getEnv("WHATSAPP_NUMBER", ""),
		HTTPTimeout:         timeout,
		PageSize:            pageSize,
		KafkaBrokers:        getKafkaBrokerURLs(),
		OrderEventsTopic:    getEnv("ORDER_EVENTS_TOPIC", "order-topic"),
		ConsumerGroup:       getEnv("CONSUMER_GROUP", "storefront-service-group"),
		DemoMode:            os.Getenv("DEMO_MODE") == "true",
	}
}
