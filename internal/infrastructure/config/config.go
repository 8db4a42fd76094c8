package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	HTTPPort        int
	GRPCPort        int
	DB              DBConfig
	Kafka           KafkaConfig
	DefaultStrategy string
	Processors      []ProcessorConfig
	JWTSecret       string
	LogLevel        string
	LogFormat       string
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

type KafkaConfig struct {
	Brokers []string
}

// ProcessorConfig describes one payment backend to register at startup.
// Kind selects the adapter implementation; the rest is its capability profile
// and credentials.
type ProcessorConfig struct {
	Kind             string
	Name             string
	Active           bool
	FeePercentage    float64
	FeeFixed         float64
	ReliabilityScore float64
	Currencies       []string
	Countries        []string
	Credentials      map[string]string
}

// Load reads configuration from environment variables with defaults. The
// shipped processor profiles mirror each backend's published pricing; fees
// and flags are overridable per processor.
func Load() Config {
	return Config{
		HTTPPort:        getEnvInt("HTTP_PORT", 8080),
		GRPCPort:        getEnvInt("GRPC_PORT", 9090),
		DefaultStrategy: getEnv("ROUTER_DEFAULT_STRATEGY", "best_price"),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "router"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "payment_router"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
			MaxConns: int32(getEnvInt("DB_MAX_CONNS", 20)),
			MinConns: int32(getEnvInt("DB_MIN_CONNS", 5)),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvList("KAFKA_BROKERS", []string{"localhost:9092"}),
		},
		JWTSecret: getEnv("JWT_SECRET", ""),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		Processors: []ProcessorConfig{
			{
				Kind:             "stripe",
				Name:             getEnv("STRIPE_NAME", "Stripe"),
				Active:           getEnvBool("STRIPE_ACTIVE", true),
				FeePercentage:    getEnvFloat("STRIPE_FEE_PERCENTAGE", 2.9),
				FeeFixed:         getEnvFloat("STRIPE_FEE_FIXED", 0.30),
				ReliabilityScore: getEnvFloat("STRIPE_RELIABILITY_SCORE", 95),
				Currencies:       getEnvList("STRIPE_CURRENCIES", []string{"USD", "EUR", "GBP", "NGN"}),
				Countries:        getEnvList("STRIPE_COUNTRIES", []string{"US", "UK", "NG", "*"}),
				Credentials:      map[string]string{"api_key": getEnv("STRIPE_API_KEY", "")},
			},
			{
				Kind:             "paypal",
				Name:             getEnv("PAYPAL_NAME", "PayPal"),
				Active:           getEnvBool("PAYPAL_ACTIVE", true),
				FeePercentage:    getEnvFloat("PAYPAL_FEE_PERCENTAGE", 3.4),
				FeeFixed:         getEnvFloat("PAYPAL_FEE_FIXED", 0.30),
				ReliabilityScore: getEnvFloat("PAYPAL_RELIABILITY_SCORE", 90),
				Currencies:       getEnvList("PAYPAL_CURRENCIES", []string{"USD", "EUR", "GBP", "CAD", "AUD"}),
				Countries:        getEnvList("PAYPAL_COUNTRIES", []string{"US", "CA", "UK", "AU", "DE", "FR", "*"}),
				Credentials: map[string]string{
					"client_id":     getEnv("PAYPAL_CLIENT_ID", ""),
					"client_secret": getEnv("PAYPAL_CLIENT_SECRET", ""),
				},
			},
			{
				Kind:             "flutterwave",
				Name:             getEnv("FLUTTERWAVE_NAME", "Flutterwave"),
				Active:           getEnvBool("FLUTTERWAVE_ACTIVE", true),
				FeePercentage:    getEnvFloat("FLUTTERWAVE_FEE_PERCENTAGE", 1.4),
				FeeFixed:         getEnvFloat("FLUTTERWAVE_FEE_FIXED", 0.20),
				ReliabilityScore: getEnvFloat("FLUTTERWAVE_RELIABILITY_SCORE", 85),
				Currencies:       getEnvList("FLUTTERWAVE_CURRENCIES", []string{"NGN", "USD", "GHS", "KES", "ZAR"}),
				Countries:        getEnvList("FLUTTERWAVE_COUNTRIES", []string{"NG", "GH", "KE", "ZA", "US"}),
				Credentials:      map[string]string{"api_key": getEnv("FLUTTERWAVE_API_KEY", "")},
			},
		},
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvList(key string, defaultVal []string) []string {
	if val := os.Getenv(key); val != "" {
		parts := strings.Split(val, ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		return parts
	}
	return defaultVal
}
