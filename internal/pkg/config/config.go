package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/shopspring/decimal"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "nairaxchange")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "dev")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "nairaxchange")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 20)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 5)
	configs.Database.AutoMigrate = GetEnvAsBool("DB_AUTO_MIGRATE", false)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 1440)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "nairaxchange")

	// Internal API keys
	configs.APIKey.Keys = map[string]string{
		"scheduler": GetEnv("SCHEDULER_API_KEY", ""),
		"ops":       GetEnv("OPS_API_KEY", ""),
	}

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "nairaxchange")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")
	configs.Logger.Type = GetEnv("LOG_TYPE", "console")

	// Trade config
	configs.Trade.FeePercent = GetEnvAsDecimal("TRADE_FEE_PERCENT", decimal.NewFromFloat(0.5))
	configs.Trade.PaymentWindowMinutes = GetEnvAsInt("TRADE_PAYMENT_WINDOW_MINUTES", 30)
	configs.Trade.AcceptWindowMinutes = GetEnvAsInt("TRADE_ACCEPT_WINDOW_MINUTES", 15)
	configs.Trade.ExpirySweepSpec = GetEnv("TRADE_EXPIRY_SWEEP_SPEC", "@every 1m")

	// Wallet config
	configs.Wallet.Network = GetEnv("TRON_NETWORK", "shasta")
	configs.Wallet.APIKey = GetEnv("TRON_API_KEY", "")
	configs.Wallet.HotWalletKey = GetEnv("TRON_HOT_WALLET_KEY", "")
	configs.Wallet.USDTContract = GetEnv("TRON_USDT_CONTRACT", "")
	configs.Wallet.MinWithdrawal = GetEnvAsDecimal("WALLET_MIN_WITHDRAWAL", decimal.NewFromInt(1))
	configs.Wallet.MinNairaWithdrawal = GetEnvAsDecimal("WALLET_MIN_NAIRA_WITHDRAWAL", decimal.NewFromInt(1000))

	// Rates config
	configs.Rates.DefaultPair = GetEnv("RATES_DEFAULT_PAIR", "USDT/NGN")
	configs.Rates.CacheTTL = GetEnvAsDuration("RATES_CACHE_TTL", time.Minute)

	// Rate limiter config
	configs.RateLimit.Limit = GetEnvAsInt("RATE_LIMIT_AUTH", 10)
	configs.RateLimit.Period = GetEnvAsDuration("RATE_LIMIT_PERIOD", time.Minute)

	// Metrics config
	configs.Metrics.Enabled = GetEnvAsBool("METRICS_ENABLED", true)
	configs.Metrics.Path = GetEnv("METRICS_PATH", "/metrics")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid int64 value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsDecimal parses money-like values without going through float64
func GetEnvAsDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	valueStr := strings.TrimSpace(GetEnv(key, ""))
	if valueStr == "" {
		return defaultValue
	}

	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid decimal value for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}
