package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	APIKey    APIKeyConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
	Trade     TradeConfig
	Wallet    WalletConfig
	Rates     RatesConfig
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        int
	Username    string
	Password    string
	Database    string
	SSLMode     string
	MaxConns    int
	IdleConns   int
	AutoMigrate bool
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// APIKeyConfig holds the keys accepted on internal endpoints, keyed by calling service
type APIKeyConfig struct {
	Keys map[string]string
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}

// TradeConfig contains trade lifecycle configuration
type TradeConfig struct {
	FeePercent           decimal.Decimal
	PaymentWindowMinutes int
	AcceptWindowMinutes  int
	ExpirySweepSpec      string // cron spec for the expiry sweeper
}

// PaymentWindow returns the default buyer payment window
func (t TradeConfig) PaymentWindow() time.Duration {
	return time.Duration(t.PaymentWindowMinutes) * time.Minute
}

// AcceptWindow returns how long a maker has to accept a pending trade
func (t TradeConfig) AcceptWindow() time.Duration {
	return time.Duration(t.AcceptWindowMinutes) * time.Minute
}

// WalletConfig contains TRON wallet configuration.
// The wallet runs in demo mode when APIKey or HotWalletKey is empty.
type WalletConfig struct {
	Network       string
	APIKey        string
	HotWalletKey  string
	USDTContract  string
	MinWithdrawal decimal.Decimal

	// MinNairaWithdrawal is the NGN floor; MinWithdrawal applies to USDT
	MinNairaWithdrawal decimal.Decimal
}

// DemoMode reports whether on-chain calls are simulated
func (w WalletConfig) DemoMode() bool {
	return w.APIKey == "" || w.HotWalletKey == ""
}

// MinimumFor returns the smallest withdrawal allowed in currency
func (w WalletConfig) MinimumFor(currency Currency) decimal.Decimal {
	if currency == CurrencyNGN {
		return w.MinNairaWithdrawal
	}
	return w.MinWithdrawal
}

// RatesConfig contains exchange rate configuration
type RatesConfig struct {
	DefaultPair string
	CacheTTL    time.Duration
}

// RateLimitConfig contains rate limiter configuration for auth endpoints
type RateLimitConfig struct {
	Limit  int
	Period time.Duration
}

// MetricsConfig contains Prometheus configuration
type MetricsConfig struct {
	Enabled bool
	Path    string
}
