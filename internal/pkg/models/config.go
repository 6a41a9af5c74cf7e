package models

import "time"

// Config holds all application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	NSQ      NSQConfig      `mapstructure:"nsq"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	NewRelic NewRelicConfig `mapstructure:"newrelic"`
	Pricing  PricingConfig  `mapstructure:"pricing"`
	Dispatch DispatchConfig `mapstructure:"dispatch"`
	Provider ProviderConfig `mapstructure:"provider"`
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
	Debug       bool   `mapstructure:"debug"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	SSLMode   string `mapstructure:"ssl_mode"`
	MaxConns  int    `mapstructure:"max_conns"`
	IdleConns int    `mapstructure:"idle_conns"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// NSQConfig holds NSQ configuration
type NSQConfig struct {
	NSQDAddress    string   `mapstructure:"nsqd_address"`
	LookupdAddrs   []string `mapstructure:"lookupd_addrs"`
	Channel        string   `mapstructure:"channel"`
	PublishEnabled bool     `mapstructure:"publish_enabled"`
}

// JWTConfig holds JWT validation configuration
type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Issuer     string `mapstructure:"issuer"`
	Expiration int    `mapstructure:"expiration"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	FilePath string `mapstructure:"file_path"`
}

// NewRelicConfig holds New Relic configuration
type NewRelicConfig struct {
	LicenseKey string `mapstructure:"license_key"`
	AppName    string `mapstructure:"app_name"`
	Enabled    bool   `mapstructure:"enabled"`
}

// RideRate holds the pricing parameters for a single ride type
type RideRate struct {
	Base  float64 `mapstructure:"base"`
	PerKm float64 `mapstructure:"per_km"`
}

// PricingConfig holds fare computation parameters
type PricingConfig struct {
	Currency    string              `mapstructure:"currency"`
	RoundTo     int64               `mapstructure:"round_to"`
	DriverShare float64             `mapstructure:"driver_share"`
	Rates       map[string]RideRate `mapstructure:"rates"`
}

// DispatchConfig holds ride dispatch parameters
type DispatchConfig struct {
	MinDistanceKm    float64       `mapstructure:"min_distance_km"`
	MaxDistanceKm    float64       `mapstructure:"max_distance_km"`
	SearchRadiusKm   float64       `mapstructure:"search_radius_km"`
	MaxCandidates    int           `mapstructure:"max_candidates"`
	RequestTTL       time.Duration `mapstructure:"request_ttl"`
	SweepInterval    time.Duration `mapstructure:"sweep_interval"`
	LocationTTL      time.Duration `mapstructure:"location_ttl"`
	GeohashPrecision uint          `mapstructure:"geohash_precision"`
}

// ProviderConfig holds the mobile money provider gateway configuration
type ProviderConfig struct {
	BaseURL       string        `mapstructure:"base_url"`
	APIKey        string        `mapstructure:"api_key"`
	WebhookSecret string        `mapstructure:"webhook_secret"`
	Timeout       time.Duration `mapstructure:"timeout"`
}
