package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/wakacab/wakacab/internal/pkg/models"
)

// InitConfig loads configuration from environment variables, optionally
// seeded from a dotenv file for local development.
func InitConfig(configPath string) *models.Config {
	if configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Printf("config file not loaded, using environment: %v", err)
		}
	}

	v := viper.New()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	cfg := &models.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	// App
	v.SetDefault("app.name", "wakacab")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.version", "dev")
	v.SetDefault("app.debug", true)

	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 9990)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.shutdown_timeout", 30)

	// Database
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "wakacab")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "wakacab")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.idle_conns", 5)

	// Redis
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	// NSQ
	v.SetDefault("nsq.nsqd_address", "localhost:4150")
	v.SetDefault("nsq.channel", "wakacab")
	v.SetDefault("nsq.publish_enabled", true)

	// JWT
	v.SetDefault("jwt.issuer", "wakacab")
	v.SetDefault("jwt.expiration", 24)

	// Logger
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_path", "")

	// New Relic
	v.SetDefault("newrelic.enabled", false)
	v.SetDefault("newrelic.app_name", "wakacab")

	// Pricing: CFA franc fares, rounded to the nearest 25, 85/15 split
	v.SetDefault("pricing.currency", "XAF")
	v.SetDefault("pricing.round_to", 25)
	v.SetDefault("pricing.driver_share", 0.85)
	v.SetDefault("pricing.rates.TAXI.base", 500)
	v.SetDefault("pricing.rates.TAXI.per_km", 250)
	v.SetDefault("pricing.rates.MOTO.base", 300)
	v.SetDefault("pricing.rates.MOTO.per_km", 150)
	v.SetDefault("pricing.rates.DELIVERY.base", 400)
	v.SetDefault("pricing.rates.DELIVERY.per_km", 200)

	// Dispatch
	v.SetDefault("dispatch.min_distance_km", 0.3)
	v.SetDefault("dispatch.max_distance_km", 50.0)
	v.SetDefault("dispatch.search_radius_km", 5.0)
	v.SetDefault("dispatch.max_candidates", 10)
	v.SetDefault("dispatch.request_ttl", 5*time.Minute)
	v.SetDefault("dispatch.sweep_interval", 30*time.Second)
	v.SetDefault("dispatch.location_ttl", 2*time.Minute)
	v.SetDefault("dispatch.geohash_precision", 6)

	// Provider
	v.SetDefault("provider.base_url", "http://localhost:9980")
	v.SetDefault("provider.timeout", 10*time.Second)
}
