package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/skavtech/ict-platform/pkg/database"
)

// Config is the runtime configuration shared by every service binary.
type Config struct {
	ServiceName    string          `mapstructure:"service_name"`
	Environment    string          `mapstructure:"environment"`
	LogLevel       string          `mapstructure:"log_level"`
	HTTPPort       string          `mapstructure:"http_port"`
	JaegerEndpoint string          `mapstructure:"jaeger_endpoint"`
	Database       database.Config `mapstructure:"database"`
	Kafka          KafkaConfig     `mapstructure:"kafka"`
	JWT            JWTConfig       `mapstructure:"jwt"`
	Redis          RedisConfig     `mapstructure:"redis"`
	Admin          AdminConfig     `mapstructure:"admin"`
}

type KafkaConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Brokers []string `mapstructure:"brokers"`
	GroupID string   `mapstructure:"group_id"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	TTL    time.Duration `mapstructure:"ttl"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AdminConfig seeds the first administrator account of the user service.
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// Defaults are the per-service values that differ between binaries.
type Defaults struct {
	ServiceName string
	HTTPPort    string
	DBName      string
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// envBindings keeps the flat variable names used by the deployment manifests.
var envBindings = map[string]string{
	"service_name":      "OTEL_SERVICE_NAME",
	"environment":       "ENVIRONMENT",
	"log_level":         "LOG_LEVEL",
	"http_port":         "HTTP_PORT",
	"jaeger_endpoint":   "JAEGER_ENDPOINT",
	"database.host":     "DB_HOST",
	"database.port":     "DB_PORT",
	"database.user":     "DB_USER",
	"database.password": "DB_PASSWORD",
	"database.dbname":   "DB_NAME",
	"database.sslmode":  "DB_SSLMODE",
	"kafka.enabled":     "KAFKA_ENABLED",
	"kafka.brokers":     "KAFKA_BROKERS",
	"kafka.group_id":    "KAFKA_GROUP_ID",
	"jwt.secret":        "JWT_SECRET",
	"jwt.ttl":           "JWT_TTL",
	"redis.addr":        "REDIS_ADDR",
	"redis.password":    "REDIS_PASSWORD",
	"redis.db":          "REDIS_DB",
	"admin.username":    "ADMIN_USERNAME",
	"admin.password":    "ADMIN_PASSWORD",
}

// Load builds the configuration from defaults, an optional YAML file named
// by CONFIG_FILE, and environment variables, in increasing precedence.
func Load(d Defaults) (*Config, error) {
	v := viper.New()

	v.SetDefault("service_name", d.ServiceName)
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("http_port", d.HTTPPort)
	v.SetDefault("jaeger_endpoint", "http://localhost:14268/api/traces")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", d.DBName)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("kafka.enabled", true)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.group_id", d.ServiceName)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.ttl", 24*time.Hour)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("admin.username", "")
	v.SetDefault("admin.password", "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if err := v.BindEnv("config_file", "CONFIG_FILE"); err != nil {
		return nil, fmt.Errorf("bind env CONFIG_FILE: %w", err)
	}
	if path := v.GetString("config_file"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config failed: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	return &cfg, cfg.Validate()
}

// Validate checks the fields every service needs to start.
func (c *Config) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}
	if c.HTTPPort == "" {
		return fmt.Errorf("http_port is required")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers is required when kafka is enabled")
	}
	return nil
}
