package config

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort               string   `mapstructure:"APP_PORT"`
	Env                   string   `mapstructure:"ENV"`
	LogLevel              string   `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin     int      `mapstructure:"MAX_REQUESTS_PER_MIN"`
	PlannerRequestsPerMin int      `mapstructure:"PLANNER_REQUESTS_PER_MIN"`
	CORSOrigins           []string `mapstructure:"CORS_ORIGINS"`

	// Gemini. An empty key disables the party planner.
	GeminiAPIKey   string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel    string        `mapstructure:"GEMINI_MODEL"`
	PlannerTimeout time.Duration `mapstructure:"PLANNER_TIMEOUT"`

	// Pending plans: "memory" or "redis".
	PlanStore string        `mapstructure:"PLAN_STORE"`
	PlanTTL   time.Duration `mapstructure:"PLAN_TTL"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisPlanDB   int    `mapstructure:"REDIS_PLAN_DB"`
}

const (
	PlanStoreMemory = "memory"
	PlanStoreRedis  = "redis"
)

var AppConfig Config

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("PLANNER_REQUESTS_PER_MIN", 10)
	v.SetDefault("CORS_ORIGINS", []string{"*"})
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("PLANNER_TIMEOUT", "30s")
	v.SetDefault("PLAN_STORE", PlanStoreMemory)
	v.SetDefault("PLAN_TTL", "30m")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_PLAN_DB", 3)
}

// Load reads config.yaml (from configFile, or "." and "./config"), the
// environment and defaults into a Config. A missing config file is not an
// error.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, err
		}
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.PlanStore != PlanStoreRedis {
		cfg.PlanStore = PlanStoreMemory
	}
	return cfg, nil
}

// LoadConfig fills AppConfig from the global viper instance.
func LoadConfig(configFile string) {
	cfg, err := Load(viper.GetViper(), configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// PlannerEnabled reports whether an AI credential is configured.
func (c Config) PlannerEnabled() bool {
	return c.GeminiAPIKey != ""
}
