package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// defaultAdminPasswordHash is bcrypt("changeme"), development only. Override
// ADMIN_PASSWORD_HASH in any real deployment.
const defaultAdminPasswordHash = "$2b$10$op.4a0I/Z1KvoXL.gYD0u.5zFHQEn5rGqsSSpIjTRXWHeO/yJvNFG"

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	CORS     CORSConfig
	Log      LogConfig
	Admin    AdminConfig
	Schedule ScheduleConfig
	Reminder ReminderConfig
	Cities   CitiesConfig
	Cache    CacheConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// AdminConfig holds the single admin credential accepted by the login
// endpoint. The password is stored as a bcrypt digest, never in plain text.
type AdminConfig struct {
	Email        string
	PasswordHash string
}

// ScheduleConfig tunes the slot engine defaults.
type ScheduleConfig struct {
	Timezone     string
	SlotInterval time.Duration
}

// ReminderConfig controls the pre-opening reminder computation.
type ReminderConfig struct {
	Lead time.Duration
}

// CityConfig describes one selectable display city.
type CityConfig struct {
	Label    string
	Timezone string
}

// BoundingBox is a lat/lng rectangle, edges inclusive.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// CitiesConfig drives the two-way alternate-city selection: viewers whose
// coordinates fall inside PrimaryBox get Secondary as their alternate city,
// everyone else gets Primary.
type CitiesConfig struct {
	Primary    CityConfig
	Secondary  CityConfig
	PrimaryBox BoundingBox
}

// CacheConfig tunes the generated-slot cache.
type CacheConfig struct {
	SlotTTL time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Expiration: parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Admin = AdminConfig{
		Email:        v.GetString("ADMIN_EMAIL"),
		PasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
	}

	cfg.Schedule = ScheduleConfig{
		Timezone:     v.GetString("STORE_TIMEZONE"),
		SlotInterval: parseDuration(v.GetString("SLOT_INTERVAL"), 15*time.Minute),
	}

	cfg.Reminder = ReminderConfig{
		Lead: parseDuration(v.GetString("REMINDER_LEAD"), time.Hour),
	}

	cfg.Cities = CitiesConfig{
		Primary: CityConfig{
			Label:    v.GetString("CITY_PRIMARY_LABEL"),
			Timezone: v.GetString("CITY_PRIMARY_TIMEZONE"),
		},
		Secondary: CityConfig{
			Label:    v.GetString("CITY_SECONDARY_LABEL"),
			Timezone: v.GetString("CITY_SECONDARY_TIMEZONE"),
		},
		PrimaryBox: BoundingBox{
			MinLat: v.GetFloat64("CITY_PRIMARY_BOX_MIN_LAT"),
			MaxLat: v.GetFloat64("CITY_PRIMARY_BOX_MAX_LAT"),
			MinLng: v.GetFloat64("CITY_PRIMARY_BOX_MIN_LNG"),
			MaxLng: v.GetFloat64("CITY_PRIMARY_BOX_MAX_LNG"),
		},
	}

	cfg.Cache = CacheConfig{
		SlotTTL: parseDuration(v.GetString("SLOT_CACHE_TTL"), 5*time.Minute),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "storefront")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ADMIN_EMAIL", "admin@storefront.local")
	v.SetDefault("ADMIN_PASSWORD_HASH", defaultAdminPasswordHash)

	v.SetDefault("STORE_TIMEZONE", "America/New_York")
	v.SetDefault("SLOT_INTERVAL", "15m")
	v.SetDefault("REMINDER_LEAD", "1h")

	v.SetDefault("CITY_PRIMARY_LABEL", "New York")
	v.SetDefault("CITY_PRIMARY_TIMEZONE", "America/New_York")
	v.SetDefault("CITY_SECONDARY_LABEL", "Los Angeles")
	v.SetDefault("CITY_SECONDARY_TIMEZONE", "America/Los_Angeles")
	v.SetDefault("CITY_PRIMARY_BOX_MIN_LAT", 40.4774)
	v.SetDefault("CITY_PRIMARY_BOX_MAX_LAT", 40.9176)
	v.SetDefault("CITY_PRIMARY_BOX_MIN_LNG", -74.2591)
	v.SetDefault("CITY_PRIMARY_BOX_MAX_LNG", -73.7004)

	v.SetDefault("SLOT_CACHE_TTL", "5m")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
