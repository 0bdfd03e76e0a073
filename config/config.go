package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"privatemsg/pkg/logger"
)

type Config struct {
	Server   ServerConfig
	Template TemplateConfig
	Redis    RedisConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port               string
	StaticDir          string
	RateLimitPerMinute int
}

type TemplateConfig struct {
	ModulePath  string
	TemplateDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Key      string
}

// Addr is empty when no host is configured.
func (c RedisConfig) Addr() string {
	if c.Host == "" {
		return ""
	}
	port := c.Port
	if port == "" {
		port = "6379"
	}
	return c.Host + ":" + port
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads .env files (if present) and then the environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := &Config{}

	cfg.Server.Port = getenv("PORT", "8080")
	cfg.Server.StaticDir = getenv("STATIC_DIR", "static")
	limit, err := getenvInt("RATE_LIMIT_PER_MINUTE", 1200)
	if err != nil {
		return nil, err
	}
	cfg.Server.RateLimitPerMinute = limit

	cfg.Template.ModulePath = getenv("PRIVATEMSG_MODULE_PATH", "privatemsg")
	cfg.Template.TemplateDir = os.Getenv("PRIVATEMSG_TEMPLATE_DIR")

	cfg.Redis.Host = os.Getenv("REDIS_HOST")
	cfg.Redis.Port = os.Getenv("REDIS_PORT")
	cfg.Redis.Username = os.Getenv("REDIS_USERNAME")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Redis.Key = getenv("ASSET_REGISTRY_KEY", "privatemsg:assets:css")

	cfg.Log.Level = getenv("LOG_LEVEL", "info")
	cfg.Log.Format = getenv("LOG_FORMAT", "text")
	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}
