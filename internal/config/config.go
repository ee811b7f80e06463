// Package config loads service configuration from environment variables and
// an optional .env file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	LogLevel string         `mapstructure:"log_level"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// RedisConfig configures the optional shopping-list cache. An empty Addr
// disables Redis entirely.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// TelegramConfig configures the bot surface. An empty token disables the bot.
// AllowedChats is filled by parseChatIDs from the raw env string, never by
// the struct decode: viper would feed the comma-separated value straight
// into []int64 and choke on whitespace.
type TelegramConfig struct {
	BotToken     string  `mapstructure:"bot_token"`
	AllowedChats []int64 `mapstructure:"-"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("KONDATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("server.port", "KONDATE_SERVER_PORT")
	v.BindEnv("database.path", "KONDATE_DATABASE_PATH")
	v.BindEnv("redis.addr", "KONDATE_REDIS_ADDR")
	v.BindEnv("redis.password", "KONDATE_REDIS_PASSWORD")
	v.BindEnv("auth.jwt_secret", "KONDATE_JWT_SECRET")
	v.BindEnv("telegram.bot_token", "KONDATE_TELEGRAM_TOKEN")
	v.BindEnv("telegram.allowed_chats", "KONDATE_TELEGRAM_CHATS")
	v.BindEnv("log_level", "KONDATE_LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if chats := v.GetString("telegram.allowed_chats"); chats != "" {
		parsed, err := parseChatIDs(chats)
		if err != nil {
			return nil, err
		}
		cfg.Telegram.AllowedChats = parsed
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.idle_timeout", "120s")

	v.SetDefault("database.path", "data/kondate.db")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "10m")

	v.SetDefault("auth.token_ttl", "720h")

	v.SetDefault("log_level", "info")
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", cfg.Server.Port)
	}
	if cfg.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("jwt secret is required")
	}
	if cfg.Redis.Addr != "" && cfg.Redis.TTL <= 0 {
		return fmt.Errorf("invalid redis ttl")
	}
	return nil
}

func parseChatIDs(s string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		var id int64
		if _, err := fmt.Sscanf(part, "%d", &id); err != nil {
			return nil, fmt.Errorf("invalid telegram chat id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
