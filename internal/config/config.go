package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

var envFiles = []string{"config.env", ".env"}

type Config struct {
	App       AppConfig       `yaml:"app"        validate:"required"`
	Server    ServerConfig    `yaml:"server"     validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"     validate:"required"`
	Gin       GinConfig       `yaml:"gin"        validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"   validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler"  validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	JWT       JWTConfig       `yaml:"jwt"        validate:"required"`
	Email     EmailConfig     `yaml:"email"`
	Payment   PaymentConfig   `yaml:"payment"    validate:"required"`
	RateLimit RateLimitConfig `yaml:"rate_limit" validate:"required"`
	CORS      CORSConfig      `yaml:"cors"`
	Security  SecurityConfig  `yaml:"security"   validate:"required"`
}

type AppConfig struct {
	Env           string `yaml:"env"            env:"NODE_ENV"       env-default:"development"          validate:"required,oneof=development production"`
	UploadDir     string `yaml:"upload_dir"     env:"UPLOAD_DIR"     env-default:"web/static/img"       validate:"required"`
	TemplatesGlob string `yaml:"templates_glob" env:"TEMPLATES_GLOB" env-default:"web/templates/*.html" validate:"required"`
	StaticDir     string `yaml:"static_dir"     env:"STATIC_DIR"     env-default:"web/static"           validate:"required"`
}

func (a AppConfig) Production() bool {
	return a.Env == EnvProduction
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":3000" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel maps the configured level onto wbf's logger.Level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"natours"   validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"10m" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

type JWTConfig struct {
	Secret            string        `yaml:"secret"              env:"JWT_SECRET"              validate:"required,min=32"`
	ExpiresIn         time.Duration `yaml:"expires_in"          env:"JWT_EXPIRES_IN"          env-default:"2160h" validate:"gt=0"`
	CookieExpiresDays int           `yaml:"cookie_expires_days" env:"JWT_COOKIE_EXPIRES_IN"   env-default:"90"    validate:"min=1"`
}

func (j JWTConfig) CookieTTL() time.Duration {
	return time.Duration(j.CookieExpiresDays) * 24 * time.Hour
}

// EmailConfig points at an SMTP relay. An empty host disables sending.
type EmailConfig struct {
	Host     string `yaml:"host"     env:"EMAIL_HOST"     env-default:""`
	Port     int    `yaml:"port"     env:"EMAIL_PORT"     env-default:"25"                 validate:"min=1,max=65535"`
	Username string `yaml:"username" env:"EMAIL_USERNAME" env-default:""`
	Password string `yaml:"password" env:"EMAIL_PASSWORD" env-default:""`
	From     string `yaml:"from"     env:"EMAIL_FROM"     env-default:"hello@natours.io"   validate:"required,email"`
}

type PaymentConfig struct {
	SecretKey  string        `yaml:"secret_key"  env:"PAYMENT_SECRET_KEY"  validate:"required,min=32"`
	Currency   string        `yaml:"currency"    env:"PAYMENT_CURRENCY"    env-default:"usd" validate:"required,len=3"`
	SessionTTL time.Duration `yaml:"session_ttl" env:"PAYMENT_SESSION_TTL" env-default:"30m" validate:"gt=0"`
}

type RateLimitConfig struct {
	Rate string `yaml:"rate" env:"RATE_LIMIT" env-default:"100-H" validate:"required"`
}

type CORSConfig struct {
	Origins []string `yaml:"origins" env:"CORS_ORIGINS" env-separator:","`
}

type SecurityConfig struct {
	BcryptCost     int   `yaml:"bcrypt_cost"     env:"BCRYPT_COST"     env-default:"12"       validate:"min=4,max=31"`
	JSONLimit      int64 `yaml:"json_limit"      env:"JSON_LIMIT"      env-default:"10240"    validate:"gt=0"`
	MultipartLimit int64 `yaml:"multipart_limit" env:"MULTIPART_LIMIT" env-default:"10485760" validate:"gt=0"`
}

// MustLoad reads config.env or .env when present, then the environment.
func MustLoad() *Config {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(fmt.Sprintf("failed to read %s: %v", f, err))
		}
	}

	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
