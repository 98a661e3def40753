package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Session   SessionConfig
	Storage   StorageConfig
	SSO       SSOConfig       `mapstructure:"sso"`
	Tasks     TasksConfig     `mapstructure:"tasks"`
	Lottery   LotteryConfig   `mapstructure:"lottery"`
	Admin     AdminConfig     `mapstructure:"admin"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	MigrateOnly bool `mapstructure:"-"`
}

// AppConfig 对外展示的服务信息（GET /api）
type AppConfig struct {
	Production  string `mapstructure:"production"`
	Author      string `mapstructure:"author"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port         string
	Mode         string
	TemplateGlob string `mapstructure:"template_glob"`
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type SessionConfig struct {
	CookieName string        `mapstructure:"cookie_name"`
	Secret     string        `mapstructure:"secret"`
	TTL        time.Duration `mapstructure:"ttl_hours"`
	Secure     bool          `mapstructure:"secure"`
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	URLPrefix     string `mapstructure:"url_prefix"`
	MaxUploadMB   int64  `mapstructure:"max_upload_mb"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	MinioSecure   bool   `mapstructure:"minio_secure"`
	OSSEndpoint   string `mapstructure:"oss_endpoint"`
	OSSAccessKey  string `mapstructure:"oss_access_key"`
	OSSSecretKey  string `mapstructure:"oss_secret_key"`
	OSSBucket     string `mapstructure:"oss_bucket"`
}

// SSOConfig 统一身份认证（CAS）回退登录
type SSOConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	LoginURL      string        `mapstructure:"login_url"`
	SuccessMarker string        `mapstructure:"success_marker"`
	DESKeys       []string      `mapstructure:"des_keys"`
	Timeout       time.Duration `mapstructure:"timeout_seconds"`
	UserAgent     string        `mapstructure:"user_agent"`
}

type TasksConfig struct {
	EnforceExpiry bool `mapstructure:"enforce_expiry"`
}

type LotteryConfig struct {
	EveryoneLabel string `mapstructure:"everyone_label"`
}

type AdminConfig struct {
	SuperTag string `mapstructure:"super_tag"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.production", "Class Center All-in-one Service")
	v.SetDefault("app.environment", "prod")

	v.SetDefault("server.port", "8000")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.template_glob", "web/templates/*.html")

	v.SetDefault("database.port", 3306)
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parsetime", true)

	v.SetDefault("redis.host", "127.0.0.1")
	v.SetDefault("redis.port", 6379)

	v.SetDefault("session.cookie_name", "center_session")
	v.SetDefault("session.ttl_hours", 24)

	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.local_path", "upload")
	v.SetDefault("storage.url_prefix", "upload/")
	v.SetDefault("storage.max_upload_mb", 10)

	v.SetDefault("sso.enabled", false)
	v.SetDefault("sso.des_keys", []string{"1", "2", "3"})
	v.SetDefault("sso.timeout_seconds", 10)
	v.SetDefault("sso.user_agent", "Mozilla/5.0 (compatible; center-backend)")

	v.SetDefault("tasks.enforce_expiry", true)
	v.SetDefault("lottery.everyone_label", "全体")
	v.SetDefault("admin.super_tag", "管理员")

	v.SetDefault("rate_limit.max_requests", 600)
	v.SetDefault("rate_limit.window_minutes", 1)
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("CENTER")
	v.AutomaticEnv()
	setDefaults(v)

	// Database
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Session
	v.BindEnv("session.secret", "SESSION_SECRET")

	// Server
	v.BindEnv("server.mode", "SERVER_MODE")
	v.BindEnv("server.port", "SERVER_PORT")

	// Storage
	v.BindEnv("storage.type", "STORAGE_TYPE")
	v.BindEnv("storage.oss_endpoint", "OSS_ENDPOINT")
	v.BindEnv("storage.oss_access_key", "OSS_ACCESS_KEY")
	v.BindEnv("storage.oss_secret_key", "OSS_SECRET_KEY")
	v.BindEnv("storage.oss_bucket", "OSS_BUCKET")
	v.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	v.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	v.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	v.BindEnv("storage.minio_bucket", "MINIO_BUCKET")

	// SSO
	v.BindEnv("sso.enabled", "SSO_ENABLED")
	v.BindEnv("sso.login_url", "SSO_LOGIN_URL")
	v.BindEnv("sso.success_marker", "SSO_SUCCESS_MARKER")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Session.TTL = cfg.Session.TTL * time.Hour
	cfg.SSO.Timeout = cfg.SSO.Timeout * time.Second

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.Storage.Type == "local" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, 0755)
		}
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	// 生产环境校验会话密钥强度
	if c.Server.Mode == "release" && len(c.Session.Secret) < 32 {
		return fmt.Errorf("session secret is too short (%d chars), must be at least 32 characters in release mode", len(c.Session.Secret))
	}
	if c.SSO.Enabled {
		if c.SSO.LoginURL == "" {
			return fmt.Errorf("sso.login_url is required when sso is enabled")
		}
		if c.SSO.SuccessMarker == "" {
			return fmt.Errorf("sso.success_marker is required when sso is enabled")
		}
	}
	return nil
}
