package config

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用全局配置结构体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"db"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Log       LogConfig       `mapstructure:"log"`
	Policy    PolicyConfig    `mapstructure:"policy"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Port         int        `mapstructure:"port"`
	ServiceName  string     `mapstructure:"service_name"`
	MaxBodyBytes int64      `mapstructure:"max_body_bytes"`
	CORS         CORSConfig `mapstructure:"cors"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"` // postgres | sqlite
	Path            string `mapstructure:"path"`   // 仅 sqlite
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Name            string `mapstructure:"name"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	SSLMode         string `mapstructure:"sslmode"`
	Timezone        string `mapstructure:"timezone"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`  // 连接最大生命周期（分钟）
	ConnMaxIdleTime int    `mapstructure:"conn_max_idle_time"` // 空闲连接最大存活时间（分钟）
}

// DSN 生成 PostgreSQL 连接字符串
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// SQLiteDSN 生成 SQLite 连接字符串（开启外键以支持级联删除）
func (c *DatabaseConfig) SQLiteDSN() string {
	return c.Path + "?_foreign_keys=on&_busy_timeout=5000"
}

// RedisConfig Redis 配置（仅用于限流计数）
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig JWT 认证配置
type AuthConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PolicyConfig 业务规则配置
type PolicyConfig struct {
	MinShiftDuration        time.Duration `mapstructure:"min_shift_duration"`
	MaxShiftDuration        time.Duration `mapstructure:"max_shift_duration"`
	PastTolerance           time.Duration `mapstructure:"past_tolerance"` // 开始时间允许早于当前的最大幅度
	CheckOverlap            bool          `mapstructure:"check_overlap"`
	BlockStartedShiftDelete bool          `mapstructure:"block_started_shift_delete"`
	DeleteGrace             time.Duration `mapstructure:"delete_grace"`
	PhonePattern            string        `mapstructure:"phone_pattern"`
	PhoneExample            string        `mapstructure:"phone_example"`
}

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// DefaultPolicy 默认业务规则（24 小时上限，允许跨夜）
func DefaultPolicy() PolicyConfig {
	return PolicyConfig{
		MinShiftDuration:        15 * time.Minute,
		MaxShiftDuration:        24 * time.Hour,
		PastTolerance:           15 * time.Minute,
		CheckOverlap:            true,
		BlockStartedShiftDelete: true,
		DeleteGrace:             15 * time.Minute,
		PhonePattern:            `^\+44\d{10}$`,
		PhoneExample:            "+447700900123",
	}
}

// Load 从配置文件与环境变量加载配置
// 优先级：环境变量 > 配置文件 > 默认值
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 默认值 ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.service_name", "shifts-logger")
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.path", "shifts.db")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "shifts_logger")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime", 60)
	v.SetDefault("db.conn_max_idle_time", 30)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.enabled", true)
	v.SetDefault("auth.token_ttl", "720h")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	p := DefaultPolicy()
	v.SetDefault("policy.min_shift_duration", p.MinShiftDuration.String())
	v.SetDefault("policy.max_shift_duration", p.MaxShiftDuration.String())
	v.SetDefault("policy.past_tolerance", p.PastTolerance.String())
	v.SetDefault("policy.check_overlap", p.CheckOverlap)
	v.SetDefault("policy.block_started_shift_delete", p.BlockStartedShiftDelete)
	v.SetDefault("policy.delete_grace", p.DeleteGrace.String())
	v.SetDefault("policy.phone_pattern", p.PhonePattern)
	v.SetDefault("policy.phone_example", p.PhoneExample)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests", 120)
	v.SetDefault("rate_limit.window", "1m")

	// ── 配置文件 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 环境变量 ──
	v.SetEnvPrefix("SHIFTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		// 配置文件不存在时仅依赖默认值和环境变量
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验关键配置项
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("配置校验失败: server.port 必须在 1-65535 之间")
	}
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("配置校验失败: db.driver 仅支持 postgres 或 sqlite，实际为 %q", c.Database.Driver)
	}
	if c.Auth.Enabled && len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("配置校验失败: auth.jwt_secret 长度不能少于 16 字符")
	}
	if c.RateLimit.Enabled && (c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0) {
		return fmt.Errorf("配置校验失败: rate_limit.requests 与 rate_limit.window 必须为正数")
	}
	return c.Policy.Validate()
}

// Validate 校验业务规则配置
func (p *PolicyConfig) Validate() error {
	if p.MinShiftDuration <= 0 {
		return fmt.Errorf("配置校验失败: policy.min_shift_duration 必须为正数")
	}
	if p.MaxShiftDuration < p.MinShiftDuration {
		return fmt.Errorf("配置校验失败: policy.max_shift_duration 不能小于 min_shift_duration")
	}
	if p.MaxShiftDuration > 24*time.Hour {
		return fmt.Errorf("配置校验失败: policy.max_shift_duration 不能超过 24h")
	}
	if p.PastTolerance < 0 || p.DeleteGrace < 0 {
		return fmt.Errorf("配置校验失败: policy.past_tolerance 与 policy.delete_grace 不能为负")
	}
	if _, err := regexp.Compile(p.PhonePattern); err != nil {
		return fmt.Errorf("配置校验失败: policy.phone_pattern 无效: %w", err)
	}
	return nil
}
