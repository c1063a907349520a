package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. HEATER_HTTP_PORT.
const EnvPrefix = "HEATER"

// Catalog sources.
const (
	CatalogSQLite  = "sqlite"
	CatalogBuiltin = "builtin"
)

type Config struct {
	HTTP      HTTPConfig      `mapstructure:"http"`
	Log       LogConfig       `mapstructure:"log"`
	DB        DBConfig        `mapstructure:"db"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Report    ReportConfig    `mapstructure:"report"`
	WS        WSConfig        `mapstructure:"ws"`
}

type HTTPConfig struct {
	Port              string        `mapstructure:"port"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console | json
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type CatalogConfig struct {
	Source string `mapstructure:"source"` // sqlite | builtin
	// Seed inserts missing built-in rows into the sqlite catalog at startup.
	Seed bool `mapstructure:"seed"`
}

type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	RPS     float64 `mapstructure:"rps"`
	Burst   int     `mapstructure:"burst"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type ReportConfig struct {
	FontPath string `mapstructure:"font_path"` // optional UTF-8 TTF for PDF output
}

type WSConfig struct {
	MaxMessageBytes int64 `mapstructure:"max_message_bytes"`
}

// SetDefaults registers every key so env overrides work without a config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.read_header_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 30*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("db.path", "catalog.db")

	v.SetDefault("catalog.source", CatalogSQLite)
	v.SetDefault("catalog.seed", true)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.rps", 10.0)
	v.SetDefault("rate_limit.burst", 20)

	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.SetDefault("report.font_path", "")

	v.SetDefault("ws.max_message_bytes", int64(1<<12))
}

// LoadDotEnv loads KEY=VALUE pairs from the given file into the process
// environment. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from the file at path (or configs/config.yml when
// path is empty), then applies HEATER_* environment overrides. A missing
// config file leaves the defaults in place.
func Load(v *viper.Viper, path string) (Config, error) {
	var cfg Config

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs")
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		// only the implicit configs/config.* lookup may be absent
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Catalog.Source {
	case CatalogSQLite, CatalogBuiltin:
	default:
		return fmt.Errorf("catalog.source: unsupported value %q (want %q or %q)", c.Catalog.Source, CatalogSQLite, CatalogBuiltin)
	}
	if c.Catalog.Source == CatalogSQLite && c.DB.Path == "" {
		return errors.New("db.path is required when catalog.source is sqlite")
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate_limit: rps and burst must be > 0, got rps=%v burst=%d", c.RateLimit.RPS, c.RateLimit.Burst)
	}
	for _, o := range c.CORS.AllowedOrigins {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("cors.allowed_origins: %q must be \"*\" or start with http:// or https://", o)
		}
	}
	if c.WS.MaxMessageBytes <= 0 {
		return fmt.Errorf("ws.max_message_bytes must be > 0, got %d", c.WS.MaxMessageBytes)
	}
	return nil
}

// Addr returns the listen address for the configured port ("8080" or ":8080").
func (c HTTPConfig) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
