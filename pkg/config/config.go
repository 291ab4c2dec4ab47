package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds every setting the console reads at startup.
type Config struct {
	Env string

	API       APIConfig
	Session   SessionConfig
	List      ListConfig
	Export    ExportConfig
	Dashboard DashboardConfig
	Log       LogConfig
}

// APIConfig locates the admin backend.
type APIConfig struct {
	BaseURL string
	Prefix  string
	Timeout time.Duration
}

// SessionConfig controls where the local session cache lives.
type SessionConfig struct {
	File string
}

// ListConfig tunes list page behaviour. PageSize is fixed per run; list pages
// do not let the operator change it.
type ListConfig struct {
	PageSize int
}

// ExportConfig controls list export artifacts.
type ExportConfig struct {
	Enabled bool
	Dir     string
}

// DashboardConfig gates the analytics dashboard command.
type DashboardConfig struct {
	Enabled bool
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from .env and the process environment.
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
			if _, statErr := os.Stat(".env"); statErr == nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.API = APIConfig{
		BaseURL: strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		Prefix:  v.GetString("API_PREFIX"),
		Timeout: parseDuration(v.GetString("API_TIMEOUT"), 30*time.Second),
	}

	cfg.Session = SessionConfig{File: v.GetString("SESSION_FILE")}
	if cfg.Session.File == "" {
		cfg.Session.File = defaultSessionFile()
	}

	cfg.List = ListConfig{PageSize: v.GetInt("PAGE_SIZE")}
	if cfg.List.PageSize <= 0 {
		cfg.List.PageSize = 10
	}

	cfg.Export = ExportConfig{
		Enabled: v.GetBool("EXPORT_ENABLED"),
		Dir:     v.GetString("EXPORT_DIR"),
	}

	cfg.Dashboard = DashboardConfig{Enabled: v.GetBool("DASHBOARD_ENABLED")}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("API_BASE_URL", "http://localhost:8000")
	v.SetDefault("API_PREFIX", "/api/v1")
	v.SetDefault("API_TIMEOUT", "30s")
	v.SetDefault("PAGE_SIZE", 10)
	v.SetDefault("EXPORT_ENABLED", true)
	v.SetDefault("EXPORT_DIR", "exports")
	v.SetDefault("DASHBOARD_ENABLED", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
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

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".lms-console/session.json"
	}
	return filepath.Join(dir, "lms-console", "session.json")
}
