package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage & scheduling
	Database  DatabaseConfig
	Scheduler SchedulerConfig

	// Auth
	Auth AuthConfig

	// Sync
	Sync           SyncConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Path string
}

type SchedulerConfig struct {
	// Timezone is the IANA zone "today" is computed in. Empty means the host zone.
	Timezone string
}

type AuthConfig struct {
	UsersFile       string
	SessionTTL      time.Duration
	SessionCapacity int
	LoginRatePerMin int
}

type SyncConfig struct {
	RemoteURL string
	Debounce  time.Duration
	Schedule  string
	Timeout   time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/taskflow/
func Load() (*Config, error) {
	return load(viper.New())
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/taskflow/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.Database.Path = v.GetString("database.path")
	cfg.Scheduler.Timezone = v.GetString("scheduler.timezone")

	cfg.Auth.UsersFile = v.GetString("auth.users_file")
	cfg.Auth.SessionTTL = v.GetDuration("auth.session_ttl")
	cfg.Auth.SessionCapacity = v.GetInt("auth.session_capacity")
	cfg.Auth.LoginRatePerMin = v.GetInt("auth.login_rate_per_min")

	cfg.Sync.RemoteURL = v.GetString("sync.remote_url")
	cfg.Sync.Debounce = v.GetDuration("sync.debounce")
	cfg.Sync.Schedule = v.GetString("sync.schedule")
	cfg.Sync.Timeout = v.GetDuration("sync.timeout")

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("database.path", "data/taskflow.db")

	v.SetDefault("auth.users_file", "config/users.yaml")
	v.SetDefault("auth.session_ttl", "24h")
	v.SetDefault("auth.session_capacity", 1000)
	v.SetDefault("auth.login_rate_per_min", 30)

	v.SetDefault("sync.debounce", "2s")
	v.SetDefault("sync.schedule", "@every 15m")
	v.SetDefault("sync.timeout", "30s")

	v.SetDefault("google_calendar.calendar_id", "primary")
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d out of range", cfg.HTTPServer.Port)
	}
	if cfg.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if cfg.Scheduler.Timezone != "" {
		if _, err := time.LoadLocation(cfg.Scheduler.Timezone); err != nil {
			return fmt.Errorf("scheduler.timezone: %w", err)
		}
	}
	if cfg.Sync.RemoteURL != "" && !strings.HasPrefix(cfg.Sync.RemoteURL, "http://") && !strings.HasPrefix(cfg.Sync.RemoteURL, "https://") {
		return fmt.Errorf("sync.remote_url must be an http(s) URL")
	}
	return nil
}
