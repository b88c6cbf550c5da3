package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DependentsFilter = "filter"
	DependentsNested = "nested"

	PatientPolicyExclusive = "exclusive"
	PatientPolicyNone      = "none"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Log     LogConfig
	Cascade CascadeConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type APIConfig struct {
	BaseURL      string
	Timeout      time.Duration
	Token        string
	LoginPath    string
	RegisterPath string
}

type LogConfig struct {
	Level string
}

// CascadeConfig selects how the dependents of a doctor are discovered
// before a cascading delete.
type CascadeConfig struct {
	Dependents    string
	PatientPolicy string
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	if path == "" {
		path = ".env"
	}
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("API_BASE_URL", "https://fed-medical-clinic-api.vercel.app")
	v.SetDefault("API_TIMEOUT", "0s")
	v.SetDefault("API_LOGIN_PATH", "/login")
	v.SetDefault("API_REGISTER_PATH", "/register")
	v.SetDefault("CASCADE_DEPENDENTS", DependentsFilter)
	v.SetDefault("CASCADE_PATIENT_POLICY", PatientPolicyExclusive)

	// .env is optional, the environment alone is enough
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	timeout, err := time.ParseDuration(v.GetString("API_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_TIMEOUT: %w", err)
	}

	config := &Config{
		App: AppConfig{
			Port: v.GetString("APP_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		API: APIConfig{
			BaseURL:      strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
			Timeout:      timeout,
			Token:        v.GetString("API_TOKEN"),
			LoginPath:    v.GetString("API_LOGIN_PATH"),
			RegisterPath: v.GetString("API_REGISTER_PATH"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Cascade: CascadeConfig{
			Dependents:    strings.ToLower(v.GetString("CASCADE_DEPENDENTS")),
			PatientPolicy: strings.ToLower(v.GetString("CASCADE_PATIENT_POLICY")),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.API.BaseURL == "" {
		return errors.New("API_BASE_URL is required")
	}
	switch c.Cascade.Dependents {
	case DependentsFilter, DependentsNested:
	default:
		return fmt.Errorf("invalid CASCADE_DEPENDENTS %q, use %q or %q", c.Cascade.Dependents, DependentsFilter, DependentsNested)
	}
	switch c.Cascade.PatientPolicy {
	case PatientPolicyExclusive, PatientPolicyNone:
	default:
		return fmt.Errorf("invalid CASCADE_PATIENT_POLICY %q, use %q or %q", c.Cascade.PatientPolicy, PatientPolicyExclusive, PatientPolicyNone)
	}
	return nil
}

func (c *Config) IsDev() bool {
	return c.App.Env == "development"
}
