package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// StorageConfig points report uploads at an S3-compatible bucket. An empty
// endpoint disables uploads.
type StorageConfig struct {
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	Region    string
}

// Enabled reports whether uploads are configured.
func (s StorageConfig) Enabled() bool {
	return s.Endpoint != ""
}

type Config struct {
	// ServiceName tags every log line, e.g. "coba-api" or "worker".
	ServiceName string

	DatabaseURL    string
	HTTPListenAddr string
	LogLevel       string
	CORSOrigins    []string

	TemporalAddress   string
	TemporalTaskQueue string

	ReportDelay      time.Duration
	ReportStaleAfter time.Duration
	ReportStorage    StorageConfig
	ReportPublicURL  string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	AssistantSessionTTL     time.Duration
	DashboardStreamInterval time.Duration
	CustomerSatisfaction    int

	MetricsListenAddr string
	APIURL            string
}

func Load() (*Config, error) {
	cfg := &Config{
		ServiceName:       getEnv("SERVICE_NAME", ""),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		HTTPListenAddr:    getEnv("HTTP_LISTEN_ADDR", ":8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		TemporalAddress:   getEnv("TEMPORAL_ADDRESS", "localhost:7233"),
		TemporalTaskQueue: getEnv("TEMPORAL_TASK_QUEUE", "coba-tasks"),
		ReportStorage: StorageConfig{
			Endpoint:  getEnv("REPORT_STORAGE_ENDPOINT", ""),
			Bucket:    getEnv("REPORT_STORAGE_BUCKET", ""),
			AccessKey: getEnv("REPORT_STORAGE_ACCESS_KEY", ""),
			SecretKey: getEnv("REPORT_STORAGE_SECRET_KEY", ""),
			Region:    getEnv("REPORT_STORAGE_REGION", "us-east-1"),
		},
		ReportPublicURL:   strings.TrimRight(getEnv("REPORT_PUBLIC_URL", "https://example.com/reports"), "/"),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		MetricsListenAddr: getEnv("METRICS_LISTEN_ADDR", ":9090"),
		APIURL:            strings.TrimRight(getEnv("API_URL", "http://127.0.0.1:8080"), "/"),
	}

	var err error
	if cfg.ReportDelay, err = getDuration("REPORT_DELAY", 3*time.Second); err != nil {
		return nil, err
	}
	if cfg.ReportStaleAfter, err = getDuration("REPORT_STALE_AFTER", 15*time.Minute); err != nil {
		return nil, err
	}
	if cfg.AssistantSessionTTL, err = getDuration("ASSISTANT_SESSION_TTL", 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.DashboardStreamInterval, err = getDuration("DASHBOARD_STREAM_INTERVAL", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.CustomerSatisfaction, err = getInt("CUSTOMER_SATISFACTION", 92); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the variables a component needs are set.
// component is one of "api", "worker", "mcp-server" or "seed".
func (c *Config) Validate(component string) error {
	var errs []error

	switch component {
	case "api", "worker", "seed":
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required"))
		}
	case "mcp-server":
		if c.APIURL == "" {
			errs = append(errs, errors.New("API_URL is required"))
		}
	}

	if component == "worker" && c.ReportStorage.Enabled() {
		if c.ReportStorage.Bucket == "" {
			errs = append(errs, errors.New("REPORT_STORAGE_BUCKET is required when REPORT_STORAGE_ENDPOINT is set"))
		}
		if c.ReportStorage.AccessKey == "" || c.ReportStorage.SecretKey == "" {
			errs = append(errs, errors.New("REPORT_STORAGE_ACCESS_KEY and REPORT_STORAGE_SECRET_KEY are required when REPORT_STORAGE_ENDPOINT is set"))
		}
	}

	if component == "api" && c.DashboardStreamInterval <= 0 {
		errs = append(errs, fmt.Errorf("DASHBOARD_STREAM_INTERVAL must be positive, got %s", c.DashboardStreamInterval))
	}
	if component == "worker" && c.ReportStaleAfter <= 0 {
		errs = append(errs, fmt.Errorf("REPORT_STALE_AFTER must be positive, got %s", c.ReportStaleAfter))
	}

	if c.CustomerSatisfaction < 0 || c.CustomerSatisfaction > 100 {
		errs = append(errs, fmt.Errorf("CUSTOMER_SATISFACTION must be between 0 and 100, got %d", c.CustomerSatisfaction))
	}

	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
