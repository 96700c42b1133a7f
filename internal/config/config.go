package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Gemini     GeminiConfig
	Classifier ClassifierConfig
	Limits     LimitsConfig
	DB         DBConfig
	History    HistoryConfig
	CORS       CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// GeminiConfig holds settings for the remote insight generator.
type GeminiConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	// Endpoint overrides the generateContent URL; used by tests.
	Endpoint string `mapstructure:"endpoint"`
}

// ClassifierConfig holds local role-classifier settings.
type ClassifierConfig struct {
	ArtifactDir string `mapstructure:"artifact_dir"`
}

// LimitsConfig holds per-endpoint upload and prompt-size limits.
// A truncation limit of 0 means the full extracted text is sent.
type LimitsConfig struct {
	MaxPredictUploadMB   int64 `mapstructure:"max_predict_upload_mb"`
	PredictTruncateChars int   `mapstructure:"predict_truncate_chars"`
	ReviewTruncateChars  int   `mapstructure:"review_truncate_chars"`
}

// DBConfig holds PostgreSQL connection settings for the analysis history.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// HistoryConfig holds analysis-history settings.
type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the RESUMEIQ_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RESUMEIQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// Gemini defaults. An empty API key is allowed at startup: LLM-backed
	// calls then fail at call time and degrade to defaults.
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-1.5-flash")
	v.SetDefault("gemini.timeout_secs", 60)
	v.SetDefault("gemini.endpoint", "")

	// Classifier defaults
	v.SetDefault("classifier.artifact_dir", "./artifacts")

	// Limits defaults
	v.SetDefault("limits.max_predict_upload_mb", 5)
	v.SetDefault("limits.predict_truncate_chars", 10000)
	v.SetDefault("limits.review_truncate_chars", 0)

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "resumeiq")
	v.SetDefault("db.password", "resumeiq_secret")
	v.SetDefault("db.name", "resumeiq_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// History defaults
	v.SetDefault("history.enabled", true)

	// CORS defaults
	v.SetDefault("cors.allowed_origins", []string{"*"})

	bindKeys(v,
		"server.port", "server.read_timeout", "server.write_timeout", "server.environment",
		"gemini.api_key", "gemini.model", "gemini.timeout_secs", "gemini.endpoint",
		"classifier.artifact_dir",
		"limits.max_predict_upload_mb", "limits.predict_truncate_chars", "limits.review_truncate_chars",
		"db.host", "db.port", "db.user", "db.password", "db.name", "db.sslmode", "db.max_open", "db.max_idle",
		"history.enabled",
		"cors.allowed_origins",
	)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// bindKeys forces viper to consider each key so AutomaticEnv picks up
// values that have no default override.
func bindKeys(v *viper.Viper, keys ...string) {
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
