package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Storage
	StorageBackend string `mapstructure:"STORAGE_BACKEND"` // file | redis | memory
	DataDir        string `mapstructure:"DATA_DIR"`
	RedisURL       string `mapstructure:"REDIS_URL"`
	KeyPrefix      string `mapstructure:"KEY_PREFIX"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`

	// Cloud sync (generic file-storage API, Drive v3 shaped)
	DriveAPIURL    string `mapstructure:"DRIVE_API_URL"`
	DriveUploadURL string `mapstructure:"DRIVE_UPLOAD_URL"`
	DriveFileName  string `mapstructure:"DRIVE_FILE_NAME"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("STORAGE_BACKEND", "file")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("KEY_PREFIX", "ss")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 168)
	viper.SetDefault("DRIVE_API_URL", "https://www.googleapis.com/drive/v3")
	viper.SetDefault("DRIVE_UPLOAD_URL", "https://www.googleapis.com/upload/drive/v3")
	viper.SetDefault("DRIVE_FILE_NAME", "stockbook_backup.json")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
