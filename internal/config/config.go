package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

const DefaultEnvFile = ".env"

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Runtime  RuntimeConfig  `mapstructure:"runtime"`
	Backup   BackupConfig   `mapstructure:"backup"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Telegram TelegramConfig `mapstructure:"telegram"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

type DatabaseConfig struct {
	Engine    string `mapstructure:"engine"`
	Container string `mapstructure:"container"`
	User      string `mapstructure:"user"`
	Password  string `mapstructure:"password"`
}

type RuntimeConfig struct {
	Type   string `mapstructure:"type"`
	Binary string `mapstructure:"binary"`
}

type BackupConfig struct {
	Dir    string `mapstructure:"dir"`
	Prefix string `mapstructure:"prefix"`
}

type StorageConfig struct {
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
	Endpoint string `mapstructure:"endpoint"`
}

// Enabled reports whether both credentials needed for chat notifications are set.
func (t TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.ChatID != ""
}

type binding struct {
	key    string
	env    string
	defval string
}

func bindings() []binding {
	return []binding{
		{"app.name", "APP_NAME", "Zenndi Ops"},
		{"app.log_level", "LOG_LEVEL", "info"},
		{"app.log_file", "LOG_FILE", ""},

		{"database.engine", "DB_ENGINE", "postgresql"},
		{"database.container", "POSTGRES_CONTAINER", "zenndi-postgres"},
		{"database.user", "POSTGRES_USER", "dev"},
		{"database.password", "DB_PASSWORD", ""},

		{"runtime.type", "DUMP_RUNTIME", "cli"},
		{"runtime.binary", "DOCKER_BINARY", "docker"},

		{"backup.dir", "BACKUP_DIR", defaultBackupDir()},
		{"backup.prefix", "BACKUP_PREFIX", "zenndi_pg"},

		{"storage.bucket", "MINIO_BACKUP_BUCKET", "zenndi-backups"},
		{"storage.endpoint", "MINIO_ENDPOINT", "http://localhost:9000"},
		{"storage.region", "MINIO_REGION", "us-east-1"},
		{"storage.access_key", "MINIO_ROOT_USER", "dev"},
		{"storage.secret_key", "MINIO_ROOT_PASSWORD", "password"},

		{"telegram.bot_token", "TELEGRAM_TOKEN", ""},
		{"telegram.chat_id", "CHAT_ID", ""},
		{"telegram.endpoint", "TELEGRAM_API_ENDPOINT", "https://api.telegram.org/bot%s/%s"},
	}
}

// Load reads the optional dotenv file into the process environment, without
// overriding variables that are already set, and resolves every setting from
// the environment with its default.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := gotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for _, b := range bindings() {
		v.SetDefault(b.key, b.defval)
		if err := v.BindEnv(b.key, b.env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", b.env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// defaultBackupDir is the backups directory next to the running executable.
func defaultBackupDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "backups"
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "backups")
}
