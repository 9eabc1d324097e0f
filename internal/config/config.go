package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Origens possíveis do dataset
const (
	DatasetSourceFile     = "file"
	DatasetSourceS3       = "s3"
	DatasetSourcePostgres = "postgres"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Dataset          Dataset          `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	StateRankingSync StateRankingSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Dataset struct {
	Source   string `mapstructure:"dataset_source"`
	Path     string `mapstructure:"dataset_path"`
	S3Bucket string `mapstructure:"dataset_s3_bucket"`
	S3Key    string `mapstructure:"dataset_s3_key"`
	S3Region string `mapstructure:"dataset_s3_region"`
	Table    string `mapstructure:"dataset_table"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type StateRankingSync struct {
	CronSchedule string `mapstructure:"state_ranking_sync_cron"`
	Enabled      bool   `mapstructure:"state_ranking_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "")
	viper.SetDefault("PORT", 6001)
	viper.SetDefault("SHUTDOWN_TIMEOUT", "15s")

	viper.SetDefault("DATASET_SOURCE", DatasetSourceFile)
	viper.SetDefault("DATASET_PATH", "data/sales.json")
	viper.SetDefault("DATASET_S3_BUCKET", "")
	viper.SetDefault("DATASET_S3_KEY", "sales.json")
	viper.SetDefault("DATASET_S3_REGION", "us-east-1")
	viper.SetDefault("DATASET_TABLE", "sales")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("STATE_RANKING_SYNC_CRON", "0 * * * *") // A cada hora cheia
	viper.SetDefault("STATE_RANKING_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func (c *Config) validate() error {
	switch c.Dataset.Source {
	case DatasetSourceFile:
		if c.Dataset.Path == "" {
			return fmt.Errorf("config: DATASET_PATH is required for source %q", c.Dataset.Source)
		}
	case DatasetSourceS3:
		if c.Dataset.S3Bucket == "" || c.Dataset.S3Key == "" {
			return fmt.Errorf("config: DATASET_S3_BUCKET and DATASET_S3_KEY are required for source %q", c.Dataset.Source)
		}
	case DatasetSourcePostgres:
		if c.Dataset.Table == "" {
			return fmt.Errorf("config: DATASET_TABLE is required for source %q", c.Dataset.Source)
		}
	default:
		return fmt.Errorf("config: unknown DATASET_SOURCE %q", c.Dataset.Source)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando apenas variáveis de ambiente")
}
