package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var (
	ErrEnvFile       = errors.New("не удалось прочитать .env файл")
	ErrEnvParse      = errors.New("некорректная конфигурация окружения")
	ErrSourceDirNone = errors.New("SOURCE_DIR не может быть пустым")
	ErrDestDirNone   = errors.New("DEST_DIR не может быть пустым")
)

type Config struct {
	SourceDir            string `envconfig:"SOURCE_DIR" required:"true"`
	DestDir              string `envconfig:"DEST_DIR" required:"true"`
	RetentionPeriodHours Hours  `envconfig:"RETENTION_PERIOD_HOURS" required:"true"`
	LogLevel             string `envconfig:"LOG_LEVEL" default:"info"`
}

// Hours только десятичное: "010" это 10, "0x10" и "1_0" ошибка
type Hours uint64

func (h *Hours) Decode(value string) error {
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return err
	}
	*h = Hours(v)
	return nil
}

// .env не перезаписывает переменные окружения
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v", ErrEnvFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnvParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return ErrSourceDirNone
	}
	if c.DestDir == "" {
		return ErrDestDirNone
	}
	return nil
}

func (c *Config) RetentionSeconds() int64 {
	if uint64(c.RetentionPeriodHours) > math.MaxInt64/3600 {
		return math.MaxInt64
	}
	return int64(c.RetentionPeriodHours) * 3600
}

func (c *Config) RetentionPeriod() time.Duration {
	secs := c.RetentionSeconds()
	if secs > int64(math.MaxInt64/time.Second) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(secs) * time.Second
}
