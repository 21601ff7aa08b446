package options

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

var Conf *Config

// Backend selection values understood by the selector. Anything else
// falls back to memory.
const (
	BackendMemory      = "memory"
	BackendRemoteCache = "remote-cache"
	BackendObjectStore = "object-store"
)

type Http struct {
	Addr    string `env:"HTTP_ADDR" envDefault:":8080"`
	RunMode string `env:"RUN_MODE" envDefault:"release"`
}

type Log struct {
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogDir     string `env:"LOG_DIR"`
	LogFile    string `env:"LOG_FILE" envDefault:"notesapi"`
	LogFileExt string `env:"LOG_FILE_EXT" envDefault:"log"`
	TimeFormat string `env:"LOG_TIME_FORMAT" envDefault:"20060102"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	// TTL of zero stores notes without expiry.
	TTL         time.Duration `env:"REDIS_TTL" envDefault:"0"`
	DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
}

type GCS struct {
	Bucket string `env:"GCS_BUCKET"`
}

type Otel struct {
	Endpoint string `env:"OTEL_ENDPOINT"`
}

type Config struct {
	Backend string `env:"BACKEND" envDefault:"memory"`
	Http    Http
	Log     Log
	Redis   Redis
	GCS     GCS
	Otel    Otel
}

// InitConfig loads configuration from environment variables and stores
// it in the package-level Conf.
func InitConfig() (*Config, error) {
	v := new(Config)
	if err := env.Parse(v); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	Conf = v
	return v, nil
}
