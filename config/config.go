package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel       string        `yaml:"log_level" env:"LOG_LEVEL" env-default:"DEBUG"`
	Address        string        `yaml:"address" env:"ADDRESS" env-default:":5000"`
	DBAddress      string        `yaml:"db_address" env:"DB_ADDRESS" env-required:"true"`
	SessionSecret  string        `yaml:"session_secret" env:"SESSION_SECRET" env-default:"devsecret"`
	SessionTTL     time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"72h"`
	HTTPTimeout    time.Duration `yaml:"http_timeout" env:"HTTP_TIMEOUT" env-default:"5s"`
	SeedDemoData   bool          `yaml:"seed_demo_data" env:"SEED_DEMO_DATA" env-default:"false"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-default:"http://localhost:3000,http://127.0.0.1:3000"`
}

func MustLoad(configPath string) Config {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read env: %s", err)
		}
		return cfg
	}

	// try the file, fall back to env when it does not exist
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				log.Fatalf("cannot read env: %s", err)
			}
			return cfg
		}
		log.Fatalf("cannot read config %q: %s", configPath, err)
	}

	return cfg
}
