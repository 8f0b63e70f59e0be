package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds the runtime configuration, populated from environment
// variables with sane local-development defaults.
type Config struct {
	Port     string `env:"PORT,default=8080"`
	Env      string `env:"ENV,default=development"`
	LogLevel string `env:"LOG_LEVEL,default=info"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI,default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,default=cyberforum"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR,default=localhost:6379"`
	DB   int    `env:"REDIS_DB,default=0"`
}

// Load reads the configuration from the environment. It panics when a
// variable cannot be parsed, since the process cannot run half-configured.
func Load(ctx context.Context) *Config {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return &cfg
}
