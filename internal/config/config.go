package config

import (
	"log"

	"portfoliokollen/pkg/config"
)

type Config struct {
	Server config.ServerConfig `yaml:"server"`
	DB     config.DBConfig     `yaml:"db"`
	Redis  config.RedisConfig  `yaml:"redis"`
	JWT    config.JWTConfig    `yaml:"jwt"`
}

// Load reads config/base.yaml (when present) and applies environment
// overrides. A missing database section is not an error: the service then
// runs on the in-memory demo store.
func Load() *Config {
	config.LoadDotEnv()

	cfg := &Config{}
	cfg.Server.Port = "8080"

	path := config.ConfigPath(config.GetEnv("CONFIG_DIR", "config"))
	if err := config.LoadYAML(path, cfg, true); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	config.OverrideServerFromEnv(&cfg.Server)
	config.OverrideDBFromEnv(&cfg.DB)
	config.OverrideRedisFromEnv(&cfg.Redis)
	config.OverrideJWTFromEnv(&cfg.JWT)

	if cfg.JWT.Secret == "" {
		// demo-mode fallback; any real deployment sets JWT_SECRET
		cfg.JWT.Secret = "portfoliokollen-dev-secret"
	}

	return cfg
}
