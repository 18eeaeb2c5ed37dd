package internal

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/learntoride/ltr/internal/api"
	"github.com/learntoride/ltr/internal/database"
	"github.com/learntoride/ltr/internal/storage"
	"github.com/learntoride/ltr/internal/thumbnail"
)

// LtrConfig is the user supplied configuration, read from a TOML file
// with environment variable overrides.
type LtrConfig struct {
	Database      database.DatabaseConfig `toml:"database" env-required:"true"`
	Storage       storage.Config          `toml:"storage" env-required:"true"`
	Thumbnails    thumbnail.Config        `toml:"thumbnails"`
	RestConfig    api.RestConfig          `toml:"api"`
	AdminPassword string                  `toml:"admin_password" env:"ADMIN_PASSWORD" env-required:"true"`
}

// LoadFromFile populates the config from the TOML file at the given path,
// applying env overrides on top.
func (config *LtrConfig) LoadFromFile(configPath string) error {
	if err := cleanenv.ReadConfig(configPath, config); err != nil {
		return fmt.Errorf("failed to load configuration - %v", err.Error())
	}

	return nil
}

// LoadFromEnv populates the config from environment variables alone, for
// deployments which carry no config file.
func (config *LtrConfig) LoadFromEnv() error {
	if err := cleanenv.ReadEnv(config); err != nil {
		return fmt.Errorf("failed to load configuration from environment - %v", err.Error())
	}

	return nil
}
