package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type storageEnv struct {
	Driver      string `env:"STORAGE_DRIVER" envDefault:"postgres"`
	SeedOnStart bool   `env:"SEED_ON_START" envDefault:"false"`
}

type storage struct {
	raw storageEnv
}

func NewStorageConfig() (*storage, error) {
	var raw storageEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	switch raw.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", raw.Driver)
	}

	return &storage{raw: raw}, nil
}

func (cfg *storage) Driver() string    { return cfg.raw.Driver }
func (cfg *storage) SeedOnStart() bool { return cfg.raw.SeedOnStart }
