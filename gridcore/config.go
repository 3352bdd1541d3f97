package gridcore

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log LogConfig `toml:"log"`
	DB  DBConfig  `toml:"db"`
	Sim SimConfig `toml:"sim"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type DBConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	PoolSize int    `toml:"pool_size"`
}

// SimConfig tunes the running world: the price ticker cadence, the random
// walk seed, and how often the world snapshot is persisted.
type SimConfig struct {
	Seed                 uint64 `toml:"seed"`
	TickIntervalSeconds  int    `toml:"tick_interval_seconds"`
	SnapshotEverySeconds int    `toml:"snapshot_every_seconds"`
}
