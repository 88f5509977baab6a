package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Scene   SceneConfig   `toml:"scene"`
	Assets  AssetsConfig  `toml:"assets"`
	Logging LoggingConfig `toml:"logging"`
}

type SceneConfig struct {
	Name string `toml:"name"`
	// WorldID is the sentinel parent id meaning "attach under the scene
	// root"; the upstream authority reserves it as invalid for entities.
	WorldID uint64 `toml:"world_id"`
}

type AssetsConfig struct {
	// SearchPaths are tried in order when resolving relative texture and
	// mesh references.
	SearchPaths []string `toml:"search_paths"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Scene: SceneConfig{
			Name:    "scene",
			WorldID: 0,
		},
		Assets: AssetsConfig{
			SearchPaths: []string{"assets"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
