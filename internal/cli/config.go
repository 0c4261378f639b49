package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk CLI configuration, loaded from
// ~/.config/netvis/config.toml (or $XDG_CONFIG_HOME/netvis/config.toml).
// Flags always win over config values.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Server  ServerConfig  `toml:"server"`
	Cache   CacheConfig   `toml:"cache"`
	Store   StoreConfig   `toml:"store"`
}

// DisplayConfig holds default display settings for built documents.
type DisplayConfig struct {
	Height    string `toml:"height"`
	Width     string `toml:"width"`
	BGColor   string `toml:"bgcolor"`
	FontColor string `toml:"font_color"`
}

// ServerConfig holds serve command defaults.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// CacheConfig selects the artifact cache backend.
type CacheConfig struct {
	Backend   string `toml:"backend"` // file, redis, none
	RedisAddr string `toml:"redis_addr"`
}

// StoreConfig selects the document store backend.
type StoreConfig struct {
	Backend    string `toml:"backend"` // memory, mongo
	MongoURI   string `toml:"mongo_uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Height:  "600px",
			Width:   "100%",
			BGColor: "#ffffff",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Cache: CacheConfig{
			Backend:   "file",
			RedisAddr: "localhost:6379",
		},
		Store: StoreConfig{
			Backend:    "memory",
			MongoURI:   "mongodb://localhost:27017",
			Database:   "netvis",
			Collection: "graphs",
		},
	}
}

// configPath returns the path of the config file.
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads the config file, layering it over the defaults. A
// missing file is not an error; a malformed one is.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
