package config

import (
	"os"

	"github.com/MixinNetwork/fraction/logger"
	"github.com/pelletier/go-toml"
)

const (
	BuildVersion = "v0.1.0-BUILD_VERSION"

	DefaultCacheSize = 64
	DefaultRPCPort   = 6860
)

type Custom struct {
	Node struct {
		CacheSize int `toml:"cache-size"`
	} `toml:"node"`
	Storage struct {
		ValueLogGC bool `toml:"value-log-gc"`
		InMemory   bool `toml:"in-memory"`
	} `toml:"storage"`
	RPC struct {
		Port int `toml:"port"`
	} `toml:"rpc"`
	Log struct {
		Level   int    `toml:"level"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"log"`
}

func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var config Custom
	err = toml.Unmarshal(f, &config)
	if err != nil {
		return nil, err
	}
	config.fillDefaults()
	return &config, nil
}

// Default is the configuration used when no config.toml is present.
func Default() *Custom {
	var config Custom
	config.fillDefaults()
	return &config
}

func (c *Custom) fillDefaults() {
	if c.Node.CacheSize == 0 {
		c.Node.CacheSize = DefaultCacheSize
	}
	if c.RPC.Port == 0 {
		c.RPC.Port = DefaultRPCPort
	}
	if c.Log.Level == 0 {
		c.Log.Level = logger.INFO
	}
}
