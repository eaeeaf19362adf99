package config

import (
	"os"

	"github.com/MixinNetwork/fractional/common"
	"github.com/MixinNetwork/fractional/logger"
	"github.com/pelletier/go-toml"
)

const (
	BuildVersion = "v0.1.0"

	DefaultPrecision = common.Precision
	MaximumPrecision = 64
)

type Custom struct {
	Display struct {
		Precision int32 `toml:"precision"`
		Decimal   bool  `toml:"decimal"`
	} `toml:"display"`
	Log struct {
		Level   int    `toml:"level"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"log"`
}

func Default() *Custom {
	var config Custom
	config.Display.Precision = DefaultPrecision
	config.applyDefaults()
	return &config
}

func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	tree, err := toml.LoadBytes(f)
	if err != nil {
		return nil, err
	}
	var config Custom
	err = tree.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	// precision = 0 is a valid setting, only a missing key takes the default
	if !tree.Has("display.precision") {
		config.Display.Precision = DefaultPrecision
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Custom) applyDefaults() {
	if c.Display.Precision < 0 || c.Display.Precision > MaximumPrecision {
		c.Display.Precision = DefaultPrecision
	}
	if c.Log.Level == 0 {
		c.Log.Level = logger.INFO
	}
}
