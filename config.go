package treelist

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko"
)

// ConfigKeyMaxLen is the configuration key read by ConfigFrom.
const ConfigKeyMaxLen = "treelist.maxlen"

// Config configures a list.
//
// The zero value is a valid configuration.
type Config struct {
	// MaxLen is the maximum number of elements a list may hold.
	// 0 means no limit other than math.MaxInt.
	MaxLen int
}

// ConfigFrom reads a list configuration from an application configuration.
// Keys which are not set keep their default.
func ConfigFrom(conf schuko.Configuration) Config {
	var cfg Config
	if conf == nil {
		return cfg
	}
	if conf.IsSet(ConfigKeyMaxLen) {
		cfg.MaxLen = conf.GetInt(ConfigKeyMaxLen)
	}
	return cfg
}

func (cfg Config) normalized() Config {
	if cfg.MaxLen == 0 {
		cfg.MaxLen = math.MaxInt
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.MaxLen < 0 {
		return fmt.Errorf("%w: negative maximum length %d", ErrInvalidConfig, cfg.MaxLen)
	}
	return nil
}
