package jsarray

import (
	"errors"
	"os"
	"strings"

	"github.com/mstoykov/envconfig"
	"gopkg.in/guregu/null.v3"
)

const (
	// DefaultFlatMaxDepth is the default number of nested arrays flat may have open at once.
	DefaultFlatMaxDepth = 10000
	// DefaultFlatMaxElements is the default cap on the length of a flat result.
	DefaultFlatMaxElements = 1 << 26
	// DefaultFlatMaxFrames is the default number of nested arrays a single flat
	// may descend into in total.
	DefaultFlatMaxFrames = 1 << 24
)

// Config holds the resource limits of the Flattener.
type Config struct {
	FlatMaxDepth    null.Int `json:"flatMaxDepth" envconfig:"JSARRAY_FLAT_MAX_DEPTH"`
	FlatMaxElements null.Int `json:"flatMaxElements" envconfig:"JSARRAY_FLAT_MAX_ELEMENTS"`
	FlatMaxFrames   null.Int `json:"flatMaxFrames" envconfig:"JSARRAY_FLAT_MAX_FRAMES"`
}

// NewConfig returns a Config with the default values; they are not marked as
// valid so that Apply prefers any explicitly set value over them.
func NewConfig() Config {
	return Config{
		FlatMaxDepth:    null.NewInt(DefaultFlatMaxDepth, false),
		FlatMaxElements: null.NewInt(DefaultFlatMaxElements, false),
		FlatMaxFrames:   null.NewInt(DefaultFlatMaxFrames, false),
	}
}

// Apply overlays the valid fields of cfg on c.
func (c Config) Apply(cfg Config) Config {
	if cfg.FlatMaxDepth.Valid {
		c.FlatMaxDepth = cfg.FlatMaxDepth
	}
	if cfg.FlatMaxElements.Valid {
		c.FlatMaxElements = cfg.FlatMaxElements
	}
	if cfg.FlatMaxFrames.Valid {
		c.FlatMaxFrames = cfg.FlatMaxFrames
	}
	return c
}

// Validate checks that the limits are usable.
func (c Config) Validate() error {
	var errs []error
	if c.FlatMaxDepth.Valid && c.FlatMaxDepth.Int64 <= 0 {
		errs = append(errs, errors.New("flat max depth must be positive"))
	}
	if c.FlatMaxElements.Valid && c.FlatMaxElements.Int64 <= 0 {
		errs = append(errs, errors.New("flat max elements must be positive"))
	}
	if c.FlatMaxFrames.Valid && c.FlatMaxFrames.Int64 <= 0 {
		errs = append(errs, errors.New("flat max frames must be positive"))
	}
	return errors.Join(errs...)
}

// GetConfig returns the defaults overlaid with the values found in env.
func GetConfig(env map[string]string) (Config, error) {
	envConfig := Config{}
	if err := envconfig.Process("", &envConfig, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}); err != nil {
		return Config{}, err
	}
	result := NewConfig().Apply(envConfig)
	return result, result.Validate()
}

// EnvMap returns the process environment as a map, for GetConfig.
func EnvMap() map[string]string {
	environ := os.Environ()
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, _ := strings.Cut(kv, "=")
		env[k] = v
	}
	return env
}
