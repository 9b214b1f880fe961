package hashcode

import (
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "HASHCODE"

// Config holds builder settings read from the environment.
type Config struct {
	Debug      bool  `envconfig:"DEBUG" default:"false"`
	Initial    int32 `envconfig:"INITIAL" default:"17"`
	Multiplier int32 `envconfig:"MULTIPLIER" default:"37"`
}

// LoadConfig reads HASHCODE_DEBUG, HASHCODE_INITIAL and HASHCODE_MULTIPLIER. The seeds are validated.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}
	if err := validateSeeds(cfg.Initial, cfg.Multiplier); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Apply sets the process-wide debug toggle, see [SetDebug].
func (cfg Config) Apply() {
	SetDebug(cfg.Debug)
}

// ReflectionOptions returns the options applying the configured seeds to [ReflectionHashCode].
func (cfg Config) ReflectionOptions() []ReflectionOption {
	return []ReflectionOption{WithSeeds(cfg.Initial, cfg.Multiplier)}
}

// NewBuilder creates a [Builder] from the configured seeds, see [NewBuilder].
func (cfg Config) NewBuilder(opts ...BuilderOption) (*Builder, error) {
	return NewBuilder(cfg.Initial, cfg.Multiplier, opts...)
}
