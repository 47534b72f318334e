package config

import (
	"github.com/authcorp/libs/go/src/typeclass/errors"
	"github.com/rs/zerolog"
)

// EnvPrefix is the prefix of environment variables read by LoadLawCheck.
const EnvPrefix = "TYPECLASS"

// Configuration keys.
const (
	KeyMinSuccessful = "check.minsuccessful"
	KeyMaxSize       = "check.maxsize"
	KeySeed          = "check.seed"
	KeySuites        = "check.suites"
	KeyLogLevel      = "log.level"
)

// LawCheck configures a run of the law suites.
type LawCheck struct {
	// MinSuccessfulTests is the number of passing samples each property needs.
	MinSuccessfulTests int
	// MaxSize bounds generated collection sizes.
	MaxSize int
	// Seed fixes the generator seed; 0 picks a time based seed.
	Seed int64
	// Suites names the suites to run; empty means all of them.
	Suites   []string
	LogLevel string
}

// Defaults returns the default law-check settings.
func Defaults() map[string]any {
	return map[string]any{
		KeyMinSuccessful: 100,
		KeyMaxSize:       8,
		KeySeed:          0,
		KeyLogLevel:      "info",
	}
}

// LoadLawCheck reads the law-check settings from defaults, then the optional
// file at path, then TYPECLASS_* environment variables.
func LoadLawCheck(path string) (LawCheck, error) {
	cfg := New().WithDefaults(Defaults())
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return LawCheck{}, errors.InvalidConfig("file", "cannot load "+path).WithCause(err)
		}
	}
	cfg.LoadEnv(EnvPrefix)
	return FromConfig(cfg)
}

// FromConfig builds and validates LawCheck settings from cfg.
func FromConfig(cfg *Config) (LawCheck, error) {
	lc := LawCheck{
		MinSuccessfulTests: cfg.GetInt(KeyMinSuccessful),
		MaxSize:            cfg.GetInt(KeyMaxSize),
		Seed:               cfg.GetInt64(KeySeed),
		Suites:             cfg.GetStringSlice(KeySuites),
		LogLevel:           cfg.GetString(KeyLogLevel),
	}
	return lc, lc.Validate()
}

// Validate reports the first invalid setting as an INVALID_CONFIG error.
func (lc LawCheck) Validate() error {
	if lc.MinSuccessfulTests <= 0 {
		return errors.InvalidConfig(KeyMinSuccessful, "must be positive")
	}
	if lc.MaxSize < 0 {
		return errors.InvalidConfig(KeyMaxSize, "must not be negative")
	}
	if lc.Seed < 0 {
		return errors.InvalidConfig(KeySeed, "must not be negative")
	}
	if _, err := zerolog.ParseLevel(lc.LogLevel); err != nil {
		return errors.InvalidConfig(KeyLogLevel, "unknown log level "+lc.LogLevel).WithCause(err)
	}
	return nil
}
