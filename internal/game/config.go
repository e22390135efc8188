package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

const (
	// DefaultInvestigators is the party size when HOLLOWHEX_INVESTIGATORS is unset.
	DefaultInvestigators = 2
	// MaxInvestigators is the largest supported party.
	MaxInvestigators = 4
	// DefaultViewRadius is how far investigators can see when HOLLOWHEX_VIEW_RADIUS is unset.
	DefaultViewRadius = 8
)

// ErrInvalidConfig is returned when an environment value cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible board generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Investigators is the party size, 1 to MaxInvestigators.
	Investigators int

	// ViewRadius bounds line of sight for rendering and horror checks.
	ViewRadius int
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Investigators: DefaultInvestigators,
		ViewRadius:    DefaultViewRadius,
	}
}

// LoadConfig reads HOLLOWHEX_SEED, HOLLOWHEX_INVESTIGATORS and
// HOLLOWHEX_VIEW_RADIUS, falling back to DefaultConfig for unset values.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("HOLLOWHEX_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("HOLLOWHEX_SEED=%q: %w", v, ErrInvalidConfig)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv("HOLLOWHEX_INVESTIGATORS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > MaxInvestigators {
			return cfg, fmt.Errorf("HOLLOWHEX_INVESTIGATORS=%q: want 1-%d: %w", v, MaxInvestigators, ErrInvalidConfig)
		}
		cfg.Investigators = n
	}

	if v := os.Getenv("HOLLOWHEX_VIEW_RADIUS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("HOLLOWHEX_VIEW_RADIUS=%q: %w", v, ErrInvalidConfig)
		}
		cfg.ViewRadius = n
	}

	return cfg, nil
}
