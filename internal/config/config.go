// Package config handles overlay configuration
package config

import (
	"image/color"
	"os"
	"strconv"
	"time"

	"github.com/burnbar/overlay/internal/errors"
)

// Config is the full tunable surface of the overlay. Every field has a
// compiled-in default; environment variables override individual fields.
type Config struct {
	// TraversalPeriod is the approximate wall-clock time for the bar to
	// cross the full surface width once.
	TraversalPeriod time.Duration
	// BarPixelIncrement is how many pixels the bar advances per tick.
	BarPixelIncrement int
	// BarFraction is the bar's width as a fraction of the surface width.
	BarFraction float64
	// CapturePeriod is how often the screen is captured and diffed.
	CapturePeriod time.Duration
	// MaxAge is how many static capture periods a pixel survives before it
	// is masked. Ages are 8-bit counters, so MaxAge must fit in a uint8.
	MaxAge int
	// PointerPollPeriod is how often the pointer position is sampled.
	PointerPollPeriod time.Duration
	// PointerCleaningRadius is the healing disc radius around the pointer,
	// in pixels.
	PointerCleaningRadius float64
	// MinChangeThreshold is the per-channel delta below which a pixel is
	// considered unchanged between captures.
	MinChangeThreshold int
	// BarColor is the colour of the moving bar.
	BarColor color.RGBA
}

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{
		TraversalPeriod:       4000 * time.Millisecond,
		BarPixelIncrement:     10,
		BarFraction:           3.0 / 8,
		CapturePeriod:         2000 * time.Millisecond,
		MaxAge:                150,
		PointerPollPeriod:     10 * time.Millisecond,
		PointerCleaningRadius: 100,
		MinChangeThreshold:    2,
		// Slightly blue tint.
		BarColor: color.RGBA{R: 230, G: 230, B: 255, A: 255},
	}
}

// Load returns the default configuration with environment overrides applied.
func Load() *Config {
	cfg := Default()
	cfg.TraversalPeriod = getEnvMillis("PERIOD_MS", cfg.TraversalPeriod)
	cfg.BarPixelIncrement = getEnvInt("BAR_PIXEL_INCREMENT", cfg.BarPixelIncrement)
	cfg.BarFraction = getEnvFloat("BAR_FRACTION", cfg.BarFraction)
	cfg.CapturePeriod = getEnvMillis("SCREEN_CAPTURE_PERIOD_MS", cfg.CapturePeriod)
	cfg.MaxAge = getEnvInt("MAX_AGE", cfg.MaxAge)
	cfg.PointerPollPeriod = getEnvMillis("POINTER_POLL_PERIOD_MS", cfg.PointerPollPeriod)
	cfg.PointerCleaningRadius = getEnvFloat("POINTER_CLEANING_RADIUS", cfg.PointerCleaningRadius)
	cfg.MinChangeThreshold = getEnvInt("MIN_CHANGE_THRESHOLD", cfg.MinChangeThreshold)
	return cfg
}

// Validate checks that every field is inside its legal range.
func (c *Config) Validate() error {
	switch {
	case c.TraversalPeriod <= 0:
		return errors.Newf(errors.CodeConfigInvalid, "traversal period must be positive, got %v", c.TraversalPeriod)
	case c.BarPixelIncrement <= 0:
		return errors.Newf(errors.CodeConfigInvalid, "bar pixel increment must be positive, got %d", c.BarPixelIncrement)
	case c.BarFraction <= 0 || c.BarFraction > 1:
		return errors.Newf(errors.CodeConfigInvalid, "bar fraction must be in (0, 1], got %g", c.BarFraction)
	case c.CapturePeriod <= 0:
		return errors.Newf(errors.CodeConfigInvalid, "capture period must be positive, got %v", c.CapturePeriod)
	case c.MaxAge < 1 || c.MaxAge > 255:
		return errors.Newf(errors.CodeConfigInvalid, "max age must be in [1, 255], got %d", c.MaxAge)
	case c.PointerPollPeriod <= 0:
		return errors.Newf(errors.CodeConfigInvalid, "pointer poll period must be positive, got %v", c.PointerPollPeriod)
	case c.PointerCleaningRadius <= 0:
		return errors.Newf(errors.CodeConfigInvalid, "pointer cleaning radius must be positive, got %g", c.PointerCleaningRadius)
	case c.MinChangeThreshold < 1:
		return errors.Newf(errors.CodeConfigInvalid, "min change threshold must be at least 1, got %d", c.MinChangeThreshold)
	}
	return nil
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvMillis(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return def
}
