package config

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Load()

	if cfg.TraversalPeriod != 4000*time.Millisecond {
		t.Errorf("TraversalPeriod = %v, want 4s", cfg.TraversalPeriod)
	}
	if cfg.BarPixelIncrement != 10 {
		t.Errorf("BarPixelIncrement = %d, want 10", cfg.BarPixelIncrement)
	}
	if cfg.BarFraction != 3.0/8 {
		t.Errorf("BarFraction = %g, want 0.375", cfg.BarFraction)
	}
	if cfg.MaxAge != 150 {
		t.Errorf("MaxAge = %d, want 150", cfg.MaxAge)
	}
	if cfg.MinChangeThreshold != 2 {
		t.Errorf("MinChangeThreshold = %d, want 2", cfg.MinChangeThreshold)
	}
	if cfg.BarColor.B != 255 || cfg.BarColor.R != 230 {
		t.Errorf("BarColor = %v, want slightly blue tint", cfg.BarColor)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PERIOD_MS", "8000")
	t.Setenv("BAR_PIXEL_INCREMENT", "5")
	t.Setenv("BAR_FRACTION", "0.5")
	t.Setenv("MAX_AGE", "20")
	t.Setenv("POINTER_CLEANING_RADIUS", "42.5")

	cfg := Load()

	if cfg.TraversalPeriod != 8*time.Second {
		t.Errorf("TraversalPeriod = %v, want 8s", cfg.TraversalPeriod)
	}
	if cfg.BarPixelIncrement != 5 {
		t.Errorf("BarPixelIncrement = %d, want 5", cfg.BarPixelIncrement)
	}
	if cfg.BarFraction != 0.5 {
		t.Errorf("BarFraction = %g, want 0.5", cfg.BarFraction)
	}
	if cfg.MaxAge != 20 {
		t.Errorf("MaxAge = %d, want 20", cfg.MaxAge)
	}
	if cfg.PointerCleaningRadius != 42.5 {
		t.Errorf("PointerCleaningRadius = %g, want 42.5", cfg.PointerCleaningRadius)
	}
}

func TestEnvOverrideInvalidIgnored(t *testing.T) {
	t.Setenv("MAX_AGE", "not-a-number")

	cfg := Load()
	if cfg.MaxAge != 150 {
		t.Errorf("MaxAge = %d, want default 150 for unparseable override", cfg.MaxAge)
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero traversal", func(c *Config) { c.TraversalPeriod = 0 }},
		{"zero increment", func(c *Config) { c.BarPixelIncrement = 0 }},
		{"negative fraction", func(c *Config) { c.BarFraction = -0.1 }},
		{"fraction above one", func(c *Config) { c.BarFraction = 1.5 }},
		{"zero capture period", func(c *Config) { c.CapturePeriod = 0 }},
		{"max age zero", func(c *Config) { c.MaxAge = 0 }},
		{"max age overflows uint8", func(c *Config) { c.MaxAge = 256 }},
		{"zero poll period", func(c *Config) { c.PointerPollPeriod = 0 }},
		{"zero radius", func(c *Config) { c.PointerCleaningRadius = 0 }},
		{"zero threshold", func(c *Config) { c.MinChangeThreshold = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestValidateFullFraction(t *testing.T) {
	cfg := Default()
	cfg.BarFraction = 1.0
	if err := cfg.Validate(); err != nil {
		t.Errorf("fraction of exactly 1 should be legal, got %v", err)
	}
}
