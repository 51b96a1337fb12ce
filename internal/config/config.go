package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/daybill/internal/billing"
	"github.com/alexanderramin/daybill/internal/domain"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// EnvPrefix prefixes every environment override. Nested keys use "__",
// e.g. DAYBILL_COSTS__HIGH__FULL=90.
const EnvPrefix = "DAYBILL_"

// Config holds all daybill configuration.
type Config struct {
	Costs CostsConfig `koanf:"costs"`
	Log   LogConfig   `koanf:"log"`
}

// CostsConfig holds daily prices per tier.
type CostsConfig struct {
	Low  TierCosts `koanf:"low"`
	High TierCosts `koanf:"high"`
}

// TierCosts holds the travel and full day price for one tier.
type TierCosts struct {
	Travel int `koanf:"travel"`
	Full   int `koanf:"full"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error, disabled.
	Level string `koanf:"level"`
	// Format is "console" or "json".
	Format string `koanf:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	table := billing.DefaultCostTable()
	return Config{
		Costs: CostsConfig{
			Low: TierCosts{
				Travel: table.Price(domain.TierLow, domain.DayTravel),
				Full:   table.Price(domain.TierLow, domain.DayFull),
			},
			High: TierCosts{
				Travel: table.Price(domain.TierHigh, domain.DayTravel),
				Full:   table.Price(domain.TierHigh, domain.DayFull),
			},
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load builds the configuration from defaults, then the optional file at
// path (YAML or JSON by extension), then DAYBILL_* environment variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		var parser koanf.Parser
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	// The callback rewrites "__" to ".", so keys are split on ".".
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks prices and logging settings.
func (c Config) Validate() error {
	if err := c.CostTable().Validate(); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("log.format: must be console or json, got %q", c.Log.Format)
	}
	return nil
}

// CostTable converts the configured prices to a billing table.
func (c Config) CostTable() billing.CostTable {
	return billing.CostTable{
		domain.TierLow:  {domain.DayTravel: c.Costs.Low.Travel, domain.DayFull: c.Costs.Low.Full},
		domain.TierHigh: {domain.DayTravel: c.Costs.High.Travel, domain.DayFull: c.Costs.High.Full},
	}
}
