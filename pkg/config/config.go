// Package config loads llmctx tool configuration: the provider price table
// consumed by the token estimator and the advisor thresholds. Configuration
// is an INI file so a price tweak never needs a rebuild.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	"llmctx/pkg/optimizer"
)

// FileName is the configuration file looked up in the working directory or
// under the user config dir.
const FileName = "llmctx.ini"

// Config is the loaded tool configuration.
type Config struct {
	// Providers maps provider name to price per 1000 tokens.
	Providers map[string]float64
	// Advisor holds the optimization heuristics' thresholds.
	Advisor optimizer.Config
	// RulesDir optionally points at a rules directory overriding the
	// embedded defaults.
	RulesDir string
}

// Default returns the built-in configuration: the provider price table the
// original cost survey shipped with, and the stock advisor thresholds.
func Default() *Config {
	return &Config{
		Providers: map[string]float64{
			"claude_sonnet": 0.003,
			"claude_haiku":  0.00025,
			"gpt4":          0.01,
			"gpt4_turbo":    0.01,
			"gpt35_turbo":   0.0005,
			"gemini_pro":    0.00025,
		},
		Advisor: optimizer.DefaultConfig(),
	}
}

// Load reads configuration from path, layered over the defaults. A missing
// file is not an error; a malformed one is, and propagates to the caller.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	if section, err := file.GetSection("providers"); err == nil {
		table := make(map[string]float64, len(section.Keys()))
		for _, key := range section.Keys() {
			price, err := key.Float64()
			if err != nil {
				return nil, fmt.Errorf("provider %s: invalid price %q", key.Name(), key.Value())
			}
			table[key.Name()] = price
		}
		if len(table) > 0 {
			cfg.Providers = table
		}
	}

	if section, err := file.GetSection("advisor"); err == nil {
		if key := section.Key("bullet_threshold"); key.String() != "" {
			cfg.Advisor.BulletThreshold = key.MustInt(cfg.Advisor.BulletThreshold)
		}
		if key := section.Key("item_min_chars"); key.String() != "" {
			cfg.Advisor.ItemMinChars = key.MustInt(cfg.Advisor.ItemMinChars)
		}
		if key := section.Key("trim_fraction"); key.String() != "" {
			cfg.Advisor.TrimFraction = key.MustFloat64(cfg.Advisor.TrimFraction)
		}
	}

	if section, err := file.GetSection("rules"); err == nil {
		cfg.RulesDir = section.Key("dir").String()
	}

	return cfg, nil
}

// LoadDefault looks for the config file in the working directory, then in
// the user config dir.
func LoadDefault() (*Config, error) {
	if _, err := os.Stat(FileName); err == nil {
		return Load(FileName)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return Load(filepath.Join(dir, "llmctx", FileName))
	}
	return Default(), nil
}
