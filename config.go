package vimv

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "VIMV_"

// Config drives a single run.
type Config struct {
	Force     bool   `koanf:"force"`
	Editor    string `koanf:"editor"`
	Nvim      bool   `koanf:"nvim"`
	Clipboard bool   `koanf:"clipboard"`
	Summary   bool   `koanf:"summary"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"force":     false,
		"editor":    "",
		"nvim":      false,
		"clipboard": false,
		"summary":   false,
	}
}

// LoadConfig layers VIMV_* environment variables over the defaults.
// Command-line flags are applied on top by the caller.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, wrapError(fmt.Errorf("invalid configuration: %w", err), ErrInvalidInput, "")
	}
	return &cfg, nil
}
