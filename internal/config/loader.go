package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Load loads the tuning configuration.
// Search order: customPath -> ~/.cuberush/configs/tuning.yaml ->
// ./configs/tuning.yaml -> embedded default.
//
// Documents overlay the defaults, so a file may set only the fields it
// wants to change. An explicit customPath fails fast on read, parse, or
// validation errors; an ambient candidate that exists but is broken is
// logged and skipped.
func Load(customPath string, logger *log.Logger) (Tuning, error) {
	base := embeddedDefaults()

	if customPath != "" {
		cfg := base
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tuning.yaml"); userCfgPath != "" {
		if cfg, ok := tryLoad(base, userCfgPath, logger); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(base, filepath.Join("configs", "tuning.yaml"), logger); ok {
		return cfg, nil
	}

	return base, nil
}

// tryLoad overlays one candidate file onto base. A missing candidate is
// skipped quietly; one that exists but fails to parse or validate is
// logged and skipped.
func tryLoad(base Tuning, path string, logger *log.Logger) (Tuning, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, false
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		warn(logger, "skipping config file", "path", path, "error", err)
		return Tuning{}, false
	}
	if err := cfg.Validate(); err != nil {
		warn(logger, "skipping config file", "path", path, "error", err)
		return Tuning{}, false
	}
	return cfg, true
}

func warn(logger *log.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// embeddedDefaults parses the embedded default document, falling back to
// the hardcoded defaults if it is broken.
func embeddedDefaults() Tuning {
	cfg := DefaultTuning()
	if err := yaml.Unmarshal(defaultTuningYAML, &cfg); err != nil {
		return DefaultTuning()
	}
	return cfg
}

// userConfigPath returns the path to the user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cuberush", "configs", filename)
}
