// Package config loads pc-onboard settings from defaults, config files, and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/conn-castle/pc-onboard/internal/messages"
	"github.com/conn-castle/pc-onboard/internal/tooling"
)

// Config is the resolved tool configuration.
type Config struct {
	// DevPackages are installed as dev dependencies and checked by doctor.
	DevPackages []string `koanf:"dev_packages"`
	// NoPrompt disables interactive questions.
	NoPrompt bool `koanf:"no_prompt"`
	// Verbose echoes commands and enables debug logging.
	Verbose bool `koanf:"verbose"`
	// MiseBin is the mise executable.
	MiseBin string `koanf:"mise_bin"`
	// PythonBin is the interpreter doctor queries.
	PythonBin string `koanf:"python_bin"`
}

// Defaults returns the built-in configuration values keyed by koanf path.
func Defaults() map[string]any {
	return map[string]any{
		"dev_packages": append([]string(nil), tooling.DevPackages...),
		"no_prompt":    false,
		"verbose":      false,
		"mise_bin":     "mise",
		"python_bin":   "python",
	}
}

// Load reads configuration for the repository at root.
// Later layers override earlier ones: defaults, user file, project file, environment.
func Load(root string) (*Config, error) {
	paths, err := DefaultPaths(root)
	if err != nil {
		return nil, err
	}
	return LoadPaths(paths)
}

// LoadPaths is Load with explicit file locations. Empty or missing paths are skipped.
func LoadPaths(paths Paths) (*Config, error) {
	k := koanf.New(".")
	for key, value := range Defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, err
		}
	}

	if err := loadYAMLFile(k, paths.UserConfig, "user"); err != nil {
		return nil, err
	}
	if err := loadYAMLFile(k, paths.ProjectConfig, "project"); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf(messages.ConfigLoadEnvFmt, err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigUnmarshalFmt, err)
	}
	cfg.DevPackages = splitPackages(cfg.DevPackages)
	if err := Validate(&cfg, "config"); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadYAMLFile validates and loads path when it exists.
func loadYAMLFile(k *koanf.Koanf, path string, kind string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf(messages.ConfigLoadFileFmt, kind, path, err)
	}
	if err := ValidateYAMLSyntax(path); err != nil {
		return err
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf(messages.ConfigLoadFileFmt, kind, path, err)
	}
	return nil
}

// envTransform maps PC_ONBOARD_DEV_PACKAGES to dev_packages.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// splitPackages expands comma-separated entries, which is how list values arrive from the environment.
func splitPackages(in []string) []string {
	out := make([]string, 0, len(in))
	for _, entry := range in {
		if !strings.Contains(entry, ",") {
			out = append(out, strings.TrimSpace(entry))
			continue
		}
		for _, part := range strings.Split(entry, ",") {
			out = append(out, strings.TrimSpace(part))
		}
	}
	return out
}
