package config

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/pc-onboard/internal/messages"
)

const (
	// ProjectConfigName is the per-repository config file at the repository root.
	ProjectConfigName = ".pc-onboard.yaml"
	// EnvPrefix prefixes environment variable overrides.
	EnvPrefix = "PC_ONBOARD_"
)

// Paths holds resolved config file locations.
type Paths struct {
	UserConfig    string
	ProjectConfig string
}

// DefaultPaths returns the config paths for a repo root.
// The user config lives at ~/.config/pc-onboard/config.yaml.
func DefaultPaths(root string) (Paths, error) {
	home, err := homedir.Dir()
	if err != nil {
		return Paths{}, fmt.Errorf(messages.ConfigResolveHomeFmt, err)
	}
	return Paths{
		UserConfig:    filepath.Join(home, ".config", "pc-onboard", "config.yaml"),
		ProjectConfig: filepath.Join(root, ProjectConfigName),
	}, nil
}
