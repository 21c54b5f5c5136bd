package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/conn-castle/pc-onboard/internal/messages"
)

// ValidateYAMLSyntax reports a YAML syntax error in path before koanf sees it.
func ValidateYAMLSyntax(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(messages.ConfigLoadFileFmt, "yaml", path, err)
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return fmt.Errorf(messages.ConfigInvalidYAMLFmt, path, err)
	}
	return nil
}

// Validate checks cfg for values the onboarding flow cannot use.
// source names the config in error messages.
func Validate(cfg *Config, source string) error {
	if len(cfg.DevPackages) == 0 {
		return fmt.Errorf(messages.ConfigNoPackagesFmt, source)
	}
	for i, pkg := range cfg.DevPackages {
		if strings.TrimSpace(pkg) == "" {
			return fmt.Errorf(messages.ConfigEmptyPackageFmt, source, i)
		}
	}
	if strings.TrimSpace(cfg.MiseBin) == "" {
		return fmt.Errorf(messages.ConfigBinaryRequiredFmt, source, "mise_bin")
	}
	if strings.TrimSpace(cfg.PythonBin) == "" {
		return fmt.Errorf(messages.ConfigBinaryRequiredFmt, source, "python_bin")
	}
	return nil
}
